package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/swapnil0000/urbannook-api/controllers/admin"
	communityControllers "github.com/swapnil0000/urbannook-api/controllers/community"
	couponControllers "github.com/swapnil0000/urbannook-api/controllers/coupon"
	nfcControllers "github.com/swapnil0000/urbannook-api/controllers/nfc"
	paymentControllers "github.com/swapnil0000/urbannook-api/controllers/payment"
	productControllers "github.com/swapnil0000/urbannook-api/controllers/product"
)

// SetupPublicRoutes registers the unauthenticated storefront surface.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/categories", productControllers.GetCategories(db))
	r.GET("/banners", adminControllers.GetBanners(db))

	r.GET("/coupon/list", couponControllers.ListCoupons(db))

	r.GET("/rp/get-key", paymentControllers.GetKeyHandler)

	r.POST("/join/community", communityControllers.JoinCommunity(db))

	r.GET("/nfc/resolve/:tag_id", nfcControllers.ResolveTag(db))
}
