package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/swapnil0000/urbannook-api/controllers/admin"
	cartControllers "github.com/swapnil0000/urbannook-api/controllers/cart"
	communityControllers "github.com/swapnil0000/urbannook-api/controllers/community"
	couponControllers "github.com/swapnil0000/urbannook-api/controllers/coupon"
	nfcControllers "github.com/swapnil0000/urbannook-api/controllers/nfc"
	orderControllers "github.com/swapnil0000/urbannook-api/controllers/order"
	productControllers "github.com/swapnil0000/urbannook-api/controllers/product"
	userControllers "github.com/swapnil0000/urbannook-api/controllers/user"
	"github.com/swapnil0000/urbannook-api/middleware"
)

// SetupAdminRoutes registers the "/admin/*" endpoints behind the API key check.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// catalog
		adminGroup.POST("/products", productControllers.CreateProduct(db))
		adminGroup.PUT("/products/:id", productControllers.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(db))
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(db))
		adminGroup.POST("/categories", productControllers.CreateCategory(db))
		adminGroup.DELETE("/categories/:id", productControllers.DeleteCategory(db))

		// coupons
		adminGroup.POST("/coupons", couponControllers.CreateCoupon(db))
		adminGroup.PUT("/coupons/:id", couponControllers.UpdateCoupon(db))
		adminGroup.DELETE("/coupons/:id", couponControllers.DeleteCoupon(db))

		// banners
		adminGroup.POST("/banners", adminControllers.UploadBanner(db))
		adminGroup.DELETE("/banners/:id", adminControllers.DeleteBanner(db))

		// orders
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))
		adminGroup.GET("/orders/:orderRef", orderControllers.GetOrderByRefHandler(db))
		adminGroup.PUT("/orders/:orderRef/status", orderControllers.UpdateOrderStatusHandler(db))
		adminGroup.PUT("/orders/:orderRef/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
		adminGroup.DELETE("/orders/:orderRef", orderControllers.DeleteOrderHandler(db))
		adminGroup.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

		// nfc tags
		adminGroup.POST("/nfc/register", nfcControllers.RegisterTag(db))
		adminGroup.GET("/nfc/tags", nfcControllers.ListTags(db))
		adminGroup.PUT("/nfc/tags/:tag_id/deactivate", nfcControllers.DeactivateTag(db))

		// users
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/users/:user_id/cart", cartControllers.GetAdminUserCart(db))

		// community
		adminGroup.GET("/community/members", communityControllers.ListMembers(db))
	}
}
