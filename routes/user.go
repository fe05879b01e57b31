package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	addressControllers "github.com/swapnil0000/urbannook-api/controllers/address"
	cartControllers "github.com/swapnil0000/urbannook-api/controllers/cart"
	couponControllers "github.com/swapnil0000/urbannook-api/controllers/coupon"
	orderControllers "github.com/swapnil0000/urbannook-api/controllers/order"
	paymentControllers "github.com/swapnil0000/urbannook-api/controllers/payment"
	userControllers "github.com/swapnil0000/urbannook-api/controllers/user"
	wishlistControllers "github.com/swapnil0000/urbannook-api/controllers/wishlist"
	"github.com/swapnil0000/urbannook-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// profile
		userGroup.GET("/profile", userControllers.GetProfile(db))
		userGroup.PUT("/profile", userControllers.UpdateProfile(db))

		// shopping cart
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.POST("/", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
		}

		// wishlist
		wishGroup := userGroup.Group("/wishlist")
		{
			wishGroup.GET("/", wishlistControllers.GetWishlist(db))
			wishGroup.POST("/", wishlistControllers.AddToWishlist(db))
			wishGroup.DELETE("/:product_id", wishlistControllers.RemoveFromWishlist(db))
		}

		// addresses
		addrGroup := userGroup.Group("/address")
		{
			addrGroup.GET("/", addressControllers.ListAddresses(db))
			addrGroup.POST("/", addressControllers.CreateAddress(db))
			addrGroup.PUT("/:id", addressControllers.UpdateAddress(db))
			addrGroup.DELETE("/:id", addressControllers.DeleteAddress(db))
		}

		// checkout
		userGroup.POST("/coupon/apply", couponControllers.ApplyCoupon(db))
		userGroup.POST("/create-order", paymentControllers.CreateOrderHandler(db))

		// orders
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(db))
	}
}
