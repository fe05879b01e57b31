package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/swapnil0000/urbannook-api/controllers/payment"
	"github.com/swapnil0000/urbannook-api/events"
	"github.com/swapnil0000/urbannook-api/middleware"
)

// SetupPaymentRoutes registers gateway callback endpoints. The webhook is
// authenticated by signature, not by JWT.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, pub *events.Publisher) {
	rpGroup := r.Group("/rp")
	{
		rpGroup.POST("/verify", middleware.ValidateToken, paymentControllers.VerifyPaymentHandler(db, pub))
		rpGroup.POST("/webhook", middleware.RazorpayWebhookAuth(), paymentControllers.WebhookHandler(db, pub))
	}
}
