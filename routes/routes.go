package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/events"
)

// SetupRoutes is the single entry point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, pub *events.Publisher) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public storefront routes
	SetupPublicRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Payment gateway callbacks
	SetupPaymentRoutes(r, db, pub)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
