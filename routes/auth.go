package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/google-user", auth.GoogleUserLoginHandler(db))
		authGroup.POST("/guest", auth.CreateGuestUser(db))
	}
}
