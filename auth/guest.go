package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/response"
)

// POST /auth/guest
//
// Guests are plain user rows with provider "guest" and an expiry, so
// the cart endpoints work identically before and after login.
func CreateGuestUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + randomHex(16)
		expires := time.Now().Add(24 * time.Hour)

		guest := models.User{
			ID:        guestID,
			Email:     guestID + "@guest.urbannook.local",
			Provider:  "guest",
			ExpiresAt: &expires,
			Cart:      models.Cart{UserID: guestID},
		}
		if err := db.Create(&guest).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create guest")
			return
		}

		token, err := issueGuestToken(guestID)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Token generation failed")
			return
		}

		response.OK(c, http.StatusOK, "Guest session created", gin.H{
			"guest_id":   guestID,
			"token":      token,
			"expires_at": expires,
		})
	}
}

func randomHex(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}

func issueGuestToken(id string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": id,
		"role":    "guest",
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
