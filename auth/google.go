package auth

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go"
	firebaseauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/response"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *firebaseauth.Client
	projectID    string
)

func init() {
	_ = godotenv.Load()

	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if credsJSON == "" || projectID == "" {
		// Google login is disabled without Firebase credentials; guest
		// auth still works, so don't take the whole service down.
		log.Println("firebase credentials not configured, google login disabled")
		return
	}

	ctx := context.Background()
	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: projectID}

	var err error
	firebaseApp, err = firebase.NewApp(ctx, config, opt)
	if err != nil {
		log.Fatalf("firebase init failed: %v", err)
	}
	firebaseAuth, err = firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase auth client failed: %v", err)
	}
}

type googleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
	GuestID string `json:"guest_id"`
}

// POST /auth/google-user
func GoogleUserLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if firebaseAuth == nil {
			response.Fail(c, http.StatusServiceUnavailable, response.CodeInternal, "Google login is not configured")
			return
		}

		var req googleLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid request payload")
			return
		}

		ctx := c.Request.Context()
		token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid Firebase ID token")
			return
		}
		if token.Audience != projectID {
			response.Fail(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid token audience")
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		userID := token.UID

		var user models.User
		err = db.Preload("Cart.Items").Where("id = ?", userID).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				ID:       userID,
				Email:    email,
				Name:     name,
				Picture:  picture,
				Provider: "google",
				Cart:     models.Cart{UserID: userID},
			}
			if err := db.Create(&user).Error; err != nil {
				response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create user")
				return
			}
		} else if err == nil {
			db.Model(&user).Updates(models.User{Name: name, Picture: picture})
		} else {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Database error")
			return
		}

		mergeStatus := "no-guest-cart"
		if req.GuestID != "" {
			merged, err := MergeGuestCart(db, req.GuestID, user.ID)
			switch {
			case err != nil:
				mergeStatus = "merge-failed"
			case merged:
				mergeStatus = "merged-success"
			default:
				mergeStatus = "guest-cart-empty"
			}
		}

		response.OK(c, http.StatusOK, "Login successful", gin.H{
			"user":         user,
			"merge_status": mergeStatus,
			"token":        issueJWT(userID, email, "user"),
		})
	}
}

// MergeGuestCart folds a guest account's cart into the logged-in
// user's cart (quantities add up), then removes the guest account.
func MergeGuestCart(db *gorm.DB, guestID, userID string) (bool, error) {
	merged := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var guestCart models.Cart
		if err := tx.Preload("Items").Where("user_id = ?", guestID).First(&guestCart).Error; err != nil {
			return nil // nothing to merge
		}
		if len(guestCart.Items) == 0 {
			return tx.Delete(&models.User{}, "id = ? AND provider = ?", guestID, "guest").Error
		}

		var userCart models.Cart
		err := tx.Preload("Items").Where("user_id = ?", userID).First(&userCart).Error
		if err == gorm.ErrRecordNotFound {
			userCart = models.Cart{UserID: userID}
			if err := tx.Create(&userCart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		for _, guestItem := range guestCart.Items {
			var userItem models.CartItem
			lookupErr := tx.Where("cart_id = ? AND product_id = ?", userCart.CartID, guestItem.ProductID).
				First(&userItem).Error

			if lookupErr == nil {
				userItem.Quantity += guestItem.Quantity
				userItem.AddedAt = time.Now()
				if err := tx.Save(&userItem).Error; err != nil {
					return err
				}
			} else if lookupErr == gorm.ErrRecordNotFound {
				newItem := guestItem
				newItem.ID = 0
				newItem.CartID = userCart.CartID
				newItem.AddedAt = time.Now()
				if err := tx.Create(&newItem).Error; err != nil {
					return err
				}
			} else {
				return lookupErr
			}
		}

		if err := tx.Where("cart_id = ?", guestCart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.User{}, "id = ? AND provider = ?", guestID, "guest").Error; err != nil {
			return err
		}
		merged = true
		return nil
	})
	return merged, err
}

func issueJWT(userID, email, role string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}
	return signed
}
