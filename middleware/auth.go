package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/swapnil0000/urbannook-api/response"
)

// ValidateToken guards /user/* routes. On success the user id from the
// token claims is stored in the gin context under "user_id".
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		response.Fail(c, http.StatusUnauthorized, response.CodeUnauthorized, "Authorization header is missing")
		c.Abort()
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		response.Fail(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid or expired token")
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid token claims")
		c.Abort()
		return
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		response.Fail(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid token claims")
		c.Abort()
		return
	}
	c.Set("user_id", userID)
	if role, ok := claims["role"].(string); ok {
		c.Set("role", role)
	}

	c.Next()
}
