package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/swapnil0000/urbannook-api/response"
)

// ValidateAPIKey guards the /admin/* surface.
func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if apiKey == "" || apiKey != os.Getenv("ADMIN_API_KEY") {
		response.Fail(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid or missing API key")
		c.Abort()
		return
	}
	c.Next()
}
