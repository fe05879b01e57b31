package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/swapnil0000/urbannook-api/response"
)

// RazorpayWebhookAuth verifies the X-Razorpay-Signature header, an
// HMAC-SHA256 over the raw request body. Sandbox/dev mode skips the
// check so local testing does not need real gateway traffic.
func RazorpayWebhookAuth() gin.HandlerFunc {
	secret := os.Getenv("RAZORPAY_WEBHOOK_SECRET")
	mode := strings.ToLower(os.Getenv("RAZORPAY_MODE"))

	if secret == "" && mode != "sandbox" && mode != "dev" {
		panic("RAZORPAY_WEBHOOK_SECRET is not set")
	}

	return func(c *gin.Context) {
		if mode == "sandbox" || mode == "dev" {
			log.Println("Sandbox/dev mode: skipping Razorpay webhook signature verification")
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "failed to read webhook body")
			c.Abort()
			return
		}
		// hand the body back to the handler
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		provided := c.GetHeader("X-Razorpay-Signature")
		if provided == "" {
			response.Fail(c, http.StatusForbidden, response.CodeSignatureMismatch, "missing webhook signature")
			c.Abort()
			return
		}

		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)
		calculated := hex.EncodeToString(mac.Sum(nil))

		if !hmac.Equal([]byte(calculated), []byte(provided)) {
			response.Fail(c, http.StatusForbidden, response.CodeSignatureMismatch, "invalid webhook signature")
			c.Abort()
			return
		}

		c.Next()
	}
}
