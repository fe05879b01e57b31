package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func webhookRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/rp/webhook", RazorpayWebhookAuth(), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})
	return r
}

func sign(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpayWebhookAuth_ValidSignature(t *testing.T) {
	t.Setenv("RAZORPAY_WEBHOOK_SECRET", "whsec")
	t.Setenv("RAZORPAY_MODE", "live")

	r := webhookRouter()
	body := `{"event":"payment.captured"}`

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rp/webhook", strings.NewReader(body))
	req.Header.Set("X-Razorpay-Signature", sign("whsec", body))
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	// the handler must still see the full body after verification
	assert.Equal(t, body, rr.Body.String())
}

func TestRazorpayWebhookAuth_InvalidSignature(t *testing.T) {
	t.Setenv("RAZORPAY_WEBHOOK_SECRET", "whsec")
	t.Setenv("RAZORPAY_MODE", "live")

	r := webhookRouter()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rp/webhook", strings.NewReader(`{}`))
	req.Header.Set("X-Razorpay-Signature", "deadbeef")
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRazorpayWebhookAuth_MissingSignature(t *testing.T) {
	t.Setenv("RAZORPAY_WEBHOOK_SECRET", "whsec")
	t.Setenv("RAZORPAY_MODE", "live")

	r := webhookRouter()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rp/webhook", strings.NewReader(`{}`))
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRazorpayWebhookAuth_SandboxSkipsCheck(t *testing.T) {
	t.Setenv("RAZORPAY_WEBHOOK_SECRET", "")
	t.Setenv("RAZORPAY_MODE", "sandbox")

	r := webhookRouter()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rp/webhook", strings.NewReader(`{}`))
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
