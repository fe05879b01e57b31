package paymentControllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRazorpayOrder_Success(t *testing.T) {
	var gotAuthUser, gotAuthPass string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		gotAuthUser, gotAuthPass, _ = r.BasicAuth()
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_ABC123",
			"amount":   129900,
			"currency": "INR",
			"status":   "created",
		})
	}))
	defer srv.Close()

	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_secret")
	t.Setenv("RAZORPAY_API_URL", srv.URL)

	orderID, err := CreateRazorpayOrder(129900, "INR", "cart_user-1", map[string]string{"user_id": "user-1"})
	require.NoError(t, err)
	assert.Equal(t, "order_ABC123", orderID)
	assert.Equal(t, "rzp_test_key", gotAuthUser)
	assert.Equal(t, "rzp_secret", gotAuthPass)
	assert.Equal(t, float64(129900), gotBody["amount"])
	assert.Equal(t, "INR", gotBody["currency"])
}

func TestCreateRazorpayOrder_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":        "BAD_REQUEST_ERROR",
				"description": "amount must be at least 100",
			},
		})
	}))
	defer srv.Close()

	t.Setenv("RAZORPAY_KEY_ID", "k")
	t.Setenv("RAZORPAY_KEY_SECRET", "s")
	t.Setenv("RAZORPAY_API_URL", srv.URL)

	_, err := CreateRazorpayOrder(1, "INR", "r", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount must be at least 100")
}

func TestCreateRazorpayOrder_MissingConfig(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	_, err := CreateRazorpayOrder(100, "INR", "r", nil)
	assert.Error(t, err)
}

func TestVerifyPaymentSignature(t *testing.T) {
	secret := "rzp_secret"
	orderID := "order_ABC123"
	paymentID := "pay_XYZ789"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, VerifyPaymentSignature(orderID, paymentID, valid, secret))
	assert.False(t, VerifyPaymentSignature(orderID, paymentID, "tampered", secret))
	assert.False(t, VerifyPaymentSignature(orderID, "pay_other", valid, secret))
	assert.False(t, VerifyPaymentSignature(orderID, paymentID, valid, "wrong-secret"))
}

func TestCartFingerprint(t *testing.T) {
	items := []fingerprintItem{
		{ProductID: 1, Quantity: 2, Price: 499},
		{ProductID: 7, Quantity: 1, Price: 1299},
	}

	a := CartFingerprint("user-1", items, "SAVE20", 3)
	b := CartFingerprint("user-1", items, "SAVE20", 3)
	assert.Equal(t, a, b, "same cart state must fingerprint identically")

	// row order from the database is not guaranteed; a permuted slice
	// is the same cart
	permuted := []fingerprintItem{
		{ProductID: 7, Quantity: 1, Price: 1299},
		{ProductID: 1, Quantity: 2, Price: 499},
	}
	assert.Equal(t, a, CartFingerprint("user-1", permuted, "SAVE20", 3),
		"item order must not change the fingerprint")

	// any changed input produces a different fingerprint
	assert.NotEqual(t, a, CartFingerprint("user-2", items, "SAVE20", 3))
	assert.NotEqual(t, a, CartFingerprint("user-1", items, "", 3))
	assert.NotEqual(t, a, CartFingerprint("user-1", items, "SAVE20", 4))

	changed := []fingerprintItem{
		{ProductID: 1, Quantity: 3, Price: 499},
		{ProductID: 7, Quantity: 1, Price: 1299},
	}
	assert.NotEqual(t, a, CartFingerprint("user-1", changed, "SAVE20", 3))
}

func TestGetKeyHandler(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/rp/get-key", GetKeyHandler)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rp/get-key", nil)
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "rzp_test_key")
}
