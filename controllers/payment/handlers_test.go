package paymentControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/response"
	"github.com/swapnil0000/urbannook-api/testutil"
)

func newCheckoutRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/user/create-order", func(c *gin.Context) {
		c.Set("user_id", userID)
		CreateOrderHandler(db)(c)
	})
	return r
}

func postCreateOrder(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/create-order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rr, req)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return rr, env
}

// A "Retry Payment" for an unchanged cart must hand back the pending
// gateway order instead of minting a duplicate.
func TestCreateOrderHandler_RetryReusesPendingOrder(t *testing.T) {
	db := testutil.StartPostgres(t)

	gatewayHits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gatewayHits++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     fmt.Sprintf("order_rp_retry_%d", gatewayHits),
			"status": "created",
		})
	}))
	defer srv.Close()

	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_secret")
	t.Setenv("RAZORPAY_API_URL", srv.URL)

	user := models.User{ID: "user-retry", Email: "retry@urbannook.in", Provider: "google"}
	require.NoError(t, db.Create(&user).Error)
	cart := models.Cart{UserID: user.ID, Items: []models.CartItem{
		{ProductID: 11, Name: "Planter", Price: 349, Quantity: 2},
		{ProductID: 12, Name: "Coaster Set", Price: 249, Quantity: 1},
	}}
	require.NoError(t, db.Create(&cart).Error)

	r := newCheckoutRouter(db, user.ID)

	rr, env := postCreateOrder(t, r, `{}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, env.Success)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, "order_rp_retry_1", data["order_id"])
	assert.Equal(t, 1, gatewayHits)

	var po models.PaymentOrder
	require.NoError(t, db.Preload("Items").Where("razorpay_order_id = ?", "order_rp_retry_1").First(&po).Error)
	require.Len(t, po.Items, 2, "payment order must freeze the cart items")

	rr, env = postCreateOrder(t, r, `{}`)
	require.Equal(t, http.StatusOK, rr.Code)
	data = env.Data.(map[string]interface{})
	assert.Equal(t, "order_rp_retry_1", data["order_id"], "retry must reuse the pending gateway order")
	assert.Equal(t, true, data["reused"])
	assert.Equal(t, 1, gatewayHits, "retry must not hit the gateway again")

	// once paid, the same cart gets a fresh gateway order
	require.NoError(t, db.Model(&po).Update("status", models.PaymentStatusPaid).Error)
	rr, _ = postCreateOrder(t, r, `{}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, gatewayHits)
}

// The checkout path normalizes coupon codes the same way the apply
// endpoint does, so a code accepted at apply time cannot fail at
// create-order.
func TestCreateOrderHandler_NormalizesCouponCode(t *testing.T) {
	db := testutil.StartPostgres(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"id": "order_rp_coupon", "status": "created"})
	}))
	defer srv.Close()

	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_secret")
	t.Setenv("RAZORPAY_API_URL", srv.URL)

	user := models.User{ID: "user-coupon", Email: "coupon@urbannook.in", Provider: "google"}
	require.NoError(t, db.Create(&user).Error)
	cart := models.Cart{UserID: user.ID, Items: []models.CartItem{
		{ProductID: 21, Name: "Throw Blanket", Price: 750, Quantity: 1},
	}}
	require.NoError(t, db.Create(&cart).Error)

	coupon := models.Coupon{
		Name:          "SAVE20",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 20,
		ExpiryDate:    time.Now().Add(24 * time.Hour),
		Active:        true,
	}
	require.NoError(t, db.Create(&coupon).Error)

	r := newCheckoutRouter(db, user.ID)

	rr, env := postCreateOrder(t, r, `{"coupon_code":"  save20 "}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, env.Success)

	data := env.Data.(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, 150.0, summary["discount"], "20 percent of 750")

	var po models.PaymentOrder
	require.NoError(t, db.Where("razorpay_order_id = ?", "order_rp_coupon").First(&po).Error)
	assert.Equal(t, "SAVE20", po.CouponCode)
}

// Coupon rejections at checkout carry the same stable codes as the
// apply endpoint.
func TestCreateOrderHandler_ExpiredCouponCode(t *testing.T) {
	db := testutil.StartPostgres(t)

	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_secret")

	user := models.User{ID: "user-expired", Email: "expired@urbannook.in", Provider: "google"}
	require.NoError(t, db.Create(&user).Error)
	cart := models.Cart{UserID: user.ID, Items: []models.CartItem{
		{ProductID: 31, Name: "Candle Trio", Price: 450, Quantity: 1},
	}}
	require.NoError(t, db.Create(&cart).Error)

	coupon := models.Coupon{
		Name:          "OLD10",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 10,
		ExpiryDate:    time.Now().Add(-time.Hour),
		Active:        true,
	}
	require.NoError(t, db.Create(&coupon).Error)

	r := newCheckoutRouter(db, user.ID)

	rr, env := postCreateOrder(t, r, `{"coupon_code":"old10"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, env.Success)
	assert.Equal(t, response.CodeCouponExpired, env.Code)
}
