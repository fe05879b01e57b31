package couponControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/response"
	"github.com/swapnil0000/urbannook-api/testutil"
)

// The public list and the discount check must agree on what "active"
// means: a zero expiry date never expires.
func TestListCoupons_IncludesNeverExpiring(t *testing.T) {
	db := testutil.StartPostgres(t)

	seed := []models.Coupon{
		{Name: "FRESH10", DiscountType: models.DiscountPercentage, DiscountValue: 10,
			ExpiryDate: time.Now().Add(48 * time.Hour), Active: true},
		{Name: "FOREVER5", DiscountType: models.DiscountFixed, DiscountValue: 5, Active: true},
		{Name: "GONE15", DiscountType: models.DiscountPercentage, DiscountValue: 15,
			ExpiryDate: time.Now().Add(-time.Hour), Active: true},
		{Name: "HIDDEN20", DiscountType: models.DiscountPercentage, DiscountValue: 20,
			ExpiryDate: time.Now().Add(48 * time.Hour), Active: true},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}
	require.NoError(t, db.Model(&models.Coupon{}).Where("name = ?", "HIDDEN20").Update("active", false).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/coupon/list", ListCoupons(db))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/coupon/list", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.True(t, env.Success)

	names := map[string]bool{}
	for _, raw := range env.Data.([]interface{}) {
		names[raw.(map[string]interface{})["name"].(string)] = true
	}
	assert.True(t, names["FRESH10"])
	assert.True(t, names["FOREVER5"], "zero expiry means never-expiring")
	assert.False(t, names["GONE15"])
	assert.False(t, names["HIDDEN20"])
}
