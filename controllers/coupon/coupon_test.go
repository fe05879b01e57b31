package couponControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/swapnil0000/urbannook-api/pricing"
	"github.com/swapnil0000/urbannook-api/response"
)

// A blank (non-null) code must be rejected before any database access,
// so the handler is safe to run with a nil DB here.
func TestApplyCoupon_BlankCodeRejectedBeforeLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/user/coupon/apply", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		ApplyCoupon(nil)(c)
	})

	for _, body := range []string{
		`{"code":""}`,
		`{"code":"   "}`,
		`{"code":"\t"}`,
	} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/user/coupon/apply", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
		assert.Contains(t, rr.Body.String(), `"success":false`)
	}
}

func TestApplyCoupon_MalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/user/coupon/apply", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		ApplyCoupon(nil)(c)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user/coupon/apply", strings.NewReader(`{"code":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCouponRejectionCodes(t *testing.T) {
	// every rejection maps to a stable code, never a message the
	// client would have to substring-match
	cases := map[error]string{
		pricing.ErrCouponExpired:  response.CodeCouponExpired,
		pricing.ErrMinCartNotMet:  response.CodeCouponMinCart,
		pricing.ErrUsageExhausted: response.CodeCouponExhausted,
		pricing.ErrCouponInactive: response.CodeCouponNotFound,
	}
	for err, want := range cases {
		code, msg := RejectionCode(err)
		assert.Equal(t, want, code)
		assert.NotEmpty(t, msg)
	}
}
