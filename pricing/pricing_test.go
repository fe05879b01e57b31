package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapnil0000/urbannook-api/models"
)

func items(pairs ...float64) []models.CartItem {
	// pairs is (price, qty, price, qty, ...)
	var out []models.CartItem
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.CartItem{Price: pairs[i], Quantity: int(pairs[i+1])})
	}
	return out
}

func TestSubtotal(t *testing.T) {
	assert.Equal(t, 0.0, Subtotal(nil))
	assert.Equal(t, 500.0, Subtotal(items(250, 2)))
	assert.Equal(t, 1249.5, Subtotal(items(249.9, 5)))
	assert.Equal(t, 1100.0, Subtotal(items(100, 1, 500, 2)))
}

func TestCompute_GrandTotalIdentity(t *testing.T) {
	carts := [][]models.CartItem{
		items(250, 2),
		items(99.99, 3, 1200, 1),
		items(49, 1),
		nil,
	}
	for _, cart := range carts {
		for _, discount := range []float64{0, 50, 99999} {
			s := Compute(cart, discount)
			assert.InDelta(t, s.Subtotal+s.GST+s.Shipping-s.Discount, s.GrandTotal, 0.001)
			assert.GreaterOrEqual(t, s.GrandTotal, 0.0)
		}
	}
}

func TestCompute_ShippingThreshold(t *testing.T) {
	// below the free-shipping threshold pays the flat rate
	s := Compute(items(250, 2), 0)
	assert.Equal(t, FlatShipping, s.Shipping)

	// at or above the threshold ships free
	s = Compute(items(999, 1), 0)
	assert.Equal(t, 0.0, s.Shipping)

	// empty cart never charges shipping
	s = Compute(nil, 0)
	assert.Equal(t, 0.0, s.Shipping)
}

func TestCompute_ThresholdFromEnv(t *testing.T) {
	t.Setenv("FREE_SHIP_THRESHOLD", "500")
	s := Compute(items(250, 2), 0)
	assert.Equal(t, 0.0, s.Shipping)

	t.Setenv("FREE_SHIP_THRESHOLD", "not-a-number")
	assert.Equal(t, DefaultFreeShipOver, FreeShipOver())
}

func TestCompute_DiscountNeverExceedsSubtotal(t *testing.T) {
	s := Compute(items(100, 1), 5000)
	assert.Equal(t, 100.0, s.Discount)
	assert.InDelta(t, s.GST+s.Shipping, s.GrandTotal, 0.001)
}

func TestCouponDiscount_Percentage(t *testing.T) {
	cp := &models.Coupon{
		Name:          "SAVE20",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 20,
		Active:        true,
		ExpiryDate:    time.Now().Add(24 * time.Hour),
	}
	d, err := CouponDiscount(cp, 750, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 150.0, d)
}

func TestCouponDiscount_PercentageCappedAtMax(t *testing.T) {
	cp := &models.Coupon{
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 50,
		MaxDiscount:   200,
		Active:        true,
		ExpiryDate:    time.Now().Add(time.Hour),
	}
	d, err := CouponDiscount(cp, 10000, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 200.0, d)
}

func TestCouponDiscount_FixedClampedToSubtotal(t *testing.T) {
	cp := &models.Coupon{
		DiscountType:  models.DiscountFixed,
		DiscountValue: 500,
		Active:        true,
		ExpiryDate:    time.Now().Add(time.Hour),
	}
	d, err := CouponDiscount(cp, 300, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 300.0, d)
}

func TestCouponDiscount_Rejections(t *testing.T) {
	now := time.Now()
	base := models.Coupon{
		DiscountType:  models.DiscountFixed,
		DiscountValue: 100,
		Active:        true,
		ExpiryDate:    now.Add(time.Hour),
	}

	expired := base
	expired.ExpiryDate = now.Add(-time.Hour)
	_, err := CouponDiscount(&expired, 1000, now)
	assert.ErrorIs(t, err, ErrCouponExpired)

	inactive := base
	inactive.Active = false
	_, err = CouponDiscount(&inactive, 1000, now)
	assert.ErrorIs(t, err, ErrCouponInactive)

	minCart := base
	minCart.MinCartValue = 2000
	_, err = CouponDiscount(&minCart, 1000, now)
	assert.ErrorIs(t, err, ErrMinCartNotMet)

	exhausted := base
	exhausted.UsageLimit = 3
	exhausted.UsedCount = 3
	_, err = CouponDiscount(&exhausted, 1000, now)
	assert.ErrorIs(t, err, ErrUsageExhausted)
}

func TestCouponRemoval_RestoresGrandTotal(t *testing.T) {
	cart := items(600, 2)
	withCoupon := Compute(cart, 150)
	without := Compute(cart, 0)

	assert.Equal(t, 0.0, without.Discount)
	assert.Equal(t, withCoupon.GrandTotal+150, without.GrandTotal)
}

func TestPaiseAmount(t *testing.T) {
	assert.Equal(t, int64(123456), PaiseAmount(1234.56))
	assert.Equal(t, int64(100), PaiseAmount(1.0))
	assert.Equal(t, int64(0), PaiseAmount(0))
}
