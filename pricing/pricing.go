// Package pricing computes the checkout summary the storefront
// displays verbatim: subtotal, GST, shipping, discount, grand total.
// All amounts are rupees rounded to paise.
package pricing

import (
	"errors"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/swapnil0000/urbannook-api/models"
)

const (
	GSTRate             = 0.18
	FlatShipping        = 49.0
	DefaultFreeShipOver = 999.0
)

var (
	ErrCouponInactive = errors.New("coupon is not active")
	ErrCouponExpired  = errors.New("coupon has expired")
	ErrMinCartNotMet  = errors.New("cart value below coupon minimum")
	ErrUsageExhausted = errors.New("coupon usage limit reached")
)

type Summary struct {
	Subtotal   float64 `json:"subtotal"`
	GST        float64 `json:"gst"`
	Shipping   float64 `json:"shipping"`
	Discount   float64 `json:"discount"`
	GrandTotal float64 `json:"grandTotal"`
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func Subtotal(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return Round2(total)
}

// FreeShipOver reads the free-shipping threshold from the environment,
// falling back to the default when unset or malformed.
func FreeShipOver() float64 {
	if s := os.Getenv("FREE_SHIP_THRESHOLD"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 0 {
			return v
		}
	}
	return DefaultFreeShipOver
}

// Compute builds the summary for a cart and an already-validated
// discount. GrandTotal always equals Subtotal+GST+Shipping-Discount,
// floored at zero.
func Compute(items []models.CartItem, discount float64) Summary {
	sub := Subtotal(items)
	gst := Round2(sub * GSTRate)

	shipping := FlatShipping
	if sub >= FreeShipOver() || sub == 0 {
		shipping = 0
	}

	if discount > sub {
		discount = sub
	}
	discount = Round2(discount)

	grand := Round2(sub + gst + shipping - discount)
	if grand < 0 {
		grand = 0
	}
	return Summary{
		Subtotal:   sub,
		GST:        gst,
		Shipping:   shipping,
		Discount:   discount,
		GrandTotal: grand,
	}
}

// CouponDiscount validates a coupon against the cart subtotal and
// returns the discount it grants. A rejected coupon contributes
// nothing; there is no partial application.
func CouponDiscount(cp *models.Coupon, subtotal float64, now time.Time) (float64, error) {
	if !cp.Active {
		return 0, ErrCouponInactive
	}
	if !cp.ExpiryDate.IsZero() && cp.ExpiryDate.Before(now) {
		return 0, ErrCouponExpired
	}
	if subtotal < cp.MinCartValue {
		return 0, ErrMinCartNotMet
	}
	if cp.UsageLimit > 0 && cp.UsedCount >= cp.UsageLimit {
		return 0, ErrUsageExhausted
	}

	var discount float64
	switch cp.DiscountType {
	case models.DiscountPercentage:
		discount = subtotal * cp.DiscountValue / 100
		if cp.MaxDiscount > 0 && discount > cp.MaxDiscount {
			discount = cp.MaxDiscount
		}
	case models.DiscountFixed:
		discount = cp.DiscountValue
		if discount > subtotal {
			discount = subtotal
		}
	}
	return Round2(discount), nil
}

// PaiseAmount converts a rupee amount to the integer paise the
// payment gateway expects.
func PaiseAmount(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}
