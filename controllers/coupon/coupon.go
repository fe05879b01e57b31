package couponControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/pricing"
	"github.com/swapnil0000/urbannook-api/response"
)

type ApplyCouponInput struct {
	// Null removes the currently applied coupon; a string applies it.
	Code *string `json:"code"`
}

// POST /user/coupon/apply
//
// Returns the recomputed pricing summary either way. Business
// rejections reply 200 with success:false so the storefront shows the
// message inline next to the input.
func ApplyCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input ApplyCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid input: "+err.Error())
			return
		}

		// Blank (but non-null) codes are rejected before any lookup.
		if input.Code != nil && strings.TrimSpace(*input.Code) == "" {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Coupon code cannot be empty")
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch cart")
			return
		}

		// Removal: recompute without any discount.
		if input.Code == nil {
			summary := pricing.Compute(cart.Items, 0)
			response.OK(c, http.StatusOK, "Coupon removed", gin.H{"summary": summary})
			return
		}

		if len(cart.Items) == 0 {
			response.FailData(c, http.StatusOK, response.CodeCartEmpty, "Your cart is empty",
				gin.H{"summary": pricing.Compute(nil, 0)})
			return
		}

		code := strings.ToUpper(strings.TrimSpace(*input.Code))
		subtotal := pricing.Subtotal(cart.Items)
		baseSummary := pricing.Compute(cart.Items, 0)

		var coupon models.Coupon
		if err := db.Where("name = ?", code).First(&coupon).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				response.FailData(c, http.StatusOK, response.CodeCouponNotFound, "Invalid coupon code",
					gin.H{"summary": baseSummary})
				return
			}
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to look up coupon")
			return
		}

		discount, err := pricing.CouponDiscount(&coupon, subtotal, time.Now())
		if err != nil {
			code, msg := RejectionCode(err)
			response.FailData(c, http.StatusOK, code, msg, gin.H{"summary": baseSummary})
			return
		}

		summary := pricing.Compute(cart.Items, discount)
		response.OK(c, http.StatusOK, "Coupon applied", gin.H{
			"coupon":  coupon,
			"summary": summary,
		})
	}
}

// RejectionCode maps a pricing rejection to its stable response code
// and user-facing message. Shared with the create-order path so a
// coupon fails with the same code at apply time and at checkout.
func RejectionCode(err error) (string, string) {
	switch {
	case errors.Is(err, pricing.ErrCouponExpired):
		return response.CodeCouponExpired, "This coupon has expired"
	case errors.Is(err, pricing.ErrMinCartNotMet):
		return response.CodeCouponMinCart, "Cart value is below the coupon minimum"
	case errors.Is(err, pricing.ErrUsageExhausted):
		return response.CodeCouponExhausted, "This coupon has reached its usage limit"
	default:
		return response.CodeCouponNotFound, "Invalid coupon code"
	}
}

// GET /coupon/list
func ListCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// zero expiry means never-expiring, same as the discount check
		var coupons []models.Coupon
		if err := db.
			Where("active = ? AND (expiry_date = ? OR expiry_date > ?)", true, time.Time{}, time.Now()).
			Order("expiry_date asc").
			Find(&coupons).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch coupons")
			return
		}
		response.OK(c, http.StatusOK, "", coupons)
	}
}

// -------- Admin CRUD --------

type CreateCouponInput struct {
	Name          string  `json:"name" binding:"required"`
	DiscountType  string  `json:"discountType" binding:"required"`
	DiscountValue float64 `json:"discountValue" binding:"required,gt=0"`
	MinCartValue  float64 `json:"minCartValue"`
	MaxDiscount   float64 `json:"maxDiscount"`
	UsageLimit    int     `json:"usageLimit"`
	ExpiryDate    string  `json:"expiryDate" binding:"required"` // RFC3339
}

// POST /admin/coupons
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, err.Error())
			return
		}

		dt := models.DiscountType(strings.ToUpper(input.DiscountType))
		if dt != models.DiscountPercentage && dt != models.DiscountFixed {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "discountType must be PERCENTAGE or FIXED")
			return
		}
		if dt == models.DiscountPercentage && input.DiscountValue > 100 {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "percentage discount cannot exceed 100")
			return
		}

		expiry, err := time.Parse(time.RFC3339, input.ExpiryDate)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "expiryDate must be RFC3339")
			return
		}

		coupon := models.Coupon{
			Name:          strings.ToUpper(strings.TrimSpace(input.Name)),
			DiscountType:  dt,
			DiscountValue: input.DiscountValue,
			MinCartValue:  input.MinCartValue,
			MaxDiscount:   input.MaxDiscount,
			UsageLimit:    input.UsageLimit,
			ExpiryDate:    expiry,
			Active:        true,
		}
		if err := db.Create(&coupon).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create coupon")
			return
		}

		response.OK(c, http.StatusCreated, "Coupon created", coupon)
	}
}

type UpdateCouponInput struct {
	DiscountValue *float64 `json:"discountValue"`
	MinCartValue  *float64 `json:"minCartValue"`
	MaxDiscount   *float64 `json:"maxDiscount"`
	UsageLimit    *int     `json:"usageLimit"`
	ExpiryDate    *string  `json:"expiryDate"`
	Active        *bool    `json:"active"`
}

// PUT /admin/coupons/:id
func UpdateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var coupon models.Coupon
		if err := db.First(&coupon, "id = ?", id).Error; err != nil {
			response.Fail(c, http.StatusNotFound, response.CodeNotFound, "Coupon not found")
			return
		}

		var input UpdateCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, err.Error())
			return
		}

		updates := make(map[string]interface{})
		if input.DiscountValue != nil {
			updates["discount_value"] = *input.DiscountValue
		}
		if input.MinCartValue != nil {
			updates["min_cart_value"] = *input.MinCartValue
		}
		if input.MaxDiscount != nil {
			updates["max_discount"] = *input.MaxDiscount
		}
		if input.UsageLimit != nil {
			updates["usage_limit"] = *input.UsageLimit
		}
		if input.Active != nil {
			updates["active"] = *input.Active
		}
		if input.ExpiryDate != nil {
			expiry, err := time.Parse(time.RFC3339, *input.ExpiryDate)
			if err != nil {
				response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "expiryDate must be RFC3339")
				return
			}
			updates["expiry_date"] = expiry
		}

		if len(updates) > 0 {
			if err := db.Model(&coupon).Updates(updates).Error; err != nil {
				response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to update coupon")
				return
			}
		}

		response.OK(c, http.StatusOK, "Coupon updated", coupon)
	}
}

// DELETE /admin/coupons/:id
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Coupon{}, "id = ?", id)
		if result.Error != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to delete coupon")
			return
		}
		if result.RowsAffected == 0 {
			response.Fail(c, http.StatusNotFound, response.CodeNotFound, "Coupon not found")
			return
		}

		response.OK(c, http.StatusOK, "Coupon deleted", nil)
	}
}
