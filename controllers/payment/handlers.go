package paymentControllers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	couponControllers "github.com/swapnil0000/urbannook-api/controllers/coupon"
	orderControllers "github.com/swapnil0000/urbannook-api/controllers/order"
	"github.com/swapnil0000/urbannook-api/events"
	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/pricing"
	"github.com/swapnil0000/urbannook-api/response"
)

// GET /rp/get-key
func GetKeyHandler(c *gin.Context) {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	if keyID == "" {
		response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Payment gateway not configured")
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{"key_id": keyID})
}

type CreateOrderInput struct {
	CouponCode string `json:"coupon_code"`
	AddressID  uint   `json:"address_id"`
}

// POST /user/create-order
//
// Computes the pricing summary server-side and creates (or re-uses) a
// Razorpay order for the grand total. The storefront opens the
// checkout widget with the returned order id; a "Retry Payment" for
// the same cart state gets the same order id back.
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid input: "+err.Error())
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch cart")
			return
		}
		if len(cart.Items) == 0 {
			response.Fail(c, http.StatusBadRequest, response.CodeCartEmpty, "Your cart is empty")
			return
		}

		if input.AddressID != 0 {
			var addr models.Address
			if err := db.Where("id = ? AND user_id = ?", input.AddressID, userID).First(&addr).Error; err != nil {
				response.Fail(c, http.StatusBadRequest, response.CodeNotFound, "Address not found")
				return
			}
		}

		// validate the coupon and compute the summary to charge; the
		// code is normalized the same way the apply endpoint does it
		subtotal := pricing.Subtotal(cart.Items)
		var discount float64
		couponCode := ""
		if code := strings.ToUpper(strings.TrimSpace(input.CouponCode)); code != "" {
			var coupon models.Coupon
			if err := db.Where("name = ?", code).First(&coupon).Error; err != nil {
				response.Fail(c, http.StatusBadRequest, response.CodeCouponNotFound, "Invalid coupon code")
				return
			}
			d, err := pricing.CouponDiscount(&coupon, subtotal, time.Now())
			if err != nil {
				rejectCode, msg := couponControllers.RejectionCode(err)
				response.Fail(c, http.StatusBadRequest, rejectCode, msg)
				return
			}
			discount = d
			couponCode = coupon.Name
		}
		summary := pricing.Compute(cart.Items, discount)
		amount := pricing.PaiseAmount(summary.GrandTotal)

		items := make([]fingerprintItem, 0, len(cart.Items))
		for _, it := range cart.Items {
			items = append(items, fingerprintItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
		}
		fingerprint := CartFingerprint(userID, items, couponCode, input.AddressID)

		keyID := os.Getenv("RAZORPAY_KEY_ID")

		// idempotent retry: hand back the pending gateway order
		if rpOrderID, ok := findReusablePaymentOrder(db, userID, fingerprint); ok {
			response.OK(c, http.StatusOK, "Order ready", gin.H{
				"order_id": rpOrderID,
				"amount":   amount,
				"currency": "INR",
				"key_id":   keyID,
				"summary":  summary,
				"reused":   true,
			})
			return
		}

		rpOrderID, err := CreateRazorpayOrder(amount, "INR", "cart_"+userID, map[string]string{
			"user_id": userID,
			"coupon":  couponCode,
		})
		if err != nil {
			response.Fail(c, http.StatusBadGateway, response.CodePaymentGateway, err.Error())
			return
		}

		snapshot := make([]models.PaymentOrderItem, 0, len(cart.Items))
		for _, it := range cart.Items {
			snapshot = append(snapshot, models.PaymentOrderItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				Image:     it.Image,
				Price:     it.Price,
				Quantity:  it.Quantity,
			})
		}

		po := models.PaymentOrder{
			RazorpayOrderID: rpOrderID,
			UserID:          userID,
			CartFingerprint: fingerprint,
			Items:           snapshot,
			AddressID:       input.AddressID,
			CouponCode:      couponCode,
			Amount:          amount,
			Currency:        "INR",
			Subtotal:        summary.Subtotal,
			GST:             summary.GST,
			Shipping:        summary.Shipping,
			Discount:        summary.Discount,
			GrandTotal:      summary.GrandTotal,
			Status:          models.PaymentStatusPending,
		}
		if err := db.Create(&po).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to record payment order")
			return
		}

		response.OK(c, http.StatusOK, "Order created", gin.H{
			"order_id": rpOrderID,
			"amount":   amount,
			"currency": "INR",
			"key_id":   keyID,
			"summary":  summary,
		})
	}
}

type VerifyPaymentInput struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// POST /user/rp/verify — the storefront's success callback.
func VerifyPaymentHandler(db *gorm.DB, pub *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyPaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid input: "+err.Error())
			return
		}

		secret := os.Getenv("RAZORPAY_KEY_SECRET")
		if !VerifyPaymentSignature(input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature, secret) {
			response.Fail(c, http.StatusBadRequest, response.CodeSignatureMismatch, "Payment signature verification failed")
			return
		}

		order, err := orderControllers.PlaceOrder(db, pub, input.RazorpayOrderID)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to place order: "+err.Error())
			return
		}

		response.OK(c, http.StatusOK, "Payment verified, order placed", order)
	}
}

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				OrderID          string `json:"order_id"`
				ErrorDescription string `json:"error_description"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// POST /rp/webhook — gateway-side confirmation. Idempotent with the
// verify path: PlaceOrder no-ops when the payment order is already
// marked paid.
func WebhookHandler(db *gorm.DB, pub *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ev webhookEvent
		if err := c.ShouldBindJSON(&ev); err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "failed to parse webhook")
			return
		}

		rpOrderID := ev.Payload.Payment.Entity.OrderID
		if rpOrderID == "" {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "missing order_id")
			return
		}

		switch ev.Event {
		case "payment.captured":
			if _, err := orderControllers.PlaceOrder(db, pub, rpOrderID); err != nil {
				response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "failed to place order: "+err.Error())
				return
			}
			response.OK(c, http.StatusOK, "Order placed", nil)

		case "payment.failed":
			var po models.PaymentOrder
			if err := db.Where("razorpay_order_id = ?", rpOrderID).First(&po).Error; err == nil &&
				po.Status == models.PaymentStatusPending {
				db.Model(&po).Update("status", models.PaymentStatusFailed)
				pub.PaymentFailed(events.PaymentFailed{
					RazorpayOrderID: rpOrderID,
					UserID:          po.UserID,
					Reason:          ev.Payload.Payment.Entity.ErrorDescription,
					FailedAt:        time.Now().Format(time.RFC3339),
				})
			}
			response.OK(c, http.StatusOK, "Payment failure recorded", nil)

		default:
			response.OK(c, http.StatusOK, "Event ignored", nil)
		}
	}
}
