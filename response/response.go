package response

import "github.com/gin-gonic/gin"

// Envelope is the shape every endpoint replies with. The storefront
// switches on Success and surfaces Message to the user; Code is a
// stable machine-readable discriminator so clients never have to
// substring-match error text.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Stable business error codes.
const (
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeNotFound          = "NOT_FOUND"
	CodeInternal          = "INTERNAL_ERROR"
	CodeCartEmpty         = "CART_EMPTY"
	CodeCartItemNotFound  = "CART_ITEM_NOT_FOUND"
	CodeOutOfStock        = "OUT_OF_STOCK"
	CodeAddressLimit      = "ADDRESS_LIMIT_REACHED"
	CodeCouponNotFound    = "COUPON_NOT_FOUND"
	CodeCouponExpired     = "COUPON_EXPIRED"
	CodeCouponMinCart     = "COUPON_MIN_CART"
	CodeCouponExhausted   = "COUPON_EXHAUSTED"
	CodeSignatureMismatch = "SIGNATURE_MISMATCH"
	CodePaymentGateway    = "PAYMENT_GATEWAY_ERROR"
)

func OK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func Fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, Envelope{Success: false, Code: code, Message: message})
}

// FailData is for business rejections that still carry a payload,
// e.g. an invalid coupon returning the unchanged pricing summary.
func FailData(c *gin.Context, status int, code, message string, data interface{}) {
	c.JSON(status, Envelope{Success: false, Code: code, Message: message, Data: data})
}
