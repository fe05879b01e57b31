package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusReturned  OrderStatus = "returned"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	OrderRef        string        `gorm:"uniqueIndex;not null" json:"orderRef"`
	UserID          string        `gorm:"not null" json:"userId"`
	User            User          `gorm:"foreignKey:UserID" json:"-"`
	Items           []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	AddressID       uint          `json:"addressId"`
	CouponCode      string        `json:"couponCode"`
	Subtotal        float64       `json:"subtotal"`
	GST             float64       `json:"gst"`
	Shipping        float64       `json:"shipping"`
	Discount        float64       `json:"discount"`
	GrandTotal      float64       `json:"grandTotal"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus   PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"paymentStatus"`
	RazorpayOrderID string        `gorm:"index" json:"razorpayOrderId"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// PaymentOrder is the dedup record for gateway order creation: one row
// per (user, cart fingerprint) while payment is pending, so a "Retry
// Payment" from the storefront re-uses the same Razorpay order instead
// of minting a duplicate. Items and summary are frozen at creation;
// the order placed on capture is built from this snapshot, never from
// whatever the cart holds by then.
type PaymentOrder struct {
	ID              uint               `gorm:"primaryKey" json:"id"`
	RazorpayOrderID string             `gorm:"uniqueIndex;not null" json:"razorpayOrderId"`
	UserID          string             `gorm:"index;not null" json:"userId"`
	CartFingerprint string             `gorm:"index" json:"-"`
	Items           []PaymentOrderItem `gorm:"foreignKey:PaymentOrderID;constraint:OnDelete:CASCADE" json:"items"`
	AddressID       uint               `json:"addressId"`
	CouponCode      string             `json:"couponCode"`
	Amount          int64              `json:"amount"` // paise
	Currency        string             `json:"currency"`
	Subtotal        float64            `json:"subtotal"`
	GST             float64            `json:"gst"`
	Shipping        float64            `json:"shipping"`
	Discount        float64            `json:"discount"`
	GrandTotal      float64            `json:"grandTotal"`
	Status          PaymentStatus      `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type PaymentOrderItem struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	PaymentOrderID uint    `gorm:"index" json:"-"`
	ProductID      uint    `json:"productId"`
	Name           string  `json:"name"`
	Image          string  `json:"image"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
}
