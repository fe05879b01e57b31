package models

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

type Coupon struct {
	ID            uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string       `gorm:"unique;not null" json:"name"` // code, stored upper-case
	DiscountType  DiscountType `gorm:"type:VARCHAR(20);not null" json:"discountType"`
	DiscountValue float64      `gorm:"not null" json:"discountValue"`
	MinCartValue  float64      `json:"minCartValue"`
	MaxDiscount   float64      `json:"maxDiscount"` // cap for PERCENTAGE, 0 = uncapped
	UsageLimit    int          `json:"usageLimit"`  // total redemptions allowed, 0 = unlimited
	UsedCount     int          `json:"usedCount"`
	ExpiryDate    time.Time    `json:"expiryDate"`
	Active        bool         `gorm:"default:true" json:"active"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// CouponRedemption records a consumed use, written inside the order
// transaction so the usage-limit check and increment stay atomic.
type CouponRedemption struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CouponID  uint      `gorm:"index" json:"couponId"`
	UserID    string    `gorm:"index" json:"userId"`
	OrderRef  string    `json:"orderRef"`
	CreatedAt time.Time `json:"createdAt"`
}
