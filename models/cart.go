package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cartId"`
	UserID    string     `gorm:"uniqueIndex" json:"userId"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

// CartItem snapshots product fields at add time so the shopper keeps
// seeing the price they added, even if the catalog changes underneath.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index" json:"-"`
	ProductID    uint      `json:"productId"`
	Name         string    `json:"name"`
	Image        string    `json:"image"`
	Price        float64   `json:"price"` // sale price at add time
	RegularPrice float64   `json:"regularPrice"`
	Stock        int       `json:"stock"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"addedAt"`
}
