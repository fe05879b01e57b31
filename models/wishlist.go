package models

import "time"

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index:idx_wishlist_user_product,unique" json:"-"`
	ProductID uint      `gorm:"index:idx_wishlist_user_product,unique" json:"productId"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Price     float64   `json:"price"`
	AddedAt   time.Time `json:"addedAt"`
}
