package models

import "time"

type User struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Phone     string         `json:"phone"`
	Name      string         `json:"name"`
	Picture   string         `json:"picture"`
	Provider  string         `json:"provider"` // "google" or "guest"
	Cart      Cart           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Wishlist  []WishlistItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"wishlist"`
	Addresses []Address      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses"`
	Orders    []Order        `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders"`
	ExpiresAt *time.Time     `json:"-"` // set for guest accounts only
	CreatedAt time.Time      `json:"createdAt"`
}
