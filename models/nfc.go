package models

import "time"

// NFCTag maps a physical tag to a storefront URL. Resolving a tag is
// public and bumps the tap counter; registration is admin-only.
type NFCTag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TagID     string    `gorm:"uniqueIndex;not null" json:"tagId"`
	Label     string    `json:"label"`
	TargetURL string    `gorm:"not null" json:"targetUrl"`
	OwnerID   string    `json:"ownerId"`
	Active    bool      `gorm:"default:true" json:"active"`
	Taps      int64     `json:"taps"`
	CreatedAt time.Time `json:"createdAt"`
}
