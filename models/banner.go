package models

import "time"

type Banner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ImageURL  string    `gorm:"not null" json:"imageUrl"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
}
