package models

import "time"

type CommunityMember struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Email    string    `gorm:"unique;not null" json:"email"`
	JoinedAt time.Time `json:"joinedAt"`
}
