package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Description  string         `json:"description"`
	SalePrice    float64        `gorm:"not null" json:"salePrice"`
	RegularPrice float64        `json:"regularPrice"`
	Image        string         `gorm:"not null" json:"image"`
	Gallery      string         `json:"gallery"` // comma-separated extra image URLs
	Categories   []Category     `gorm:"many2many:product_categories;" json:"categories"`
	Stock        int            `json:"stock"`
	Featured     bool           `json:"featured"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
