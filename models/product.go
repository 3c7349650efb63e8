package models

import "time"

type Product struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	Slug          string  `gorm:"uniqueIndex;not null" json:"slug"`
	Name          string  `gorm:"not null" json:"name"`
	Description   string  `json:"description"`
	Price         float64 `gorm:"not null" json:"price"`
	StockQuantity int     `gorm:"not null;default:0" json:"stock_quantity"`
	ImageURL      string  `json:"image_url"`
	IsFeatured    bool    `gorm:"default:false" json:"is_featured"`
	IsActive      bool    `gorm:"default:true" json:"is_active"`
	CategoryID    *string `gorm:"index" json:"category_id"`
	Category      *Category
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
