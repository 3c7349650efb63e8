package models

import "time"

// WishlistItem mirrors CartItem minus the quantity; membership is toggled.
type WishlistItem struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID string    `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	Product   Product   `json:"product"`
	CreatedAt time.Time `json:"created_at"`
}
