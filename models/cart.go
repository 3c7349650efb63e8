package models

import "time"

// CartItem is one (user, product) line of an unpurchased cart. The
// composite unique index guarantees at most one row per pair; adds to an
// existing pair must merge quantities instead of inserting.
type CartItem struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID string    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product   Product   `json:"product"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
