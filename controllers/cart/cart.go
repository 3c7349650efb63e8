package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/models"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// -------- Core Logic --------

// ListItems returns the user's cart lines joined with their products,
// oldest first.
func ListItems(db *gorm.DB, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem merges into an existing (user, product) line or creates one.
// Stock is not checked here; the guarded decrement at checkout is what
// keeps inventory non-negative.
func AddItem(db *gorm.DB, userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		return nil, err
	}

	var item models.CartItem
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		item = models.CartItem{
			ID:        uuid.NewString(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
		item.Product = product
		return &item, nil
	}
	if err != nil {
		return nil, err
	}

	item.Quantity += quantity
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	item.Product = product
	return &item, nil
}

// SetQuantity sets a line's quantity; zero or less removes the line.
func SetQuantity(db *gorm.DB, userID, itemID string, quantity int) error {
	if quantity <= 0 {
		return RemoveItem(db, userID, itemID)
	}
	return db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity).Error
}

// RemoveItem deletes a line. Removing an id that is already gone is not an
// error.
func RemoveItem(db *gorm.DB, userID, itemID string) error {
	return db.Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{}).Error
}

// Clear drops every line the user owns; used after a successful checkout.
func Clear(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// TotalPrice sums product price times quantity over the lines.
func TotalPrice(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// TotalItemCount sums quantities over the lines.
func TotalItemCount(items []models.CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// -------- Handlers --------

// GET /user/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		items, err := ListItems(db.WithContext(c.Request.Context()), userIDVal.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":            items,
			"total_price":      TotalPrice(items),
			"total_item_count": TotalItemCount(items),
		})
	}
}

// POST /user/cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := AddItem(db.WithContext(c.Request.Context()), userIDVal.(string), input.ProductID, input.Quantity)
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// PUT /user/cart/:item_id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := SetQuantity(db.WithContext(c.Request.Context()), userIDVal.(string), c.Param("item_id"), input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// DELETE /user/cart/:item_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := RemoveItem(db.WithContext(c.Request.Context()), userIDVal.(string), c.Param("item_id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := Clear(db.WithContext(c.Request.Context()), userIDVal.(string)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		items, err := ListItems(db.WithContext(c.Request.Context()), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}
