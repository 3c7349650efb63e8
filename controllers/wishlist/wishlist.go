package wishlistControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/models"
)

type WishlistInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// -------- Core Logic --------

func ListItems(db *gorm.DB, userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Contains reports whether the product is already wished for.
func Contains(db *gorm.DB, userID, productID string) (bool, error) {
	var count int64
	err := db.Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

// AddItem inserts the (user, product) pair unless it is already present.
func AddItem(db *gorm.DB, userID, productID string) (*models.WishlistItem, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		return nil, err
	}

	var existing models.WishlistItem
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error
	if err == nil {
		existing.Product = product
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	item := models.WishlistItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
	}
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}
	item.Product = product
	return &item, nil
}

// RemoveItem deletes a wishlist row; removing an absent id is not an error.
func RemoveItem(db *gorm.DB, userID, itemID string) error {
	return db.Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.WishlistItem{}).Error
}

// Toggle removes the product if present, otherwise adds it. Returns whether
// the product is wished for after the call.
func Toggle(db *gorm.DB, userID, productID string) (bool, error) {
	var existing models.WishlistItem
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error
	if err == nil {
		if err := db.Delete(&existing).Error; err != nil {
			return true, err
		}
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	if _, err := AddItem(db, userID, productID); err != nil {
		return false, err
	}
	return true, nil
}

// -------- Handlers --------

// GET /user/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		items, err := ListItems(db.WithContext(c.Request.Context()), userIDVal.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		productIDs := make([]string, 0, len(items))
		for _, item := range items {
			productIDs = append(productIDs, item.ProductID)
		}

		c.JSON(http.StatusOK, gin.H{
			"items":       items,
			"product_ids": productIDs,
		})
	}
}

// POST /user/wishlist/toggle
func ToggleWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		wished, err := Toggle(db.WithContext(c.Request.Context()), userIDVal.(string), input.ProductID)
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"in_wishlist": wished})
	}
}

// DELETE /user/wishlist/:item_id
func DeleteWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := RemoveItem(db.WithContext(c.Request.Context()), userIDVal.(string), c.Param("item_id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Wishlist item removed"})
	}
}
