package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/models"
)

type ProductInput struct {
	Slug          string  `json:"slug" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	StockQuantity int     `json:"stock_quantity" binding:"min=0"`
	ImageURL      string  `json:"image_url"`
	IsFeatured    bool    `json:"is_featured"`
	IsActive      *bool   `json:"is_active"`
	CategoryID    *string `json:"category_id"`
}

type ProductUpdateInput struct {
	Slug          *string  `json:"slug"`
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	StockQuantity *int     `json:"stock_quantity"`
	ImageURL      *string  `json:"image_url"`
	IsFeatured    *bool    `json:"is_featured"`
	IsActive      *bool    `json:"is_active"`
	CategoryID    *string  `json:"category_id"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			ID:            uuid.NewString(),
			Slug:          input.Slug,
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			StockQuantity: input.StockQuantity,
			ImageURL:      input.ImageURL,
			IsFeatured:    input.IsFeatured,
			IsActive:      true,
			CategoryID:    input.CategoryID,
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}

		if err := db.WithContext(c.Request.Context()).Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.WithContext(c.Request.Context()).First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Slug != nil {
			updates["slug"] = *input.Slug
		}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.StockQuantity != nil {
			updates["stock_quantity"] = *input.StockQuantity
		}
		if input.ImageURL != nil {
			updates["image_url"] = *input.ImageURL
		}
		if input.IsFeatured != nil {
			updates["is_featured"] = *input.IsFeatured
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}
		if input.CategoryID != nil {
			updates["category_id"] = *input.CategoryID
		}

		if len(updates) > 0 {
			if err := db.WithContext(c.Request.Context()).Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id — deactivates rather than deletes, so order
// items keep a product row to point at.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.WithContext(c.Request.Context()).
			Model(&models.Product{}).
			Where("id = ?", c.Param("id")).
			Update("is_active", false)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deactivated"})
	}
}
