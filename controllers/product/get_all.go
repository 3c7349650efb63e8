package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/models"
)

var sortColumns = map[string]string{
	"created_at": "created_at",
	"price":      "price",
	"name":       "name",
}

// GetProducts lists products for the public storefront. Only active
// products are returned; inactive ones exist solely for the admin surface.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return listProducts(db, true)
}

// GetAllProductsAdmin lists every product, active or not.
func GetAllProductsAdmin(db *gorm.DB) gin.HandlerFunc {
	return listProducts(db, false)
}

func listProducts(db *gorm.DB, activeOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		featured := c.Query("featured")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		column, ok := sortColumns[sortBy]
		if !ok {
			column = "created_at"
		}

		query := db.WithContext(c.Request.Context()).
			Model(&models.Product{}).
			Preload("Category")

		if activeOnly {
			query = query.Where("is_active = ?", true)
		}

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name LIKE ? OR description LIKE ?", likePattern, likePattern)
		}

		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		if featured == "true" {
			query = query.Where("is_featured = ?", true)
		}

		// Category filter accepts an id or a slug.
		if category != "" {
			query = query.
				Joins("JOIN categories ON categories.id = products.category_id").
				Where("categories.id = ? OR categories.slug = ?", category, category)
		}

		var products []models.Product
		if err := query.Order(fmt.Sprintf("products.%s %s", column, sortOrder)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
