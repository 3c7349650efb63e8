package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (rate-limited, no token required)
	SetupAuthRoutes(r, db)

	// Public catalog browsing
	SetupProductRoutes(r, db)

	// User routes (JWT-protected): profile, cart, wishlist, orders
	SetupUserRoutes(r, db)

	// Order feed and admin order management
	SetupOrderRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
