package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/auth"
	"storefront/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	limiter := middleware.NewRateLimiter(5, 5)

	authGroup := r.Group("/auth")
	authGroup.Use(limiter.Limit)
	{
		authGroup.POST("/signup", auth.SignUp(db))
		authGroup.POST("/signin", auth.SignIn(db))
		authGroup.POST("/signout", middleware.ValidateToken, auth.SignOut())
	}
}
