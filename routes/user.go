package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "storefront/controllers/cart"
	orderControllers "storefront/controllers/order"
	userControllers "storefront/controllers/user"
	wishlistControllers "storefront/controllers/wishlist"
	"storefront/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(db))                   // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(db))              // POST /user/cart
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartItem(db))    // PUT /user/cart/:item_id
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:item_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))          // DELETE /user/cart
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(db))                   // GET /user/wishlist
			wishlistGroup.POST("/toggle", wishlistControllers.ToggleWishlistItem(db))     // POST /user/wishlist/toggle
			wishlistGroup.DELETE("/:item_id", wishlistControllers.DeleteWishlistItem(db)) // DELETE /user/wishlist/:item_id
		}

		// ──────────────── Orders ────────────────
		ordersGroup := userGroup.Group("/orders")
		{
			ordersGroup.POST("/", orderControllers.PlaceOrderHandler(db))           // POST /user/orders
			ordersGroup.GET("/", orderControllers.GetUserOrdersHandler(db))         // GET /user/orders
			ordersGroup.GET("/:order_id", orderControllers.GetOrderByIDHandler(db)) // GET /user/orders/:order_id
		}
	}
}
