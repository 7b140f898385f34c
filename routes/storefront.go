package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Quadwinner/Alouora-sub000/controllers/cart"
	orderControllers "github.com/Quadwinner/Alouora-sub000/controllers/order"
	userControllers "github.com/Quadwinner/Alouora-sub000/controllers/user"
	wishlistControllers "github.com/Quadwinner/Alouora-sub000/controllers/wishlist"
	"github.com/Quadwinner/Alouora-sub000/middleware"
)

// SetupStorefrontRoutes registers the JWT-protected account endpoints.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB) {
	authed := r.Group("/")
	authed.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cart := authed.Group("/cart")
		{
			cart.GET("", cartControllers.GetCart(db))
			cart.DELETE("", cartControllers.ClearCart(db))
			cart.POST("/items", cartControllers.AddCartItem(db))
			cart.PUT("/items/:id", cartControllers.UpdateCartItem(db))
			cart.DELETE("/items/:id", cartControllers.DeleteCartItem(db))
			cart.POST("/apply-coupon", cartControllers.ApplyCoupon(db))
			cart.DELETE("/apply-coupon", cartControllers.RemoveCoupon(db))
		}

		// ──────────────── Wishlist ────────────────
		wishlist := authed.Group("/wishlist")
		{
			wishlist.GET("", wishlistControllers.GetWishlist(db))
			wishlist.POST("", wishlistControllers.AddWishlistItem(db))
			wishlist.DELETE("/:id", wishlistControllers.DeleteWishlistItem(db))
		}

		// ──────────────── Profile & Addresses ────────────────
		profile := authed.Group("/profile")
		{
			profile.GET("", userControllers.GetProfile(db))
			profile.PUT("", userControllers.UpdateProfile(db))
			profile.POST("/addresses", userControllers.AddAddress(db))
			profile.PUT("/addresses/:id/default", userControllers.SetDefaultAddress(db))
			profile.DELETE("/addresses/:id", userControllers.DeleteAddress(db))
		}

		// ──────────────── Order History ────────────────
		orders := authed.Group("/orders")
		{
			orders.GET("", orderControllers.GetUserOrders(db))
			orders.GET("/:id", orderControllers.GetOrderByID(db))
		}
	}
}
