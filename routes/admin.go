package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	couponControllers "github.com/Quadwinner/Alouora-sub000/controllers/coupon"
	orderControllers "github.com/Quadwinner/Alouora-sub000/controllers/order"
	productControllers "github.com/Quadwinner/Alouora-sub000/controllers/product"
	"github.com/Quadwinner/Alouora-sub000/middleware"
)

// SetupAdminRoutes registers the API-key-protected back-office endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		// ──────────────── Orders ────────────────
		admin.GET("/orders", orderControllers.GetAllOrders(db))
		admin.GET("/orders/ws", orderControllers.OrderFeedHandler)
		admin.PUT("/orders/:id/status", orderControllers.UpdateOrderStatus(db))
		admin.PUT("/orders/:id/payment-status", orderControllers.UpdatePaymentStatus(db))

		// ──────────────── Products ────────────────
		admin.POST("/products", productControllers.CreateProduct(db))
		admin.PUT("/products/:id", productControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", productControllers.DeleteProduct(db))
		admin.GET("/products/export", productControllers.ExportProductsToExcel(db))

		// ──────────────── Coupons ────────────────
		admin.GET("/coupons", couponControllers.GetCoupons(db))
		admin.POST("/coupons", couponControllers.CreateCoupon(db))
		admin.PUT("/coupons/:id/deactivate", couponControllers.DeactivateCoupon(db))
	}
}
