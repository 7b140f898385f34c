package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/Quadwinner/Alouora-sub000/controllers/product"
	reviewControllers "github.com/Quadwinner/Alouora-sub000/controllers/review"
	"github.com/Quadwinner/Alouora-sub000/middleware"
)

// SetupCatalogRoutes registers the public browse endpoints. Review creation
// is the one authenticated route in the group.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/products/:id/reviews", reviewControllers.GetProductReviews(db))
	r.POST("/products/:id/reviews", middleware.ValidateToken, reviewControllers.CreateReview(db))

	r.GET("/brands", productControllers.GetBrands(db))
	r.GET("/categories", productControllers.GetCategories(db))
}
