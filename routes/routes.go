package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public catalog,
// the authenticated storefront, payments, and the admin surface.
func SetupRoutes(r *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	SetupCatalogRoutes(r, db)
	SetupStorefrontRoutes(r, db)
	SetupPaymentRoutes(r, db, logger)
	SetupAdminRoutes(r, db)
}
