package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	paymentControllers "github.com/Quadwinner/Alouora-sub000/controllers/payment"
	"github.com/Quadwinner/Alouora-sub000/middleware"
)

func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	payments := r.Group("/payments")
	{
		payments.POST("/create-order", middleware.ValidateToken, paymentControllers.CreatePaymentOrder(db, logger))
		payments.POST("/verify", middleware.ValidateToken, paymentControllers.VerifyPayment(db, logger))

		// Webhook carries its own signature; no session required.
		payments.POST("/webhook", paymentControllers.Webhook(db, logger))
	}
}
