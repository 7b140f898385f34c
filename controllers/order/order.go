package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Quadwinner/Alouora-sub000/models"
	"github.com/Quadwinner/Alouora-sub000/utils"
)

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusInput struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusReadyToShip):
		return models.OrderStatusReadyToShip, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusReturned):
		return models.OrderStatusReturned, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusPaid):
		return models.PaymentStatusPaid, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	case string(models.PaymentStatusRefunded):
		return models.PaymentStatusRefunded, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// GET /orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		utils.RespondWithData(c, http.StatusOK, orders)
	}
}

// GET /orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Order not found")
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch order")
			return
		}
		if order.UserID != userID {
			utils.RespondWithError(c, http.StatusForbidden, "Order belongs to another user")
			return
		}
		utils.RespondWithData(c, http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		utils.RespondWithData(c, http.StatusOK, orders)
	}
}

// PUT /admin/orders/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		newStatus, err := mapOrderStatus(input.Status)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", c.Param("id")).Update("status", newStatus)
		if result.Error != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order status")
			return
		}
		if result.RowsAffected == 0 {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondWithData(c, http.StatusOK, gin.H{"message": "Order status updated"})
	}
}

// PUT /admin/orders/:id/payment-status
func UpdatePaymentStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdatePaymentStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		newStatus, err := mapPaymentStatus(input.PaymentStatus)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", c.Param("id")).Update("payment_status", newStatus)
		if result.Error != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update payment status")
			return
		}
		if result.RowsAffected == 0 {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondWithData(c, http.StatusOK, gin.H{"message": "Payment status updated"})
	}
}
