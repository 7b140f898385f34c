package paymentControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	orderControllers "github.com/Quadwinner/Alouora-sub000/controllers/order"
	"github.com/Quadwinner/Alouora-sub000/middleware"
	"github.com/Quadwinner/Alouora-sub000/models"
	"github.com/Quadwinner/Alouora-sub000/payment"
	"github.com/Quadwinner/Alouora-sub000/pricing"
	"github.com/Quadwinner/Alouora-sub000/utils"
)

// CreatePaymentOrder implements POST /payments/create-order.
//
// The amount forwarded to the gateway is always recomputed here from the
// live cart lines and the stored applied coupon; a client-supplied total is
// never trusted. Once the remote intent exists, persisting the local order
// row is best-effort bookkeeping: a failed write is logged and the intent is
// still returned with a null order id.
func CreatePaymentOrder(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var items []models.CartItem
		if err := db.
			Preload("Product").
			Preload("Variant").
			Where("user_id = ?", userID).
			Find(&items).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		if len(items) == 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Cart is empty")
			return
		}

		// Fail fast on missing credentials, before any remote call.
		client, err := payment.NewClientFromEnv()
		if err != nil {
			utils.RespondWithError(c, http.StatusServiceUnavailable, "Payment service is not configured")
			return
		}

		// A coupon lookup failure must stop the checkout here: treating it
		// as "no coupon" would charge the full undiscounted amount.
		applied, err := models.LoadAppliedCoupon(db, userID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch applied coupon")
			return
		}
		summary := pricing.Summarize(items, applied)

		shippingAddress := resolveShippingAddress(db, userID)

		currency := os.Getenv("PAYMENT_CURRENCY")
		if currency == "" {
			currency = "INR"
		}
		receipt := time.Now().Format("20060102150405") + "-" + uuid.NewString()

		remote, err := client.CreateOrder(summary.GrandTotal, currency, receipt, map[string]string{
			"user_id": userID,
		})
		if err != nil {
			logger.Error("gateway order creation failed", zap.String("user_id", userID), zap.Error(err))
			middleware.RecordPaymentProcessed("failed")
			utils.RespondWithError(c, http.StatusBadGateway, err.Error())
			return
		}
		middleware.RecordPaymentProcessed("created")

		order := models.Order{
			UserID:          userID,
			Items:           orderItemsFromCart(items),
			Subtotal:        summary.Subtotal,
			DiscountAmount:  summary.CouponDiscount,
			ShippingCost:    summary.ShippingCost,
			TotalAmount:     summary.GrandTotal,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			PaymentMethod:   "card",
			GatewayOrderRef: remote.ID,
			Receipt:         receipt,
			ShippingAddress: shippingAddress,
		}
		if summary.AppliedCoupon != nil {
			order.CouponCode = summary.AppliedCoupon.Code
		}

		var localOrderID *uint
		if err := db.Create(&order).Error; err != nil {
			// The remote intent already exists; losing the local row must
			// not fail the checkout.
			logger.Error("best-effort order persistence failed",
				zap.String("user_id", userID),
				zap.String("gateway_order_ref", remote.ID),
				zap.Error(err))
		} else {
			localOrderID = &order.ID
		}

		utils.RespondWithData(c, http.StatusOK, gin.H{
			"gateway_order_id": remote.ID,
			"order_id":         localOrderID,
			"amount":           remote.Amount,
			"currency":         remote.Currency,
			"key_id":           client.KeyID(),
		})
	}
}

type VerifyPaymentInput struct {
	GatewayOrderID string `json:"gateway_order_id" binding:"required"`
	PaymentID      string `json:"payment_id" binding:"required"`
	Signature      string `json:"signature" binding:"required"`
}

// VerifyPayment implements POST /payments/verify, the client-side checkout
// callback. The signature covers "<order_id>|<payment_id>" with the key
// secret; nothing transitions to paid without it.
func VerifyPayment(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var input VerifyPaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		secret := os.Getenv("RAZORPAY_KEY_SECRET")
		if secret == "" {
			utils.RespondWithError(c, http.StatusServiceUnavailable, "Payment service is not configured")
			return
		}
		if !payment.VerifyPaymentSignature(input.GatewayOrderID, input.PaymentID, input.Signature, secret) {
			middleware.RecordPaymentProcessed("failed")
			utils.RespondWithError(c, http.StatusForbidden, "Invalid payment signature")
			return
		}

		var order models.Order
		if err := db.First(&order, "gateway_order_ref = ?", input.GatewayOrderID).Error; err != nil {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
			return
		}
		if order.UserID != userID {
			utils.RespondWithError(c, http.StatusForbidden, "Order belongs to another user")
			return
		}

		if err := completePaidOrder(db, logger, &order, input.PaymentID); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to finalize order")
			return
		}
		utils.RespondWithData(c, http.StatusOK, gin.H{"order_id": order.ID, "status": order.Status})
	}
}

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// Webhook implements POST /payments/webhook. The signature covers the raw
// body with the webhook secret; unsigned or mis-signed calls are rejected
// before any state changes.
func Webhook(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := os.Getenv("RAZORPAY_WEBHOOK_SECRET")
		if secret == "" {
			utils.RespondWithError(c, http.StatusServiceUnavailable, "Payment service is not configured")
			return
		}

		body, err := c.GetRawData()
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Failed to read request body")
			return
		}
		signature := c.GetHeader("X-Razorpay-Signature")
		if signature == "" || !payment.VerifyWebhookSignature(body, signature, secret) {
			utils.RespondWithError(c, http.StatusForbidden, "Invalid webhook signature")
			return
		}

		var event webhookEvent
		if err := json.Unmarshal(body, &event); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Malformed webhook payload")
			return
		}
		if event.Event != "payment.captured" {
			utils.RespondWithData(c, http.StatusOK, gin.H{"message": "Event ignored"})
			return
		}

		var order models.Order
		if err := db.First(&order, "gateway_order_ref = ?", event.Payload.Payment.Entity.OrderID).Error; err != nil {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
			return
		}

		if err := completePaidOrder(db, logger, &order, event.Payload.Payment.Entity.ID); err != nil {
			logger.Error("webhook order completion failed",
				zap.Uint("order_id", order.ID), zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to finalize order")
			return
		}
		utils.RespondWithData(c, http.StatusOK, gin.H{"message": "Order confirmed"})
	}
}

// completePaidOrder transitions a pending order to paid/confirmed, deducts
// stock under row locks, counts the coupon use, clears the user's cart and
// applied coupon, and notifies the back-office feed. Already-paid orders
// are left untouched so gateway retries stay idempotent.
func completePaidOrder(db *gorm.DB, logger *zap.Logger, order *models.Order, paymentRef string) error {
	if order.PaymentStatus == models.PaymentStatusPaid {
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.OrderItem
		if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
			return err
		}

		for _, item := range items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}
			if product.StockQuantity < item.Quantity {
				return errors.New("insufficient stock for product: " + item.ProductName)
			}
			product.StockQuantity -= item.Quantity
			product.SalesCount += item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
		}

		order.Status = models.OrderStatusConfirmed
		order.PaymentStatus = models.PaymentStatusPaid
		order.PaymentRef = paymentRef
		if err := tx.Save(order).Error; err != nil {
			return err
		}

		// The coupon's global counter increments exactly once, here, when
		// payment is verified.
		if order.CouponCode != "" {
			if err := tx.Model(&models.Coupon{}).
				Where("code = ?", order.CouponCode).
				Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", order.UserID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", order.UserID).Delete(&models.AppliedCoupon{}).Error
	})
	if err != nil {
		return err
	}

	middleware.RecordPaymentProcessed("paid")
	logger.Info("order paid",
		zap.Uint("order_id", order.ID),
		zap.String("payment_ref", paymentRef),
		zap.Float64("total_amount", order.TotalAmount))
	orderControllers.BroadcastOrderPaid(*order)
	return nil
}

// resolveShippingAddress picks the user's default address, falling back to a
// placeholder the client completes later.
func resolveShippingAddress(db *gorm.DB, userID string) models.OrderAddress {
	var addr models.Address
	if err := db.Where("user_id = ? AND is_default = ?", userID, true).First(&addr).Error; err != nil {
		return models.PlaceholderAddress()
	}
	return models.OrderAddress{
		FullName:   addr.FullName,
		Phone:      addr.Phone,
		Line1:      addr.Line1,
		Line2:      addr.Line2,
		City:       addr.City,
		State:      addr.State,
		Country:    addr.Country,
		PostalCode: addr.PostalCode,
	}
}

func orderItemsFromCart(items []models.CartItem) []models.OrderItem {
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		oi := models.OrderItem{
			ProductID:     item.ProductID,
			VariantID:     item.VariantID,
			ProductName:   item.Product.Name,
			ProductImage:  item.Product.Image,
			Price:         item.Product.UnitPrice(item.Variant),
			OriginalPrice: item.Product.ReferencePrice(item.Variant),
			Quantity:      item.Quantity,
		}
		if item.Variant != nil {
			oi.VariantName = item.Variant.Name
		}
		orderItems = append(orderItems, oi)
	}
	return orderItems
}
