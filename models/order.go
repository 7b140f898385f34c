package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending     OrderStatus = "pending"       // Order placed, awaiting payment confirmation
	OrderStatusConfirmed   OrderStatus = "confirmed"     // Payment verified
	OrderStatusReadyToShip OrderStatus = "ready_to_ship" // Packed and ready for dispatch
	OrderStatusShipped     OrderStatus = "shipped"       // Out for delivery
	OrderStatusDelivered   OrderStatus = "delivered"     // Customer received the item
	OrderStatusReturned    OrderStatus = "returned"      // Customer returned the item
	OrderStatusCancelled   OrderStatus = "cancelled"     // Cancelled before shipping

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "paid"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "failed"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "refunded" // Money returned to customer
)

type Order struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	UserID         string        `gorm:"index;not null" json:"user_id"`
	User           User          `gorm:"foreignKey:UserID" json:"user"`
	Items          []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal       float64       `json:"subtotal"`
	DiscountAmount float64       `json:"discount_amount"`
	CouponCode     string        `json:"coupon_code"`
	ShippingCost   float64       `json:"shipping_cost"`
	TotalAmount    float64       `json:"total_amount"`
	Status         OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus  PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod  string        `json:"payment_method"`

	// Remote payment intent bookkeeping. GatewayOrderRef is the opaque id of
	// the gateway-side order this row was created for; PaymentRef is filled
	// in once the gateway's signed callback is verified.
	GatewayOrderRef string `gorm:"index" json:"gateway_order_ref"`
	PaymentRef      string `json:"payment_ref"`
	Receipt         string `gorm:"uniqueIndex" json:"receipt"`

	ShippingAddress OrderAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OrderID       uint    `gorm:"index" json:"order_id"`
	ProductID     uint    `json:"product_id"`
	VariantID     *uint   `json:"variant_id"`
	ProductName   string  `json:"product_name"`
	VariantName   string  `json:"variant_name"`
	ProductImage  string  `json:"product_image"`
	Price         float64 `json:"price"`          // unit price charged
	OriginalPrice float64 `json:"original_price"` // pre-discount unit reference
	Quantity      int     `json:"quantity"`
}
