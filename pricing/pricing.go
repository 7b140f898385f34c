// Package pricing holds the cart pricing rules shared by the cart read
// path and the checkout path. Everything here is pure: the same inputs
// always produce the same summary, and nothing is written anywhere.
package pricing

import (
	"math"

	"github.com/Quadwinner/Alouora-sub000/models"
)

const (
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold = 299.0
	// ShippingFee is charged below the threshold.
	ShippingFee = 49.0
	// RewardPointUnit: one point per this many currency units of subtotal.
	RewardPointUnit = 100.0

	// MinQuantity and MaxQuantity bound a single cart line.
	MinQuantity = 1
	MaxQuantity = 10
)

// Line is the priced view of one cart item, computed from the live product
// record (never the stored snapshot).
type Line struct {
	ItemID        uint    `json:"item_id"`
	ProductID     uint    `json:"product_id"`
	VariantID     *uint   `json:"variant_id,omitempty"`
	Name          string  `json:"name"`
	VariantName   string  `json:"variant_name,omitempty"`
	Image         string  `json:"image"`
	Quantity      int     `json:"quantity"`
	CurrentPrice  float64 `json:"current_price"`
	OriginalPrice float64 `json:"original_price"`
	ItemTotal     float64 `json:"item_total"`
	OriginalTotal float64 `json:"original_total"`
	Savings       float64 `json:"savings"`
	IsOutOfStock  bool    `json:"is_out_of_stock"` // flagged, never auto-removed
	IsInactive    bool    `json:"is_inactive"`
}

// AppliedCouponInfo is the coupon slice of a summary.
type AppliedCouponInfo struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

// Summary is the single priced aggregate returned by GET /cart and
// recomputed at checkout.
type Summary struct {
	Items                 []Line             `json:"items"`
	Subtotal              float64            `json:"subtotal"`
	TotalSavings          float64            `json:"total_savings"`
	TotalItems            int                `json:"total_items"`
	ShippingCost          float64            `json:"shipping_cost"`
	AmountForFreeShipping float64            `json:"amount_for_free_shipping"`
	RewardPoints          int                `json:"reward_points"`
	AppliedCoupon         *AppliedCouponInfo `json:"applied_coupon"`
	CouponDiscount        float64            `json:"coupon_discount"`
	GrandTotal            float64            `json:"grand_total"`
}

// NewLine prices one cart item against its joined product and variant.
func NewLine(item models.CartItem) Line {
	current := item.Product.UnitPrice(item.Variant)
	reference := item.Product.ReferencePrice(item.Variant)
	itemTotal := current * float64(item.Quantity)
	originalTotal := reference * float64(item.Quantity)

	line := Line{
		ItemID:        item.ID,
		ProductID:     item.ProductID,
		VariantID:     item.VariantID,
		Name:          item.Product.Name,
		Image:         item.Product.Image,
		Quantity:      item.Quantity,
		CurrentPrice:  current,
		OriginalPrice: reference,
		ItemTotal:     itemTotal,
		OriginalTotal: originalTotal,
		Savings:       originalTotal - itemTotal,
		IsOutOfStock:  item.Product.AvailableStock(item.Variant) < item.Quantity,
		IsInactive:    !item.Product.IsActive,
	}
	if item.Variant != nil {
		line.VariantName = item.Variant.Name
	}
	return line
}

// Summarize combines cart lines and the user's applied coupon (nil when
// none) into the priced aggregate. The coupon discount is always included
// so the cart read and the payment path cannot drift apart.
func Summarize(items []models.CartItem, applied *models.AppliedCoupon) Summary {
	s := Summary{Items: make([]Line, 0, len(items))}

	for _, item := range items {
		line := NewLine(item)
		s.Items = append(s.Items, line)
		s.Subtotal += line.ItemTotal
		s.TotalSavings += line.Savings
		s.TotalItems += line.Quantity
	}

	if s.Subtotal < FreeShippingThreshold {
		s.ShippingCost = ShippingFee
		s.AmountForFreeShipping = FreeShippingThreshold - s.Subtotal
	}
	if len(items) == 0 {
		// An empty cart owes nothing, shipping included.
		s.ShippingCost = 0
		s.AmountForFreeShipping = FreeShippingThreshold
	}
	s.RewardPoints = int(math.Floor(s.Subtotal / RewardPointUnit))

	if applied != nil {
		discount := applied.Discount
		if discount > s.Subtotal {
			// Stale coupon from a since-shrunk cart; never discount below zero.
			discount = s.Subtotal
		}
		s.AppliedCoupon = &AppliedCouponInfo{Code: applied.Code, Discount: discount}
		s.CouponDiscount = discount
	}

	s.GrandTotal = s.Subtotal + s.ShippingCost - s.CouponDiscount
	return s
}

// CartTotal is the live-price subtotal used by the coupon apply path.
func CartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Product.UnitPrice(item.Variant) * float64(item.Quantity)
	}
	return total
}
