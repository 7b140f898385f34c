package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quadwinner/Alouora-sub000/models"
)

func floatPtr(v float64) *float64 { return &v }

func cartItem(id uint, price float64, originalPrice *float64, stock, quantity int) models.CartItem {
	return models.CartItem{
		ID:        id,
		ProductID: id,
		Product: models.Product{
			ID:            id,
			Name:          "product",
			Price:         price,
			OriginalPrice: originalPrice,
			StockQuantity: stock,
			IsActive:      true,
		},
		Quantity: quantity,
		Price:    price,
	}
}

func TestSummarize_ShippingThreshold(t *testing.T) {
	tests := []struct {
		name         string
		price        float64
		quantity     int
		wantShipping float64
		wantRemain   float64
	}{
		{"below threshold", 100, 1, ShippingFee, 199},
		{"just below threshold", 298, 1, ShippingFee, 1},
		{"at threshold", 299, 1, 0, 0},
		{"above threshold", 200, 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize([]models.CartItem{cartItem(1, tt.price, nil, 50, tt.quantity)}, nil)
			assert.Equal(t, tt.wantShipping, s.ShippingCost)
			assert.Equal(t, tt.wantRemain, s.AmountForFreeShipping)
			// No coupon applied: the grand total is exactly subtotal + shipping.
			assert.Equal(t, s.Subtotal+s.ShippingCost, s.GrandTotal)
		})
	}
}

func TestSummarize_RewardPoints(t *testing.T) {
	tests := []struct {
		subtotal float64
		want     int
	}{
		{0, 0},
		{99, 0},
		{100, 1},
		{199.99, 1},
		{250, 2},
		{3000, 30},
	}

	prev := 0
	for _, tt := range tests {
		var items []models.CartItem
		if tt.subtotal > 0 {
			items = []models.CartItem{cartItem(1, tt.subtotal, nil, 50, 1)}
		}
		s := Summarize(items, nil)
		assert.Equal(t, tt.want, s.RewardPoints, "subtotal %v", tt.subtotal)
		// Monotonic non-decreasing in subtotal.
		assert.GreaterOrEqual(t, s.RewardPoints, prev)
		prev = s.RewardPoints
	}
}

func TestSummarize_SavingsAndTotals(t *testing.T) {
	items := []models.CartItem{
		cartItem(1, 400, floatPtr(500), 10, 2), // 200 savings
		cartItem(2, 150, nil, 10, 3),           // no reference price, no savings
	}

	s := Summarize(items, nil)

	assert.Equal(t, 1250.0, s.Subtotal)
	assert.Equal(t, 200.0, s.TotalSavings)
	assert.Equal(t, 5, s.TotalItems)
	assert.Equal(t, 0.0, s.ShippingCost)
	assert.Equal(t, 12, s.RewardPoints)
	assert.Equal(t, 1250.0, s.GrandTotal)
}

func TestSummarize_OutOfStockFlaggedNotRemoved(t *testing.T) {
	items := []models.CartItem{cartItem(1, 100, nil, 2, 5)}

	s := Summarize(items, nil)

	require.Len(t, s.Items, 1)
	assert.True(t, s.Items[0].IsOutOfStock)
	// The line still participates in the totals.
	assert.Equal(t, 500.0, s.Subtotal)
}

func TestSummarize_CouponIncludedInGrandTotal(t *testing.T) {
	items := []models.CartItem{cartItem(1, 500, nil, 10, 2)}
	applied := &models.AppliedCoupon{Code: "GLOW20", Discount: 200}

	s := Summarize(items, applied)

	require.NotNil(t, s.AppliedCoupon)
	assert.Equal(t, "GLOW20", s.AppliedCoupon.Code)
	assert.Equal(t, 200.0, s.CouponDiscount)
	assert.Equal(t, 1000.0+0-200, s.GrandTotal)
}

func TestSummarize_StaleCouponNeverExceedsSubtotal(t *testing.T) {
	// Coupon was applied against a bigger cart that has since shrunk.
	items := []models.CartItem{cartItem(1, 100, nil, 10, 1)}
	applied := &models.AppliedCoupon{Code: "BIGSAVE", Discount: 500}

	s := Summarize(items, applied)

	assert.Equal(t, 100.0, s.CouponDiscount)
	assert.Equal(t, s.ShippingCost, s.GrandTotal-s.Subtotal+s.CouponDiscount)
	assert.GreaterOrEqual(t, s.GrandTotal, 0.0)
}

func TestSummarize_EmptyCart(t *testing.T) {
	s := Summarize(nil, nil)

	assert.Equal(t, 0.0, s.Subtotal)
	assert.Equal(t, 0.0, s.ShippingCost)
	assert.Equal(t, FreeShippingThreshold, s.AmountForFreeShipping)
	assert.Equal(t, 0.0, s.GrandTotal)
	assert.NotNil(t, s.Items)
	assert.Empty(t, s.Items)
}

func TestSummarize_Idempotent(t *testing.T) {
	items := []models.CartItem{
		cartItem(1, 400, floatPtr(500), 10, 2),
		cartItem(2, 150, nil, 1, 3),
	}
	applied := &models.AppliedCoupon{Code: "GLOW20", Discount: 100}

	first := Summarize(items, applied)
	second := Summarize(items, applied)

	assert.Equal(t, first, second)
}

func TestSummarize_VariantPriceOverride(t *testing.T) {
	item := cartItem(1, 100, nil, 10, 2)
	variantID := uint(7)
	item.VariantID = &variantID
	item.Variant = &models.ProductVariant{
		ID:        variantID,
		ProductID: 1,
		Name:      "30ml",
		Price:     floatPtr(150),
	}

	s := Summarize([]models.CartItem{item}, nil)

	require.Len(t, s.Items, 1)
	assert.Equal(t, 150.0, s.Items[0].CurrentPrice)
	assert.Equal(t, 300.0, s.Subtotal)
	assert.Equal(t, "30ml", s.Items[0].VariantName)
}

func TestCartTotal_UsesLivePrices(t *testing.T) {
	item := cartItem(1, 250, nil, 10, 2)
	item.Price = 180 // stale snapshot from an earlier write

	assert.Equal(t, 500.0, CartTotal([]models.CartItem{item}))
}
