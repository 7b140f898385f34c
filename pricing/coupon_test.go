package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Quadwinner/Alouora-sub000/models"
)

func intPtr(v int) *int { return &v }

func validCoupon(now time.Time) models.Coupon {
	return models.Coupon{
		Code:          "GLOW20",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 20,
		ValidFrom:     now.Add(-time.Hour),
		ValidUntil:    now.Add(time.Hour),
	}
}

func TestDiscount_PercentageCapped(t *testing.T) {
	// 20% of 3000 is 600, capped at 500.
	got := Discount(models.DiscountPercentage, 20, floatPtr(500), 3000)
	assert.Equal(t, 500.0, got)
}

func TestDiscount_PercentageUncapped(t *testing.T) {
	got := Discount(models.DiscountPercentage, 20, nil, 3000)
	assert.Equal(t, 600.0, got)

	got = Discount(models.DiscountPercentage, 20, floatPtr(1000), 3000)
	assert.Equal(t, 600.0, got)
}

func TestDiscount_FixedNeverExceedsCartTotal(t *testing.T) {
	got := Discount(models.DiscountFixed, 1000, nil, 800)
	assert.Equal(t, 800.0, got)

	got = Discount(models.DiscountFixed, 1000, nil, 1500)
	assert.Equal(t, 1000.0, got)
}

func TestDiscount_UnknownTypeIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Discount(models.DiscountType("bogus"), 50, nil, 1000))
}

func TestValidateCoupon_Window(t *testing.T) {
	now := time.Now()

	expired := validCoupon(now)
	expired.ValidUntil = now.Add(-time.Minute)
	assert.ErrorIs(t, ValidateCoupon(expired, 5000, 3, 0, now), ErrCouponExpired)

	notYet := validCoupon(now)
	notYet.ValidFrom = now.Add(time.Minute)
	assert.ErrorIs(t, ValidateCoupon(notYet, 5000, 3, 0, now), ErrCouponExpired)

	// Expiry wins over cart contents: even an empty cart reports Expired first.
	assert.ErrorIs(t, ValidateCoupon(expired, 0, 0, 0, now), ErrCouponExpired)
}

func TestValidateCoupon_GlobalUsageLimit(t *testing.T) {
	now := time.Now()
	c := validCoupon(now)
	c.MaxUses = intPtr(100)
	c.UsedCount = 100

	assert.ErrorIs(t, ValidateCoupon(c, 5000, 3, 0, now), ErrCouponUsageLimit)

	c.UsedCount = 99
	assert.NoError(t, ValidateCoupon(c, 5000, 3, 0, now))
}

func TestValidateCoupon_EmptyCart(t *testing.T) {
	now := time.Now()
	assert.ErrorIs(t, ValidateCoupon(validCoupon(now), 0, 0, 0, now), ErrEmptyCart)
}

func TestValidateCoupon_MinimumOrderBoundary(t *testing.T) {
	now := time.Now()
	c := validCoupon(now)
	c.MinOrderAmount = 1000

	assert.ErrorIs(t, ValidateCoupon(c, 999, 2, 0, now), ErrBelowMinimum)
	// Boundary is inclusive.
	assert.NoError(t, ValidateCoupon(c, 1000, 2, 0, now))
}

func TestValidateCoupon_PerUserLimit(t *testing.T) {
	now := time.Now()
	c := validCoupon(now)
	c.MaxUsesPerUser = 2

	assert.NoError(t, ValidateCoupon(c, 5000, 3, 1, now))
	assert.ErrorIs(t, ValidateCoupon(c, 5000, 3, 2, now), ErrPerUserLimit)

	// Zero means unlimited.
	c.MaxUsesPerUser = 0
	assert.NoError(t, ValidateCoupon(c, 5000, 3, 50, now))
}
