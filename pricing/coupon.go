package pricing

import (
	"errors"
	"time"

	"github.com/Quadwinner/Alouora-sub000/models"
)

// Coupon eligibility failures. Handlers map these to user-facing messages;
// all of them surface as business-rule 400s except a missing code, which the
// lookup itself reports as 404.
var (
	ErrCouponExpired    = errors.New("coupon is not valid at this time")
	ErrCouponUsageLimit = errors.New("coupon usage limit has been reached")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrBelowMinimum     = errors.New("cart total is below the coupon minimum")
	ErrPerUserLimit     = errors.New("you have already used this coupon the maximum number of times")
)

// Discount computes the discount a coupon grants on cartTotal.
// Percentage discounts are capped by maxDiscount when set; fixed discounts
// never exceed the cart total.
func Discount(discountType models.DiscountType, value float64, maxDiscount *float64, cartTotal float64) float64 {
	switch discountType {
	case models.DiscountPercentage:
		d := cartTotal * value / 100
		if maxDiscount != nil && d > *maxDiscount {
			d = *maxDiscount
		}
		return d
	case models.DiscountFixed:
		if value > cartTotal {
			return cartTotal
		}
		return value
	}
	return 0
}

// ValidateCoupon runs the eligibility checks for applying a coupon, in
// order: validity window, global usage cap, non-empty cart, minimum order
// amount (inclusive), per-user usage cap. cartTotal must be computed from
// live product prices; priorUses is the count of the user's past orders
// carrying this code.
func ValidateCoupon(coupon models.Coupon, cartTotal float64, itemCount, priorUses int, now time.Time) error {
	if now.Before(coupon.ValidFrom) || now.After(coupon.ValidUntil) {
		return ErrCouponExpired
	}
	if coupon.MaxUses != nil && coupon.UsedCount >= *coupon.MaxUses {
		return ErrCouponUsageLimit
	}
	if itemCount == 0 {
		return ErrEmptyCart
	}
	if cartTotal < coupon.MinOrderAmount {
		return ErrBelowMinimum
	}
	if coupon.MaxUsesPerUser > 0 && priorUses >= coupon.MaxUsesPerUser {
		return ErrPerUserLimit
	}
	return nil
}
