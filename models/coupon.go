package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Coupon is immutable once created; only UsedCount changes, and only when a
// payment completes.
type Coupon struct {
	ID                uint         `gorm:"primaryKey" json:"id"`
	Code              string       `gorm:"uniqueIndex;not null" json:"code"` // stored upper-case
	Description       string       `json:"description"`
	DiscountType      DiscountType `gorm:"type:VARCHAR(20);not null" json:"discount_type"`
	DiscountValue     float64      `gorm:"not null" json:"discount_value"`
	MaxDiscountAmount *float64     `json:"max_discount_amount"` // percentage coupons only
	MinOrderAmount    float64      `gorm:"default:0" json:"min_order_amount"`
	ValidFrom         time.Time    `json:"valid_from"`
	ValidUntil        time.Time    `json:"valid_until"`
	MaxUses           *int         `json:"max_uses"`                           // nil = unlimited
	MaxUsesPerUser    int          `gorm:"default:0" json:"max_uses_per_user"` // 0 = unlimited
	UsedCount         int          `gorm:"default:0" json:"used_count"`
	IsActive          bool         `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time    `json:"created_at"`
}

// AppliedCoupon is the single active coupon record for a user's cart.
// The unique index on UserID enforces at most one row per user; apply is an
// upsert, remove is an idempotent delete. Discount parameters and the cart
// total are snapshotted at apply time.
type AppliedCoupon struct {
	ID                uint         `gorm:"primaryKey" json:"id"`
	UserID            string       `gorm:"uniqueIndex;not null" json:"user_id"`
	CouponID          uint         `json:"coupon_id"`
	Code              string       `json:"code"`
	DiscountType      DiscountType `gorm:"type:VARCHAR(20)" json:"discount_type"`
	DiscountValue     float64      `json:"discount_value"`
	MaxDiscountAmount *float64     `json:"max_discount_amount"`
	CartTotal         float64      `json:"cart_total"` // subtotal at apply time
	Discount          float64      `json:"discount"`   // computed discount at apply time
	AppliedAt         time.Time    `json:"applied_at"`
}

// LoadAppliedCoupon returns the user's applied coupon, or nil when none is
// applied. A store failure is returned as an error, never mistaken for an
// absent coupon: the discount charged depends on this row.
func LoadAppliedCoupon(db *gorm.DB, userID string) (*AppliedCoupon, error) {
	var applied AppliedCoupon
	err := db.Where("user_id = ?", userID).First(&applied).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &applied, nil
}
