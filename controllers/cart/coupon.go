package cartControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Quadwinner/Alouora-sub000/models"
	"github.com/Quadwinner/Alouora-sub000/pricing"
	"github.com/Quadwinner/Alouora-sub000/utils"
)

type ApplyCouponInput struct {
	CouponCode string `json:"coupon_code" binding:"required"`
}

// POST /cart/apply-coupon
func ApplyCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var input ApplyCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		code := strings.ToUpper(strings.TrimSpace(input.CouponCode))

		var coupon models.Coupon
		if err := db.First(&coupon, "code = ? AND is_active = ?", code, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Coupon not found")
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to look up coupon")
			return
		}

		items, err := loadCartItems(db, userID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		// Eligibility runs against live product prices, not the snapshots
		// stored on the cart lines.
		cartTotal := pricing.CartTotal(items)

		var priorUses int64
		if coupon.MaxUsesPerUser > 0 {
			if err := db.Model(&models.Order{}).
				Where("user_id = ? AND coupon_code = ?", userID, coupon.Code).
				Count(&priorUses).Error; err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to check coupon usage")
				return
			}
		}

		if err := pricing.ValidateCoupon(coupon, cartTotal, len(items), int(priorUses), time.Now()); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, couponErrorMessage(err))
			return
		}

		discount := pricing.Discount(coupon.DiscountType, coupon.DiscountValue, coupon.MaxDiscountAmount, cartTotal)

		applied := models.AppliedCoupon{
			UserID:            userID,
			CouponID:          coupon.ID,
			Code:              coupon.Code,
			DiscountType:      coupon.DiscountType,
			DiscountValue:     coupon.DiscountValue,
			MaxDiscountAmount: coupon.MaxDiscountAmount,
			CartTotal:         cartTotal,
			Discount:          discount,
			AppliedAt:         time.Now(),
		}

		// Upsert: at most one applied coupon per user at any time.
		var existing models.AppliedCoupon
		err = db.Where("user_id = ?", userID).First(&existing).Error
		switch {
		case err == nil:
			applied.ID = existing.ID
			err = db.Save(&applied).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			err = db.Create(&applied).Error
		}
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to apply coupon")
			return
		}

		utils.RespondWithData(c, http.StatusOK, gin.H{
			"coupon":              coupon,
			"calculated_discount": discount,
		})
	}
}

// DELETE /cart/apply-coupon
// Removing a coupon that was never applied is a successful no-op.
func RemoveCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := db.Where("user_id = ?", userID).Delete(&models.AppliedCoupon{}).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to remove coupon")
			return
		}
		utils.RespondWithData(c, http.StatusOK, gin.H{"message": "Coupon removed"})
	}
}

func couponErrorMessage(err error) string {
	switch {
	case errors.Is(err, pricing.ErrCouponExpired):
		return "Coupon has expired"
	case errors.Is(err, pricing.ErrCouponUsageLimit):
		return "Coupon usage limit has been reached"
	case errors.Is(err, pricing.ErrEmptyCart):
		return "Cart is empty"
	case errors.Is(err, pricing.ErrBelowMinimum):
		return "Cart total does not meet the coupon minimum order amount"
	case errors.Is(err, pricing.ErrPerUserLimit):
		return "You have already used this coupon the maximum number of times"
	}
	return err.Error()
}
