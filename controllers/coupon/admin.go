package couponControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Quadwinner/Alouora-sub000/models"
	"github.com/Quadwinner/Alouora-sub000/utils"
)

type CreateCouponInput struct {
	Code              string    `json:"code" binding:"required,min=3,max=64"`
	Description       string    `json:"description"`
	DiscountType      string    `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue     float64   `json:"discount_value" binding:"required,gt=0"`
	MaxDiscountAmount *float64  `json:"max_discount_amount"`
	MinOrderAmount    float64   `json:"min_order_amount" binding:"gte=0"`
	ValidFrom         time.Time `json:"valid_from" binding:"required"`
	ValidUntil        time.Time `json:"valid_until" binding:"required"`
	MaxUses           *int      `json:"max_uses"`
	MaxUsesPerUser    int       `json:"max_uses_per_user" binding:"gte=0"`
}

// POST /admin/coupons
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		if !input.ValidUntil.After(input.ValidFrom) {
			utils.RespondWithError(c, http.StatusBadRequest, "valid_until must be after valid_from")
			return
		}
		if input.DiscountType == string(models.DiscountPercentage) && input.DiscountValue > 100 {
			utils.RespondWithError(c, http.StatusBadRequest, "Percentage discount cannot exceed 100")
			return
		}

		coupon := models.Coupon{
			Code:              strings.ToUpper(strings.TrimSpace(input.Code)),
			Description:       input.Description,
			DiscountType:      models.DiscountType(input.DiscountType),
			DiscountValue:     input.DiscountValue,
			MaxDiscountAmount: input.MaxDiscountAmount,
			MinOrderAmount:    input.MinOrderAmount,
			ValidFrom:         input.ValidFrom,
			ValidUntil:        input.ValidUntil,
			MaxUses:           input.MaxUses,
			MaxUsesPerUser:    input.MaxUsesPerUser,
			IsActive:          true,
		}

		if err := db.Create(&coupon).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				utils.RespondWithError(c, http.StatusConflict, "A coupon with this code already exists")
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create coupon")
			return
		}
		utils.RespondWithData(c, http.StatusCreated, coupon)
	}
}

// GET /admin/coupons
func GetCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Order("created_at DESC").Find(&coupons).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch coupons")
			return
		}
		utils.RespondWithData(c, http.StatusOK, coupons)
	}
}

// PUT /admin/coupons/:id/deactivate
// Coupons are immutable once created; deactivation is the only mutation.
func DeactivateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Model(&models.Coupon{}).Where("id = ?", c.Param("id")).Update("is_active", false)
		if result.Error != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate coupon")
			return
		}
		if result.RowsAffected == 0 {
			utils.RespondWithError(c, http.StatusNotFound, "Coupon not found")
			return
		}
		utils.RespondWithData(c, http.StatusOK, gin.H{"message": "Coupon deactivated"})
	}
}
