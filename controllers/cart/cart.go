package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Quadwinner/Alouora-sub000/models"
	"github.com/Quadwinner/Alouora-sub000/pricing"
	"github.com/Quadwinner/Alouora-sub000/utils"
)

type AddCartItemInput struct {
	ProductID uint  `json:"product_id" binding:"required"`
	VariantID *uint `json:"variant_id"`
	Quantity  int   `json:"quantity" binding:"required,min=1,max=10"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=10"`
}

// loadCartItems fetches the user's cart lines with live product and variant
// rows joined in; every pricing decision reads these, never the snapshots.
func loadCartItems(db *gorm.DB, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.
		Preload("Product").
		Preload("Variant").
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Find(&items).Error
	return items, err
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		items, err := loadCartItems(db, userID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}

		applied, err := models.LoadAppliedCoupon(db, userID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch applied coupon")
			return
		}

		summary := pricing.Summarize(items, applied)
		utils.RespondWithData(c, http.StatusOK, summary)
	}
}

// POST /cart/items
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ? AND is_active = ?", input.ProductID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Product not found")
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to validate product")
			return
		}

		var variant *models.ProductVariant
		if input.VariantID != nil {
			var v models.ProductVariant
			if err := db.First(&v, "id = ? AND product_id = ?", *input.VariantID, product.ID).Error; err != nil {
				utils.RespondWithError(c, http.StatusNotFound, "Product variant not found")
				return
			}
			variant = &v
		}

		// Merge with an existing line for the same (product, variant) pair.
		var item models.CartItem
		query := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID)
		if input.VariantID != nil {
			query = query.Where("variant_id = ?", *input.VariantID)
		} else {
			query = query.Where("variant_id IS NULL")
		}
		err := query.First(&item).Error

		quantity := input.Quantity
		if err == nil {
			quantity = item.Quantity + input.Quantity
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch cart item")
			return
		}

		if quantity > pricing.MaxQuantity {
			utils.RespondWithError(c, http.StatusBadRequest,
				fmt.Sprintf("Maximum quantity per item is %d", pricing.MaxQuantity))
			return
		}
		if stock := product.AvailableStock(variant); quantity > stock {
			utils.RespondWithError(c, http.StatusBadRequest, "Requested quantity exceeds available stock")
			return
		}

		now := time.Now()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			newItem := models.CartItem{
				UserID:    userID,
				ProductID: product.ID,
				VariantID: input.VariantID,
				Quantity:  quantity,
				Price:     product.UnitPrice(variant),
				AddedAt:   now,
				UpdatedAt: now,
			}
			if err := db.Create(&newItem).Error; err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add item to cart")
				return
			}
			utils.RespondWithData(c, http.StatusCreated, newItem)
			return
		}

		item.Quantity = quantity
		item.Price = product.UnitPrice(variant)
		item.UpdatedAt = now
		if err := db.Save(&item).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cart item")
			return
		}
		utils.RespondWithData(c, http.StatusOK, item)
	}
}

// PUT /cart/items/:id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		var item models.CartItem
		if err := db.Preload("Product").Preload("Variant").First(&item, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Cart item not found")
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch cart item")
			return
		}
		if item.UserID != userID {
			utils.RespondWithError(c, http.StatusForbidden, "Cart item belongs to another user")
			return
		}

		// Stock check happens before any write so a rejected update leaves
		// the line's quantity unchanged.
		if stock := item.Product.AvailableStock(item.Variant); input.Quantity > stock {
			utils.RespondWithError(c, http.StatusBadRequest, "Requested quantity exceeds available stock")
			return
		}

		item.Quantity = input.Quantity
		item.Price = item.Product.UnitPrice(item.Variant)
		item.UpdatedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cart item")
			return
		}
		utils.RespondWithData(c, http.StatusOK, item)
	}
}

// DELETE /cart/items/:id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var item models.CartItem
		if err := db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Cart item not found")
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch cart item")
			return
		}
		if item.UserID != userID {
			utils.RespondWithError(c, http.StatusForbidden, "Cart item belongs to another user")
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete item")
			return
		}
		utils.RespondWithData(c, http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			// An explicit clear also drops the applied coupon.
			return tx.Where("user_id = ?", userID).Delete(&models.AppliedCoupon{}).Error
		})
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear cart")
			return
		}
		utils.RespondWithData(c, http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
