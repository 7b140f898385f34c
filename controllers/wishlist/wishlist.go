package wishlistControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Quadwinner/Alouora-sub000/models"
	"github.com/Quadwinner/Alouora-sub000/utils"
)

type AddWishlistItemInput struct {
	ProductID uint  `json:"product_id" binding:"required"`
	VariantID *uint `json:"variant_id"`
}

// GET /wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var items []models.WishlistItem
		if err := db.
			Preload("Product").
			Preload("Product.Brand").
			Preload("Product.Category").
			Preload("Variant").
			Where("user_id = ?", userID).
			Order("added_at DESC").
			Find(&items).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch wishlist")
			return
		}

		utils.RespondWithData(c, http.StatusOK, items)
	}
}

// POST /wishlist
func AddWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var input AddWishlistItemInput
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

		dupQuery := db.Model(&models.WishlistItem{}).
			Where("user_id = ? AND product_id = ?", userID, input.ProductID)
		if input.VariantID != nil {
			dupQuery = dupQuery.Where("variant_id = ?", *input.VariantID)
		} else {
			dupQuery = dupQuery.Where("variant_id IS NULL")
		}
		var count int64
		if err := dupQuery.Count(&count).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to check wishlist")
			return
		}
		if count > 0 {
			utils.RespondWithError(c, http.StatusConflict, "Product is already in your wishlist")
			return
		}

		item := models.WishlistItem{
			UserID:    userID,
			ProductID: input.ProductID,
			VariantID: input.VariantID,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add to wishlist")
			return
		}

		utils.RespondWithData(c, http.StatusCreated, item)
	}
}

// DELETE /wishlist/:id
func DeleteWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var item models.WishlistItem
		if err := db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Wishlist item not found")
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch wishlist item")
			return
		}
		if item.UserID != userID {
			utils.RespondWithError(c, http.StatusForbidden, "Wishlist item belongs to another user")
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to remove wishlist item")
			return
		}
		utils.RespondWithData(c, http.StatusOK, gin.H{"message": "Wishlist item removed"})
	}
}
