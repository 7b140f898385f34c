package userControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Quadwinner/Alouora-sub000/models"
	"github.com/Quadwinner/Alouora-sub000/utils"
)

type UpdateUserInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Picture *string `json:"picture"`
}

type AddressInput struct {
	FullName   string `json:"full_name" binding:"required"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	Country    string `json:"country" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	IsDefault  bool   `json:"is_default"`
}

// GET /profile
// Creates the user row on first sight of a new auth subject.
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var user models.User
		if err := db.Preload("Addresses").First(&user, "id = ?", userID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch profile")
				return
			}
			user = models.User{ID: userID, CreatedAt: time.Now()}
			if email, exists := c.Get("email"); exists {
				user.Email, _ = email.(string)
			}
			if err := db.Create(&user).Error; err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create profile")
				return
			}
		}
		utils.RespondWithData(c, http.StatusOK, user)
	}
}

// PUT /profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Phone != nil {
			user.Phone = *input.Phone
		}
		if input.Picture != nil {
			user.Picture = *input.Picture
		}

		if err := db.Save(&user).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
			return
		}
		utils.RespondWithData(c, http.StatusOK, user)
	}
}

// POST /profile/addresses
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		addr := models.Address{
			UserID:     userID,
			FullName:   input.FullName,
			Phone:      input.Phone,
			Line1:      input.Line1,
			Line2:      input.Line2,
			City:       input.City,
			State:      input.State,
			Country:    input.Country,
			PostalCode: input.PostalCode,
			IsDefault:  input.IsDefault,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if addr.IsDefault {
				if err := tx.Model(&models.Address{}).
					Where("user_id = ?", userID).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			return tx.Create(&addr).Error
		})
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save address")
			return
		}
		utils.RespondWithData(c, http.StatusCreated, addr)
	}
}

// PUT /profile/addresses/:id/default
func SetDefaultAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var addr models.Address
		if err := db.First(&addr, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Address not found")
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch address")
			return
		}
		if addr.UserID != userID {
			utils.RespondWithError(c, http.StatusForbidden, "Address belongs to another user")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ?", userID).
				Update("is_default", false).Error; err != nil {
				return err
			}
			return tx.Model(&addr).Update("is_default", true).Error
		})
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update default address")
			return
		}
		utils.RespondWithData(c, http.StatusOK, gin.H{"message": "Default address updated"})
	}
}

// DELETE /profile/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var addr models.Address
		if err := db.First(&addr, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Address not found")
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch address")
			return
		}
		if addr.UserID != userID {
			utils.RespondWithError(c, http.StatusForbidden, "Address belongs to another user")
			return
		}

		if err := db.Delete(&addr).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete address")
			return
		}
		utils.RespondWithData(c, http.StatusOK, gin.H{"message": "Address deleted"})
	}
}
