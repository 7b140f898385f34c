package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Quadwinner/Alouora-sub000/models"
	"github.com/Quadwinner/Alouora-sub000/utils"
)

// GET /brands
func GetBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brands []models.Brand
		if err := db.Order("name ASC").Find(&brands).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch brands")
			return
		}
		utils.RespondWithData(c, http.StatusOK, brands)
	}
}

// GET /categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name ASC").Find(&categories).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch categories")
			return
		}
		utils.RespondWithData(c, http.StatusOK, categories)
	}
}
