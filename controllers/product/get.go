package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Quadwinner/Alouora-sub000/models"
	"github.com/Quadwinner/Alouora-sub000/utils"
)

// GetProductByID returns a single active product with brand, category and
// variants. URL param accepts a numeric id or a slug.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")

		query := db.
			Preload("Brand").
			Preload("Category").
			Preload("Variants").
			Where("is_active = ?", true)

		var product models.Product
		var err error
		if id, convErr := strconv.Atoi(idParam); convErr == nil {
			err = query.First(&product, "id = ?", id).Error
		} else {
			err = query.First(&product, "slug = ?", idParam).Error
		}
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Product not found")
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve product")
			return
		}

		utils.RespondWithData(c, http.StatusOK, product)
	}
}
