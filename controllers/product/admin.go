package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Quadwinner/Alouora-sub000/models"
	"github.com/Quadwinner/Alouora-sub000/utils"
)

type CreateProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Slug          string   `json:"slug" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice *float64 `json:"original_price"`
	StockQuantity int      `json:"stock_quantity" binding:"gte=0"`
	IsActive      *bool    `json:"is_active"`
	IsFeatured    bool     `json:"is_featured"`
	Image         string   `json:"image"`
	BrandID       *uint    `json:"brand_id"`
	CategoryID    *uint    `json:"category_id"`
}

type UpdateProductInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	StockQuantity *int     `json:"stock_quantity"`
	IsActive      *bool    `json:"is_active"`
	IsFeatured    *bool    `json:"is_featured"`
	Image         *string  `json:"image"`
	BrandID       *uint    `json:"brand_id"`
	CategoryID    *uint    `json:"category_id"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		active := true
		if input.IsActive != nil {
			active = *input.IsActive
		}
		product := models.Product{
			Name:          input.Name,
			Slug:          input.Slug,
			Description:   input.Description,
			Price:         input.Price,
			OriginalPrice: input.OriginalPrice,
			StockQuantity: input.StockQuantity,
			IsActive:      active,
			IsFeatured:    input.IsFeatured,
			Image:         input.Image,
			BrandID:       input.BrandID,
			CategoryID:    input.CategoryID,
		}

		if err := db.Create(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				utils.RespondWithError(c, http.StatusConflict, "A product with this slug already exists")
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
			return
		}
		utils.RespondWithData(c, http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Product not found")
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch product")
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.OriginalPrice != nil {
			product.OriginalPrice = input.OriginalPrice
		}
		if input.StockQuantity != nil {
			product.StockQuantity = *input.StockQuantity
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}
		if input.IsFeatured != nil {
			product.IsFeatured = *input.IsFeatured
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.BrandID != nil {
			product.BrandID = input.BrandID
		}
		if input.CategoryID != nil {
			product.CategoryID = input.CategoryID
		}

		if err := db.Save(&product).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
			return
		}
		utils.RespondWithData(c, http.StatusOK, product)
	}
}

// DELETE /admin/products/:id (soft delete)
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.Product{})
		if result.Error != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}
		if result.RowsAffected == 0 {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
			return
		}
		utils.RespondWithData(c, http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
