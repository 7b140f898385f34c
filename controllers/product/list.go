package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Quadwinner/Alouora-sub000/models"
	"github.com/Quadwinner/Alouora-sub000/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GET /products
// Filters: category (slug), brand (comma-separated slugs), min_price,
// max_price, min_rating, featured, search. Sorts: newest, price_asc,
// price_desc, rating, discount, popularity (default).
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).
			Preload("Brand").
			Preload("Category").
			Where("products.is_active = ?", true)

		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("products.name ILIKE ? OR products.description ILIKE ?", likePattern, likePattern)
		}

		if categorySlug := c.Query("category"); categorySlug != "" {
			query = query.
				Joins("JOIN categories ON categories.id = products.category_id").
				Where("categories.slug = ?", categorySlug)
		}

		if brandParam := c.Query("brand"); brandParam != "" {
			slugs := strings.Split(brandParam, ",")
			for i := range slugs {
				slugs[i] = strings.TrimSpace(slugs[i])
			}
			query = query.
				Joins("JOIN brands ON brands.id = products.brand_id").
				Where("brands.slug IN ?", slugs)
		}

		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid min_price")
				return
			}
			query = query.Where("products.price >= ?", mp)
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid max_price")
				return
			}
			query = query.Where("products.price <= ?", mp)
		}
		if minRatingStr := c.Query("min_rating"); minRatingStr != "" {
			mr, err := strconv.ParseFloat(minRatingStr, 64)
			if err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid min_rating")
				return
			}
			query = query.Where("products.rating >= ?", mr)
		}
		if featured := c.Query("featured"); featured == "true" || featured == "1" {
			query = query.Where("products.is_featured = ?", true)
		}

		switch c.DefaultQuery("sort", "popularity") {
		case "newest":
			query = query.Order("products.created_at DESC")
		case "price_asc":
			query = query.Order("products.price ASC")
		case "price_desc":
			query = query.Order("products.price DESC")
		case "rating":
			query = query.Order("products.rating DESC")
		case "discount":
			query = query.Order("COALESCE(products.original_price - products.price, 0) DESC")
		default:
			query = query.Order("products.sales_count DESC")
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
		if limit < 1 {
			limit = 1
		}
		if limit > maxPageSize {
			limit = maxPageSize
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count products")
			return
		}

		var products []models.Product
		if err := query.Offset((page - 1) * limit).Limit(limit).Find(&products).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}

		totalPages := (total + int64(limit) - 1) / int64(limit)
		utils.RespondWithData(c, http.StatusOK, gin.H{
			"products": products,
			"pagination": gin.H{
				"page":        page,
				"limit":       limit,
				"total":       total,
				"total_pages": totalPages,
			},
		})
	}
}
