package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Quadwinner/Alouora-sub000/models"
	"github.com/Quadwinner/Alouora-sub000/utils"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type CreateReviewInput struct {
	Rating  int      `json:"rating" binding:"required,min=1,max=5"`
	Title   string   `json:"title"`
	Comment string   `json:"comment"`
	Images  []string `json:"images"`
	OrderID *uint    `json:"order_id"`
}

// GET /products/:id/reviews
// Filters: rating (exact), with_images. Sorts: newest (default), oldest,
// rating_desc, rating_asc.
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID")
			return
		}

		query := db.Model(&models.Review{}).
			Preload("User").
			Where("product_id = ?", productID)

		if ratingStr := c.Query("rating"); ratingStr != "" {
			rating, err := strconv.Atoi(ratingStr)
			if err != nil || rating < 1 || rating > 5 {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid rating filter")
				return
			}
			query = query.Where("rating = ?", rating)
		}
		if withImages := c.Query("with_images"); withImages == "true" || withImages == "1" {
			query = query.Where("images IS NOT NULL AND images != '[]' AND images != 'null'")
		}

		switch c.DefaultQuery("sort", "newest") {
		case "oldest":
			query = query.Order("created_at ASC")
		case "rating_desc":
			query = query.Order("rating DESC, created_at DESC")
		case "rating_asc":
			query = query.Order("rating ASC, created_at DESC")
		default:
			query = query.Order("created_at DESC")
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
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count reviews")
			return
		}

		var reviews []models.Review
		if err := query.Offset((page - 1) * limit).Limit(limit).Find(&reviews).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch reviews")
			return
		}

		utils.RespondWithData(c, http.StatusOK, gin.H{
			"reviews": reviews,
			"pagination": gin.H{
				"page":  page,
				"limit": limit,
				"total": total,
			},
		})
	}
}

// POST /products/:id/reviews
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := utils.CurrentUser(c)
		if !ok {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID")
			return
		}

		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Product not found")
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to validate product")
			return
		}

		// One review per (user, product).
		var count int64
		if err := db.Model(&models.Review{}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Count(&count).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to check existing review")
			return
		}
		if count > 0 {
			utils.RespondWithError(c, http.StatusConflict, "You have already reviewed this product")
			return
		}

		review := models.Review{
			UserID:    userID,
			ProductID: uint(productID),
			OrderID:   input.OrderID,
			Rating:    input.Rating,
			Title:     input.Title,
			Comment:   input.Comment,
			Images:    input.Images,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
			// Keep the product's rating aggregates in step with its reviews.
			return tx.Model(&models.Product{}).
				Where("id = ?", productID).
				Updates(map[string]interface{}{
					"review_count": gorm.Expr("review_count + 1"),
					"rating": gorm.Expr(
						"(SELECT AVG(rating) FROM reviews WHERE product_id = ?)", productID),
				}).Error
		})
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create review")
			return
		}

		utils.RespondWithData(c, http.StatusCreated, review)
	}
}
