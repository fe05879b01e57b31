package wishlistControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/response"
)

type WishlistInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GET /user/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var items []models.WishlistItem
		if err := db.Where("user_id = ?", userID).Order("added_at desc").Find(&items).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch wishlist")
			return
		}

		response.OK(c, http.StatusOK, "", items)
	}
}

// POST /user/wishlist
//
// Idempotent: adding a product already on the wishlist returns the
// existing row.
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid input: "+err.Error())
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				response.Fail(c, http.StatusBadRequest, response.CodeNotFound, "Product does not exist")
				return
			}
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to validate product")
			return
		}

		var existing models.WishlistItem
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&existing).Error
		if err == nil {
			response.OK(c, http.StatusOK, "Already in wishlist", existing)
			return
		}
		if err != gorm.ErrRecordNotFound {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to check wishlist")
			return
		}

		item := models.WishlistItem{
			UserID:    userID,
			ProductID: product.ID,
			Name:      product.Name,
			Image:     product.Image,
			Price:     product.SalePrice,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to add to wishlist")
			return
		}

		response.OK(c, http.StatusCreated, "Added to wishlist", item)
	}
}

// DELETE /user/wishlist/:product_id
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		productID := c.Param("product_id")

		result := db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.WishlistItem{})
		if result.Error != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to remove from wishlist")
			return
		}
		if result.RowsAffected == 0 {
			response.Fail(c, http.StatusNotFound, response.CodeNotFound, "Wishlist item not found")
			return
		}

		response.OK(c, http.StatusOK, "Removed from wishlist", nil)
	}
}
