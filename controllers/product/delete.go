package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/response"
)

// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Product ID is required")
			return
		}

		var product models.Product
		if err := db.Preload("Categories").First(&product, id).Error; err != nil {
			response.Fail(c, http.StatusNotFound, response.CodeNotFound, "Product not found")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&product).Association("Categories").Clear(); err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to delete product")
			return
		}

		response.OK(c, http.StatusOK, "Product deleted", nil)
	}
}
