package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/response"
)

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.Preload("Categories").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				response.Fail(c, http.StatusNotFound, response.CodeNotFound, "Product not found")
			} else {
				response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to retrieve product")
			}
			return
		}

		response.OK(c, http.StatusOK, "", product)
	}
}
