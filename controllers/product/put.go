package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/response"
)

// PUT /admin/products/:id (multipart, all fields optional)
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.Preload("Categories").First(&product, id).Error; err != nil {
			response.Fail(c, http.StatusNotFound, response.CodeNotFound, "Product not found")
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("sale_price"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				product.SalePrice = f
			}
		}
		if v := c.PostForm("regular_price"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				product.RegularPrice = f
			}
		}
		if v := c.PostForm("stock"); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				product.Stock = i
			}
		}
		if v := c.PostForm("featured"); v != "" {
			product.Featured = v == "true"
		}

		if categories, err := parseCategoryIDs(db, c.PostForm("category_ids")); err == nil && categories != nil {
			product.Categories = categories
		}

		// optional image replacement
		if imageURL, err := saveImage(c, "image"); err == nil {
			product.Image = imageURL
		}

		if err := db.Save(&product).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to update product")
			return
		}

		response.OK(c, http.StatusOK, "Product updated", product)
	}
}
