package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/response"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// POST /user/cart
//
// Sets the quantity for a product (last write wins, matching the
// storefront's behavior), inserting a snapshot row on first add.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartItemInput
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

		if product.Stock < input.Quantity {
			response.Fail(c, http.StatusConflict, response.CodeOutOfStock, "Not enough stock for "+product.Name)
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "User cart not found")
			return
		}

		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).First(&item).Error
		if err == gorm.ErrRecordNotFound {
			newItem := models.CartItem{
				CartID:       cart.CartID,
				ProductID:    product.ID,
				Name:         product.Name,
				Image:        product.Image,
				Price:        product.SalePrice,
				RegularPrice: product.RegularPrice,
				Stock:        product.Stock,
				Quantity:     input.Quantity,
				AddedAt:      time.Now(),
			}
			if err := db.Create(&newItem).Error; err != nil {
				response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to add item to cart")
				return
			}
			response.OK(c, http.StatusCreated, "Item added to cart", newItem)
			return
		}
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch cart item")
			return
		}

		item.Quantity = input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to update cart item")
			return
		}

		response.OK(c, http.StatusOK, "Cart updated", item)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		productID := c.Param("product_id")

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			response.Fail(c, http.StatusNotFound, response.CodeNotFound, "User cart not found")
			return
		}

		result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).Delete(&models.CartItem{})
		if result.Error != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to delete item")
			return
		}
		if result.RowsAffected == 0 {
			response.Fail(c, http.StatusNotFound, response.CodeCartItemNotFound, "Cart item not found")
			return
		}

		response.OK(c, http.StatusOK, "Cart item deleted", nil)
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch user cart")
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to clear cart")
			return
		}
		response.OK(c, http.StatusOK, "Cart cleared", nil)
	}
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch cart")
			return
		}

		response.OK(c, http.StatusOK, "", cart.Items)
	}
}

// GET /admin/cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "user_id is required")
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch cart")
			return
		}

		response.OK(c, http.StatusOK, "", cart.Items)
	}
}
