package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/swapnil0000/urbannook-api/events"
	"github.com/swapnil0000/urbannook-api/mailer"
	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/pricing"
	"github.com/swapnil0000/urbannook-api/response"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusReturned):
		return models.OrderStatusReturned, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusPaid):
		return models.PaymentStatusPaid, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	case string(models.PaymentStatusRefunded):
		return models.PaymentStatusRefunded, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// PlaceOrder converts a paid PaymentOrder into a real order: stock is
// deducted under row locks, the coupon redemption is consumed, the
// cart is cleared and the frozen summary is copied onto the order.
// Safe to call from both the client verify path and the webhook; the
// PaymentOrder status guard makes the second call return the already
// placed order instead of double-charging stock.
func PlaceOrder(db *gorm.DB, pub *events.Publisher, paymentOrderID string) (*models.Order, error) {
	var placed models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var po models.PaymentOrder
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("razorpay_order_id = ?", paymentOrderID).
			First(&po).Error; err != nil {
			return err
		}

		if po.Status == models.PaymentStatusPaid {
			// already placed by the other confirmation path
			return tx.Preload("Items").Where("razorpay_order_id = ?", po.RazorpayOrderID).First(&placed).Error
		}

		// the shopper paid for the snapshot frozen at create-order,
		// not for whatever the cart holds now
		if err := tx.Where("payment_order_id = ?", po.ID).Find(&po.Items).Error; err != nil {
			return err
		}
		if len(po.Items) == 0 {
			return errors.New("payment order has no item snapshot")
		}

		var orderItems []models.OrderItem
		for _, item := range po.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}
			if product.Stock < item.Quantity {
				return errors.New("insufficient stock for product: " + item.Name)
			}
			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Image:     item.Image,
				Price:     item.Price,
				Quantity:  item.Quantity,
			})
		}

		orderRef := generateOrderRef()

		if po.CouponCode != "" {
			var coupon models.Coupon
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("name = ?", po.CouponCode).First(&coupon).Error; err != nil {
				return err
			}
			if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
				return errors.New("coupon usage limit reached")
			}
			coupon.UsedCount++
			if err := tx.Save(&coupon).Error; err != nil {
				return err
			}
			redemption := models.CouponRedemption{
				CouponID: coupon.ID,
				UserID:   po.UserID,
				OrderRef: orderRef,
			}
			if err := tx.Create(&redemption).Error; err != nil {
				return err
			}
		}

		placed = models.Order{
			OrderRef:        orderRef,
			UserID:          po.UserID,
			Items:           orderItems,
			AddressID:       po.AddressID,
			CouponCode:      po.CouponCode,
			Subtotal:        po.Subtotal,
			GST:             po.GST,
			Shipping:        po.Shipping,
			Discount:        po.Discount,
			GrandTotal:      po.GrandTotal,
			Status:          models.OrderStatusConfirmed,
			PaymentStatus:   models.PaymentStatusPaid,
			RazorpayOrderID: po.RazorpayOrderID,
			CreatedAt:       time.Now(),
		}
		if err := tx.Create(&placed).Error; err != nil {
			return err
		}

		// remove only the purchased products; anything the shopper
		// added after create-order stays in the cart
		var cart models.Cart
		if err := tx.Where("user_id = ?", po.UserID).First(&cart).Error; err == nil {
			purchased := make([]uint, 0, len(po.Items))
			for _, item := range po.Items {
				purchased = append(purchased, item.ProductID)
			}
			if err := tx.Where("cart_id = ? AND product_id IN ?", cart.CartID, purchased).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Model(&po).Update("status", models.PaymentStatusPaid).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastOrderUpdate(placed)
	pub.OrderPlaced(events.OrderPlaced{
		OrderRef:   placed.OrderRef,
		UserID:     placed.UserID,
		GrandTotal: placed.GrandTotal,
		CouponCode: placed.CouponCode,
		PlacedAt:   placed.CreatedAt.Format(time.RFC3339),
	})
	sendConfirmationEmail(db, &placed)

	return &placed, nil
}

func sendConfirmationEmail(db *gorm.DB, order *models.Order) {
	var user models.User
	if err := db.First(&user, "id = ?", order.UserID).Error; err != nil {
		return
	}
	body, err := mailer.RenderOrderConfirmation(mailer.OrderConfirmation{
		Name:     user.Name,
		OrderRef: order.OrderRef,
		Items:    order.Items,
		Summary: pricing.Summary{
			Subtotal:   order.Subtotal,
			GST:        order.GST,
			Shipping:   order.Shipping,
			Discount:   order.Discount,
			GrandTotal: order.GrandTotal,
		},
	})
	if err != nil {
		log.Printf("order %s: confirmation render failed: %v", order.OrderRef, err)
		return
	}
	// delivery is handled by the notification consumer; keep a trace
	log.Printf("order %s: confirmation email rendered for %s (%d bytes)", order.OrderRef, user.Email, len(body))
}

// -------- Handlers --------

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch orders")
			return
		}
		response.OK(c, http.StatusOK, "", orders)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch orders")
			return
		}
		response.OK(c, http.StatusOK, "", orders)
	}
}

// GET /admin/orders/:orderRef
func GetOrderByRefHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("orderRef")
		if ref == "" {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, "orderRef is required")
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Where("order_ref = ? OR razorpay_order_id = ?", ref, ref).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, http.StatusNotFound, response.CodeNotFound, "Order not found")
				return
			}
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to fetch order")
			return
		}

		response.OK(c, http.StatusOK, "", order)
	}
}

// PUT /admin/orders/:orderRef/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("orderRef")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, err.Error())
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, err.Error())
			return
		}

		var order models.Order
		if err := db.Where("order_ref = ?", ref).First(&order).Error; err != nil {
			response.Fail(c, http.StatusNotFound, response.CodeNotFound, "Order not found")
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to update order status")
			return
		}

		order.Status = newStatus
		broadcastOrderUpdate(order)
		response.OK(c, http.StatusOK, "Order status updated", order)
	}
}

// PUT /admin/orders/:orderRef/payment-status
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("orderRef")
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, err.Error())
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.CodeInvalidInput, err.Error())
			return
		}
		if err := db.Model(&models.Order{}).Where("order_ref = ?", ref).
			Update("payment_status", newStatus).Error; err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to update payment status")
			return
		}
		response.OK(c, http.StatusOK, "Payment status updated", nil)
	}
}

// DELETE /admin/orders/:orderRef
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("orderRef")

		var order models.Order
		if err := db.Where("order_ref = ?", ref).First(&order).Error; err != nil {
			response.Fail(c, http.StatusNotFound, response.CodeNotFound, "Order not found")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "Failed to delete order")
			return
		}
		response.OK(c, http.StatusOK, "Order deleted", nil)
	}
}
