package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/pricing"
)

func TestRenderOrderConfirmation(t *testing.T) {
	body, err := RenderOrderConfirmation(OrderConfirmation{
		Name:     "Asha",
		OrderRef: "20260901-abc",
		Items: []models.OrderItem{
			{Name: "Ceramic Planter", Quantity: 2, Price: 499},
		},
		Summary: pricing.Summary{
			Subtotal: 998, GST: 179.64, Shipping: 49, Discount: 150, GrandTotal: 1076.64,
		},
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Asha")
	assert.Contains(t, body, "20260901-abc")
	assert.Contains(t, body, "Ceramic Planter")
	assert.Contains(t, body, "1076.64")
	assert.Contains(t, body, "150.00")
}

func TestRenderOrderConfirmation_NoDiscountLine(t *testing.T) {
	body, err := RenderOrderConfirmation(OrderConfirmation{
		Name:     "Asha",
		OrderRef: "ref",
		Summary:  pricing.Summary{Subtotal: 100, GST: 18, Shipping: 49, GrandTotal: 167},
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "Discount")
}

func TestRenderCommunityWelcome(t *testing.T) {
	body, err := RenderCommunityWelcome("shopper@example.com")
	require.NoError(t, err)
	assert.Contains(t, body, "shopper@example.com")
}

func TestRenderCommunityWelcome_EscapesHTML(t *testing.T) {
	body, err := RenderCommunityWelcome(`<script>alert(1)</script>`)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}
