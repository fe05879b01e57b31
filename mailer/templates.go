// Package mailer renders the transactional email bodies the
// storefront sends (order confirmation, community welcome). Delivery
// itself is handled by the configured SMTP relay; this package only
// produces the HTML.
package mailer

import (
	"bytes"
	"html/template"

	"github.com/swapnil0000/urbannook-api/models"
	"github.com/swapnil0000/urbannook-api/pricing"
)

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(`
<h2>Thanks for your order, {{.Name}}!</h2>
<p>Order <strong>{{.OrderRef}}</strong> is confirmed.</p>
<table>
  {{range .Items}}
  <tr><td>{{.Name}}</td><td>x{{.Quantity}}</td><td>&#8377;{{printf "%.2f" .Price}}</td></tr>
  {{end}}
</table>
<p>Subtotal: &#8377;{{printf "%.2f" .Summary.Subtotal}}</p>
<p>GST: &#8377;{{printf "%.2f" .Summary.GST}}</p>
<p>Shipping: &#8377;{{printf "%.2f" .Summary.Shipping}}</p>
{{if gt .Summary.Discount 0.0}}<p>Discount: -&#8377;{{printf "%.2f" .Summary.Discount}}</p>{{end}}
<p><strong>Total: &#8377;{{printf "%.2f" .Summary.GrandTotal}}</strong></p>
`))

var communityWelcomeTmpl = template.Must(template.New("community_welcome").Parse(`
<h2>Welcome to the UrbanNook community!</h2>
<p>You are now on the list at {{.Email}}. Expect drops, restocks and member-only coupons.</p>
`))

type OrderConfirmation struct {
	Name     string
	OrderRef string
	Items    []models.OrderItem
	Summary  pricing.Summary
}

func RenderOrderConfirmation(data OrderConfirmation) (string, error) {
	var buf bytes.Buffer
	if err := orderConfirmationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderCommunityWelcome(email string) (string, error) {
	var buf bytes.Buffer
	if err := communityWelcomeTmpl.Execute(&buf, struct{ Email string }{Email: email}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
