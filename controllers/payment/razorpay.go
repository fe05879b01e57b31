package paymentControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/swapnil0000/urbannook-api/models"
)

// RazorpayOrderResponse is the subset of the Orders API response the
// checkout flow needs.
type RazorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
	Error    *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

func getRazorpayConfig() (keyID, keySecret, apiURL string, err error) {
	keyID = os.Getenv("RAZORPAY_KEY_ID")
	keySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	apiURL = os.Getenv("RAZORPAY_API_URL")
	if apiURL == "" {
		apiURL = "https://api.razorpay.com/v1"
	}
	if keyID == "" || keySecret == "" {
		return "", "", "", fmt.Errorf("razorpay configuration missing")
	}
	return keyID, keySecret, apiURL, nil
}

// CreateRazorpayOrder asks the gateway for a new order and returns its
// id. Amount is in paise.
func CreateRazorpayOrder(amount int64, currency, receipt string, notes map[string]string) (string, error) {
	keyID, keySecret, apiURL, err := getRazorpayConfig()
	if err != nil {
		return "", err
	}

	payload := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		payload["notes"] = notes
	}

	jsonData, _ := json.Marshal(payload)

	req, err := http.NewRequest(http.MethodPost, apiURL+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(keyID, keySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach Razorpay: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var rpResp RazorpayOrderResponse
	if err := json.Unmarshal(body, &rpResp); err != nil {
		return "", fmt.Errorf("failed to parse Razorpay response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		if rpResp.Error != nil {
			return "", fmt.Errorf("razorpay error: %s", rpResp.Error.Description)
		}
		return "", fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}
	if rpResp.ID == "" {
		return "", fmt.Errorf("razorpay returned empty order id")
	}
	return rpResp.ID, nil
}

// VerifyPaymentSignature checks the checkout callback signature:
// HMAC-SHA256 over "<order_id>|<payment_id>" with the key secret.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// CartFingerprint identifies a checkout attempt: same items, same
// coupon, same address hash to the same value, so a retry re-uses the
// pending gateway order instead of creating a duplicate. Items are
// sorted by product id first; the database returns cart rows in no
// guaranteed order.
func CartFingerprint(userID string, items []fingerprintItem, couponCode string, addressID uint) string {
	sorted := make([]fingerprintItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%d", userID, couponCode, addressID)
	for _, it := range sorted {
		fmt.Fprintf(h, "|%d:%d:%.2f", it.ProductID, it.Quantity, it.Price)
	}
	return hex.EncodeToString(h.Sum(nil))
}

type fingerprintItem struct {
	ProductID uint
	Quantity  int
	Price     float64
}

// findReusablePaymentOrder returns a still-pending gateway order for
// the same cart state, if any.
func findReusablePaymentOrder(db *gorm.DB, userID, fingerprint string) (razorpayOrderID string, found bool) {
	type row struct{ RazorpayOrderID string }
	var r row
	err := db.Table("payment_orders").
		Select("razorpay_order_id").
		Where("user_id = ? AND cart_fingerprint = ? AND status = ?", userID, fingerprint, models.PaymentStatusPending).
		Order("created_at DESC").
		Limit(1).
		Scan(&r).Error
	if err != nil || r.RazorpayOrderID == "" {
		return "", false
	}
	return r.RazorpayOrderID, true
}
