// Package payment wraps the Razorpay orders API: creating a remote payment
// intent for a server-computed amount, and verifying the signatures the
// gateway sends back. Credentials come from the environment and are checked
// before any remote call is attempted.
package payment

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"time"
)

const defaultAPIURL = "https://api.razorpay.com/v1"

// ErrNotConfigured is returned when gateway credentials are missing; callers
// translate it to a 503 before reaching out to the gateway.
var ErrNotConfigured = errors.New("payment gateway configuration missing")

type Client struct {
	keyID      string
	keySecret  string
	apiURL     string
	httpClient *http.Client
}

// NewClientFromEnv builds a gateway client from RAZORPAY_KEY_ID /
// RAZORPAY_KEY_SECRET, with RAZORPAY_API_URL overriding the endpoint
// (used by tests and sandbox setups).
func NewClientFromEnv() (*Client, error) {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return nil, ErrNotConfigured
	}
	apiURL := os.Getenv("RAZORPAY_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		keyID:      keyID,
		keySecret:  keySecret,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (c *Client) KeyID() string { return c.keyID }

// OrderResponse is the gateway-side order (remote payment intent).
type OrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // smallest currency unit
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// ToSubunits converts a currency amount to the gateway's smallest unit.
func ToSubunits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateOrder creates a remote payment intent for amount (major currency
// units) and returns the gateway order.
func (c *Client) CreateOrder(amount float64, currency, receipt string, notes map[string]string) (*OrderResponse, error) {
	payload := map[string]interface{}{
		"amount":   ToSubunits(amount),
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		payload["notes"] = notes
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.apiURL+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		// Pass the gateway's own description through when it sent one.
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Description != "" {
			return nil, fmt.Errorf("payment gateway error: %s", apiErr.Error.Description)
		}
		return nil, fmt.Errorf("payment gateway error (%d): %s", resp.StatusCode, string(body))
	}

	var order OrderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	if order.ID == "" {
		return nil, errors.New("payment gateway returned empty order id")
	}
	return &order, nil
}

// VerifyPaymentSignature checks the checkout callback signature:
// HMAC-SHA256 over "<orderID>|<paymentID>" with the key secret.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header:
// HMAC-SHA256 over the raw request body with the webhook secret.
func VerifyWebhookSignature(body []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
