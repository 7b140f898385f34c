package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientFromEnv_MissingCredentials(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	_, err := NewClientFromEnv()
	assert.ErrorIs(t, err, ErrNotConfigured)

	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	_, err = NewClientFromEnv()
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestToSubunits(t *testing.T) {
	assert.Equal(t, int64(123456), ToSubunits(1234.56))
	assert.Equal(t, int64(100), ToSubunits(1))
	assert.Equal(t, int64(29900), ToSubunits(299))
	// Round, not truncate.
	assert.Equal(t, int64(1000), ToSubunits(9.999))
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret", pass)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(123450), payload["amount"]) // smallest currency unit
		assert.Equal(t, "INR", payload["currency"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_test_123",
			"amount":   123450,
			"currency": "INR",
			"receipt":  payload["receipt"],
			"status":   "created",
		})
	}))
	defer server.Close()

	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "secret")
	t.Setenv("RAZORPAY_API_URL", server.URL)

	client, err := NewClientFromEnv()
	require.NoError(t, err)

	order, err := client.CreateOrder(1234.50, "INR", "receipt-1", map[string]string{"user_id": "u1"})
	require.NoError(t, err)
	assert.Equal(t, "order_test_123", order.ID)
	assert.Equal(t, int64(123450), order.Amount)
}

func TestCreateOrder_GatewayErrorPassedThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":        "BAD_REQUEST_ERROR",
				"description": "Order amount less than minimum amount allowed",
			},
		})
	}))
	defer server.Close()

	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "secret")
	t.Setenv("RAZORPAY_API_URL", server.URL)

	client, err := NewClientFromEnv()
	require.NoError(t, err)

	_, err = client.CreateOrder(0.10, "INR", "receipt-2", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Order amount less than minimum amount allowed")
}

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	secret := "webhook-secret"
	signature := sign(secret, []byte("order_abc|pay_xyz"))

	assert.True(t, VerifyPaymentSignature("order_abc", "pay_xyz", signature, secret))
	assert.False(t, VerifyPaymentSignature("order_abc", "pay_other", signature, secret))
	assert.False(t, VerifyPaymentSignature("order_abc", "pay_xyz", signature, "wrong-secret"))
	assert.False(t, VerifyPaymentSignature("order_abc", "pay_xyz", "forged", secret))
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "webhook-secret"
	body := []byte(`{"event":"payment.captured"}`)

	assert.True(t, VerifyWebhookSignature(body, sign(secret, body), secret))
	assert.False(t, VerifyWebhookSignature([]byte(`{"event":"tampered"}`), sign(secret, body), secret))
	assert.False(t, VerifyWebhookSignature(body, sign("other", body), secret))
}
