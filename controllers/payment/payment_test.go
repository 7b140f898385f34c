package paymentControllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return gdb, mock
}

func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func performJSON(router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreatePaymentOrder_EmptyCartFailsBeforeGateway(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := setupTestDB(t)
	logger := zaptest.NewLogger(t)

	// Gateway credentials deliberately present: the empty-cart check must
	// fire first and no remote call may be attempted.
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "secret")
	t.Setenv("RAZORPAY_API_URL", "http://127.0.0.1:0") // unreachable on purpose

	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity"}))

	router := gin.New()
	router.POST("/payments/create-order", authAs("user-1"), CreatePaymentOrder(db, logger))

	w := performJSON(router, http.MethodPost, "/payments/create-order", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentOrder_MisconfiguredGatewayIs503(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := setupTestDB(t)
	logger := zaptest.NewLogger(t)

	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "price"}).
			AddRow(1, "user-1", 7, 2, 499.0))
	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock_quantity", "is_active"}).
			AddRow(7, "Vitamin C Serum", 499.0, 20, true))

	router := gin.New()
	router.POST("/payments/create-order", authAs("user-1"), CreatePaymentOrder(db, logger))

	w := performJSON(router, http.MethodPost, "/payments/create-order", gin.H{})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentOrder_CouponLookupFailureStopsCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := setupTestDB(t)
	logger := zaptest.NewLogger(t)

	gatewayHit := false
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gatewayHit = true
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "secret")
	t.Setenv("RAZORPAY_API_URL", gateway.URL)

	mock.ExpectQuery(`SELECT (.+) FROM "cart_items"`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "price"}).
			AddRow(1, "user-1", 7, 2, 1000.0))
	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock_quantity", "is_active"}).
			AddRow(7, "Vitamin C Serum", 1000.0, 20, true))
	// A failed applied-coupon read must stop the checkout: treating it as
	// "no coupon" would bill the full undiscounted amount.
	mock.ExpectQuery(`SELECT (.+) FROM "applied_coupons"`).
		WillReturnError(errors.New("connection reset by peer"))

	router := gin.New()
	router.POST("/payments/create-order", authAs("user-1"), CreatePaymentOrder(db, logger))

	w := performJSON(router, http.MethodPost, "/payments/create-order", gin.H{})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, gatewayHit, "no payment intent may be created for an unpriced cart")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyPayment_InvalidSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, _ := setupTestDB(t)
	logger := zaptest.NewLogger(t)

	t.Setenv("RAZORPAY_KEY_SECRET", "secret")

	router := gin.New()
	router.POST("/payments/verify", authAs("user-1"), VerifyPayment(db, logger))

	w := performJSON(router, http.MethodPost, "/payments/verify", gin.H{
		"gateway_order_id": "order_abc",
		"payment_id":       "pay_xyz",
		"signature":        "forged",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWebhook_RejectsMissingSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, _ := setupTestDB(t)
	logger := zaptest.NewLogger(t)

	t.Setenv("RAZORPAY_WEBHOOK_SECRET", "whsec")

	router := gin.New()
	router.POST("/payments/webhook", Webhook(db, logger))

	w := performJSON(router, http.MethodPost, "/payments/webhook", gin.H{
		"event": "payment.captured",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}
