package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Quadwinner/Alouora-sub000/models"
)

func TestMapOrderStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    models.OrderStatus
		wantErr bool
	}{
		{"pending", models.OrderStatusPending, false},
		{"CONFIRMED", models.OrderStatusConfirmed, false},
		{"Ready_To_Ship", models.OrderStatusReadyToShip, false},
		{"shipped", models.OrderStatusShipped, false},
		{"delivered", models.OrderStatusDelivered, false},
		{"returned", models.OrderStatusReturned, false},
		{"cancelled", models.OrderStatusCancelled, false},
		{"paid", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := mapOrderStatus(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		assert.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestMapPaymentStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    models.PaymentStatus
		wantErr bool
	}{
		{"pending", models.PaymentStatusPending, false},
		{"Paid", models.PaymentStatusPaid, false},
		{"failed", models.PaymentStatusFailed, false},
		{"refunded", models.PaymentStatusRefunded, false},
		{"confirmed", "", true},
	}
	for _, tt := range tests {
		got, err := mapPaymentStatus(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		assert.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestUpdateOrderStatus_RejectsUnknownStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// An unknown status never reaches the database, so a nil handle is safe.
	router := gin.New()
	router.PUT("/admin/orders/:id/status", UpdateOrderStatus(nil))

	var body bytes.Buffer
	json.NewEncoder(&body).Encode(gin.H{"status": "teleported"})
	req := httptest.NewRequest(http.MethodPut, "/admin/orders/1/status", &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid order status")
}
