package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adubrov/boiler-parts/internal/core/domain"
)

func TestCreatePayment(t *testing.T) {
	var gotIdempotenceKeys []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/payments", r.URL.Path)

		shopID, secret, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "shop-1", shopID)
		assert.Equal(t, "secret-1", secret)

		gotIdempotenceKeys = append(gotIdempotenceKeys, r.Header.Get("Idempotence-Key"))

		var req createPaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "100.00", req.Amount.Value)
		assert.Equal(t, "RUB", req.Amount.Currency)
		assert.True(t, req.Capture)
		assert.Equal(t, "redirect", req.Confirmation.Type)
		assert.Equal(t, "http://localhost:3000/order", req.Confirmation.ReturnURL)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "2e8b1f5a",
			"status": "pending",
			"amount": {"value": "100.00", "currency": "RUB"},
			"description": "order #1",
			"confirmation": {"confirmation_url": "https://yookassa.test/checkout"}
		}`)
	}))
	defer srv.Close()

	gw := NewYooKassaGateway(srv.URL, "shop-1", "secret-1", "http://localhost:3000/order")

	payment, err := gw.CreatePayment(context.Background(), 100, "order #1")
	require.NoError(t, err)
	assert.Equal(t, "2e8b1f5a", payment.ID)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	assert.Equal(t, domain.PaymentAmount{Value: "100.00", Currency: "RUB"}, payment.Amount)
	assert.Equal(t, "https://yookassa.test/checkout", payment.ConfirmationURL)

	// Each create carries its own idempotence key.
	_, err = gw.CreatePayment(context.Background(), 100, "order #1")
	require.NoError(t, err)
	require.Len(t, gotIdempotenceKeys, 2)
	assert.NotEmpty(t, gotIdempotenceKeys[0])
	assert.NotEqual(t, gotIdempotenceKeys[0], gotIdempotenceKeys[1])
}

func TestGetPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)

		if r.URL.Path != "/payments/pay-1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "pay-1", "status": "succeeded", "amount": {"value": "100.00", "currency": "RUB"}}`)
	}))
	defer srv.Close()

	gw := NewYooKassaGateway(srv.URL, "shop-1", "secret-1", "")

	payment, err := gw.GetPayment(context.Background(), "pay-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusSucceeded, payment.Status)

	_, err = gw.GetPayment(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}
