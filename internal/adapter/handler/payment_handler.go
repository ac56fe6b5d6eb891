package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/adubrov/boiler-parts/internal/core/domain"
	"github.com/adubrov/boiler-parts/internal/core/service"
)

type PaymentHandler struct {
	payments *service.PaymentService
}

func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Make handles POST /payment with body {"amount": N, "description": "..."}.
func (h *PaymentHandler) Make(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrInvalidArgument))
		return
	}

	payment, err := h.payments.Make(r.Context(), req.Amount, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

// Info handles POST /payment/info with body {"paymentId": "..."}.
func (h *PaymentHandler) Info(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentID string `json:"paymentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrInvalidArgument))
		return
	}

	payment, err := h.payments.Check(r.Context(), req.PaymentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}
