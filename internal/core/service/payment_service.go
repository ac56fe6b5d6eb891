package service

import (
	"context"
	"fmt"

	"github.com/adubrov/boiler-parts/internal/core/domain"
	"github.com/adubrov/boiler-parts/internal/port"
)

type PaymentService struct {
	gateway port.PaymentGateway
}

func NewPaymentService(gateway port.PaymentGateway) *PaymentService {
	return &PaymentService{gateway: gateway}
}

// Make initiates a payment for the given amount in major units. The returned
// payment starts in the "pending" status; the confirmation URL sends the
// customer to the provider's checkout page.
func (s *PaymentService) Make(ctx context.Context, amount float64, description string) (*domain.Payment, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %v", domain.ErrInvalidArgument, amount)
	}

	return s.gateway.CreatePayment(ctx, amount, description)
}

// Check retrieves the current status of a previously created payment.
func (s *PaymentService) Check(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if paymentID == "" {
		return nil, fmt.Errorf("%w: empty payment id", domain.ErrInvalidArgument)
	}

	return s.gateway.GetPayment(ctx, paymentID)
}
