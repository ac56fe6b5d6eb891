package port

import (
	"context"

	"github.com/adubrov/boiler-parts/internal/core/domain"
)

// PaymentGateway is the outbound boundary to the payment provider.
type PaymentGateway interface {
	// CreatePayment registers a payment for the given amount (major units)
	// and returns the provider's view of it, status "pending" on success.
	CreatePayment(ctx context.Context, amount float64, description string) (*domain.Payment, error)

	// GetPayment retrieves the current state of a previously created
	// payment, domain.ErrPaymentNotFound when the provider does not know
	// the id.
	GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error)
}
