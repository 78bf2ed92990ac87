package providers

import (
	"context"

	"github.com/Holotrica/stripe-backend/models"
)

// CheckoutProvider defines the interface a hosted-checkout processor must implement.
type CheckoutProvider interface {
	// CreateCheckoutSession opens a hosted payment page for the given line items.
	CreateCheckoutSession(ctx context.Context, req models.SessionRequest) (*models.CheckoutSession, error)
}
