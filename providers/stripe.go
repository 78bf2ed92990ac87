package providers

import (
	"context"
	"fmt"

	"github.com/Holotrica/stripe-backend/models"
	"github.com/stripe/stripe-go/v80"
	checkoutsession "github.com/stripe/stripe-go/v80/checkout/session"
)

// StripeProvider implements CheckoutProvider using Stripe Checkout.
type StripeProvider struct {
	sessions *checkoutsession.Client
}

// NewStripeProvider creates a StripeProvider bound to secretKey. The key is
// kept on the client rather than in the package-level stripe.Key.
func NewStripeProvider(secretKey string) *StripeProvider {
	return NewStripeProviderWithBackend(secretKey, stripe.GetBackend(stripe.APIBackend))
}

// NewStripeProviderWithBackend lets callers point the provider at a
// non-default API backend.
func NewStripeProviderWithBackend(secretKey string, backend stripe.Backend) *StripeProvider {
	return &StripeProvider{
		sessions: &checkoutsession.Client{B: backend, Key: secretKey},
	}
}

// CreateCheckoutSession creates a card-only session in payment mode.
func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, req models.SessionRequest) (*models.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          toStripeLineItems(req.LineItems),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := p.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe CreateCheckoutSession: %w", err)
	}

	return &models.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func toStripeLineItems(items []models.LineItem) []*stripe.CheckoutSessionLineItemParams {
	out := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, li := range items {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:     stripe.String(li.ProductName),
			Metadata: li.Metadata,
		}
		// An empty (non-nil) slice would be sent as an explicit empty value.
		if len(li.Images) > 0 {
			product.Images = stripe.StringSlice(li.Images)
		}

		out = append(out, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(li.Currency),
				ProductData: product,
				UnitAmount:  stripe.Int64(li.UnitAmount),
			},
			Quantity: stripe.Int64(li.Quantity),
		})
	}
	return out
}
