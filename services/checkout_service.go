package services

import (
	"context"

	"github.com/Holotrica/stripe-backend/models"
	awspkg "github.com/Holotrica/stripe-backend/pkg/aws"
	"github.com/Holotrica/stripe-backend/providers"
	"go.uber.org/zap"
)

// CheckoutService turns a cart into a hosted checkout session.
type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, *ServiceError)
}

type checkoutServiceImpl struct {
	provider   providers.CheckoutProvider
	successURL string
	cancelURL  string
	metrics    awspkg.MetricsRecorder
	logger     *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	provider providers.CheckoutProvider,
	successURL string,
	cancelURL string,
	metrics awspkg.MetricsRecorder,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		provider:   provider,
		successURL: successURL,
		cancelURL:  cancelURL,
		metrics:    metrics,
		logger:     logger,
	}
}

// CreateCheckoutSession validates the cart, maps it to line items and asks the
// provider for a session. Provider errors are logged and replaced with a
// generic message.
func (s *checkoutServiceImpl) CreateCheckoutSession(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, *ServiceError) {
	if len(req.Cart) == 0 {
		return nil, NewValidationError(msgCartEmpty)
	}

	lineItems, svcErr := BuildLineItems(req.Cart)
	if svcErr != nil {
		s.logger.Warn("Rejected cart", zap.Stringer("user_id", req.UserID), zap.String("reason", svcErr.Message))
		return nil, svcErr
	}

	metadata := map[string]string{}
	if req.UserID != "" {
		metadata["userId"] = req.UserID.String()
	}

	sess, err := s.provider.CreateCheckoutSession(ctx, models.SessionRequest{
		LineItems:  lineItems,
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
		Metadata:   metadata,
	})
	if err != nil {
		s.logger.Error("Error creating checkout session",
			zap.Stringer("user_id", req.UserID),
			zap.Int("line_items", len(lineItems)),
			zap.Error(err),
		)
		recordCount(s.metrics, awspkg.MetricCheckoutSessionsFailed, nil)
		return nil, NewUpstreamError(err)
	}

	s.logger.Info("Checkout session created",
		zap.String("session_id", sess.ID),
		zap.Stringer("user_id", req.UserID),
		zap.Int("line_items", len(lineItems)),
	)
	recordCount(s.metrics, awspkg.MetricCheckoutSessionsCreated, nil)

	return &models.CheckoutResponse{URL: sess.URL}, nil
}
