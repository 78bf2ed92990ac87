package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Holotrica/stripe-backend/models"
	awspkg "github.com/Holotrica/stripe-backend/pkg/aws"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

var errMissingObject = errors.New("event has no data.object")

// WebhookService dispatches processor notifications by event kind.
type WebhookService interface {
	HandleEvent(ctx context.Context, event *models.NotificationEvent) *ServiceError
}

type webhookServiceImpl struct {
	snsClient   awspkg.SNSPublisher
	snsTopicArn string
	metrics     awspkg.MetricsRecorder
	logger      *zap.Logger
}

// NewWebhookService creates a new WebhookService. snsClient may be nil, in
// which case payment outcomes are only logged.
func NewWebhookService(
	snsClient awspkg.SNSPublisher,
	snsTopicArn string,
	metrics awspkg.MetricsRecorder,
	logger *zap.Logger,
) WebhookService {
	return &webhookServiceImpl{
		snsClient:   snsClient,
		snsTopicArn: snsTopicArn,
		metrics:     metrics,
		logger:      logger,
	}
}

// HandleEvent acts on a single notification. Events are trusted as received
// and replays are handled again.
func (s *webhookServiceImpl) HandleEvent(ctx context.Context, event *models.NotificationEvent) *ServiceError {
	kind := models.ParseEventKind(event.Type)

	switch kind {
	case models.EventCheckoutSessionCompleted:
		return s.handleCheckoutCompleted(ctx, event)
	case models.EventPaymentIntentFailed:
		return s.handlePaymentFailed(ctx, event)
	case models.EventUnknown:
		s.logger.Info("Unhandled event type",
			zap.String("event_type", event.Type),
			zap.String("event_id", event.ID),
		)
		recordCount(s.metrics, awspkg.MetricWebhookUnhandled, map[string]string{"EventType": event.Type})
		return nil
	}

	return NewProcessingError(fmt.Errorf("no handler for event kind %d", kind))
}

func (s *webhookServiceImpl) handleCheckoutCompleted(ctx context.Context, event *models.NotificationEvent) *ServiceError {
	var sess stripe.CheckoutSession
	if err := decodeObject(event, &sess); err != nil {
		s.logger.Error("Failed to decode checkout session", zap.String("event_id", event.ID), zap.Error(err))
		return NewProcessingError(err)
	}

	if sess.ID == "" {
		s.logger.Warn("Checkout session without id", zap.String("event_id", event.ID))
	}

	userID := sess.Metadata["userId"]
	s.logger.Info("Payment successful",
		zap.String("session_id", sess.ID),
		zap.String("event_id", event.ID),
		zap.String("user_id", userID),
		zap.Int64("amount_total", sess.AmountTotal),
	)
	recordCount(s.metrics, awspkg.MetricPaymentSucceeded, nil)

	s.publishEvent(ctx, models.PaymentEvent{
		Type:      "payment_succeeded",
		EventID:   event.ID,
		SessionID: sess.ID,
		UserID:    userID,
		Amount:    sess.AmountTotal,
		Currency:  string(sess.Currency),
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func (s *webhookServiceImpl) handlePaymentFailed(ctx context.Context, event *models.NotificationEvent) *ServiceError {
	var pi stripe.PaymentIntent
	if err := decodeObject(event, &pi); err != nil {
		s.logger.Error("Failed to decode payment intent", zap.String("event_id", event.ID), zap.Error(err))
		return NewProcessingError(err)
	}

	fields := []zap.Field{
		zap.String("payment_intent_id", pi.ID),
		zap.String("event_id", event.ID),
	}
	if pi.LastPaymentError != nil {
		fields = append(fields, zap.String("failure_message", pi.LastPaymentError.Msg))
	}
	s.logger.Info("Payment failed", fields...)
	recordCount(s.metrics, awspkg.MetricPaymentFailed, nil)

	s.publishEvent(ctx, models.PaymentEvent{
		Type:            "payment_failed",
		EventID:         event.ID,
		PaymentIntentID: pi.ID,
		UserID:          pi.Metadata["userId"],
		Amount:          pi.Amount,
		Currency:        string(pi.Currency),
		Timestamp:       time.Now().UTC(),
	})
	return nil
}

func decodeObject(event *models.NotificationEvent, out interface{}) error {
	raw := event.Data.Object
	if len(raw) == 0 || string(raw) == "null" {
		return errMissingObject
	}
	return json.Unmarshal(raw, out)
}

// publishEvent marshals an event and publishes it to SNS (non-fatal on error).
func (s *webhookServiceImpl) publishEvent(ctx context.Context, event models.PaymentEvent) {
	if s.snsClient == nil || s.snsTopicArn == "" {
		return
	}
	b, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to marshal payment event", zap.Error(err))
		return
	}
	if err := s.snsClient.Publish(ctx, s.snsTopicArn, b); err != nil {
		s.logger.Error("Failed to publish payment event to SNS",
			zap.String("event_type", event.Type),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("Payment event published to SNS", zap.String("event_type", event.Type))
}
