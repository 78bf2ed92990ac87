package models

import (
	"encoding/json"
	"time"
)

// EventKind is the closed set of processor notifications the receiver knows
// how to act on.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventCheckoutSessionCompleted
	EventPaymentIntentFailed
)

const (
	eventTypeCheckoutSessionCompleted = "checkout.session.completed"
	eventTypePaymentIntentFailed      = "payment_intent.payment_failed"
)

// ParseEventKind maps a processor event type onto an EventKind. Anything not
// recognised is EventUnknown.
func ParseEventKind(eventType string) EventKind {
	switch eventType {
	case eventTypeCheckoutSessionCompleted:
		return EventCheckoutSessionCompleted
	case eventTypePaymentIntentFailed:
		return EventPaymentIntentFailed
	default:
		return EventUnknown
	}
}

func (k EventKind) String() string {
	switch k {
	case EventCheckoutSessionCompleted:
		return eventTypeCheckoutSessionCompleted
	case EventPaymentIntentFailed:
		return eventTypePaymentIntentFailed
	default:
		return "unknown"
	}
}

// PaymentEvent is published to SNS when a payment outcome arrives.
type PaymentEvent struct {
	Type            string    `json:"type"` // "payment_succeeded" or "payment_failed"
	EventID         string    `json:"event_id"`
	SessionID       string    `json:"session_id,omitempty"`
	PaymentIntentID string    `json:"payment_intent_id,omitempty"`
	UserID          string    `json:"user_id,omitempty"`
	Amount          int64     `json:"amount"`   // smallest currency unit
	Currency        string    `json:"currency"` // "usd"
	Timestamp       time.Time `json:"timestamp"`
}

// NotificationEvent is the envelope of an inbound processor notification.
// Only Type is required; Data.Object is decoded per event kind.
type NotificationEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}
