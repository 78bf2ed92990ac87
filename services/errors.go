package services

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies failures at the handler boundary.
type ErrorKind string

const (
	KindValidation ErrorKind = "ValidationError"
	KindUpstream   ErrorKind = "UpstreamError"
	KindProcessing ErrorKind = "ProcessingError"
)

const (
	msgCheckoutFailed  = "Failed to create checkout session"
	msgWebhookFailed   = "Webhook processing failed"
	msgCartEmpty       = "Cart is empty"
	msgInvalidPriceFmt = "Invalid price for item %s"
	msgInvalidQtyFmt   = "Invalid quantity for item %s"
)

// ServiceError is a typed error with an HTTP status code. Message is safe to
// return to the client; Err carries the detail that is only logged.
type ServiceError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error { return e.Err }

func NewValidationError(msg string) *ServiceError {
	return &ServiceError{Kind: KindValidation, StatusCode: http.StatusBadRequest, Message: msg}
}

func NewUpstreamError(err error) *ServiceError {
	return &ServiceError{Kind: KindUpstream, StatusCode: http.StatusInternalServerError, Message: msgCheckoutFailed, Err: err}
}

func NewProcessingError(err error) *ServiceError {
	return &ServiceError{Kind: KindProcessing, StatusCode: http.StatusInternalServerError, Message: msgWebhookFailed, Err: err}
}
