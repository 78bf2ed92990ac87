package services

import (
	"context"
	"time"

	awspkg "github.com/Holotrica/stripe-backend/pkg/aws"
)

// recordCount pushes a counter off the request path.
func recordCount(m awspkg.MetricsRecorder, name string, dims map[string]string) {
	if m == nil || !m.IsEnabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = m.RecordCount(ctx, name, dims)
	}()
}
