package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Holotrica/stripe-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v80"
)

// newTestProvider points a StripeProvider at a local server standing in for
// api.stripe.com.
func newTestProvider(t *testing.T, handler http.HandlerFunc) *StripeProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripeProviderWithBackend("sk_test_123", backend)
}

func sampleSessionRequest() models.SessionRequest {
	return models.SessionRequest{
		LineItems: []models.LineItem{
			{
				Currency:    "usd",
				ProductName: "Book",
				Images:      []string{"c.png"},
				Metadata:    map[string]string{"productId": "b1"},
				UnitAmount:  1999,
				Quantity:    2,
			},
		},
		SuccessURL: "http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "http://localhost:3000/cart",
		Metadata:   map[string]string{"userId": "user-42"},
	}
}

func TestCreateCheckoutSession_SendsExpectedParams(t *testing.T) {
	var form map[string]string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/checkout/sessions"), r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		assert.NoError(t, r.ParseForm())
		form = make(map[string]string)
		for k, v := range r.PostForm {
			form[k] = v[0]
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
	})

	sess, err := p.CreateCheckoutSession(context.Background(), sampleSessionRequest())
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", sess.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", sess.URL)

	assert.Equal(t, "payment", form["mode"])
	assert.Equal(t, "card", form["payment_method_types[0]"])
	assert.Equal(t, "http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}", form["success_url"])
	assert.Equal(t, "http://localhost:3000/cart", form["cancel_url"])
	assert.Equal(t, "user-42", form["metadata[userId]"])
	assert.Equal(t, "usd", form["line_items[0][price_data][currency]"])
	assert.Equal(t, "1999", form["line_items[0][price_data][unit_amount]"])
	assert.Equal(t, "Book", form["line_items[0][price_data][product_data][name]"])
	assert.Equal(t, "c.png", form["line_items[0][price_data][product_data][images][0]"])
	assert.Equal(t, "b1", form["line_items[0][price_data][product_data][metadata][productId]"])
	assert.Equal(t, "2", form["line_items[0][quantity]"])
}

func TestCreateCheckoutSession_APIError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Not a valid URL"}}`))
	})

	sess, err := p.CreateCheckoutSession(context.Background(), sampleSessionRequest())
	assert.Nil(t, sess)
	require.Error(t, err)

	var stripeErr *stripe.Error
	assert.ErrorAs(t, err, &stripeErr)
}
