package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ClientID is an identifier the client owns and the service only forwards.
// Browsers send product and user ids as either strings or numbers, so both
// decode; a number keeps its literal text ("1", not "1.0").
type ClientID string

func (id *ClientID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ClientID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ClientID(n.String())
	return nil
}

func (id ClientID) String() string {
	return string(id)
}

// CartItem is one entry of the client's cart. Price accepts either a JSON
// string ("19.99") or a JSON number (19.99); it is invalid when absent or null.
type CartItem struct {
	ID       ClientID            `json:"id"`
	Name     string              `json:"name"`
	Cover    string              `json:"cover"`
	Price    decimal.NullDecimal `json:"price"`
	Quantity int64               `json:"quantity"` // 0 or absent means 1
}

// CheckoutRequest is the payload for POST /api/create-checkout-session.
type CheckoutRequest struct {
	Cart   []CartItem `json:"cart"`
	UserID ClientID   `json:"userId"`
}

// CheckoutResponse carries the hosted checkout page the client redirects to.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// LineItem is the processor-facing projection of a CartItem.
type LineItem struct {
	Currency    string
	ProductName string
	Images      []string
	Metadata    map[string]string
	UnitAmount  int64 // minor currency units (cents)
	Quantity    int64
}

// SessionRequest holds everything the processor needs to open a checkout session.
type SessionRequest struct {
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// CheckoutSession is the processor-created session. Only URL is handed back
// to the client.
type CheckoutSession struct {
	ID  string
	URL string
}
