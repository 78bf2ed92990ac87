package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientID_Unmarshal(t *testing.T) {
	cases := map[string]ClientID{
		`"b1"`:  "b1",
		`1`:     "1",
		`42`:    "42",
		`1.5`:   "1.5",
		`null`:  "",
		`""`:    "",
		`"007"`: "007",
	}
	for in, want := range cases {
		var id ClientID
		require.NoError(t, json.Unmarshal([]byte(in), &id), in)
		assert.Equal(t, want, id, in)
	}
}

func TestClientID_RejectsNonScalar(t *testing.T) {
	for _, in := range []string{`true`, `{"id":1}`, `[1]`} {
		var id ClientID
		assert.Error(t, json.Unmarshal([]byte(in), &id), in)
	}
}

func TestCheckoutRequest_NumericIDs(t *testing.T) {
	var req CheckoutRequest
	require.NoError(t, json.Unmarshal([]byte(`{"cart":[{"id":1,"price":2}],"userId":42}`), &req))
	require.Len(t, req.Cart, 1)
	assert.Equal(t, "1", req.Cart[0].ID.String())
	assert.Equal(t, "42", req.UserID.String())
}

func TestCheckoutRequest_MissingUserID(t *testing.T) {
	var req CheckoutRequest
	require.NoError(t, json.Unmarshal([]byte(`{"cart":[]}`), &req))
	assert.Equal(t, ClientID(""), req.UserID)
}
