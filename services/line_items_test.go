package services

import (
	"encoding/json"
	"testing"

	"github.com/Holotrica/stripe-backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"19.99", 1999},
		{"5", 500},
		{"0", 0},
		{"0.01", 1},
		{"1.005", 101},
		{"0.125", 13},
		{"0.124", 12},
		{"2.675", 268},
		{"1234.5", 123450},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ToMinorUnits(decimal.RequireFromString(tc.in)), tc.in)
	}
}

func TestBuildLineItems_MapsItem(t *testing.T) {
	items, svcErr := BuildLineItems([]models.CartItem{
		{ID: "b1", Name: "Book", Cover: "c.png", Price: price("19.99"), Quantity: 2},
	})
	require.Nil(t, svcErr)
	require.Len(t, items, 1)

	li := items[0]
	assert.Equal(t, int64(1999), li.UnitAmount)
	assert.Equal(t, int64(2), li.Quantity)
	assert.Equal(t, "usd", li.Currency)
	assert.Equal(t, "Book", li.ProductName)
	assert.Equal(t, []string{"c.png"}, li.Images)
	assert.Equal(t, "b1", li.Metadata["productId"])
}

func TestBuildLineItems_DefaultsQuantity(t *testing.T) {
	items, svcErr := BuildLineItems([]models.CartItem{
		{ID: "b2", Name: "X", Cover: "y", Price: price("5")},
	})
	require.Nil(t, svcErr)
	assert.Equal(t, int64(1), items[0].Quantity)
	assert.Equal(t, int64(500), items[0].UnitAmount)
}

func TestBuildLineItems_PreservesOrderAndLength(t *testing.T) {
	cart := []models.CartItem{
		{ID: "a", Price: price("1.10")},
		{ID: "b", Price: price("2.20"), Quantity: 3},
		{ID: "c", Price: price("0.99")},
	}
	items, svcErr := BuildLineItems(cart)
	require.Nil(t, svcErr)
	require.Len(t, items, len(cart))

	for i, it := range cart {
		assert.Equal(t, it.ID.String(), items[i].Metadata["productId"])
		assert.Equal(t, ToMinorUnits(it.Price.Decimal), items[i].UnitAmount)
	}
}

func TestBuildLineItems_NoCover(t *testing.T) {
	items, svcErr := BuildLineItems([]models.CartItem{{ID: "a", Price: price("1")}})
	require.Nil(t, svcErr)
	assert.Empty(t, items[0].Images)
}

func TestBuildLineItems_RejectsNegativePrice(t *testing.T) {
	_, svcErr := BuildLineItems([]models.CartItem{{ID: "bad", Price: price("-1.00")}})
	require.NotNil(t, svcErr)
	assert.Equal(t, KindValidation, svcErr.Kind)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Equal(t, "Invalid price for item bad", svcErr.Message)
}

func TestBuildLineItems_PriceUpperBound(t *testing.T) {
	items, svcErr := BuildLineItems([]models.CartItem{{ID: "max", Price: price("999999.99")}})
	require.Nil(t, svcErr)
	assert.Equal(t, int64(99999999), items[0].UnitAmount)

	for _, p := range []string{"1000000", "999999.995", "100000000000000000"} {
		_, svcErr := BuildLineItems([]models.CartItem{{ID: "huge", Price: price(p)}})
		require.NotNil(t, svcErr, p)
		assert.Equal(t, KindValidation, svcErr.Kind, p)
		assert.Equal(t, "Invalid price for item huge", svcErr.Message, p)
	}
}

func TestBuildLineItems_RejectsMissingPrice(t *testing.T) {
	_, svcErr := BuildLineItems([]models.CartItem{{ID: "none"}})
	require.NotNil(t, svcErr)
	assert.Equal(t, "Invalid price for item none", svcErr.Message)
}

func TestBuildLineItems_RejectsNegativeQuantity(t *testing.T) {
	_, svcErr := BuildLineItems([]models.CartItem{{ID: "q", Price: price("1"), Quantity: -2}})
	require.NotNil(t, svcErr)
	assert.Equal(t, "Invalid quantity for item q", svcErr.Message)
}

func TestCartItem_PriceAcceptsStringOrNumber(t *testing.T) {
	var cart []models.CartItem
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"s","price":"19.99"},{"id":"n","price":19.99}]`), &cart))

	items, svcErr := BuildLineItems(cart)
	require.Nil(t, svcErr)
	assert.Equal(t, int64(1999), items[0].UnitAmount)
	assert.Equal(t, int64(1999), items[1].UnitAmount)
}
