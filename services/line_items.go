package services

import (
	"fmt"

	"github.com/Holotrica/stripe-backend/models"
	"github.com/shopspring/decimal"
)

const currencyUSD = "usd"

var (
	centsPerUnit = decimal.NewFromInt(100)

	// Stripe refuses unit amounts above eight digits.
	maxUnitAmount = decimal.NewFromInt(99999999)
)

// ToMinorUnits converts a decimal price into integer cents. The multiplication
// is exact and the result rounds half away from zero, so 1.005 becomes 101.
func ToMinorUnits(price decimal.Decimal) int64 {
	return scaleToMinor(price).IntPart()
}

func scaleToMinor(price decimal.Decimal) decimal.Decimal {
	return price.Mul(centsPerUnit).Round(0)
}

// validPrice reports whether price is present, non-negative and small enough
// to be charged as a single unit.
func validPrice(price decimal.NullDecimal) bool {
	if !price.Valid || price.Decimal.IsNegative() {
		return false
	}
	return !scaleToMinor(price.Decimal).GreaterThan(maxUnitAmount)
}

// BuildLineItems maps cart items onto processor line items, preserving order.
// A zero quantity is treated as absent and defaults to 1. Prices must fit
// in Stripe's unit amount range once converted to cents.
func BuildLineItems(cart []models.CartItem) ([]models.LineItem, *ServiceError) {
	items := make([]models.LineItem, 0, len(cart))
	for _, it := range cart {
		if !validPrice(it.Price) {
			return nil, NewValidationError(fmt.Sprintf(msgInvalidPriceFmt, it.ID))
		}
		if it.Quantity < 0 {
			return nil, NewValidationError(fmt.Sprintf(msgInvalidQtyFmt, it.ID))
		}

		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}

		var images []string
		if it.Cover != "" {
			images = []string{it.Cover}
		}

		items = append(items, models.LineItem{
			Currency:    currencyUSD,
			ProductName: it.Name,
			Images:      images,
			Metadata:    map[string]string{"productId": it.ID.String()},
			UnitAmount:  ToMinorUnits(it.Price.Decimal),
			Quantity:    qty,
		})
	}
	return items, nil
}
