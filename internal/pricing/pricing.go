// Package pricing computes cart totals. Everything here is pure: same lines
// and fee in, same totals out.
package pricing

import (
	"scoopdash/internal/domain"

	"github.com/shopspring/decimal"
)

// taxRate is a flat 8%, not configurable per line or category.
var taxRate = decimal.NewFromFloat(0.08)

// DefaultDeliveryFee applies when no delivery location has been selected.
var DefaultDeliveryFee = decimal.NewFromInt(150)

type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
	ItemCount   int             `json:"item_count"`
}

// Compute derives totals for the given cart lines and delivery fee. All money
// figures are rounded to 2 decimal places.
func Compute(lines []domain.CartLine, deliveryFee decimal.Decimal) Totals {
	subtotal := decimal.Zero
	count := 0
	for _, line := range lines {
		unit := line.UnitPrice
		for _, a := range line.Addons {
			unit = unit.Add(a.Price)
		}
		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
		count += line.Quantity
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(deliveryFee).Add(tax).Round(2)
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee.Round(2),
		Tax:         tax,
		Total:       total,
		ItemCount:   count,
	}
}

// LineTotal is the per-line amount: (unit price + add-ons) x quantity.
func LineTotal(line domain.CartLine) decimal.Decimal {
	unit := line.UnitPrice
	for _, a := range line.Addons {
		unit = unit.Add(a.Price)
	}
	return unit.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
}
