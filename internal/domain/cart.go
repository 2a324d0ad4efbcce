package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// SelectedAddon is an add-on choice captured on a cart line. The price is
// snapshotted at selection time so later catalog edits do not reprice lines.
type SelectedAddon struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CartLine is one row in the cart: a product plus a specific add-on selection
// and quantity. LineID is the stable key for quantity updates; ProductID alone
// is not unique because the same product may appear with different add-ons.
type CartLine struct {
	LineID    string          `json:"line_id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Addons    []SelectedAddon `json:"addons,omitempty"`
}

// AddonKey returns an order-independent fingerprint of an add-on selection.
// Two lines with the same product and the same key are the same cart line.
func AddonKey(addons []SelectedAddon) string {
	if len(addons) == 0 {
		return ""
	}
	ids := make([]string, 0, len(addons))
	for _, a := range addons {
		ids = append(ids, a.ID)
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

// Matches reports whether the line would merge with an addition of the given
// product and add-on selection.
func (l CartLine) Matches(productID string, addons []SelectedAddon) bool {
	return l.ProductID == productID && AddonKey(l.Addons) == AddonKey(addons)
}
