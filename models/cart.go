package models

import "github.com/shopspring/decimal"

// Selection is the raw configuration a customer has picked for one item.
// All fields are optional; the validator decides which ones the item needs.
type Selection struct {
	Size        string   `json:"size,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Extras      []string `json:"extras,omitempty"`
	PastaType   string   `json:"pasta_type,omitempty"`
	Sauce       string   `json:"sauce,omitempty"`
	Beer        string   `json:"beer,omitempty"`
	PizzaStyle  string   `json:"pizza_style,omitempty"`
	Fries       string   `json:"fries,omitempty"`
}

// OrderLine is one configured, priced, quantified cart entry. UnitPrice is
// resolved when the line is created and never recomputed, so later catalog
// changes do not touch existing lines.
type OrderLine struct {
	ItemID    int64           `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"qty"`
	Selection Selection       `json:"selection"`
}

// Total returns UnitPrice * Quantity with exact decimal arithmetic.
func (l OrderLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
