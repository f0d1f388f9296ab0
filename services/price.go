package services

import (
	"pizzeria-telegram/models"

	"github.com/shopspring/decimal"
)

// ExtraPrice is the flat surcharge for every extra, item-independent.
var ExtraPrice = decimal.New(150, -2) // 1,50 €

// UnitPrice computes the price of one unit of item under the given selection.
// The result is frozen onto the order line at add time; rounding happens only
// when formatting, never here.
func UnitPrice(item models.MenuItem, sel models.Selection) decimal.Decimal {
	base := item.Price
	if len(item.Sizes) > 0 {
		base = item.Sizes[0].Price
		for _, s := range item.Sizes {
			if s.Name == sel.Size {
				base = s.Price
				break
			}
		}
	}

	price := base
	if n := len(sel.Extras); n > 0 {
		price = price.Add(ExtraPrice.Mul(decimal.NewFromInt(int64(n))))
	}
	price = price.Add(optionPrice(item.Styles, sel.PizzaStyle))
	price = price.Add(optionPrice(item.FriesOpts, sel.Fries))
	// Pasta type, sauce, dressing and beer choices carry no price delta.
	return price
}

func optionPrice(opts []models.Option, name string) decimal.Decimal {
	if name == "" {
		return decimal.Zero
	}
	for _, o := range opts {
		if o.Name == name && o.Price.IsPositive() {
			return o.Price
		}
	}
	return decimal.Zero
}

// FormatPrice renders a price for display, German style: "12,50 €".
// This is the only place 2-decimal rounding is applied.
func FormatPrice(p decimal.Decimal) string {
	s := p.StringFixed(2)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			s = s[:i] + "," + s[i+1:]
			break
		}
	}
	return s + " €"
}

// Cents converts a decimal price to integer cents for DB rows.
func Cents(p decimal.Decimal) int64 {
	return p.Shift(2).Round(0).IntPart()
}

func centsToDecimal(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}
