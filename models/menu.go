package models

import "github.com/shopspring/decimal"

// MenuItem is one catalog entry. Items are loaded once at startup and never
// mutated afterwards; Price is only charged directly when the item has no
// sizes, otherwise the chosen size's price replaces it.
type MenuItem struct {
	ID          int64
	Category    string
	Name        string
	Price       decimal.Decimal
	Description string
	Allergens   string
	Sizes       []Size
	Styles      []Option // priced pizza-style variants (e.g. Calzone)
	FriesOpts   []Option // priced side variants for fries items

	IsPizza        bool
	IsBuildYourOwn bool
	IsPasta        bool
	NeedsSauce     bool // specialty items choosing from the general sauce list
	NeedsDressing  bool // salad items choosing from the dressing list
	HasFixedSauce  bool // ships with a fixed sauce, no choice required
	IsBeer         bool
}

// Size is a named price variant owned by exactly one MenuItem.
type Size struct {
	Name        string
	Price       decimal.Decimal
	Description string
}

// Option is a named choice that may carry its own price (styles, fries).
type Option struct {
	Name  string
	Price decimal.Decimal
}

// Ingredient is a build-your-own component from the catalog-global list.
// Unavailable ingredients are shown but cannot be selected.
type Ingredient struct {
	Name      string
	Available bool
}

const (
	CategoryPizza   = "pizza"
	CategoryPasta   = "pasta"
	CategorySalat   = "salat"
	CategorySnack   = "snack"
	CategoryGetrank = "getraenk"
)
