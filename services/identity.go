package services

import (
	"sort"
	"strings"

	"pizzeria-telegram/models"
)

// noneToken marks an unselected single-choice field in a LineKey.
const noneToken = "-"

// setSep joins set fields inside a LineKey. Menu names are human text and
// never contain control characters, so the unit separator cannot collide.
const setSep = "\x1f"

// LineKey is the canonical identity of a cart line: two selection bundles
// describe the same line iff their keys are equal. It is a comparable struct
// rather than a concatenated string, so field boundaries cannot collide.
type LineKey struct {
	ItemID      int64
	Size        string
	PastaType   string
	Sauce       string
	Beer        string
	PizzaStyle  string
	Fries       string
	Ingredients string // sorted set
	Extras      string // sorted set
}

// ResolveKey normalizes an item id and selection into its LineKey. Single
// choices compare by name with absence mapped to a fixed token; ingredient
// and extras lists compare as sets, order-independent.
func ResolveKey(itemID int64, sel models.Selection) LineKey {
	return LineKey{
		ItemID:      itemID,
		Size:        orNone(sel.Size),
		PastaType:   orNone(sel.PastaType),
		Sauce:       orNone(sel.Sauce),
		Beer:        orNone(sel.Beer),
		PizzaStyle:  orNone(sel.PizzaStyle),
		Fries:       orNone(sel.Fries),
		Ingredients: sortedSet(sel.Ingredients),
		Extras:      sortedSet(sel.Extras),
	}
}

func orNone(name string) string {
	if name == "" {
		return noneToken
	}
	return name
}

func sortedSet(names []string) string {
	if len(names) == 0 {
		return noneToken
	}
	sorted := append([]string{}, names...)
	sort.Strings(sorted)
	return strings.Join(sorted, setSep)
}
