package services

import "pizzeria-telegram/models"

// NoIngredient is the reserved "no ingredient" choice for build-your-own
// items. It is mutually exclusive with every real ingredient.
const NoIngredient = "ohne Zutat"

// WunschIngredients is how many distinct real ingredients a build-your-own
// item needs when the sentinel is not chosen.
const WunschIngredients = 4

// Requirement names the single next selection an item still needs before it
// may be added to the cart.
type Requirement int

const (
	RequirementNone Requirement = iota
	RequirementSize
	RequirementPastaType
	RequirementSauce
	RequirementBeer
	RequirementIngredients
)

func (r Requirement) String() string {
	switch r {
	case RequirementNone:
		return "none"
	case RequirementSize:
		return "size"
	case RequirementPastaType:
		return "pasta_type"
	case RequirementSauce:
		return "sauce"
	case RequirementBeer:
		return "beer"
	case RequirementIngredients:
		return "ingredients"
	}
	return "unknown"
}

// NextRequirement reports the first unmet requirement for the given item and
// selection state, in fixed precedence order, or RequirementNone when the
// selection is complete. It is pure and safe to call against partial state
// after every selection step.
func NextRequirement(item models.MenuItem, sel models.Selection) Requirement {
	if len(item.Sizes) > 0 && sel.Size == "" {
		return RequirementSize
	}
	if item.IsPasta && sel.PastaType == "" {
		return RequirementPastaType
	}
	if (item.NeedsSauce || item.NeedsDressing) && !item.HasFixedSauce && sel.Sauce == "" {
		return RequirementSauce
	}
	if item.IsBeer && sel.Beer == "" {
		return RequirementBeer
	}
	if item.IsBuildYourOwn && !ingredientsComplete(sel.Ingredients) {
		return RequirementIngredients
	}
	// Extras never block completeness.
	return RequirementNone
}

// IsComplete reports whether the selection may become an order line.
func IsComplete(item models.MenuItem, sel models.Selection) bool {
	return NextRequirement(item, sel) == RequirementNone
}

// ingredientsComplete: exactly 4 distinct real ingredients, or the sentinel
// alone. Anything else is incomplete.
func ingredientsComplete(ingredients []string) bool {
	if len(ingredients) == 1 && ingredients[0] == NoIngredient {
		return true
	}
	if len(ingredients) != WunschIngredients {
		return false
	}
	seen := make(map[string]bool, len(ingredients))
	for _, name := range ingredients {
		if name == NoIngredient || seen[name] {
			return false
		}
		seen[name] = true
	}
	return true
}

// ToggleIngredient adds or removes one ingredient choice and returns the new
// list. Sentinel exclusivity is enforced here, at selection time: picking the
// sentinel clears all real ingredients, picking a real ingredient clears the
// sentinel. A fifth real ingredient is refused.
func ToggleIngredient(current []string, name string) []string {
	for i, n := range current {
		if n == name {
			return append(append([]string{}, current[:i]...), current[i+1:]...)
		}
	}
	if name == NoIngredient {
		return []string{NoIngredient}
	}
	out := make([]string, 0, len(current)+1)
	for _, n := range current {
		if n != NoIngredient {
			out = append(out, n)
		}
	}
	if len(out) >= WunschIngredients {
		return out
	}
	return append(out, name)
}

// ToggleExtra adds or removes one extra. Duplicates are impossible since a
// second pick of the same name removes it.
func ToggleExtra(current []string, name string) []string {
	for i, n := range current {
		if n == name {
			return append(append([]string{}, current[:i]...), current[i+1:]...)
		}
	}
	return append(append([]string{}, current...), name)
}
