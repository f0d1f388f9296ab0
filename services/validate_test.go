package services

import (
	"reflect"
	"testing"

	"pizzeria-telegram/models"

	"github.com/shopspring/decimal"
)

func sizedPizza() models.MenuItem {
	return models.MenuItem{
		ID: 1, Name: "Pizza Salami", Category: models.CategoryPizza, IsPizza: true,
		Sizes: []models.Size{
			{Name: "Klein", Price: decimal.New(800, -2)},
			{Name: "Groß", Price: decimal.New(1250, -2)},
		},
	}
}

func wunschPizza() models.MenuItem {
	return models.MenuItem{
		ID: 2, Name: "Wunschpizza", Category: models.CategoryPizza,
		IsPizza: true, IsBuildYourOwn: true,
		Sizes: []models.Size{
			{Name: "Klein", Price: decimal.New(900, -2)},
			{Name: "Groß", Price: decimal.New(1350, -2)},
		},
	}
}

func TestNextRequirement(t *testing.T) {
	pasta := models.MenuItem{ID: 3, Name: "Pasta Pollo", IsPasta: true, Price: decimal.New(950, -2)}
	salad := models.MenuItem{ID: 4, Name: "Salat Italia", NeedsDressing: true, Price: decimal.New(750, -2)}
	specialty := models.MenuItem{ID: 5, Name: "Schnitzel", NeedsSauce: true, Price: decimal.New(1100, -2)}
	fixedSauce := models.MenuItem{ID: 6, Name: "Schnitzel Jäger Art", NeedsSauce: true, HasFixedSauce: true, Price: decimal.New(1150, -2)}
	beer := models.MenuItem{ID: 7, Name: "Bier 0,5l", IsBeer: true, Price: decimal.New(300, -2)}
	drink := models.MenuItem{ID: 8, Name: "Cola 1l", Price: decimal.New(250, -2)}

	tests := []struct {
		name string
		item models.MenuItem
		sel  models.Selection
		want Requirement
	}{
		{"sized item without size", sizedPizza(), models.Selection{}, RequirementSize},
		{"sized item with size", sizedPizza(), models.Selection{Size: "Groß"}, RequirementNone},
		{"size has precedence over ingredients", wunschPizza(), models.Selection{}, RequirementSize},
		{"pasta without type", pasta, models.Selection{}, RequirementPastaType},
		{"pasta with type", pasta, models.Selection{PastaType: "Penne"}, RequirementNone},
		{"salad without dressing", salad, models.Selection{}, RequirementSauce},
		{"salad with dressing", salad, models.Selection{Sauce: "Joghurt"}, RequirementNone},
		{"specialty without sauce", specialty, models.Selection{}, RequirementSauce},
		{"fixed sauce needs no choice", fixedSauce, models.Selection{}, RequirementNone},
		{"beer without choice", beer, models.Selection{}, RequirementBeer},
		{"beer with choice", beer, models.Selection{Beer: "Pils"}, RequirementNone},
		{"plain drink is always complete", drink, models.Selection{}, RequirementNone},
		{"wunsch with 3 ingredients", wunschPizza(), models.Selection{Size: "Klein", Ingredients: []string{"Salami", "Pilze", "Paprika"}}, RequirementIngredients},
		{"wunsch with 4 ingredients", wunschPizza(), models.Selection{Size: "Klein", Ingredients: []string{"Salami", "Pilze", "Paprika", "Zwiebeln"}}, RequirementNone},
		{"wunsch with 5th impossible but rejected", wunschPizza(), models.Selection{Size: "Klein", Ingredients: []string{"Salami", "Pilze", "Paprika", "Zwiebeln", "Mais"}}, RequirementIngredients},
		{"wunsch with duplicate ingredient", wunschPizza(), models.Selection{Size: "Klein", Ingredients: []string{"Salami", "Salami", "Paprika", "Zwiebeln"}}, RequirementIngredients},
		{"wunsch with sentinel alone", wunschPizza(), models.Selection{Size: "Klein", Ingredients: []string{NoIngredient}}, RequirementNone},
		{"wunsch with sentinel plus real", wunschPizza(), models.Selection{Size: "Klein", Ingredients: []string{NoIngredient, "Salami"}}, RequirementIngredients},
		{"extras never block", sizedPizza(), models.Selection{Size: "Klein", Extras: []string{"Käse"}}, RequirementNone},
	}
	for _, tt := range tests {
		got := NextRequirement(tt.item, tt.sel)
		if got != tt.want {
			t.Errorf("%s: NextRequirement = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsComplete(t *testing.T) {
	if IsComplete(sizedPizza(), models.Selection{}) {
		t.Error("sized pizza without size should be incomplete")
	}
	if !IsComplete(sizedPizza(), models.Selection{Size: "Klein"}) {
		t.Error("sized pizza with size should be complete")
	}
}

func TestToggleIngredient(t *testing.T) {
	tests := []struct {
		name    string
		current []string
		toggle  string
		want    []string
	}{
		{"add to empty", nil, "Salami", []string{"Salami"}},
		{"toggle off removes", []string{"Salami", "Pilze"}, "Salami", []string{"Pilze"}},
		{"sentinel clears real ingredients", []string{"Salami", "Pilze"}, NoIngredient, []string{NoIngredient}},
		{"real ingredient clears sentinel", []string{NoIngredient}, "Salami", []string{"Salami"}},
		{"sentinel toggles off", []string{NoIngredient}, NoIngredient, []string{}},
		{"fifth ingredient refused", []string{"A", "B", "C", "D"}, "E", []string{"A", "B", "C", "D"}},
	}
	for _, tt := range tests {
		got := ToggleIngredient(tt.current, tt.toggle)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: ToggleIngredient(%v, %q) = %v, want %v", tt.name, tt.current, tt.toggle, got, tt.want)
		}
	}
}

func TestToggleExtra(t *testing.T) {
	got := ToggleExtra(nil, "Käse")
	if !reflect.DeepEqual(got, []string{"Käse"}) {
		t.Fatalf("ToggleExtra add = %v", got)
	}
	got = ToggleExtra(got, "Käse")
	if len(got) != 0 {
		t.Errorf("ToggleExtra on present name should remove it, got %v", got)
	}
}
