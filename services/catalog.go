package services

import (
	"context"
	"fmt"

	"pizzeria-telegram/db"
	"pizzeria-telegram/models"

	"github.com/shopspring/decimal"
)

// Catalog holds the full menu plus the catalog-global option lists. It is
// built once at startup and read-only afterwards.
type Catalog struct {
	items       map[int64]models.MenuItem
	menuOrder   []int64 // item ids in menu order, for category listings
	extras      []string
	ingredients []models.Ingredient
	pastaTypes  []string
	sauces      []string
	dressings   []string
	beers       []string
}

// NewCatalog assembles a catalog from already-loaded data. LoadCatalog uses
// it after scanning the DB; tests use it with literal fixtures.
func NewCatalog(items []models.MenuItem, extras []string, ingredients []models.Ingredient, pastaTypes, sauces, dressings, beers []string) *Catalog {
	c := &Catalog{
		items:       make(map[int64]models.MenuItem, len(items)),
		extras:      extras,
		ingredients: ingredients,
		pastaTypes:  pastaTypes,
		sauces:      sauces,
		dressings:   dressings,
		beers:       beers,
	}
	for _, it := range items {
		c.items[it.ID] = it
		c.menuOrder = append(c.menuOrder, it.ID)
	}
	return c
}

func (c *Catalog) ItemByID(id int64) (models.MenuItem, bool) {
	it, ok := c.items[id]
	return it, ok
}

func (c *Catalog) ItemsByCategory(category string) []models.MenuItem {
	var out []models.MenuItem
	for _, id := range c.menuOrder {
		if it := c.items[id]; it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

func (c *Catalog) Extras() []string                 { return c.extras }
func (c *Catalog) Ingredients() []models.Ingredient { return c.ingredients }
func (c *Catalog) PastaTypes() []string             { return c.pastaTypes }
func (c *Catalog) Beers() []string                  { return c.beers }

// SauceOptionsFor returns the option list an item's sauce choice draws from:
// salads use the dressing list, other specialty items the general sauce list.
func (c *Catalog) SauceOptionsFor(item models.MenuItem) []string {
	if item.NeedsDressing {
		return c.dressings
	}
	return c.sauces
}

// IngredientAvailable reports whether name is a selectable ingredient. The
// sentinel is always selectable.
func (c *Catalog) IngredientAvailable(name string) bool {
	if name == NoIngredient {
		return true
	}
	for _, ing := range c.ingredients {
		if ing.Name == name {
			return ing.Available
		}
	}
	return false
}

// LoadCatalog reads the whole menu from Postgres. Prices live as integer
// cents in the DB and become decimals exactly once, here.
func LoadCatalog(ctx context.Context) (*Catalog, error) {
	items, err := loadMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load menu items: %w", err)
	}
	extras, err := loadNames(ctx, `SELECT name FROM extras ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("load extras: %w", err)
	}
	ingredients, err := loadIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ingredients: %w", err)
	}
	lists := map[string][]string{}
	for _, cat := range []string{"pasta", "sauce", "dressing", "beer"} {
		names, err := loadNames(ctx, `SELECT name FROM variant_options WHERE category = $1 ORDER BY id`, cat)
		if err != nil {
			return nil, fmt.Errorf("load %s options: %w", cat, err)
		}
		lists[cat] = names
	}
	return NewCatalog(items, extras, ingredients,
		lists["pasta"], lists["sauce"], lists["dressing"], lists["beer"]), nil
}

func loadMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, category, name, price_cents, description, allergens,
		       is_pizza, is_build_your_own, is_pasta,
		       needs_sauce, needs_dressing, has_fixed_sauce, is_beer
		FROM menu_items
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var it models.MenuItem
		var cents int64
		if err := rows.Scan(&it.ID, &it.Category, &it.Name, &cents, &it.Description, &it.Allergens,
			&it.IsPizza, &it.IsBuildYourOwn, &it.IsPasta,
			&it.NeedsSauce, &it.NeedsDressing, &it.HasFixedSauce, &it.IsBeer); err != nil {
			return nil, err
		}
		it.Price = decimal.New(cents, -2)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byID := make(map[int64]int, len(items))
	for i, it := range items {
		byID[it.ID] = i
	}
	if err := loadSizes(ctx, items, byID); err != nil {
		return nil, err
	}
	if err := loadItemOptions(ctx, items, byID); err != nil {
		return nil, err
	}
	return items, nil
}

func loadSizes(ctx context.Context, items []models.MenuItem, byID map[int64]int) error {
	rows, err := db.Pool.Query(ctx, `
		SELECT item_id, name, price_cents, description FROM sizes
		ORDER BY item_id, position`,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var itemID, cents int64
		var s models.Size
		if err := rows.Scan(&itemID, &s.Name, &cents, &s.Description); err != nil {
			return err
		}
		s.Price = decimal.New(cents, -2)
		if i, ok := byID[itemID]; ok {
			items[i].Sizes = append(items[i].Sizes, s)
		}
	}
	return rows.Err()
}

func loadItemOptions(ctx context.Context, items []models.MenuItem, byID map[int64]int) error {
	rows, err := db.Pool.Query(ctx, `
		SELECT item_id, kind, name, price_cents FROM item_options
		ORDER BY item_id, id`,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var itemID, cents int64
		var kind string
		var o models.Option
		if err := rows.Scan(&itemID, &kind, &o.Name, &cents); err != nil {
			return err
		}
		o.Price = decimal.New(cents, -2)
		i, ok := byID[itemID]
		if !ok {
			continue
		}
		switch kind {
		case "style":
			items[i].Styles = append(items[i].Styles, o)
		case "fries":
			items[i].FriesOpts = append(items[i].FriesOpts, o)
		}
	}
	return rows.Err()
}

func loadIngredients(ctx context.Context) ([]models.Ingredient, error) {
	rows, err := db.Pool.Query(ctx, `SELECT name, available FROM ingredients ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Ingredient
	for rows.Next() {
		var ing models.Ingredient
		if err := rows.Scan(&ing.Name, &ing.Available); err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	return out, rows.Err()
}

func loadNames(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
