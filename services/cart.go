package services

import (
	"log"

	"pizzeria-telegram/models"

	"github.com/shopspring/decimal"
)

// Cart is the mutable order-line ledger for one customer session. Lines with
// equal identity keys are merged by quantity; every mutation is written to
// the injected store. If a write fails the cart keeps working in memory for
// the rest of the session.
type Cart struct {
	store   CartStore
	lines   []models.OrderLine
	version uint64
	memOnly bool
}

// NewCart rehydrates a cart from its store. An unreadable store degrades to
// an empty in-memory cart instead of blocking the customer.
func NewCart(store CartStore) *Cart {
	c := &Cart{store: store}
	state, err := store.Load()
	if err != nil {
		log.Printf("cart: load failed, continuing in memory: %v", err)
		c.memOnly = true
		return c
	}
	c.lines = state.Lines
	c.version = state.Version
	return c
}

// Lines returns the current order lines in insertion order.
func (c *Cart) Lines() []models.OrderLine {
	return append([]models.OrderLine{}, c.lines...)
}

// Subtotal sums line totals with exact decimal arithmetic.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	return total
}

// MemoryOnly reports whether persistence has been given up for this session.
func (c *Cart) MemoryOnly() bool { return c.memOnly }

// AddItem merges the configured item into an existing line with the same
// identity key, or appends a new line priced at add time. The caller must
// have validated completeness already; AddItem never rejects. On a merge the
// stored unit price is kept, not recomputed.
func (c *Cart) AddItem(item models.MenuItem, sel models.Selection) {
	key := ResolveKey(item.ID, sel)
	for i := range c.lines {
		if ResolveKey(c.lines[i].ItemID, c.lines[i].Selection) == key {
			c.lines[i].Quantity++
			c.persist()
			return
		}
	}
	c.lines = append(c.lines, models.OrderLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: UnitPrice(item, sel),
		Quantity:  1,
		Selection: sel,
	})
	c.persist()
}

// RemoveItem deletes the line matching id+selection. Removing a line that is
// not present is a silent no-op.
func (c *Cart) RemoveItem(itemID int64, sel models.Selection) {
	key := ResolveKey(itemID, sel)
	for i := range c.lines {
		if ResolveKey(c.lines[i].ItemID, c.lines[i].Selection) == key {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persist()
			return
		}
	}
}

// UpdateQuantity sets the matching line's quantity to an absolute value.
// Quantities at or below zero remove the line.
func (c *Cart) UpdateQuantity(itemID int64, quantity int, sel models.Selection) {
	if quantity <= 0 {
		c.RemoveItem(itemID, sel)
		return
	}
	key := ResolveKey(itemID, sel)
	for i := range c.lines {
		if ResolveKey(c.lines[i].ItemID, c.lines[i].Selection) == key {
			c.lines[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

// Clear empties the ledger unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
	c.persist()
}

func (c *Cart) persist() {
	if c.memOnly {
		return
	}
	c.version++
	if err := c.store.Save(CartState{Version: c.version, Lines: c.lines}); err != nil {
		log.Printf("cart: save failed, continuing in memory: %v", err)
		c.memOnly = true
	}
}
