package services

import (
	"errors"
	"path/filepath"
	"testing"

	"pizzeria-telegram/models"

	"github.com/shopspring/decimal"
)

func TestAddItem_MergeIdempotence(t *testing.T) {
	cart := NewCart(&MemoryStore{})
	sel := models.Selection{Size: "Groß", Extras: []string{"Käse"}}
	cart.AddItem(sizedPizza(), sel)
	cart.AddItem(sizedPizza(), sel)

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", lines[0].Quantity)
	}
	if want := decimal.RequireFromString("14.00"); !lines[0].UnitPrice.Equal(want) {
		t.Errorf("unit price = %s, want %s (must not be recomputed on merge)", lines[0].UnitPrice, want)
	}
}

func TestAddItem_ExtrasOrderIndependent(t *testing.T) {
	cart := NewCart(&MemoryStore{})
	cart.AddItem(sizedPizza(), models.Selection{Size: "Klein", Extras: []string{"Käse", "Peperoni"}})
	cart.AddItem(sizedPizza(), models.Selection{Size: "Klein", Extras: []string{"Peperoni", "Käse"}})

	lines := cart.Lines()
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("lines = %d (qty %v), want one line of quantity 2", len(lines), lines)
	}
}

func TestAddItem_DistinctBySize(t *testing.T) {
	cart := NewCart(&MemoryStore{})
	cart.AddItem(sizedPizza(), models.Selection{Size: "Klein"})
	cart.AddItem(sizedPizza(), models.Selection{Size: "Groß"})

	if got := len(cart.Lines()); got != 2 {
		t.Errorf("got %d lines, want 2 distinct lines per size", got)
	}
}

func TestAddItem_DifferentExtrasStayDistinct(t *testing.T) {
	cart := NewCart(&MemoryStore{})
	cart.AddItem(sizedPizza(), models.Selection{Size: "Klein", Extras: []string{"Käse"}})
	cart.AddItem(sizedPizza(), models.Selection{Size: "Klein"})

	if got := len(cart.Lines()); got != 2 {
		t.Errorf("got %d lines, want 2 (extras are part of the identity)", got)
	}
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantQty   int
	}{
		{"absolute set", 5, 1, 5},
		{"zero removes", 0, 0, 0},
		{"negative removes", -3, 0, 0},
	}
	for _, tt := range tests {
		cart := NewCart(&MemoryStore{})
		sel := models.Selection{Size: "Klein"}
		cart.AddItem(sizedPizza(), sel)
		cart.UpdateQuantity(sizedPizza().ID, tt.quantity, sel)

		lines := cart.Lines()
		if len(lines) != tt.wantLines {
			t.Errorf("%s: got %d lines, want %d", tt.name, len(lines), tt.wantLines)
			continue
		}
		if tt.wantLines == 1 && lines[0].Quantity != tt.wantQty {
			t.Errorf("%s: quantity = %d, want %d", tt.name, lines[0].Quantity, tt.wantQty)
		}
	}
}

func TestRemoveItem_Idempotent(t *testing.T) {
	cart := NewCart(&MemoryStore{})
	cart.AddItem(sizedPizza(), models.Selection{Size: "Klein"})

	// Absent selection and absent id are both silent no-ops.
	cart.RemoveItem(sizedPizza().ID, models.Selection{Size: "Groß"})
	cart.RemoveItem(999, models.Selection{})
	if got := len(cart.Lines()); got != 1 {
		t.Fatalf("cart changed by no-op removals: %d lines", got)
	}

	cart.RemoveItem(sizedPizza().ID, models.Selection{Size: "Klein"})
	cart.RemoveItem(sizedPizza().ID, models.Selection{Size: "Klein"})
	if got := len(cart.Lines()); got != 0 {
		t.Errorf("got %d lines after removal, want 0", got)
	}
}

func TestClearCart(t *testing.T) {
	cart := NewCart(&MemoryStore{})
	cart.AddItem(sizedPizza(), models.Selection{Size: "Klein"})
	cart.AddItem(wunschPizza(), models.Selection{Size: "Groß", Ingredients: []string{NoIngredient}})
	cart.Clear()
	if got := len(cart.Lines()); got != 0 {
		t.Errorf("got %d lines after clear, want 0", got)
	}
}

func TestSubtotal(t *testing.T) {
	cart := NewCart(&MemoryStore{})
	cart.AddItem(sizedPizza(), models.Selection{Size: "Groß"}) // 12.50
	cart.AddItem(sizedPizza(), models.Selection{Size: "Groß"}) // merge, qty 2
	cart.AddItem(sizedPizza(), models.Selection{Size: "Klein", Extras: []string{"Käse"}}) // 9.50
	if want := decimal.RequireFromString("34.50"); !cart.Subtotal().Equal(want) {
		t.Errorf("subtotal = %s, want %s", cart.Subtotal(), want)
	}
}

func heterogeneousCart(store CartStore) *Cart {
	cart := NewCart(store)
	cart.AddItem(sizedPizza(), models.Selection{Size: "Groß", Extras: []string{"Käse", "Peperoni"}})
	cart.AddItem(wunschPizza(), models.Selection{Size: "Klein", Ingredients: []string{"Salami", "Pilze", "Paprika", "Mais"}})
	cart.AddItem(models.MenuItem{ID: 90, Name: "Cola 1l", Price: decimal.New(250, -2)}, models.Selection{})
	return cart
}

func assertSameCart(t *testing.T, a, b *Cart) {
	t.Helper()
	la, lb := a.Lines(), b.Lines()
	if len(la) != len(lb) {
		t.Fatalf("line counts differ: %d vs %d", len(la), len(lb))
	}
	for i := range la {
		if ResolveKey(la[i].ItemID, la[i].Selection) != ResolveKey(lb[i].ItemID, lb[i].Selection) {
			t.Errorf("line %d: identity keys differ", i)
		}
		if la[i].Quantity != lb[i].Quantity {
			t.Errorf("line %d: quantity %d vs %d", i, la[i].Quantity, lb[i].Quantity)
		}
		if !la[i].UnitPrice.Equal(lb[i].UnitPrice) {
			t.Errorf("line %d: unit price %s vs %s", i, la[i].UnitPrice, lb[i].UnitPrice)
		}
	}
}

func TestCart_RoundTripMemory(t *testing.T) {
	store := &MemoryStore{}
	cart := heterogeneousCart(store)
	reloaded := NewCart(store)
	assertSameCart(t, cart, reloaded)
}

func TestCart_RoundTripBolt(t *testing.T) {
	db, err := OpenCartDB(filepath.Join(t.TempDir(), "carts.db"))
	if err != nil {
		t.Fatalf("open cart db: %v", err)
	}
	defer db.Close()

	cart := heterogeneousCart(NewBoltStore(db, "chat:42"))
	reloaded := NewCart(NewBoltStore(db, "chat:42"))
	assertSameCart(t, cart, reloaded)

	other := NewCart(NewBoltStore(db, "chat:7"))
	if got := len(other.Lines()); got != 0 {
		t.Errorf("other owner's cart has %d lines, want 0", got)
	}
}

func TestCart_VersionStamp(t *testing.T) {
	store := &MemoryStore{}
	cart := NewCart(store)
	cart.AddItem(sizedPizza(), models.Selection{Size: "Klein"})
	cart.AddItem(sizedPizza(), models.Selection{Size: "Klein"})
	cart.Clear()

	state, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.Version != 3 {
		t.Errorf("version = %d, want 3 (one bump per mutation)", state.Version)
	}
}

type failStore struct {
	saves int
}

func (s *failStore) Load() (CartState, error) { return CartState{}, nil }
func (s *failStore) Save(CartState) error {
	s.saves++
	return errors.New("disk full")
}

func TestCart_DegradesToMemoryOnSaveFailure(t *testing.T) {
	store := &failStore{}
	cart := NewCart(store)
	if cart.MemoryOnly() {
		t.Fatal("cart should not start memory-only with a loadable store")
	}

	cart.AddItem(sizedPizza(), models.Selection{Size: "Klein"})
	if !cart.MemoryOnly() {
		t.Error("cart should degrade to memory-only after a failed save")
	}
	cart.AddItem(sizedPizza(), models.Selection{Size: "Klein"})
	cart.UpdateQuantity(sizedPizza().ID, 4, models.Selection{Size: "Klein"})

	if store.saves != 1 {
		t.Errorf("store.Save called %d times, want 1 (no retries after degrade)", store.saves)
	}
	lines := cart.Lines()
	if len(lines) != 1 || lines[0].Quantity != 4 {
		t.Errorf("degraded cart must keep working in memory, got %+v", lines)
	}
}

type brokenLoadStore struct{}

func (brokenLoadStore) Load() (CartState, error) { return CartState{}, errors.New("corrupt blob") }
func (brokenLoadStore) Save(CartState) error     { return nil }

func TestCart_UnreadableStoreStartsEmpty(t *testing.T) {
	cart := NewCart(brokenLoadStore{})
	if got := len(cart.Lines()); got != 0 {
		t.Fatalf("got %d lines, want 0", got)
	}
	cart.AddItem(sizedPizza(), models.Selection{Size: "Klein"})
	if got := len(cart.Lines()); got != 1 {
		t.Errorf("cart unusable after degraded start: %d lines", got)
	}
}
