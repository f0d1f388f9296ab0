package services

import (
	"encoding/json"
	"fmt"

	"pizzeria-telegram/models"

	bolt "go.etcd.io/bbolt"
)

// CartState is the persisted cart blob: the order lines plus a monotonic
// version stamp. Writers always store version+1 of what they loaded, so
// concurrent sessions resolve to last-write-wins and the stamp makes that
// observable.
type CartState struct {
	Version uint64             `json:"version"`
	Lines   []models.OrderLine `json:"lines"`
}

// CartStore persists one customer's cart as a single named blob. Load on a
// never-saved cart returns an empty state, not an error.
type CartStore interface {
	Load() (CartState, error)
	Save(CartState) error
}

var cartBucket = []byte("carts")

// OpenCartDB opens (creating if needed) the bolt file holding all cart blobs.
func OpenCartDB(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open cart store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cartBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init cart store: %w", err)
	}
	return db, nil
}

// BoltStore keeps one customer's cart under a fixed key in the shared bolt
// file.
type BoltStore struct {
	db  *bolt.DB
	key []byte
}

func NewBoltStore(db *bolt.DB, owner string) *BoltStore {
	return &BoltStore{db: db, key: []byte(owner)}
}

func (s *BoltStore) Load() (CartState, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(cartBucket).Get(s.key); v != nil {
			raw = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return CartState{}, fmt.Errorf("load cart: %w", err)
	}
	if raw == nil {
		return CartState{}, nil
	}
	var state CartState
	if err := json.Unmarshal(raw, &state); err != nil {
		return CartState{}, fmt.Errorf("unmarshal cart: %w", err)
	}
	return state, nil
}

func (s *BoltStore) Save(state CartState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cartBucket).Put(s.key, raw)
	})
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// MemoryStore is a CartStore for tests and for sessions whose durable store
// could not be opened. It round-trips through JSON like the real store.
type MemoryStore struct {
	raw []byte
}

func (s *MemoryStore) Load() (CartState, error) {
	if s.raw == nil {
		return CartState{}, nil
	}
	var state CartState
	if err := json.Unmarshal(s.raw, &state); err != nil {
		return CartState{}, err
	}
	return state, nil
}

func (s *MemoryStore) Save(state CartState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.raw = raw
	return nil
}
