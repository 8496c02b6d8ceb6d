// Package cart implements the owner-partitioned shopping cart store.
//
// Each owner (a logged-in user id or the shared "guest" owner) has an
// isolated cart persisted under its own key. Every mutation rewrites the
// owner's full item list in one backend write, so readers never observe a
// half-applied change.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

const (
	// KeyPrefix namespaces cart entries in the backing store.
	KeyPrefix = "lumi_noir_cart_v1_"

	// GuestOwner is the cart partition used before login.
	GuestOwner = "guest"
)

// Item is a single cart line.
type Item struct {
	ProductID  uuid.UUID `json:"productId"`
	Title      string    `json:"title"`
	PriceCents int64     `json:"priceCents"`
	Currency   string    `json:"currency,omitempty"`
	ImagePath  string    `json:"imagePath,omitempty"`
	Quantity   int       `json:"quantity"`
}

// Listener is notified after every successful cart mutation for an owner.
type Listener func(owner string, items []Item)

// Store manages carts on top of a pluggable backend.
type Store struct {
	backend Backend

	mu        sync.Mutex
	listeners []Listener
}

// NewStore creates a cart store over the given backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Key returns the backend key for an owner's cart.
func Key(owner string) string {
	if owner == "" {
		owner = GuestOwner
	}
	return KeyPrefix + owner
}

// Subscribe registers a listener invoked after each mutation.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Items returns the owner's cart. A missing or unreadable entry yields an
// empty cart rather than an error so a corrupt record never blocks shopping.
func (s *Store) Items(ctx context.Context, owner string) ([]Item, error) {
	data, err := s.backend.Get(ctx, Key(owner))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []Item{}, nil
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return []Item{}, nil
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// Count returns the total quantity across the owner's cart lines.
func (s *Store) Count(ctx context.Context, owner string) (int, error) {
	items, err := s.Items(ctx, owner)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total, nil
}

// Add merges an item into the owner's cart. An existing line for the same
// product has its quantity increased; otherwise a new line is appended.
func (s *Store) Add(ctx context.Context, owner string, item Item) ([]Item, error) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	return s.mutate(ctx, owner, func(items []Item) []Item {
		for i := range items {
			if items[i].ProductID == item.ProductID {
				items[i].Quantity += item.Quantity
				return items
			}
		}
		return append(items, item)
	})
}

// SetQuantity sets a line's quantity. Quantities below one remove the line.
func (s *Store) SetQuantity(ctx context.Context, owner string, productID uuid.UUID, quantity int) ([]Item, error) {
	if quantity < 1 {
		return s.Remove(ctx, owner, productID)
	}
	return s.mutate(ctx, owner, func(items []Item) []Item {
		for i := range items {
			if items[i].ProductID == productID {
				items[i].Quantity = quantity
				break
			}
		}
		return items
	})
}

// Remove deletes a line from the owner's cart.
func (s *Store) Remove(ctx context.Context, owner string, productID uuid.UUID) ([]Item, error) {
	return s.mutate(ctx, owner, func(items []Item) []Item {
		out := items[:0]
		for _, item := range items {
			if item.ProductID != productID {
				out = append(out, item)
			}
		}
		return out
	})
}

// Clear empties the owner's cart. Other owners' carts are untouched.
func (s *Store) Clear(ctx context.Context, owner string) error {
	if err := s.backend.Delete(ctx, Key(owner)); err != nil {
		return err
	}
	s.notify(owner, []Item{})
	return nil
}

// mutate applies fn to the owner's current items and writes the result back
// as one unit. The store-level lock serializes concurrent mutations.
func (s *Store) mutate(ctx context.Context, owner string, fn func([]Item) []Item) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.Items(ctx, owner)
	if err != nil {
		return nil, err
	}

	items = fn(items)
	if items == nil {
		items = []Item{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	if err := s.backend.Set(ctx, Key(owner), data); err != nil {
		return nil, err
	}

	s.notifyLocked(owner, items)
	return items, nil
}

func (s *Store) notify(owner string, items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifyLocked(owner, items)
}

func (s *Store) notifyLocked(owner string, items []Item) {
	for _, fn := range s.listeners {
		fn(owner, items)
	}
}
