package cart

import (
	"context"
	"sync"

	"github.com/curiokart/CurioKart/models"
)

// Line is one pending selection in a buyer's cart.
type Line struct {
	ProductID uint   `json:"product_id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"` // paise
	Quantity  int    `json:"quantity"`
}

// Store maintains pending selections between browsing and checkout. It is
// constructed with an explicit Storage backend so tests can run isolated
// stores. Every mutation persists immediately and notifies subscribers so
// other open views of the same cart stay in sync without a reload.
type Store struct {
	storage Storage

	mu   sync.Mutex
	subs map[int]func(userID string)
	next int
}

// NewStore returns a Store backed by the given storage.
func NewStore(storage Storage) *Store {
	return &Store{
		storage: storage,
		subs:    make(map[int]func(userID string)),
	}
}

// Subscribe registers a change listener and returns an unsubscribe func.
// Listeners are called after every successful mutation with the affected
// user's ID. This is a best-effort local notification.
func (s *Store) Subscribe(fn func(userID string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(userID string) {
	s.mu.Lock()
	listeners := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(userID)
	}
}

// Lines returns the current cart lines for a user. A missing or corrupted
// stored value reads as an empty cart, never an error.
func (s *Store) Lines(ctx context.Context, userID string) ([]Line, error) {
	return s.storage.Load(ctx, userID)
}

// Add merges quantity into an existing line for the product or appends a new
// one. Quantities below one are treated as one.
func (s *Store) Add(ctx context.Context, userID string, product models.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	lines, err := s.storage.Load(ctx, userID)
	if err != nil {
		return err
	}
	found := false
	for i := range lines {
		if lines[i].ProductID == product.ID {
			lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, Line{
			ProductID: product.ID,
			Title:     product.Title,
			UnitPrice: product.Price,
			Quantity:  quantity,
		})
	}
	if err := s.storage.Save(ctx, userID, lines); err != nil {
		return err
	}
	s.notify(userID)
	return nil
}

// SetQuantity sets the quantity of an existing line, clamped to a minimum of
// one. Decrementing below one is a floor, never an implicit removal. Setting
// quantity for a product not in the cart is a no-op.
func (s *Store) SetQuantity(ctx context.Context, userID string, productID uint, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	lines, err := s.storage.Load(ctx, userID)
	if err != nil {
		return err
	}
	changed := false
	for i := range lines {
		if lines[i].ProductID == productID {
			if lines[i].Quantity != quantity {
				lines[i].Quantity = quantity
				changed = true
			}
			break
		}
	}
	if !changed {
		return nil
	}
	if err := s.storage.Save(ctx, userID, lines); err != nil {
		return err
	}
	s.notify(userID)
	return nil
}

// Remove deletes the line for a product unconditionally.
func (s *Store) Remove(ctx context.Context, userID string, productID uint) error {
	lines, err := s.storage.Load(ctx, userID)
	if err != nil {
		return err
	}
	kept := lines[:0]
	removed := false
	for _, line := range lines {
		if line.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	if !removed {
		return nil
	}
	if err := s.storage.Save(ctx, userID, kept); err != nil {
		return err
	}
	s.notify(userID)
	return nil
}

// Clear empties the cart. Called exactly once, after an order is placed.
func (s *Store) Clear(ctx context.Context, userID string) error {
	if err := s.storage.Save(ctx, userID, nil); err != nil {
		return err
	}
	s.notify(userID)
	return nil
}

// Total returns the sum of unit price times quantity across all lines.
func (s *Store) Total(ctx context.Context, userID string) (int64, error) {
	lines, err := s.storage.Load(ctx, userID)
	if err != nil {
		return 0, err
	}
	return Subtotal(lines), nil
}

// Subtotal sums unit price times quantity over the given lines.
func Subtotal(lines []Line) int64 {
	var total int64
	for _, line := range lines {
		total += line.UnitPrice * int64(line.Quantity)
	}
	return total
}
