package cart

import (
	"context"
	"encoding/json"
	"sync"
)

// Storage persists cart lines under one well-known key per user.
type Storage interface {
	Load(ctx context.Context, userID string) ([]Line, error)
	Save(ctx context.Context, userID string, lines []Line) error
}

// MemoryStorage is an in-process Storage used in tests.
type MemoryStorage struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

// NewMemoryStorage returns an empty in-memory Storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: make(map[string][]byte)}
}

// Load decodes the stored cart. Corrupted data reads as an empty cart.
func (m *MemoryStorage) Load(_ context.Context, userID string) ([]Line, error) {
	m.mu.RLock()
	raw, ok := m.carts[userID]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return decodeLines(raw), nil
}

// Save stores the cart as JSON.
func (m *MemoryStorage) Save(_ context.Context, userID string, lines []Line) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.carts[userID] = raw
	m.mu.Unlock()
	return nil
}

// Corrupt overwrites a stored cart with garbage, for tests.
func (m *MemoryStorage) Corrupt(userID string) {
	m.mu.Lock()
	m.carts[userID] = []byte("{not json")
	m.mu.Unlock()
}

func decodeLines(raw []byte) []Line {
	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		// A corrupted persisted value is treated as an empty cart.
		return nil
	}
	return lines
}
