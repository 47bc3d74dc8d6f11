package cart

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/Leerm14/restaurantmanagement/internal/domain"
	"github.com/Leerm14/restaurantmanagement/internal/storage"
)

// Store is the client-local pending order basket. Lines keep insertion
// order and hold at most one entry per menu item id. Every mutation is
// written through to client-state storage under the fixed cart key, and
// the store hydrates from that key on construction.
type Store struct {
	storage storage.Store
	logger  *zap.Logger

	mu    sync.Mutex
	lines []domain.CartLine
}

// NewStore builds a store hydrated from storage. A corrupt stored payload
// resets to an empty cart rather than failing.
func NewStore(ctx context.Context, store storage.Store, logger *zap.Logger) *Store {
	s := &Store{storage: store, logger: logger}

	raw, err := store.Get(ctx, storage.KeyCart)
	if err == nil {
		if err := json.Unmarshal(raw, &s.lines); err != nil {
			logger.Warn("discarding corrupt stored cart", zap.Error(err))
			s.lines = nil
		}
	} else if err != storage.ErrNotFound {
		logger.Warn("cart hydration failed", zap.Error(err))
	}
	return s
}

// Add inserts the item with quantity 1, or increments the existing line's
// quantity when the id is already present. No backend call is made.
func (s *Store) Add(ctx context.Context, item domain.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Quantity++
			s.persist(ctx)
			return
		}
	}
	s.lines = append(s.lines, domain.CartLine{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Image:    item.Image,
		Quantity: 1,
	})
	s.persist(ctx)
}

// Remove deletes the line with the given id; no-op when absent.
func (s *Store) Remove(ctx context.Context, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, id)
}

// UpdateQuantity sets the line's quantity. A quantity below 1 collapses
// to removal.
func (s *Store) UpdateQuantity(ctx context.Context, id int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		s.removeLocked(ctx, id)
		return
	}
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persist(ctx)
}

// Lines returns a copy of the cart contents in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems is the sum of quantities across all lines, not the line count.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of price*quantity in the base currency unit.
func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, line := range s.lines {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

func (s *Store) removeLocked(ctx context.Context, id int64) {
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.lines)
	if err != nil {
		s.logger.Error("marshal cart", zap.Error(err))
		return
	}
	if err := s.storage.Set(ctx, storage.KeyCart, raw); err != nil {
		s.logger.Warn("persist cart", zap.Error(err))
	}
}
