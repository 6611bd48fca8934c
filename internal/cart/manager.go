// internal/cart/manager.go
package cart

import (
	"encoding/json"
	"sync"

	domain "lazzat-client/internal/domain/cart"
	"lazzat-client/internal/domain/food"
	xerrors "lazzat-client/internal/pkg/errors"
	"lazzat-client/internal/storage"

	"go.uber.org/zap"
)

// Storage key owned by this manager; the session manager owns session:*.
const keyItems = "cart:items"

// Manager owns the in-progress order draft: an ordered sequence of lines
// keyed by food id, restored from the durable store at construction and
// written back after every mutation. It has no dependency on the session
// manager - a cart can be filled before login.
type Manager struct {
	mu     sync.RWMutex
	lines  []domain.Line
	store  storage.Store
	logger *zap.Logger
}

func NewManager(store storage.Store, logger *zap.Logger) *Manager {
	m := &Manager{store: store, logger: logger}

	if data, ok := store.Get(keyItems); ok {
		if err := json.Unmarshal([]byte(data), &m.lines); err != nil {
			m.logger.Warn("stored cart unreadable, starting empty", zap.Error(err))
			m.lines = nil
		}
	}

	return m
}

// Add puts one unit of a food into the cart. Re-adding an existing food
// increments its quantity instead of creating a duplicate line. Unavailable
// foods are rejected with ErrFoodUnavailable and the cart is untouched.
func (m *Manager) Add(f food.Food) error {
	if !f.Available {
		return xerrors.ErrFoodUnavailable
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.lines {
		if m.lines[i].FoodID == f.ID {
			m.lines[i].Quantity++
			m.persistLocked()
			return nil
		}
	}

	m.lines = append(m.lines, domain.NewLine(f))
	m.persistLocked()
	return nil
}

// Remove deletes the line for a food id. No-op if absent.
func (m *Manager) Remove(foodID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(foodID)
}

// UpdateQuantity sets a line's quantity outright. A non-positive quantity
// removes the line entirely; an unknown food id is a no-op.
func (m *Manager) UpdateQuantity(foodID int64, quantity int) {
	if quantity <= 0 {
		m.Remove(foodID)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.lines {
		if m.lines[i].FoodID == foodID {
			m.lines[i].Quantity = quantity
			m.persistLocked()
			return
		}
	}
}

// Clear empties the cart and purges the persisted snapshot.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = nil
	m.store.Remove(keyItems)
}

// Lines returns the cart contents in insertion order.
func (m *Manager) Lines() []domain.Line {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Line, len(m.lines))
	copy(out, m.lines)
	return out
}

// TotalPrice sums price x quantity over all lines, in line order. Computed
// fresh on every call; rounding happens at display time.
func (m *Manager) TotalPrice() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0.0
	for _, line := range m.lines {
		total += line.Subtotal()
	}
	return total
}

// Count is the number of units across all lines (the cart badge).
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, line := range m.lines {
		n += line.Quantity
	}
	return n
}

func (m *Manager) removeLocked(foodID int64) {
	for i := range m.lines {
		if m.lines[i].FoodID == foodID {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			m.persistLocked()
			return
		}
	}
}

// persistLocked serializes the full sequence in one atomic replace.
// Caller holds mu.
func (m *Manager) persistLocked() {
	data, err := json.Marshal(m.lines)
	if err != nil {
		m.logger.Error("failed to marshal cart", zap.Error(err))
		return
	}
	m.store.Set(keyItems, string(data))
}
