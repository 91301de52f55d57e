// Package cart holds the in-memory cart state for storefront sessions.
package cart

import (
	"sync"

	"github.com/littleforest/storefront/internal/models"
)

// Quantity bounds for a single cart line. Out-of-range input is corrected,
// never rejected: the storefront clamps instead of erroring so a typo in the
// quantity box cannot block a sale.
const (
	MinQuantity = 1
	MaxQuantity = 9999
)

// Store is the authoritative set of items one visitor intends to buy.
// Lines are keyed by product id; insertion order is preserved so renders
// and order messages stay stable across mutations.
type Store struct {
	mu    sync.Mutex
	lines map[string]*models.CartLine
	order []string
}

func NewStore() *Store {
	return &Store{
		lines: make(map[string]*models.CartLine),
	}
}

// AddItem merges quantity into an existing line for the same product, or
// appends a new line snapshotting the product's name and price.
func (s *Store) AddItem(product models.Product, quantity int) {
	quantity = clamp(quantity)

	s.mu.Lock()
	defer s.mu.Unlock()

	id := product.ID.String()
	if line, ok := s.lines[id]; ok {
		line.Quantity = clamp(line.Quantity + quantity)
		return
	}

	s.lines[id] = &models.CartLine{
		ProductID: id,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  quantity,
	}
	s.order = append(s.order, id)
}

// UpdateQuantity sets the line's quantity to the clamped value. Updating an
// absent line is a no-op rather than an error.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line, ok := s.lines[productID]; ok {
		line.Quantity = clamp(quantity)
	}
}

// RemoveItem deletes the line unconditionally; removing an absent id is
// idempotent.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lines[productID]; !ok {
		return
	}
	delete(s.lines, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = make(map[string]*models.CartLine)
	s.order = nil
}

// LineCount is the number of distinct lines, not the sum of quantities.
// This matches the cart badge in the storefront header.
func (s *Store) LineCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Lines returns a snapshot copy in insertion order; mutating the result
// does not touch the store.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]models.CartLine, 0, len(s.order))
	for _, id := range s.order {
		lines = append(lines, *s.lines[id])
	}
	return lines
}

func clamp(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}
