package cart

import (
	"context"
	"log"
	"sync"

	"gcwab-store/models"
)

// SnapshotAdapter is the persistence boundary of the cart store. Load returns
// (nil, nil) when no snapshot exists. Implementations own durability and key
// namespacing; the store only cares about the ordering contract: it never
// calls Save or Clear before its initial Load has completed.
type SnapshotAdapter interface {
	Load(ctx context.Context) (*models.CartSnapshot, error)
	Save(ctx context.Context, snapshot *models.CartSnapshot) error
	Clear(ctx context.Context) error
}

// Store is the single source of truth for one session's in-progress order.
// Line items are keyed by (ProductID, Size, Color); at most one line item
// exists per key. Mutations apply to memory first and then trigger a
// best-effort snapshot write; persistence failures are logged and swallowed,
// the in-memory state stays authoritative.
type Store struct {
	mu      sync.Mutex
	items   []models.CartLineItem
	adapter SnapshotAdapter
	loaded  bool
}

// NewStore creates a session cart store and restores the persisted snapshot.
// An absent or malformed snapshot starts the cart empty; snapshot writes are
// enabled only after this initial load, so a fresh store can never overwrite
// a previously persisted non-empty cart with an empty one.
func NewStore(ctx context.Context, adapter SnapshotAdapter) *Store {
	s := &Store{adapter: adapter}

	snapshot, err := adapter.Load(ctx)
	if err != nil {
		log.Printf("⚠️ cart: failed to load snapshot, starting empty: %v", err)
	} else if snapshot != nil {
		if snapshot.Version != models.CartSnapshotVersion {
			log.Printf("⚠️ cart: discarding snapshot with unknown version %d", snapshot.Version)
		} else {
			s.items = append(s.items, snapshot.Items...)
		}
	}

	s.loaded = true
	return s
}

// AddToCart merges the item into the cart. An existing line with the same
// identity key gets its quantity incremented; otherwise the item is appended.
// A quantity <= 0 defaults to 1.
func (s *Store) AddToCart(ctx context.Context, item models.CartLineItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].MatchesKey(item.ProductID, item.Size, item.Color) {
			s.items[i].Quantity += item.Quantity
			s.persist(ctx)
			return
		}
	}

	s.items = append(s.items, item)
	s.persist(ctx)
}

// RemoveItem deletes the line item with the given identity key.
// Removing an absent key is a no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, productID int64, size, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].MatchesKey(productID, size, color) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// UpdateQuantity sets the line item's quantity to exactly the given value.
// A quantity < 1 removes the line item instead. An unknown key is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, size, color string, quantity int) {
	if quantity < 1 {
		s.RemoveItem(ctx, productID, size, color)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].MatchesKey(productID, size, color) {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// ClearCart empties the cart and removes the persisted snapshot entirely,
// so the persistence layer can distinguish "explicitly emptied" from an
// empty-array write.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil

	if !s.loaded {
		return
	}
	if err := s.adapter.Clear(ctx); err != nil {
		log.Printf("⚠️ cart: failed to clear persisted snapshot: %v", err)
	}
}

// Items returns a copy of the cart's line items in insertion order
func (s *Store) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartLineItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalAmount recomputes the cart total (price × quantity over all lines)
func (s *Store) TotalAmount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, item := range s.items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// ItemCount recomputes the total quantity over all lines
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// persist writes the current snapshot best-effort. Callers must hold s.mu.
// The loaded guard keeps the no-write-before-first-read invariant even if a
// future refactor makes loading lazy.
func (s *Store) persist(ctx context.Context) {
	if !s.loaded {
		return
	}

	snapshot := &models.CartSnapshot{
		Version: models.CartSnapshotVersion,
		Items:   make([]models.CartLineItem, len(s.items)),
	}
	copy(snapshot.Items, s.items)

	if err := s.adapter.Save(ctx, snapshot); err != nil {
		log.Printf("⚠️ cart: failed to persist snapshot: %v", err)
	}
}
