package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"gcwab-store/models"
)

// fakeAdapter is an in-memory SnapshotAdapter that records calls
type fakeAdapter struct {
	snapshot *models.CartSnapshot
	loadErr  error
	saveErr  error
	clearErr error

	loadCalls  int
	saveCalls  int
	clearCalls int
}

func (f *fakeAdapter) Load(ctx context.Context) (*models.CartSnapshot, error) {
	f.loadCalls++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.snapshot, nil
}

func (f *fakeAdapter) Save(ctx context.Context, snapshot *models.CartSnapshot) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.snapshot = snapshot
	return nil
}

func (f *fakeAdapter) Clear(ctx context.Context) error {
	f.clearCalls++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.snapshot = nil
	return nil
}

func lineItem(productID int64, size, color string, price int64, qty int) models.CartLineItem {
	return models.CartLineItem{
		ProductID: productID,
		Name:      "Test Item",
		Price:     price,
		Size:      size,
		Color:     color,
		Quantity:  qty,
	}
}

func TestAddToCartMergesByIdentityKey(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, &fakeAdapter{})

	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 1))
	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 2))

	items := store.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, int64(30), store.TotalAmount())
	assert.Equal(t, 3, store.ItemCount())
}

func TestAddToCartDistinctVariantsStaySeparate(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, &fakeAdapter{})

	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 1))
	store.AddToCart(ctx, lineItem(1, "L", "Red", 10, 1))
	store.AddToCart(ctx, lineItem(1, "M", "Blue", 10, 1))
	store.AddToCart(ctx, lineItem(2, "M", "Red", 10, 1))

	assert.Len(t, store.Items(), 4)
}

func TestAddToCartNonPositiveQuantityDefaultsToOne(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, &fakeAdapter{})

	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 0))
	store.AddToCart(ctx, lineItem(2, "S", "Blue", 20, -5))

	items := store.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestEmptyVariantStringsAreValidKeyComponents(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, &fakeAdapter{})

	store.AddToCart(ctx, lineItem(1, "", "", 10, 1))
	store.AddToCart(ctx, lineItem(1, "", "", 10, 1))
	store.AddToCart(ctx, lineItem(1, "M", "", 10, 1))

	items := store.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, &fakeAdapter{})

	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 2))

	store.RemoveItem(ctx, 1, "M", "Red")
	assert.Empty(t, store.Items())

	// Second removal of the same key is a no-op
	store.RemoveItem(ctx, 1, "M", "Red")
	assert.Empty(t, store.Items())
}

func TestRemoveItemRequiresFullKeyMatch(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, &fakeAdapter{})

	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 1))
	store.RemoveItem(ctx, 1, "M", "Blue")

	assert.Len(t, store.Items(), 1)
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, &fakeAdapter{})

	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 5))
	store.UpdateQuantity(ctx, 1, "M", "Red", 2)

	items := store.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(20), store.TotalAmount())
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	testCases := []struct {
		name string
		qty  int
	}{
		{name: "zero", qty: 0},
		{name: "negative", qty: -5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewStore(ctx, &fakeAdapter{})

			store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 3))
			store.UpdateQuantity(ctx, 1, "M", "Red", tc.qty)

			assert.Empty(t, store.Items())
			assert.Equal(t, int64(0), store.TotalAmount())
			assert.Equal(t, 0, store.ItemCount())
		})
	}
}

func TestUpdateQuantityUnknownKeyIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, &fakeAdapter{})

	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 1))
	store.UpdateQuantity(ctx, 99, "M", "Red", 7)

	items := store.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestTotalsStayConsistentAcrossMutations(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, &fakeAdapter{})

	store.AddToCart(ctx, lineItem(1, "M", "Red", 100, 2))
	store.AddToCart(ctx, lineItem(2, "S", "Blue", 250, 1))
	assert.Equal(t, int64(450), store.TotalAmount())
	assert.Equal(t, 3, store.ItemCount())

	store.UpdateQuantity(ctx, 2, "S", "Blue", 4)
	assert.Equal(t, int64(1200), store.TotalAmount())
	assert.Equal(t, 6, store.ItemCount())

	store.RemoveItem(ctx, 1, "M", "Red")
	assert.Equal(t, int64(1000), store.TotalAmount())
	assert.Equal(t, 4, store.ItemCount())
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := &fakeAdapter{}

	store := NewStore(ctx, adapter)
	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 2))
	store.AddToCart(ctx, lineItem(2, "S", "Blue", 20, 1))

	// A second store over the same adapter sees the same cart
	restored := NewStore(ctx, adapter)
	assert.Equal(t, store.Items(), restored.Items())
	assert.Equal(t, int64(40), restored.TotalAmount())
	assert.Equal(t, 3, restored.ItemCount())
}

func TestClearCartRemovesSnapshotEntirely(t *testing.T) {
	ctx := context.Background()
	adapter := &fakeAdapter{}

	store := NewStore(ctx, adapter)
	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 2))
	assert.NotNil(t, adapter.snapshot)

	store.ClearCart(ctx)

	assert.Empty(t, store.Items())
	assert.Equal(t, 1, adapter.clearCalls)
	assert.Nil(t, adapter.snapshot, "clear must delete the snapshot, not write an empty one")

	restored := NewStore(ctx, adapter)
	assert.Empty(t, restored.Items())
}

func TestNewStoreDiscardsUnknownSnapshotVersion(t *testing.T) {
	ctx := context.Background()
	adapter := &fakeAdapter{
		snapshot: &models.CartSnapshot{
			Version: 99,
			Items:   []models.CartLineItem{lineItem(1, "M", "Red", 10, 2)},
		},
	}

	store := NewStore(ctx, adapter)
	assert.Empty(t, store.Items())
}

func TestNewStoreStartsEmptyOnLoadError(t *testing.T) {
	ctx := context.Background()
	adapter := &fakeAdapter{loadErr: errors.New("boom")}

	store := NewStore(ctx, adapter)
	assert.Empty(t, store.Items())

	// The store remains fully usable after a failed load
	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 1))
	assert.Equal(t, 1, store.ItemCount())
}

func TestNoWriteBeforeFirstRead(t *testing.T) {
	ctx := context.Background()
	adapter := &fakeAdapter{
		snapshot: &models.CartSnapshot{
			Version: models.CartSnapshotVersion,
			Items:   []models.CartLineItem{lineItem(1, "M", "Red", 10, 2)},
		},
	}

	NewStore(ctx, adapter)

	assert.Equal(t, 1, adapter.loadCalls)
	assert.Equal(t, 0, adapter.saveCalls, "constructing a store must never write")
	assert.Equal(t, 0, adapter.clearCalls)

	// The pre-existing snapshot survived initialization untouched
	assert.Len(t, adapter.snapshot.Items, 1)
	assert.Equal(t, 2, adapter.snapshot.Items[0].Quantity)
}

func TestMutationsSucceedWhenSaveFails(t *testing.T) {
	ctx := context.Background()
	adapter := &fakeAdapter{saveErr: errors.New("quota exceeded")}

	store := NewStore(ctx, adapter)
	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 1))
	store.UpdateQuantity(ctx, 1, "M", "Red", 4)

	// In-memory state stays authoritative; the failure is swallowed
	assert.Equal(t, 4, store.ItemCount())
	assert.Equal(t, int64(40), store.TotalAmount())
}

func TestEveryMutationTriggersSave(t *testing.T) {
	ctx := context.Background()
	adapter := &fakeAdapter{}

	store := NewStore(ctx, adapter)
	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 1))
	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 1))
	store.UpdateQuantity(ctx, 1, "M", "Red", 5)
	store.RemoveItem(ctx, 1, "M", "Red")

	assert.Equal(t, 4, adapter.saveCalls)
}

func TestItemsReturnsACopy(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, &fakeAdapter{})
	store.AddToCart(ctx, lineItem(1, "M", "Red", 10, 1))

	items := store.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, store.Items()[0].Quantity)
}
