package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcwab-store/cart"
	"gcwab-store/models"
)

// memorySnapshotFactory keeps snapshots per session in memory
type memorySnapshotFactory struct {
	snapshots map[string]*models.CartSnapshot
}

func newMemorySnapshotFactory() *memorySnapshotFactory {
	return &memorySnapshotFactory{snapshots: make(map[string]*models.CartSnapshot)}
}

func (f *memorySnapshotFactory) ForSession(sessionID string) cart.SnapshotAdapter {
	return &memorySnapshotAdapter{factory: f, key: sessionID}
}

type memorySnapshotAdapter struct {
	factory *memorySnapshotFactory
	key     string
}

func (a *memorySnapshotAdapter) Load(ctx context.Context) (*models.CartSnapshot, error) {
	return a.factory.snapshots[a.key], nil
}

func (a *memorySnapshotAdapter) Save(ctx context.Context, snapshot *models.CartSnapshot) error {
	a.factory.snapshots[a.key] = snapshot
	return nil
}

func (a *memorySnapshotAdapter) Clear(ctx context.Context) error {
	delete(a.factory.snapshots, a.key)
	return nil
}

// doCart sends a request through the controller handler, carrying the session
// cookie across calls
func doCart(t *testing.T, handler http.HandlerFunc, method, target string, body interface{}, cookie *http.Cookie) (*httptest.ResponseRecorder, *http.Cookie) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	handler(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookieName {
			cookie = c
		}
	}
	return w, cookie
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) models.CartResponse {
	t.Helper()
	var response models.CartResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return response
}

func TestGetCartStartsEmptyAndIssuesSession(t *testing.T) {
	controller := NewCartController(newMemorySnapshotFactory())

	w, cookie := doCart(t, controller.GetCart, http.MethodGet, "/cart", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)

	response := decodeCart(t, w)
	assert.Empty(t, response.Items)
	assert.Equal(t, int64(0), response.TotalAmount)
	assert.Equal(t, 0, response.ItemCount)
}

func TestAddItemMergesSameVariant(t *testing.T) {
	controller := NewCartController(newMemorySnapshotFactory())

	item := models.AddCartItemRequest{
		ProductID: 1, Name: "Elegant Summer Dress", Price: 49990,
		Size: "M", Color: "Coral Pink", Quantity: 1,
	}

	_, cookie := doCart(t, controller.AddItem, http.MethodPost, "/cart/items", item, nil)
	w, _ := doCart(t, controller.AddItem, http.MethodPost, "/cart/items", item, cookie)

	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeCart(t, w)
	require.Len(t, response.Items, 1)
	assert.Equal(t, 2, response.Items[0].Quantity)
	assert.Equal(t, int64(99980), response.TotalAmount)
	assert.Equal(t, 2, response.ItemCount)
}

func TestAddItemKeepsDistinctVariantsSeparate(t *testing.T) {
	controller := NewCartController(newMemorySnapshotFactory())

	_, cookie := doCart(t, controller.AddItem, http.MethodPost, "/cart/items", models.AddCartItemRequest{
		ProductID: 1, Name: "Elegant Summer Dress", Price: 49990, Size: "M", Color: "Coral Pink",
	}, nil)
	w, _ := doCart(t, controller.AddItem, http.MethodPost, "/cart/items", models.AddCartItemRequest{
		ProductID: 1, Name: "Elegant Summer Dress", Price: 49990, Size: "L", Color: "Coral Pink",
	}, cookie)

	response := decodeCart(t, w)
	assert.Len(t, response.Items, 2)
}

func TestAddItemRejectsInvalidBody(t *testing.T) {
	controller := NewCartController(newMemorySnapshotFactory())

	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	controller.AddItem(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddItemRejectsMissingProductID(t *testing.T) {
	controller := NewCartController(newMemorySnapshotFactory())

	w, _ := doCart(t, controller.AddItem, http.MethodPost, "/cart/items", models.AddCartItemRequest{
		Name: "Mystery Item", Price: 1000,
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateItemSetsAbsoluteQuantity(t *testing.T) {
	controller := NewCartController(newMemorySnapshotFactory())

	_, cookie := doCart(t, controller.AddItem, http.MethodPost, "/cart/items", models.AddCartItemRequest{
		ProductID: 2, Name: "Denim Jacket", Price: 79995, Size: "L", Color: "Blue", Quantity: 5,
	}, nil)

	w, _ := doCart(t, controller.UpdateItem, http.MethodPut, "/cart/items", models.UpdateCartItemRequest{
		ProductID: 2, Size: "L", Color: "Blue", Quantity: 3,
	}, cookie)

	response := decodeCart(t, w)
	require.Len(t, response.Items, 1)
	assert.Equal(t, 3, response.Items[0].Quantity)
}

func TestUpdateItemBelowOneRemovesLine(t *testing.T) {
	controller := NewCartController(newMemorySnapshotFactory())

	_, cookie := doCart(t, controller.AddItem, http.MethodPost, "/cart/items", models.AddCartItemRequest{
		ProductID: 2, Name: "Denim Jacket", Price: 79995, Size: "L", Color: "Blue",
	}, nil)

	w, _ := doCart(t, controller.UpdateItem, http.MethodPut, "/cart/items", models.UpdateCartItemRequest{
		ProductID: 2, Size: "L", Color: "Blue", Quantity: 0,
	}, cookie)

	response := decodeCart(t, w)
	assert.Empty(t, response.Items)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	controller := NewCartController(newMemorySnapshotFactory())

	_, cookie := doCart(t, controller.AddItem, http.MethodPost, "/cart/items", models.AddCartItemRequest{
		ProductID: 3, Name: "Red Dress", Price: 4900, Size: "S", Color: "Red",
	}, nil)

	remove := models.RemoveCartItemRequest{ProductID: 3, Size: "S", Color: "Red"}
	w1, _ := doCart(t, controller.RemoveItem, http.MethodDelete, "/cart/items", remove, cookie)
	w2, _ := doCart(t, controller.RemoveItem, http.MethodDelete, "/cart/items", remove, cookie)

	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Empty(t, decodeCart(t, w2).Items)
}

func TestClearCartRemovesPersistedSnapshot(t *testing.T) {
	factory := newMemorySnapshotFactory()
	controller := NewCartController(factory)

	_, cookie := doCart(t, controller.AddItem, http.MethodPost, "/cart/items", models.AddCartItemRequest{
		ProductID: 1, Name: "Elegant Summer Dress", Price: 49990, Size: "M", Color: "Coral Pink",
	}, nil)
	require.Len(t, factory.snapshots, 1)

	w, _ := doCart(t, controller.ClearCart, http.MethodDelete, "/cart", nil, cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
	assert.Empty(t, factory.snapshots)
}

func TestCartIsRestoredFromSnapshotForNewController(t *testing.T) {
	factory := newMemorySnapshotFactory()
	first := NewCartController(factory)

	_, cookie := doCart(t, first.AddItem, http.MethodPost, "/cart/items", models.AddCartItemRequest{
		ProductID: 1, Name: "Elegant Summer Dress", Price: 49990, Size: "M", Color: "Coral Pink", Quantity: 2,
	}, nil)

	// Fresh controller, same persistence: simulates a server restart
	second := NewCartController(factory)
	w, _ := doCart(t, second.GetCart, http.MethodGet, "/cart", nil, cookie)

	response := decodeCart(t, w)
	require.Len(t, response.Items, 1)
	assert.Equal(t, 2, response.Items[0].Quantity)
	assert.Equal(t, int64(99980), response.TotalAmount)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	controller := NewCartController(newMemorySnapshotFactory())

	_, cookieA := doCart(t, controller.AddItem, http.MethodPost, "/cart/items", models.AddCartItemRequest{
		ProductID: 1, Name: "Elegant Summer Dress", Price: 49990, Size: "M", Color: "Coral Pink",
	}, nil)
	require.NotNil(t, cookieA)

	// No cookie: a brand new visitor
	w, cookieB := doCart(t, controller.GetCart, http.MethodGet, "/cart", nil, nil)

	assert.NotEqual(t, cookieA.Value, cookieB.Value)
	assert.Empty(t, decodeCart(t, w).Items)
}
