package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"gcwab-store/cart"
	"gcwab-store/models"
)

// sessionCookieName identifies the storefront visitor across requests
const sessionCookieName = "gcwab_session"

// sessionCookieMaxAge keeps carts alive for ~6 months
const sessionCookieMaxAge = 180 * 24 * 60 * 60

// SnapshotAdapterFactory binds a session ID to its snapshot persistence
type SnapshotAdapterFactory interface {
	ForSession(sessionID string) cart.SnapshotAdapter
}

// CartController handles HTTP requests for the session cart
type CartController struct {
	adapters SnapshotAdapterFactory

	mu     sync.Mutex
	stores map[string]*cart.Store
}

// NewCartController creates a new CartController
func NewCartController(adapters SnapshotAdapterFactory) *CartController {
	return &CartController{
		adapters: adapters,
		stores:   make(map[string]*cart.Store),
	}
}

// session returns the request's session ID, issuing a cookie when absent
func (c *CartController) session(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	log.Printf("🔄 Issued new cart session %s", sessionID)
	return sessionID
}

// storeFor returns the session's cart store, restoring its snapshot on first use
func (c *CartController) storeFor(ctx context.Context, sessionID string) *cart.Store {
	c.mu.Lock()
	defer c.mu.Unlock()

	if store, ok := c.stores[sessionID]; ok {
		return store
	}

	store := cart.NewStore(ctx, c.adapters.ForSession(sessionID))
	c.stores[sessionID] = store
	return store
}

// writeCart renders the cart read model
func writeCart(w http.ResponseWriter, store *cart.Store) {
	response := models.CartResponse{
		Items:       store.Items(),
		TotalAmount: store.TotalAmount(),
		ItemCount:   store.ItemCount(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Error encoding cart response: %v", err)
	}
}

// GetCart handles GET /cart
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetCart: Received %s request to %s", r.Method, r.URL.Path)

	store := c.storeFor(r.Context(), c.session(w, r))
	writeCart(w, store)
}

// AddItem handles POST /cart/items
// Merges the item into the cart; an existing (productId, size, color) line
// gets its quantity incremented
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddItem: Received %s request to %s", r.Method, r.URL.Path)

	var req models.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ AddItem: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.ProductID <= 0 {
		log.Printf("❌ AddItem: Invalid productId: %d", req.ProductID)
		http.Error(w, "productId must be greater than 0", http.StatusBadRequest)
		return
	}
	if req.Price < 0 {
		log.Printf("❌ AddItem: Invalid price: %d", req.Price)
		http.Error(w, "price cannot be negative", http.StatusBadRequest)
		return
	}

	store := c.storeFor(r.Context(), c.session(w, r))
	store.AddToCart(r.Context(), models.CartLineItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Size:      req.Size,
		Color:     req.Color,
		Image:     req.Image,
		Quantity:  req.Quantity,
	})

	log.Printf("✅ AddItem: product_id=%d size=%q color=%q, cart now has %d items", req.ProductID, req.Size, req.Color, store.ItemCount())
	writeCart(w, store)
}

// UpdateItem handles PUT /cart/items
// Sets the line item's quantity to exactly the given value; quantity < 1
// removes the line
func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateItem: Received %s request to %s", r.Method, r.URL.Path)

	var req models.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateItem: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.ProductID <= 0 {
		log.Printf("❌ UpdateItem: Invalid productId: %d", req.ProductID)
		http.Error(w, "productId must be greater than 0", http.StatusBadRequest)
		return
	}

	store := c.storeFor(r.Context(), c.session(w, r))
	store.UpdateQuantity(r.Context(), req.ProductID, req.Size, req.Color, req.Quantity)

	log.Printf("✅ UpdateItem: product_id=%d quantity=%d", req.ProductID, req.Quantity)
	writeCart(w, store)
}

// RemoveItem handles DELETE /cart/items
// Removing an absent line is a no-op
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 RemoveItem: Received %s request to %s", r.Method, r.URL.Path)

	var req models.RemoveCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ RemoveItem: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.ProductID <= 0 {
		log.Printf("❌ RemoveItem: Invalid productId: %d", req.ProductID)
		http.Error(w, "productId must be greater than 0", http.StatusBadRequest)
		return
	}

	store := c.storeFor(r.Context(), c.session(w, r))
	store.RemoveItem(r.Context(), req.ProductID, req.Size, req.Color)

	log.Printf("✅ RemoveItem: product_id=%d size=%q color=%q", req.ProductID, req.Size, req.Color)
	writeCart(w, store)
}

// ClearCart handles DELETE /cart
func (c *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ClearCart: Received %s request to %s", r.Method, r.URL.Path)

	store := c.storeFor(r.Context(), c.session(w, r))
	store.ClearCart(r.Context())

	log.Printf("✅ ClearCart: cart emptied")
	writeCart(w, store)
}
