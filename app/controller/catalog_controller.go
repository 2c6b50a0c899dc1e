package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"gcwab-store/catalog"
	"gcwab-store/models"
	"gcwab-store/repository"
)

// CatalogController handles HTTP requests for the fashion catalog
type CatalogController struct {
	repository repository.ProductRepositoryInterface
	admin      *AdminGate
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(repo repository.ProductRepositoryInterface, admin *AdminGate) *CatalogController {
	return &CatalogController{
		repository: repo,
		admin:      admin,
	}
}

// ListProducts handles GET /products?search=&category=&priceRange=
// All criteria combine with AND; filtering runs in memory over the full
// catalog so the three criteria share one code path
func (c *CatalogController) ListProducts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListProducts: Received %s request to %s", r.Method, r.URL.Path)

	criteria := models.FilterCriteria{
		SearchTerm:      r.URL.Query().Get("search"),
		Category:        r.URL.Query().Get("category"),
		PriceRangeLabel: r.URL.Query().Get("priceRange"),
	}

	products, err := c.repository.GetAll(r.Context())
	if err != nil {
		log.Printf("❌ ListProducts: Error fetching products: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch products: %v", err), http.StatusInternalServerError)
		return
	}

	filtered := catalog.Filter(products, criteria)
	log.Printf("🔍 ListProducts: search=%q category=%q priceRange=%q matched %d of %d", criteria.SearchTerm, criteria.Category, criteria.PriceRangeLabel, len(filtered), len(products))

	response := models.ProductListResponse{
		Total:    len(filtered),
		Products: filtered,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ ListProducts: Error encoding response: %v", err)
	}
}

// GetProduct handles GET /products/{id}
func (c *CatalogController) GetProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetProduct: Received %s request to %s", r.Method, r.URL.Path)

	id, err := parseIDSuffix(r.URL.Path, "/products/")
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ GetProduct: Error fetching product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to fetch product: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(product); err != nil {
		log.Printf("❌ GetProduct: Error encoding response: %v", err)
	}
}

// CreateProduct handles POST /admin/products
func (c *CatalogController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateProduct: Received %s request to %s", r.Method, r.URL.Path)

	if !c.admin.Authorize(w, r) {
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Printf("❌ CreateProduct: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(product.Name) == "" {
		http.Error(w, "name cannot be empty", http.StatusBadRequest)
		return
	}
	if product.Price < 0 {
		http.Error(w, "price cannot be negative", http.StatusBadRequest)
		return
	}

	created, err := c.repository.Create(r.Context(), &product)
	if err != nil {
		log.Printf("❌ CreateProduct: Error creating product: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create product: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ CreateProduct: Created product id=%d name=%s", created.ID, created.Name)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		log.Printf("❌ CreateProduct: Error encoding response: %v", err)
	}
}

// UpdateProduct handles PUT /admin/products/{id}
func (c *CatalogController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateProduct: Received %s request to %s", r.Method, r.URL.Path)

	if !c.admin.Authorize(w, r) {
		return
	}

	id, err := parseIDSuffix(r.URL.Path, "/admin/products/")
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Printf("❌ UpdateProduct: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	updated, err := c.repository.Update(r.Context(), id, &product)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ UpdateProduct: Error updating product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to update product: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ UpdateProduct: Updated product id=%d", updated.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		log.Printf("❌ UpdateProduct: Error encoding response: %v", err)
	}
}

// DeleteProduct handles DELETE /admin/products/{id}
func (c *CatalogController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteProduct: Received %s request to %s", r.Method, r.URL.Path)

	if !c.admin.Authorize(w, r) {
		return
	}

	id, err := parseIDSuffix(r.URL.Path, "/admin/products/")
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ DeleteProduct: Error deleting product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to delete product: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ DeleteProduct: Deleted product id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

// parseIDSuffix extracts a numeric ID that directly follows prefix in path
func parseIDSuffix(path, prefix string) (int64, error) {
	raw := strings.TrimPrefix(path, prefix)
	raw = strings.TrimSuffix(raw, "/")
	if raw == "" || strings.Contains(raw, "/") {
		return 0, fmt.Errorf("no ID in path %q", path)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", raw)
	}
	return id, nil
}
