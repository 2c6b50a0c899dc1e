package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gcwab-store/models"
)

// ErrProductNotFound is returned when a product is not found
var ErrProductNotFound = errors.New("product not found")

// ProductRepository handles database operations for the fashion catalog
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(database *sql.DB) *ProductRepository {
	return &ProductRepository{db: database}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

const productColumns = `id, name, price, description, images, colors, sizes, category, tags, stock, rating, reviews`

func scanProduct(row interface{ Scan(...interface{}) error }) (*models.Product, error) {
	var p models.Product
	var images, colors, sizes, tags []byte

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Description,
		&images,
		&colors,
		&sizes,
		&p.Category,
		&tags,
		&p.Stock,
		&p.Rating,
		&p.Reviews,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, fmt.Errorf("failed to decode product images: %w", err)
	}
	if err := json.Unmarshal(colors, &p.Colors); err != nil {
		return nil, fmt.Errorf("failed to decode product colors: %w", err)
	}
	if err := json.Unmarshal(sizes, &p.Sizes); err != nil {
		return nil, fmt.Errorf("failed to decode product sizes: %w", err)
	}
	if err := json.Unmarshal(tags, &p.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode product tags: %w", err)
	}

	return &p, nil
}

// GetAll retrieves the full catalog in insertion order. The storefront filter
// runs over this in-memory slice; the query itself never filters.
func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ GetAll: Error querying products: %v", err)
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Printf("❌ GetAll: Error scanning product: %v", err)
			continue
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ GetAll: Error iterating products: %v", err)
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		log.Printf("❌ GetByID: Error fetching product id=%d: %v", id, err)
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	return p, nil
}

// Create inserts a new product
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	log.Printf("📦 Create: Creating product name=%s category=%s", product.Name, product.Category)

	images, colors, sizes, tags, err := encodeProductJSON(product)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO products (name, price, description, images, colors, sizes, category, tags, stock, rating, reviews)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + productColumns

	created, err := scanProduct(r.db.QueryRowContext(ctx, query,
		product.Name,
		product.Price,
		product.Description,
		images,
		colors,
		sizes,
		product.Category,
		tags,
		product.Stock,
		product.Rating,
		product.Reviews,
	))
	if err != nil {
		log.Printf("❌ Create: Error creating product: %v", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	log.Printf("✅ Create: Successfully created product id=%d", created.ID)
	return created, nil
}

// Update replaces a product's fields
func (r *ProductRepository) Update(ctx context.Context, id int64, product *models.Product) (*models.Product, error) {
	log.Printf("📦 Update: Updating product id=%d", id)

	images, colors, sizes, tags, err := encodeProductJSON(product)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE products
		SET name = $1, price = $2, description = $3, images = $4, colors = $5,
		    sizes = $6, category = $7, tags = $8, stock = $9, rating = $10, reviews = $11
		WHERE id = $12
		RETURNING ` + productColumns

	updated, err := scanProduct(r.db.QueryRowContext(ctx, query,
		product.Name,
		product.Price,
		product.Description,
		images,
		colors,
		sizes,
		product.Category,
		tags,
		product.Stock,
		product.Rating,
		product.Reviews,
		id,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		log.Printf("❌ Update: Error updating product id=%d: %v", id, err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	log.Printf("✅ Update: Successfully updated product id=%d", id)
	return updated, nil
}

// Delete removes a product
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Delete: Error deleting product id=%d: %v", id, err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	log.Printf("✅ Delete: Successfully deleted product id=%d", id)
	return nil
}

func encodeProductJSON(product *models.Product) (images, colors, sizes, tags []byte, err error) {
	if images, err = json.Marshal(emptyIfNilStrings(product.Images)); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode product images: %w", err)
	}
	if product.Colors == nil {
		product.Colors = []models.ProductColor{}
	}
	if colors, err = json.Marshal(product.Colors); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode product colors: %w", err)
	}
	if product.Sizes == nil {
		product.Sizes = []models.ProductSize{}
	}
	if sizes, err = json.Marshal(product.Sizes); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode product sizes: %w", err)
	}
	if tags, err = json.Marshal(emptyIfNilStrings(product.Tags)); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to encode product tags: %w", err)
	}
	return images, colors, sizes, tags, nil
}

func emptyIfNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
