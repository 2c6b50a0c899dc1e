package models

// ProductColor represents one color variant of a product
type ProductColor struct {
	Name     string `json:"name"`
	Code     string `json:"code"` // hex color code, e.g. "#FF7BA3"
	ImageURL string `json:"imageUrl"`
}

// ProductSize represents one size option of a product
type ProductSize struct {
	Size    string `json:"size"`
	InStock bool   `json:"inStock"`
}

// Product represents a fashion catalog product
// Prices are whole naira. Catalog data is read-only for the storefront;
// mutations go through the admin endpoints.
type Product struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Price       int64          `json:"price"`
	Description string         `json:"description"`
	Images      []string       `json:"images"`
	Colors      []ProductColor `json:"colors"`
	Sizes       []ProductSize  `json:"sizes"`
	Category    string         `json:"category"`
	Tags        []string       `json:"tags"`
	Stock       int            `json:"stock"`
	Rating      float64        `json:"rating"`
	Reviews     int            `json:"reviews"`
}

// ProductListResponse represents the response for the filtered product listing
// Example response:
// {
//   "total": 1,
//   "products": [{"id": 1, "name": "Elegant Summer Dress", "price": 49990, "category": "dresses", ...}]
// }
type ProductListResponse struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}
