package models

// Vehicle represents a car listing in the automotive vertical
// Price is whole naira.
type Vehicle struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`  // make, e.g. "Toyota"
	Model        string   `json:"model"` // e.g. "Camry"
	Year         string   `json:"year"`
	Type         string   `json:"type"` // Sedan, SUV, ...
	Transmission string   `json:"transmission"`
	Condition    string   `json:"condition"` // Brand New, Foreign Used, Nigerian Used
	Engine       string   `json:"engine"`
	Trim         string   `json:"trim"`
	Price        int64    `json:"price"`
	Papers       string   `json:"papers"`
	Exterior     string   `json:"exterior"`
	Interior     string   `json:"interior"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	VideoURL     string   `json:"videoUrl,omitempty"`
	ExternalLink string   `json:"externalLink,omitempty"`
	Specs        []string `json:"specs"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// SaveVehicleRequest represents the request body for creating or updating a vehicle
// Example: {"name": "Toyota", "model": "Camry", "year": "2022", "type": "Sedan", "transmission": "Automatic", "condition": "Foreign Used", "engine": "V6", "trim": "XLE", "price": 18500000, "papers": "Complete", "exterior": "Black", "interior": "Beige", "description": "...", "images": ["https://..."], "specs": ["Leather seats"]}
type SaveVehicleRequest struct {
	Name         string   `json:"name"`
	Model        string   `json:"model"`
	Year         string   `json:"year"`
	Type         string   `json:"type"`
	Transmission string   `json:"transmission"`
	Condition    string   `json:"condition"`
	Engine       string   `json:"engine"`
	Trim         string   `json:"trim"`
	Price        int64    `json:"price"`
	Papers       string   `json:"papers"`
	Exterior     string   `json:"exterior"`
	Interior     string   `json:"interior"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	VideoURL     string   `json:"videoUrl,omitempty"`
	ExternalLink string   `json:"externalLink,omitempty"`
	Specs        []string `json:"specs"`
}

// VehicleListResponse represents the response for listing vehicles
type VehicleListResponse struct {
	Total    int       `json:"total"`
	Vehicles []Vehicle `json:"vehicles"`
}
