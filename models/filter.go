package models

// CategoryAll is the sentinel category meaning "no category filter"
const CategoryAll = "All"

// FilterCriteria represents the active storefront filters.
// All three criteria are combined with AND; zero values disable the
// corresponding filter.
type FilterCriteria struct {
	SearchTerm      string `json:"searchTerm"`      // case-insensitive substring over name, category, tags
	Category        string `json:"category"`        // "" or "All" = no filter
	PriceRangeLabel string `json:"priceRangeLabel"` // label into the fixed bracket set; "" = no filter
}

// PriceRange represents one fixed price bracket.
// Max is inclusive; an unbounded bracket uses Max = math.MaxInt64.
type PriceRange struct {
	Label string `json:"label"`
	Min   int64  `json:"min"`
	Max   int64  `json:"max"`
}
