package catalog

import (
	"math"
	"strings"

	"gcwab-store/models"
)

// PriceRanges is the fixed set of storefront price brackets. The top bracket
// is open-ended: its Max is treated as unbounded.
var PriceRanges = []models.PriceRange{
	{Label: "Under ₦50k", Min: 0, Max: 50000},
	{Label: "₦50k - ₦150k", Min: 50000, Max: 150000},
	{Label: "₦150k - ₦300k", Min: 150000, Max: 300000},
	{Label: "Over ₦300k", Min: 300000, Max: math.MaxInt64},
}

// FindPriceRange looks up a bracket by label. Returns nil for unknown labels,
// which disables price filtering (same behavior as the storefront UI).
func FindPriceRange(label string) *models.PriceRange {
	for i := range PriceRanges {
		if PriceRanges[i].Label == label {
			return &PriceRanges[i]
		}
	}
	return nil
}

// Filter returns the products satisfying all active criteria, in the original
// catalog order. It is pure: the input slice is never mutated or reordered.
//
// A product matches when:
//   - the lowercased search term is a substring of its name, category, or any
//     tag (an empty term matches everything),
//   - the category filter is "All", empty, or equal (case-insensitive) to the
//     product category,
//   - no price bracket is selected, the label is unknown, or the price falls
//     inside the bracket, bounds inclusive.
func Filter(products []models.Product, criteria models.FilterCriteria) []models.Product {
	priceRange := (*models.PriceRange)(nil)
	if criteria.PriceRangeLabel != "" {
		priceRange = FindPriceRange(criteria.PriceRangeLabel)
	}

	searchLower := strings.ToLower(criteria.SearchTerm)

	var filtered []models.Product
	for _, product := range products {
		if !matchesSearch(product, searchLower) {
			continue
		}
		if !matchesCategory(product, criteria.Category) {
			continue
		}
		if priceRange != nil && (product.Price < priceRange.Min || product.Price > priceRange.Max) {
			continue
		}
		filtered = append(filtered, product)
	}
	return filtered
}

func matchesSearch(product models.Product, searchLower string) bool {
	if searchLower == "" {
		return true
	}
	if strings.Contains(strings.ToLower(product.Name), searchLower) {
		return true
	}
	if strings.Contains(strings.ToLower(product.Category), searchLower) {
		return true
	}
	for _, tag := range product.Tags {
		if strings.Contains(strings.ToLower(tag), searchLower) {
			return true
		}
	}
	return false
}

func matchesCategory(product models.Product, category string) bool {
	if category == "" || category == models.CategoryAll {
		return true
	}
	return strings.EqualFold(product.Category, category)
}
