package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gcwab-store/models"
)

func testProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Red Dress", Category: "Dresses", Tags: []string{"summer"}, Price: 4900},
		{ID: 2, Name: "Denim Jacket", Category: "Jackets", Tags: []string{"bestseller"}, Price: 79995},
	}
}

func TestFilter(t *testing.T) {
	testCases := []struct {
		name        string
		products    []models.Product
		criteria    models.FilterCriteria
		expectedIDs []int64
	}{
		{
			name:        "search term matches name",
			products:    testProducts(),
			criteria:    models.FilterCriteria{SearchTerm: "dress", Category: "All"},
			expectedIDs: []int64{1},
		},
		{
			name:        "category filter",
			products:    testProducts(),
			criteria:    models.FilterCriteria{Category: "Jackets"},
			expectedIDs: []int64{2},
		},
		{
			name:        "price bracket",
			products:    testProducts(),
			criteria:    models.FilterCriteria{Category: "All", PriceRangeLabel: "Under ₦50k"},
			expectedIDs: []int64{1},
		},
		{
			name:        "empty criteria matches everything",
			products:    testProducts(),
			criteria:    models.FilterCriteria{},
			expectedIDs: []int64{1, 2},
		},
		{
			name:        "empty category defaults to All",
			products:    testProducts(),
			criteria:    models.FilterCriteria{SearchTerm: "jacket"},
			expectedIDs: []int64{2},
		},
		{
			name:        "category match is case-insensitive",
			products:    testProducts(),
			criteria:    models.FilterCriteria{Category: "jackets"},
			expectedIDs: []int64{2},
		},
		{
			name:        "search matches tags",
			products:    testProducts(),
			criteria:    models.FilterCriteria{SearchTerm: "BESTSELLER"},
			expectedIDs: []int64{2},
		},
		{
			name:        "search matches category",
			products:    testProducts(),
			criteria:    models.FilterCriteria{SearchTerm: "dresses"},
			expectedIDs: []int64{1},
		},
		{
			name: "top bracket is unbounded",
			products: []models.Product{
				{ID: 3, Name: "Couture Gown", Category: "Dresses", Price: 99_000_000},
			},
			criteria:    models.FilterCriteria{PriceRangeLabel: "Over ₦300k"},
			expectedIDs: []int64{3},
		},
		{
			name:        "bracket bounds are inclusive",
			products:    []models.Product{{ID: 4, Name: "Boundary Shirt", Category: "Shirts", Price: 50000}},
			criteria:    models.FilterCriteria{PriceRangeLabel: "Under ₦50k"},
			expectedIDs: []int64{4},
		},
		{
			name:        "unknown price label disables price filtering",
			products:    testProducts(),
			criteria:    models.FilterCriteria{PriceRangeLabel: "Under ₦5"},
			expectedIDs: []int64{1, 2},
		},
		{
			name:        "criteria combine with AND",
			products:    testProducts(),
			criteria:    models.FilterCriteria{SearchTerm: "dress", Category: "Jackets"},
			expectedIDs: nil,
		},
		{
			name:        "product with no tags does not panic and falls through to name",
			products:    []models.Product{{ID: 5, Name: "Plain Tee", Category: "Shirts", Price: 3000}},
			criteria:    models.FilterCriteria{SearchTerm: "plain"},
			expectedIDs: []int64{5},
		},
		{
			name:        "no products",
			products:    nil,
			criteria:    models.FilterCriteria{SearchTerm: "dress"},
			expectedIDs: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Filter(tc.products, tc.criteria)

			ids := make([]int64, 0, len(result))
			for _, p := range result {
				ids = append(ids, p.ID)
			}

			if tc.expectedIDs == nil {
				assert.Empty(t, result)
			} else {
				assert.Equal(t, tc.expectedIDs, ids)
			}
		})
	}
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	products := []models.Product{
		{ID: 10, Name: "Summer Hat", Category: "Accessories", Tags: []string{"summer"}, Price: 2000},
		{ID: 7, Name: "Summer Dress", Category: "Dresses", Tags: []string{"summer"}, Price: 4000},
		{ID: 3, Name: "Summer Sandals", Category: "Shoes", Tags: []string{"summer"}, Price: 6000},
	}

	result := Filter(products, models.FilterCriteria{SearchTerm: "summer"})

	assert.Len(t, result, 3)
	assert.Equal(t, int64(10), result[0].ID)
	assert.Equal(t, int64(7), result[1].ID)
	assert.Equal(t, int64(3), result[2].ID)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := testProducts()
	Filter(products, models.FilterCriteria{SearchTerm: "dress"})

	assert.Equal(t, testProducts(), products)
}

func TestFindPriceRange(t *testing.T) {
	r := FindPriceRange("₦50k - ₦150k")
	assert.NotNil(t, r)
	assert.Equal(t, int64(50000), r.Min)
	assert.Equal(t, int64(150000), r.Max)

	assert.Nil(t, FindPriceRange("nonsense"))
	assert.Nil(t, FindPriceRange(""))
}
