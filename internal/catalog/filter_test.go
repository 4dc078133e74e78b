package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFilterCatalog() []Listing {
	return []Listing{
		{ID: "land-sale-1", Title: "Half Acre Plot", Location: "Kitengela", AgentName: "Denver Properties", Category: CategoryLand, ListingType: ListingTypeSale},
		{ID: "house-sale-2", Title: "4 Bedroom House in Karen", Location: "Karen, Nairobi", AgentName: "Pam Golding Kenya", Category: CategoryHouse, ListingType: ListingTypeSale},
		{ID: "house-rent-3", Title: "2 Bed Apartment", Location: "Kilimani, Nairobi", AgentName: "HassConsult", Category: CategoryHouse, ListingType: ListingTypeRent},
		{ID: "house-sale-4", Title: "Townhouse with Garden", Location: "Karen Hardy", AgentName: PrivateSellerName, Category: CategoryHouse, ListingType: ListingTypeSale},
	}
}

func TestFilter(t *testing.T) {
	catalog := createFilterCatalog()

	tests := []struct {
		name    string
		params  FilterParams
		wantIDs []string
	}{
		{
			name:    "no predicates returns everything in order",
			params:  FilterParams{},
			wantIDs: []string{"land-sale-1", "house-sale-2", "house-rent-3", "house-sale-4"},
		},
		{
			name:    "all sentinels match everything",
			params:  FilterParams{ListingType: FacetAll, Category: FacetAll},
			wantIDs: []string{"land-sale-1", "house-sale-2", "house-rent-3", "house-sale-4"},
		},
		{
			name:    "search matches title case-insensitively",
			params:  FilterParams{Search: "KAREN"},
			wantIDs: []string{"house-sale-2", "house-sale-4"},
		},
		{
			name:    "search matches agent name",
			params:  FilterParams{Search: "hassconsult"},
			wantIDs: []string{"house-rent-3"},
		},
		{
			name:    "search matches location substring",
			params:  FilterParams{Search: "nairobi"},
			wantIDs: []string{"house-sale-2", "house-rent-3"},
		},
		{
			name:    "predicates compose with AND",
			params:  FilterParams{Search: "karen", ListingType: "sale", Category: "house"},
			wantIDs: []string{"house-sale-2", "house-sale-4"},
		},
		{
			name:    "listing type facet",
			params:  FilterParams{ListingType: "rent"},
			wantIDs: []string{"house-rent-3"},
		},
		{
			name:    "category facet",
			params:  FilterParams{Category: "land"},
			wantIDs: []string{"land-sale-1"},
		},
		{
			name:    "no matches yields empty result",
			params:  FilterParams{Search: "mombasa"},
			wantIDs: []string{},
		},
		{
			name:    "search term is trimmed",
			params:  FilterParams{Search: "  karen  ", Category: "house"},
			wantIDs: []string{"house-sale-2", "house-sale-4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(catalog, tt.params)
			require.Len(t, result, len(tt.wantIDs))
			for i, id := range tt.wantIDs {
				assert.Equal(t, id, result[i].ID)
			}
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	catalog := createFilterCatalog()
	Filter(catalog, FilterParams{Search: "karen"})
	assert.Equal(t, createFilterCatalog(), catalog)
}
