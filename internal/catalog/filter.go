package catalog

import "strings"

// FacetAll is the sentinel facet value that matches every listing.
const FacetAll = "all"

// FilterParams narrows the catalog by a free-text search term plus
// exact-match facets. Empty facet values behave like FacetAll.
type FilterParams struct {
	Search      string
	ListingType string
	Category    string
}

// Filter returns the listings matching every active predicate, in the
// original catalog order. The search term matches case-insensitively as a
// substring of title, location, or agent name.
func Filter(catalog []Listing, params FilterParams) []Listing {
	term := strings.ToLower(strings.TrimSpace(params.Search))

	out := make([]Listing, 0, len(catalog))
	for _, l := range catalog {
		if !matchesSearch(l, term) {
			continue
		}
		if !matchesFacet(params.ListingType, string(l.ListingType)) {
			continue
		}
		if !matchesFacet(params.Category, string(l.Category)) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesSearch(l Listing, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Title), term) ||
		strings.Contains(strings.ToLower(l.Location), term) ||
		strings.Contains(strings.ToLower(l.AgentName), term)
}

func matchesFacet(facet, value string) bool {
	return facet == "" || facet == FacetAll || facet == value
}
