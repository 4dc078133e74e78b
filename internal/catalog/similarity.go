package catalog

import (
	"sort"
	"strings"
	"time"

	"realty-catalog/internal/common/metrics"
)

// DefaultSimilarLimit is the number of related listings returned when the
// caller does not specify a limit.
const DefaultSimilarLimit = 6

// Similarity weights and thresholds. These are behavioral contracts shared
// with the web frontend, not tunable defaults.
const (
	categoryWeight        = 50
	listingTypeWeight     = 30
	exactLocationWeight   = 40
	partialLocationWeight = 20
	priceBandWeight       = 15
	agentWeight           = 10

	// A shared location word counts only when longer than this many characters.
	minSharedWordLen = 3
)

// FindSimilar ranks every listing in the catalog against the reference and
// returns the top matches, most similar first. The reference itself and
// candidates with no similarity signal at all are excluded. Candidates with
// equal scores keep their relative catalog order, so output is deterministic
// for a given catalog. An empty catalog yields an empty result.
func FindSimilar(reference Listing, catalog []Listing, limit int) []Listing {
	start := time.Now()
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	type scored struct {
		listing Listing
		score   int
	}
	candidates := make([]scored, 0, len(catalog))
	for _, candidate := range catalog {
		if candidate.ID == reference.ID {
			continue
		}
		if score := similarityScore(reference, candidate); score > 0 {
			candidates = append(candidates, scored{listing: candidate, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]Listing, len(candidates))
	for i, c := range candidates {
		out[i] = c.listing
	}

	metrics.SimilarRankDuration.Observe(time.Since(start).Seconds())
	return out
}

// similarityScore sums the independent similarity signals between the
// reference and a candidate. The two location bonuses are mutually
// exclusive: an exact match never also collects the word-overlap bonus.
func similarityScore(reference, candidate Listing) int {
	score := 0

	if candidate.Category == reference.Category {
		score += categoryWeight
	}
	if candidate.ListingType == reference.ListingType {
		score += listingTypeWeight
	}

	if candidate.Location == reference.Location {
		score += exactLocationWeight
	} else if locationsOverlap(candidate.Location, reference.Location) {
		score += partialLocationWeight
	}

	if withinPriceBand(reference.Price, candidate.Price) {
		score += priceBandWeight
	}
	if candidate.AgentName == reference.AgentName {
		score += agentWeight
	}

	return score
}

// withinPriceBand reports whether candidate is within 30% of the reference
// price, inclusive. Kept in integer arithmetic so the boundary is exact.
func withinPriceBand(reference, candidate int) bool {
	diff := candidate - reference
	if diff < 0 {
		diff = -diff
	}
	return 10*diff <= 3*reference
}

// locationsOverlap reports whether two free-text locations share at least
// one word longer than minSharedWordLen, case-insensitively. Words are
// delimited by whitespace and commas.
func locationsOverlap(a, b string) bool {
	words := make(map[string]struct{})
	for _, w := range locationWords(a) {
		words[w] = struct{}{}
	}
	for _, w := range locationWords(b) {
		if _, ok := words[w]; ok {
			return true
		}
	}
	return false
}

func locationWords(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	words := fields[:0]
	for _, w := range fields {
		if len(w) > minSharedWordLen {
			words = append(words, w)
		}
	}
	return words
}
