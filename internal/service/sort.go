package service

import (
	"sort"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

// SortListings returns a re-ordered copy of the listings. The input slice is
// never mutated, so a concurrent render holding the old order stays valid.
// Ties keep their input order.
func SortListings(listings []domain.EnrichedListing, key domain.SortKey) []domain.EnrichedListing {
	sorted := make([]domain.EnrichedListing, len(listings))
	copy(sorted, listings)

	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case domain.SortAreaDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Area > sorted[j].Area
		})
	default: // SortNewest
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PostDate.After(sorted[j].PostDate.Time)
		})
	}
	return sorted
}
