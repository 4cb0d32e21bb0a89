package service

import "github.com/sleepifoxx/timtro-web/internal/domain"

// FilterByAmenities keeps a listing iff every required amenity key is
// flagged on its enrichment. An empty requirement is the identity filter.
// Amenity constraints cannot be expressed in the primary query, so this runs
// after enrichment completes.
func FilterByAmenities(listings []domain.EnrichedListing, required []string) []domain.EnrichedListing {
	if len(required) == 0 {
		return listings
	}
	kept := make([]domain.EnrichedListing, 0, len(listings))
	for _, l := range listings {
		if l.Amenities.HasAll(required) {
			kept = append(kept, l)
		}
	}
	return kept
}
