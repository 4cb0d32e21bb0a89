package ports

import (
	"context"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

// EnrichmentProvider covers the per-listing secondary lookups merged onto
// search results, plus the write side used when posting a listing.
type EnrichmentProvider interface {
	Images(ctx context.Context, postID int) ([]string, error)
	Amenities(ctx context.Context, postID int) (domain.AmenitySet, error)
	AddImages(ctx context.Context, postID int, urls []string) error
	AddAmenities(ctx context.Context, postID int, set domain.AmenitySet) error
}
