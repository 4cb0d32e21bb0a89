package service

import (
	"context"
	"log"

	"github.com/sleepifoxx/timtro-web/internal/domain"
	"github.com/sleepifoxx/timtro-web/internal/repository/ports"
)

// SearchService runs the listing search workflow: primary fetch, enrichment
// fan-out, amenity post-filter, sort. The whole pipeline re-runs on every
// filter or sort change; there is no incremental update.
type SearchService struct {
	listings ports.ListingProvider
	enricher *Enricher
}

func NewSearchService(listings ports.ListingProvider, enricher *Enricher) *SearchService {
	return &SearchService{listings: listings, enricher: enricher}
}

type SearchPage struct {
	Listings []domain.EnrichedListing
	// Total is the upstream's count hint for the primary query; the
	// amenity post-filter can shrink the page below it.
	Total int
}

// Search validates the filter and runs the pipeline. A failed primary fetch
// degrades to an empty page with a diagnostic, never an error; only an
// invalid filter is reported to the caller.
func (s *SearchService) Search(ctx context.Context, filter domain.FilterState, key domain.SortKey, limit, offset int) (*SearchPage, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	summaries, total, err := s.listings.Search(ctx, filter, limit, offset)
	if err != nil {
		log.Printf("search-posts failed: %v", err)
		return &SearchPage{Listings: []domain.EnrichedListing{}}, nil
	}
	if len(summaries) == 0 {
		return &SearchPage{Listings: []domain.EnrichedListing{}, Total: total}, nil
	}

	enriched := s.enricher.EnrichAll(ctx, summaries)
	filtered := FilterByAmenities(enriched, filter.Amenities)
	return &SearchPage{Listings: SortListings(filtered, key), Total: total}, nil
}

// HomeFeed returns the newest listings for the landing page, enriched the
// same way as search results.
func (s *SearchService) HomeFeed(ctx context.Context, limit int) ([]domain.EnrichedListing, error) {
	summaries, err := s.listings.List(ctx, limit, 0)
	if err != nil {
		log.Printf("get-list-of-posts failed: %v", err)
		return []domain.EnrichedListing{}, nil
	}
	return s.enricher.EnrichAll(ctx, summaries), nil
}
