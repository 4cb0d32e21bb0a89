package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sleepifoxx/timtro-web/internal/domain"
	"github.com/sleepifoxx/timtro-web/internal/repository/ports"
)

// ListingService covers the listing-detail and posting pages.
type ListingService struct {
	listings ports.ListingProvider
	enrich   ports.EnrichmentProvider
	enricher *Enricher
	comments ports.CommentProvider
	history  ports.HistoryStore
}

func NewListingService(
	listings ports.ListingProvider,
	enrich ports.EnrichmentProvider,
	enricher *Enricher,
	comments ports.CommentProvider,
	history ports.HistoryStore,
) *ListingService {
	return &ListingService{
		listings: listings,
		enrich:   enrich,
		enricher: enricher,
		comments: comments,
		history:  history,
	}
}

type ListingDetail struct {
	domain.EnrichedListing
	Comments []domain.Comment
}

// Detail loads one listing with its enrichment and comments. Comment and
// history failures degrade silently; only a missing listing is an error.
// A signed-in viewer (viewerID > 0) gets the visit recorded.
func (s *ListingService) Detail(ctx context.Context, id, viewerID int) (*ListingDetail, error) {
	summary, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, ErrListingNotFound
	}

	enriched := s.enricher.EnrichAll(ctx, []domain.ListingSummary{*summary})

	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		log.Printf("detail post %d: comments lookup failed: %v", id, err)
		comments = nil
	}

	if viewerID > 0 {
		if err := s.history.Record(ctx, viewerID, id); err != nil {
			log.Printf("detail post %d: history record failed: %v", id, err)
		}
	}

	return &ListingDetail{EnrichedListing: enriched[0], Comments: comments}, nil
}

// Create submits a new listing with its amenities and image URLs. The
// upstream exposes three separate writes; the first failure aborts and is
// surfaced, it is not rolled back.
func (s *ListingService) Create(ctx context.Context, draft domain.ListingDraft, amenities domain.AmenitySet, imageURLs []string) (*domain.ListingSummary, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	created, err := s.listings.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	if err := s.enrich.AddAmenities(ctx, created.ID, amenities); err != nil {
		return nil, fmt.Errorf("post %d created but amenities not saved: %w", created.ID, err)
	}

	if len(imageURLs) > 0 {
		if err := s.enrich.AddImages(ctx, created.ID, imageURLs); err != nil {
			return nil, fmt.Errorf("post %d created but images not saved: %w", created.ID, err)
		}
	}

	return created, nil
}

// AddComment posts a review. The upstream stores the rating as a non-null
// column, so it is mandatory here; the text is optional.
func (s *ListingService) AddComment(ctx context.Context, input domain.CommentInput) (*domain.Comment, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrCommentValidation)
	}
	input.Content = strings.TrimSpace(input.Content)
	return s.comments.Add(ctx, input)
}

// OwnListings returns the user's posts enriched for the my-listings page.
func (s *ListingService) OwnListings(ctx context.Context, userID int) ([]domain.EnrichedListing, error) {
	summaries, err := s.listings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enricher.EnrichAll(ctx, summaries), nil
}

// RecentlyViewed returns the user's view history, newest first, enriched for
// cards. Each history entry already carries the full post record, so there
// is no per-entry lookup; deleted posts never appear in the history feed.
func (s *ListingService) RecentlyViewed(ctx context.Context, userID, limit int) ([]domain.EnrichedListing, error) {
	entries, err := s.history.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ListingSummary, 0, len(entries))
	for _, entry := range entries {
		summaries = append(summaries, entry.Post)
	}
	return s.enricher.EnrichAll(ctx, summaries), nil
}

// ClearHistory wipes the user's view history.
func (s *ListingService) ClearHistory(ctx context.Context, userID int) error {
	return s.history.Clear(ctx, userID)
}

func validateDraft(draft domain.ListingDraft) error {
	switch {
	case strings.TrimSpace(draft.Title) == "":
		return fmt.Errorf("%w: title is required", ErrListingValidation)
	case strings.TrimSpace(draft.Description) == "":
		return fmt.Errorf("%w: description is required", ErrListingValidation)
	case draft.Price <= 0:
		return fmt.Errorf("%w: price must be positive", ErrListingValidation)
	case draft.Area <= 0:
		return fmt.Errorf("%w: area must be positive", ErrListingValidation)
	case draft.RoomNum <= 0:
		return fmt.Errorf("%w: room count must be positive", ErrListingValidation)
	case draft.Type == domain.PropertyTypeAny || !domain.KnownPropertyType(draft.Type):
		return fmt.Errorf("%w: unknown property type %q", ErrListingValidation, draft.Type)
	case strings.TrimSpace(draft.Province) == "" || strings.TrimSpace(draft.District) == "":
		return fmt.Errorf("%w: province and district are required", ErrListingValidation)
	}
	return nil
}
