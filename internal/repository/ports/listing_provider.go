package ports

import (
	"context"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

// ListingProvider exposes the upstream listing-search surface.
type ListingProvider interface {
	// Search runs one primary query and returns a page of summaries plus
	// the upstream's count hint.
	Search(ctx context.Context, filter domain.FilterState, limit, offset int) ([]domain.ListingSummary, int, error)
	List(ctx context.Context, limit, offset int) ([]domain.ListingSummary, error)
	ListByUser(ctx context.Context, userID int) ([]domain.ListingSummary, error)
	GetByID(ctx context.Context, id int) (*domain.ListingSummary, error)
	Create(ctx context.Context, draft domain.ListingDraft) (*domain.ListingSummary, error)
}
