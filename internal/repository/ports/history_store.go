package ports

import (
	"context"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

type HistoryStore interface {
	Record(ctx context.Context, userID, postID int) error
	ListByUser(ctx context.Context, userID, limit int) ([]domain.HistoryEntry, error)
	Clear(ctx context.Context, userID int) error
}
