package ports

import (
	"context"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

type FavoriteStore interface {
	ListByUser(ctx context.Context, userID int) ([]domain.Favorite, error)
	Add(ctx context.Context, userID, postID int) error
	Remove(ctx context.Context, userID, postID int) error
}
