package ports

import (
	"context"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

type CommentProvider interface {
	ListByPost(ctx context.Context, postID int) ([]domain.Comment, error)
	Add(ctx context.Context, input domain.CommentInput) (*domain.Comment, error)
}
