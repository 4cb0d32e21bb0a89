package ports

import (
	"context"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

type AccountProvider interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Signup(ctx context.Context, input domain.SignupInput) (*domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	UpdateUser(ctx context.Context, update domain.UserUpdate) (*domain.User, error)
	Stats(ctx context.Context, userID int) (*domain.UserStats, error)
}
