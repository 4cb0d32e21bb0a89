package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/sleepifoxx/timtro-web/internal/domain"
	"github.com/sleepifoxx/timtro-web/internal/repository/ports"
	"github.com/sleepifoxx/timtro-web/internal/repository/rentapi"
)

// AccountService fronts the upstream account endpoints. The upstream is the
// only credential authority; this side just forwards and maps its failure
// discriminants onto service errors.
type AccountService struct {
	accounts ports.AccountProvider
}

func NewAccountService(accounts ports.AccountProvider) *AccountService {
	return &AccountService{accounts: accounts}
}

func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.accounts.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, rentapi.ErrFail) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

func (s *AccountService) Signup(ctx context.Context, input domain.SignupInput) (*domain.User, error) {
	if strings.TrimSpace(input.Email) == "" || !strings.Contains(input.Email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidCredentials)
	}
	if len(input.Password) < 6 {
		return nil, fmt.Errorf("%w: password too short", ErrInvalidCredentials)
	}
	user, err := s.accounts.Signup(ctx, input)
	if err != nil {
		if errors.Is(err, rentapi.ErrFail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

type Profile struct {
	User  domain.User
	Stats domain.UserStats
}

// Profile loads the user record with activity stats. Missing stats degrade
// to zeros.
func (s *AccountService) Profile(ctx context.Context, userID int) (*Profile, error) {
	user, err := s.accounts.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, rentapi.ErrFail) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	profile := &Profile{User: *user}
	stats, err := s.accounts.Stats(ctx, userID)
	if err != nil {
		log.Printf("profile %d: stats lookup failed: %v", userID, err)
	} else if stats != nil {
		profile.Stats = *stats
	}
	return profile, nil
}

// Update edits the profile. The upstream refuses any update without the
// account password, so an empty one fails fast here.
func (s *AccountService) Update(ctx context.Context, update domain.UserUpdate) (*domain.User, error) {
	if update.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidCredentials)
	}
	user, err := s.accounts.UpdateUser(ctx, update)
	if err != nil {
		if errors.Is(err, rentapi.ErrFail) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
