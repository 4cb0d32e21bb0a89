package rentapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

// AccountRepo implements ports.AccountProvider over the rental API. The
// upstream owns credentials and password checks; this side only forwards
// them and never stores a password.
type AccountRepo struct {
	c *Client
}

func NewAccountRepo(c *Client) *AccountRepo {
	return &AccountRepo{c: c}
}

type userResponse struct {
	envelope
	User *domain.User `json:"user"`
}

type statsResponse struct {
	envelope
	Stats *domain.UserStats `json:"stats"`
}

func (r *AccountRepo) Login(ctx context.Context, email, password string) (*domain.User, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("password", password)
	var out userResponse
	if err := r.c.get(ctx, "/login", q, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, ErrPayload
	}
	return out.User, nil
}

func (r *AccountRepo) Signup(ctx context.Context, input domain.SignupInput) (*domain.User, error) {
	q := url.Values{}
	q.Set("email", input.Email)
	q.Set("password", input.Password)
	if input.FullName != "" {
		q.Set("full_name", input.FullName)
	}
	if input.ContactNumber != "" {
		q.Set("contact_number", input.ContactNumber)
	}
	var out userResponse
	if err := r.c.do(ctx, http.MethodPost, "/signup", q, nil, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, ErrPayload
	}
	return out.User, nil
}

func (r *AccountRepo) GetUser(ctx context.Context, id int) (*domain.User, error) {
	q := url.Values{}
	q.Set("user_id", strconv.Itoa(id))
	var out userResponse
	if err := r.c.get(ctx, "/get-user-info", q, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, ErrPayload
	}
	return out.User, nil
}

func (r *AccountRepo) UpdateUser(ctx context.Context, update domain.UserUpdate) (*domain.User, error) {
	q := url.Values{}
	q.Set("user_id", strconv.Itoa(update.UserID))
	// The upstream rejects the request with a validation error unless the
	// password accompanies every update.
	q.Set("password", update.Password)
	if update.FullName != "" {
		q.Set("full_name", update.FullName)
	}
	if update.ContactNumber != "" {
		q.Set("contact_number", update.ContactNumber)
	}
	if update.AvatarURL != "" {
		q.Set("avatar_url", update.AvatarURL)
	}
	var out userResponse
	if err := r.c.do(ctx, http.MethodPut, "/update-user", q, nil, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, ErrPayload
	}
	return out.User, nil
}

func (r *AccountRepo) Stats(ctx context.Context, userID int) (*domain.UserStats, error) {
	var out statsResponse
	if err := r.c.get(ctx, "/get-user-stats/"+strconv.Itoa(userID), nil, &out); err != nil {
		return nil, err
	}
	if out.Stats == nil {
		return nil, ErrPayload
	}
	return out.Stats, nil
}
