package rentapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

// FavoriteRepo implements ports.FavoriteStore over the rental API.
type FavoriteRepo struct {
	c *Client
}

func NewFavoriteRepo(c *Client) *FavoriteRepo {
	return &FavoriteRepo{c: c}
}

type favoriteListResponse struct {
	envelope
	Favourites []domain.Favorite `json:"favourites"`
}

func (r *FavoriteRepo) ListByUser(ctx context.Context, userID int) ([]domain.Favorite, error) {
	var out favoriteListResponse
	if err := r.c.get(ctx, "/get-user-favourites/"+strconv.Itoa(userID), nil, &out); err != nil {
		return nil, err
	}
	return out.Favourites, nil
}

func (r *FavoriteRepo) Add(ctx context.Context, userID, postID int) error {
	var out envelopeOnly
	return r.c.do(ctx, http.MethodPost, "/add-favourite", userPostQuery(userID, postID), nil, &out)
}

func (r *FavoriteRepo) Remove(ctx context.Context, userID, postID int) error {
	var out envelopeOnly
	return r.c.do(ctx, http.MethodDelete, "/remove-favourite", userPostQuery(userID, postID), nil, &out)
}

func userPostQuery(userID, postID int) url.Values {
	q := url.Values{}
	q.Set("user_id", strconv.Itoa(userID))
	q.Set("post_id", strconv.Itoa(postID))
	return q
}
