package rentapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

// HistoryRepo implements ports.HistoryStore over the rental API.
type HistoryRepo struct {
	c *Client
}

func NewHistoryRepo(c *Client) *HistoryRepo {
	return &HistoryRepo{c: c}
}

type historyListResponse struct {
	envelope
	History []domain.HistoryEntry `json:"history"`
}

func (r *HistoryRepo) Record(ctx context.Context, userID, postID int) error {
	var out envelopeOnly
	return r.c.do(ctx, http.MethodPost, "/add-history", userPostQuery(userID, postID), nil, &out)
}

func (r *HistoryRepo) ListByUser(ctx context.Context, userID, limit int) ([]domain.HistoryEntry, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	var out historyListResponse
	if err := r.c.get(ctx, "/get-user-history/"+strconv.Itoa(userID), q, &out); err != nil {
		return nil, err
	}
	return out.History, nil
}

func (r *HistoryRepo) Clear(ctx context.Context, userID int) error {
	var out envelopeOnly
	return r.c.do(ctx, http.MethodDelete, "/clear-user-history/"+strconv.Itoa(userID), nil, nil, &out)
}
