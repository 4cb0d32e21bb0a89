package rentapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

// CommentRepo implements ports.CommentProvider over the rental API.
type CommentRepo struct {
	c *Client
}

func NewCommentRepo(c *Client) *CommentRepo {
	return &CommentRepo{c: c}
}

type commentListResponse struct {
	envelope
	Comments []domain.Comment `json:"comments"`
}

type commentResponse struct {
	envelope
	Comment *domain.Comment `json:"comment"`
}

func (r *CommentRepo) ListByPost(ctx context.Context, postID int) ([]domain.Comment, error) {
	var out commentListResponse
	if err := r.c.get(ctx, "/get-post-comments/"+strconv.Itoa(postID), nil, &out); err != nil {
		return nil, err
	}
	return out.Comments, nil
}

func (r *CommentRepo) Add(ctx context.Context, input domain.CommentInput) (*domain.Comment, error) {
	q := url.Values{}
	q.Set("post_id", strconv.Itoa(input.PostID))
	q.Set("user_id", strconv.Itoa(input.UserID))
	q.Set("rating", strconv.FormatFloat(input.Rating, 'f', -1, 64))
	if input.Content != "" {
		q.Set("comment", input.Content)
	}
	var out commentResponse
	if err := r.c.do(ctx, http.MethodPost, "/add-comment", q, nil, &out); err != nil {
		return nil, err
	}
	if out.Comment == nil {
		return nil, ErrPayload
	}
	return out.Comment, nil
}
