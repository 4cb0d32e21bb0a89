package rentapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

// ListingRepo implements ports.ListingProvider over the rental API.
type ListingRepo struct {
	c *Client
}

func NewListingRepo(c *Client) *ListingRepo {
	return &ListingRepo{c: c}
}

type postListResponse struct {
	envelope
	Posts []domain.ListingSummary `json:"posts"`
	Count int                     `json:"count"`
}

type postResponse struct {
	envelope
	Post *domain.ListingSummary `json:"post"`
}

// Search issues the primary listings query.
func (r *ListingRepo) Search(ctx context.Context, filter domain.FilterState, limit, offset int) ([]domain.ListingSummary, int, error) {
	var out postListResponse
	if err := r.c.get(ctx, "/search-posts", SearchQuery(filter, limit, offset), &out); err != nil {
		return nil, 0, err
	}
	return out.Posts, out.Count, nil
}

func (r *ListingRepo) List(ctx context.Context, limit, offset int) ([]domain.ListingSummary, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	var out postListResponse
	if err := r.c.get(ctx, "/get-list-of-posts", q, &out); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

// ListByUser returns the user's own posts. The upstream answers "fail" for a
// user with no posts, which is reported here as an empty list rather than an
// error.
func (r *ListingRepo) ListByUser(ctx context.Context, userID int) ([]domain.ListingSummary, error) {
	q := url.Values{}
	q.Set("user_id", strconv.Itoa(userID))
	var out postListResponse
	if err := r.c.get(ctx, "/get-posts-by-user", q, &out); err != nil {
		if errors.Is(err, ErrFail) {
			return nil, nil
		}
		return nil, err
	}
	return out.Posts, nil
}

func (r *ListingRepo) GetByID(ctx context.Context, id int) (*domain.ListingSummary, error) {
	q := url.Values{}
	q.Set("post_id", strconv.Itoa(id))
	var out postResponse
	if err := r.c.get(ctx, "/get-post-by-id", q, &out); err != nil {
		return nil, err
	}
	if out.Post == nil {
		return nil, ErrPayload
	}
	return out.Post, nil
}

// Create submits a new post. The upstream expects an urlencoded form.
func (r *ListingRepo) Create(ctx context.Context, draft domain.ListingDraft) (*domain.ListingSummary, error) {
	form := url.Values{}
	form.Set("user_id", strconv.Itoa(draft.UserID))
	form.Set("title", draft.Title)
	form.Set("description", draft.Description)
	form.Set("price", strconv.Itoa(draft.Price))
	form.Set("area", strconv.Itoa(draft.Area))
	form.Set("room_num", strconv.Itoa(draft.RoomNum))
	form.Set("type", draft.Type)
	form.Set("deposit", draft.Deposit)
	form.Set("electricity_fee", strconv.Itoa(draft.ElectricityFee))
	form.Set("water_fee", strconv.Itoa(draft.WaterFee))
	form.Set("internet_fee", strconv.Itoa(draft.InternetFee))
	form.Set("vehicle_fee", strconv.Itoa(draft.VehicleFee))
	form.Set("province", draft.Province)
	form.Set("district", draft.District)
	form.Set("rural", draft.Rural)
	form.Set("street", draft.Street)
	form.Set("detailed_address", draft.DetailedAddress)
	if draft.FloorNum != nil {
		form.Set("floor_num", *draft.FloorNum)
	}

	var out postResponse
	if err := r.c.do(ctx, http.MethodPost, "/create-post", nil, form, &out); err != nil {
		return nil, err
	}
	if out.Post == nil {
		return nil, ErrPayload
	}
	return out.Post, nil
}
