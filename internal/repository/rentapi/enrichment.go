package rentapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

// EnrichmentRepo implements ports.EnrichmentProvider over the rental API.
type EnrichmentRepo struct {
	c *Client
}

func NewEnrichmentRepo(c *Client) *EnrichmentRepo {
	return &EnrichmentRepo{c: c}
}

type imageListResponse struct {
	envelope
	Images []struct {
		ID       int    `json:"id"`
		PostID   int    `json:"post_id"`
		ImageURL string `json:"image_url"`
	} `json:"images"`
}

type convenienceResponse struct {
	envelope
	Convenience map[string]any `json:"convenience"`
}

// Images returns the listing's image URLs in upstream order. The first
// element is the cover image.
func (r *EnrichmentRepo) Images(ctx context.Context, postID int) ([]string, error) {
	var out imageListResponse
	if err := r.c.get(ctx, "/get-post-images/"+strconv.Itoa(postID), nil, &out); err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(out.Images))
	for _, img := range out.Images {
		if img.ImageURL != "" {
			urls = append(urls, img.ImageURL)
		}
	}
	return urls, nil
}

// Amenities returns the listing's convenience flags. Non-boolean fields in
// the upstream record (row id, post id) are skipped.
func (r *EnrichmentRepo) Amenities(ctx context.Context, postID int) (domain.AmenitySet, error) {
	var out convenienceResponse
	if err := r.c.get(ctx, "/get-post-convenience/"+strconv.Itoa(postID), nil, &out); err != nil {
		return nil, err
	}
	set := make(domain.AmenitySet, len(out.Convenience))
	for key, value := range out.Convenience {
		if flag, ok := value.(bool); ok && domain.KnownAmenity(key) {
			set[key] = flag
		}
	}
	return set, nil
}

func (r *EnrichmentRepo) AddImages(ctx context.Context, postID int, urls []string) error {
	q := url.Values{}
	q.Set("post_id", strconv.Itoa(postID))
	for _, u := range urls {
		q.Add("image_urls", u)
	}
	var out envelopeOnly
	return r.c.do(ctx, http.MethodPost, "/add-post-images", q, nil, &out)
}

func (r *EnrichmentRepo) AddAmenities(ctx context.Context, postID int, set domain.AmenitySet) error {
	q := url.Values{}
	q.Set("post_id", strconv.Itoa(postID))
	for _, key := range domain.AmenityKeys() {
		q.Set(key, strconv.FormatBool(set[key]))
	}
	var out envelopeOnly
	return r.c.do(ctx, http.MethodPost, "/add-convenience", q, nil, &out)
}

type envelopeOnly struct {
	envelope
}
