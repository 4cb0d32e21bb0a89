package rentapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

func TestClient_SearchDecodesSuccessEnvelope(t *testing.T) {
	var gotPath string
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"count": 1,
			"posts": [{
				"id": 12,
				"title": "Phòng trọ Quận 1",
				"price": 2500000,
				"area": 22,
				"district": "Quận 1",
				"province": "Hồ Chí Minh",
				"post_date": "2026-04-01T08:30:00.123456"
			}]
		}`))
	}))
	defer server.Close()

	repo := NewListingRepo(NewClient(server.URL))
	posts, total, err := repo.Search(context.Background(), domain.DefaultFilter(), 20, 0)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if gotPath != "/search-posts" {
		t.Fatalf("expected /search-posts, got %q", gotPath)
	}
	if gotQuery == "" {
		t.Fatal("expected query parameters on the primary fetch")
	}
	if total != 1 || len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d (total %d)", len(posts), total)
	}
	if posts[0].ID != 12 || posts[0].District != "Quận 1" {
		t.Fatalf("unexpected post %+v", posts[0])
	}
	if posts[0].PostDate.IsZero() {
		t.Fatal("expected the zone-less post_date to parse")
	}
}

func TestClient_FailDiscriminantIsErrFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "fail", "message": "Post not found"}`))
	}))
	defer server.Close()

	repo := NewListingRepo(NewClient(server.URL))
	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrFail) {
		t.Fatalf("expected ErrFail, got %v", err)
	}
}

func TestClient_HTTPErrorIsErrStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := NewListingRepo(NewClient(server.URL))
	_, _, err := repo.Search(context.Background(), domain.DefaultFilter(), 20, 0)
	if !errors.Is(err, ErrStatus) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}
}

func TestClient_MalformedBodyIsErrPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	repo := NewListingRepo(NewClient(server.URL))
	_, _, err := repo.Search(context.Background(), domain.DefaultFilter(), 20, 0)
	if !errors.Is(err, ErrPayload) {
		t.Fatalf("expected ErrPayload, got %v", err)
	}
}

func TestClient_UnreachableHostIsErrTransport(t *testing.T) {
	repo := NewListingRepo(NewClient("http://127.0.0.1:1"))
	_, _, err := repo.Search(context.Background(), domain.DefaultFilter(), 20, 0)
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestClient_ObserverSeesOutcomes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "posts": [], "count": 0}`))
	}))
	defer server.Close()

	type call struct{ endpoint, outcome string }
	var calls []call
	client := NewClient(server.URL, WithObserver(func(endpoint, outcome string) {
		calls = append(calls, call{endpoint, outcome})
	}))

	if _, _, err := NewListingRepo(client).Search(context.Background(), domain.DefaultFilter(), 20, 0); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(calls) != 1 || calls[0].endpoint != "/search-posts" || calls[0].outcome != "ok" {
		t.Fatalf("unexpected observer calls %v", calls)
	}
}

func TestListingRepo_EmptyOwnPostsIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "fail", "message": "No posts found for this user"}`))
	}))
	defer server.Close()

	repo := NewListingRepo(NewClient(server.URL))
	posts, err := repo.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("expected empty list, got error: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts, got %v", posts)
	}
}

func TestEnrichmentRepo_AmenitiesSkipsNonBooleanColumns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "success",
			"convenience": {
				"id": 3,
				"post_id": 12,
				"wifi": true,
				"fridge": false,
				"bacony": true,
				"not_a_real_column": true
			}
		}`))
	}))
	defer server.Close()

	repo := NewEnrichmentRepo(NewClient(server.URL))
	set, err := repo.Amenities(context.Background(), 12)
	if err != nil {
		t.Fatalf("Amenities returned error: %v", err)
	}
	if !set.Has(domain.AmenityWifi) || !set.Has(domain.AmenityBalcony) {
		t.Fatalf("expected wifi and balcony flags, got %v", set)
	}
	if set.Has(domain.AmenityFridge) {
		t.Fatal("expected fridge false")
	}
	if _, exists := set["not_a_real_column"]; exists {
		t.Fatal("unknown column leaked into the amenity set")
	}
	if _, exists := set["id"]; exists {
		t.Fatal("row id leaked into the amenity set")
	}
}

func TestEnrichmentRepo_ImagesKeepUpstreamOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "success",
			"images": [
				{"id": 1, "post_id": 12, "image_url": "first.jpg"},
				{"id": 2, "post_id": 12, "image_url": "second.jpg"}
			]
		}`))
	}))
	defer server.Close()

	repo := NewEnrichmentRepo(NewClient(server.URL))
	urls, err := repo.Images(context.Background(), 12)
	if err != nil {
		t.Fatalf("Images returned error: %v", err)
	}
	if len(urls) != 2 || urls[0] != "first.jpg" || urls[1] != "second.jpg" {
		t.Fatalf("unexpected urls %v", urls)
	}
}
