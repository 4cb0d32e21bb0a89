package service

import (
	"context"
	"errors"
	"sync"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

var errUpstreamDown = errors.New("upstream unreachable")

// memoryListings implements ports.ListingProvider over a slice, applying the
// primary-query constraints the way the upstream does.
type memoryListings struct {
	items     []domain.ListingSummary
	searchErr error
}

func (m *memoryListings) Search(_ context.Context, filter domain.FilterState, limit, offset int) ([]domain.ListingSummary, int, error) {
	if m.searchErr != nil {
		return nil, 0, m.searchErr
	}
	matched := make([]domain.ListingSummary, 0, len(m.items))
	for _, item := range m.items {
		if filter.Province != "" && item.Province != filter.Province {
			continue
		}
		if filter.District != "" && item.District != filter.District {
			continue
		}
		if filter.Type != "" && filter.Type != domain.PropertyTypeAny && item.Type != filter.Type {
			continue
		}
		if item.Price < filter.PriceMin || item.Price > filter.PriceMax {
			continue
		}
		if item.Area < filter.AreaMin || item.Area > filter.AreaMax {
			continue
		}
		matched = append(matched, item)
	}
	total := len(matched)
	if offset >= len(matched) {
		return []domain.ListingSummary{}, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (m *memoryListings) List(_ context.Context, limit, offset int) ([]domain.ListingSummary, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if offset >= len(m.items) {
		return []domain.ListingSummary{}, nil
	}
	out := m.items[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryListings) ListByUser(_ context.Context, userID int) ([]domain.ListingSummary, error) {
	out := make([]domain.ListingSummary, 0)
	for _, item := range m.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *memoryListings) GetByID(_ context.Context, id int) (*domain.ListingSummary, error) {
	for _, item := range m.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, errUpstreamDown
}

func (m *memoryListings) Create(_ context.Context, draft domain.ListingDraft) (*domain.ListingSummary, error) {
	created := domain.ListingSummary{
		ID:       len(m.items) + 1,
		UserID:   draft.UserID,
		Title:    draft.Title,
		Price:    draft.Price,
		Area:     draft.Area,
		RoomNum:  draft.RoomNum,
		Type:     draft.Type,
		Province: draft.Province,
		District: draft.District,
		Status:   domain.ListingStatusPending,
	}
	m.items = append(m.items, created)
	return &created, nil
}

// memoryEnrichment implements ports.EnrichmentProvider with per-post data
// and optional per-post failures. It counts calls so tests can assert on
// caching behaviour.
type memoryEnrichment struct {
	mu        sync.Mutex
	images    map[int][]string
	amenities map[int]domain.AmenitySet
	failFor   map[int]bool
	calls     int
}

func newMemoryEnrichment() *memoryEnrichment {
	return &memoryEnrichment{
		images:    make(map[int][]string),
		amenities: make(map[int]domain.AmenitySet),
		failFor:   make(map[int]bool),
	}
}

func (m *memoryEnrichment) Images(_ context.Context, postID int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failFor[postID] {
		return nil, errUpstreamDown
	}
	return m.images[postID], nil
}

func (m *memoryEnrichment) Amenities(_ context.Context, postID int) (domain.AmenitySet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failFor[postID] {
		return nil, errUpstreamDown
	}
	return m.amenities[postID], nil
}

func (m *memoryEnrichment) AddImages(_ context.Context, postID int, urls []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images[postID] = append(m.images[postID], urls...)
	return nil
}

func (m *memoryEnrichment) AddAmenities(_ context.Context, postID int, set domain.AmenitySet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.amenities[postID] = set
	return nil
}

func (m *memoryEnrichment) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// memoryFavorites implements ports.FavoriteStore with switchable write
// failures.
type memoryFavorites struct {
	mu      sync.Mutex
	byUser  map[int]map[int]bool
	failing bool
	listErr error
}

func newMemoryFavorites() *memoryFavorites {
	return &memoryFavorites{byUser: make(map[int]map[int]bool)}
}

func (m *memoryFavorites) ListByUser(_ context.Context, userID int) ([]domain.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.Favorite, 0)
	for postID := range m.byUser[userID] {
		out = append(out, domain.Favorite{UserID: userID, PostID: postID})
	}
	return out, nil
}

func (m *memoryFavorites) Add(_ context.Context, userID, postID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errUpstreamDown
	}
	if m.byUser[userID] == nil {
		m.byUser[userID] = make(map[int]bool)
	}
	m.byUser[userID][postID] = true
	return nil
}

func (m *memoryFavorites) Remove(_ context.Context, userID, postID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errUpstreamDown
	}
	delete(m.byUser[userID], postID)
	return nil
}

func (m *memoryFavorites) setFailing(failing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing = failing
}

func (m *memoryFavorites) has(userID, postID int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byUser[userID][postID]
}

// memoryComments implements ports.CommentProvider.
type memoryComments struct {
	byPost map[int][]domain.Comment
	next   int
}

func newMemoryComments() *memoryComments {
	return &memoryComments{byPost: make(map[int][]domain.Comment)}
}

func (m *memoryComments) ListByPost(_ context.Context, postID int) ([]domain.Comment, error) {
	return m.byPost[postID], nil
}

func (m *memoryComments) Add(_ context.Context, input domain.CommentInput) (*domain.Comment, error) {
	m.next++
	comment := domain.Comment{
		ID:      m.next,
		PostID:  input.PostID,
		UserID:  input.UserID,
		Content: input.Content,
		Rating:  input.Rating,
	}
	m.byPost[input.PostID] = append(m.byPost[input.PostID], comment)
	return &comment, nil
}

// memoryHistory implements ports.HistoryStore. Entries carry the full post
// record the way the backend serves them, so listing only needs the join.
type historyRecord struct {
	userID int
	entry  domain.HistoryEntry
}

type memoryHistory struct {
	records []historyRecord
}

func (m *memoryHistory) Record(_ context.Context, userID, postID int) error {
	m.records = append(m.records, historyRecord{
		userID: userID,
		entry:  domain.HistoryEntry{Post: domain.ListingSummary{ID: postID}},
	})
	return nil
}

func (m *memoryHistory) ListByUser(_ context.Context, userID, limit int) ([]domain.HistoryEntry, error) {
	out := make([]domain.HistoryEntry, 0)
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].userID != userID {
			continue
		}
		out = append(out, m.records[i].entry)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memoryHistory) Clear(_ context.Context, userID int) error {
	kept := m.records[:0]
	for _, record := range m.records {
		if record.userID != userID {
			kept = append(kept, record)
		}
	}
	m.records = kept
	return nil
}

func noCacheEnricher(provider *memoryEnrichment) *Enricher {
	return NewEnricher(provider, EnricherConfig{Workers: 4})
}
