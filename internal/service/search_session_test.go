package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

// blockingListings parks Search calls until released, so tests can hold one
// search in flight while submitting another.
type blockingListings struct {
	memoryListings
	mu      sync.Mutex
	entered chan struct{}
	release chan struct{}
	blockN  int
}

func (b *blockingListings) Search(ctx context.Context, filter domain.FilterState, limit, offset int) ([]domain.ListingSummary, int, error) {
	b.mu.Lock()
	shouldBlock := b.blockN > 0
	if shouldBlock {
		b.blockN--
	}
	b.mu.Unlock()

	if shouldBlock {
		b.entered <- struct{}{}
		select {
		case <-b.release:
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		}
	}
	return b.memoryListings.Search(ctx, filter, limit, offset)
}

func TestSearchSession_GenerationIncrements(t *testing.T) {
	svc := NewSearchService(districtFixture(), noCacheEnricher(newMemoryEnrichment()))
	session := NewSearchSession(svc)

	_, gen1, err := session.Submit(context.Background(), domain.DefaultFilter(), domain.SortNewest, 20, 0)
	if err != nil {
		t.Fatalf("first submit returned error: %v", err)
	}
	_, gen2, err := session.Submit(context.Background(), domain.DefaultFilter(), domain.SortNewest, 20, 0)
	if err != nil {
		t.Fatalf("second submit returned error: %v", err)
	}
	if gen2 != gen1+1 {
		t.Fatalf("expected generation %d, got %d", gen1+1, gen2)
	}
}

func TestSearchSession_OvertakenSearchIsStale(t *testing.T) {
	listings := &blockingListings{
		memoryListings: *districtFixture(),
		entered:        make(chan struct{}, 1),
		release:        make(chan struct{}),
		blockN:         1,
	}
	svc := NewSearchService(listings, noCacheEnricher(newMemoryEnrichment()))
	session := NewSearchSession(svc)

	type result struct {
		page *SearchPage
		err  error
	}
	firstDone := make(chan result, 1)

	go func() {
		page, _, err := session.Submit(context.Background(), domain.DefaultFilter(), domain.SortNewest, 20, 0)
		firstDone <- result{page: page, err: err}
	}()

	// Wait until the first search is inside the primary fetch, then
	// overtake it.
	<-listings.entered

	page, _, err := session.Submit(context.Background(), domain.DefaultFilter(), domain.SortNewest, 20, 0)
	if err != nil {
		t.Fatalf("overtaking submit returned error: %v", err)
	}
	if page == nil {
		t.Fatal("overtaking submit returned nil page")
	}

	close(listings.release)
	first := <-firstDone
	if !errors.Is(first.err, ErrStaleSearch) {
		t.Fatalf("expected ErrStaleSearch for the overtaken search, got %v", first.err)
	}
	if first.page != nil {
		t.Fatalf("stale search must not deliver a page, got %v", first.page)
	}
}
