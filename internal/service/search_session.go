package service

import (
	"context"
	"sync"

	"github.com/sleepifoxx/timtro-web/internal/domain"
)

// SearchSession serializes the searches of one page session under a
// monotonically increasing generation: submitting a new search cancels the
// in-flight one, and a result is applied only while its generation is still
// the latest. Stale results are discarded deterministically instead of
// racing the fresh ones.
type SearchSession struct {
	svc *SearchService

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

func NewSearchSession(svc *SearchService) *SearchSession {
	return &SearchSession{svc: svc}
}

// Generation returns the latest issued generation.
func (s *SearchSession) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Submit runs one search under a fresh generation. It returns ErrStaleSearch
// when a newer Submit overtook this one while it was running.
func (s *SearchSession) Submit(ctx context.Context, filter domain.FilterState, key domain.SortKey, limit, offset int) (*SearchPage, uint64, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	if s.cancel != nil {
		s.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	page, err := s.svc.Search(runCtx, filter, key, limit, offset)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		cancel()
		return nil, gen, ErrStaleSearch
	}
	s.cancel = nil
	cancel()
	return page, gen, err
}
