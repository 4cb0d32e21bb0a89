package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/sleepifoxx/timtro-web/internal/domain"
	"github.com/sleepifoxx/timtro-web/internal/repository/ports"
)

type EnricherConfig struct {
	// Workers bounds the per-listing fan-out. Each worker runs one
	// listing's image and amenity lookups.
	Workers int
	// CallTimeout caps a single secondary lookup so one hung call cannot
	// stall the whole join.
	CallTimeout time.Duration
	CacheSize   int
	CacheTTL    time.Duration
}

func DefaultEnricherConfig() EnricherConfig {
	return EnricherConfig{
		Workers:     8,
		CallTimeout: 5 * time.Second,
		CacheSize:   512,
		CacheTTL:    time.Minute,
	}
}

type enrichmentEntry struct {
	images    []string
	amenities domain.AmenitySet
}

// Enricher runs the per-listing secondary-lookup fan-out. Lookups go through
// a bounded worker pool and a TTL'd LRU keyed by listing id, so a page of N
// listings costs at most 2N upstream calls and usually far fewer.
type Enricher struct {
	provider ports.EnrichmentProvider
	cfg      EnricherConfig
	cache    *expirable.LRU[int, enrichmentEntry]
}

func NewEnricher(provider ports.EnrichmentProvider, cfg EnricherConfig) *Enricher {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultEnricherConfig().Workers
	}
	var cache *expirable.LRU[int, enrichmentEntry]
	if cfg.CacheSize > 0 {
		cache = expirable.NewLRU[int, enrichmentEntry](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return &Enricher{provider: provider, cfg: cfg, cache: cache}
}

// EnrichAll joins every summary with its images and amenity flags. It always
// returns one record per input in input order and waits for every lookup to
// settle. A listing whose lookups fail comes back with no images and
// all-false amenities; the failure never aborts its neighbours.
func (e *Enricher) EnrichAll(ctx context.Context, summaries []domain.ListingSummary) []domain.EnrichedListing {
	results := make([]domain.EnrichedListing, len(summaries))

	pool := workerpool.New(e.cfg.Workers)
	for i, summary := range summaries {
		i, summary := i, summary
		pool.Submit(func() {
			results[i] = e.enrichOne(ctx, summary)
		})
	}
	pool.StopWait()

	return results
}

func (e *Enricher) enrichOne(ctx context.Context, summary domain.ListingSummary) domain.EnrichedListing {
	enriched := domain.EnrichedListing{
		ListingSummary: summary,
		Images:         []string{},
		Amenities:      domain.AmenitySet{},
	}

	if e.cache != nil {
		if entry, ok := e.cache.Get(summary.ID); ok {
			enriched.Images = entry.images
			enriched.Amenities = entry.amenities
			return enriched
		}
	}

	var (
		wg        sync.WaitGroup
		images    []string
		imagesErr error
		amenities domain.AmenitySet
		amenErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		callCtx, cancel := e.callContext(ctx)
		defer cancel()
		images, imagesErr = e.provider.Images(callCtx, summary.ID)
	}()
	go func() {
		defer wg.Done()
		callCtx, cancel := e.callContext(ctx)
		defer cancel()
		amenities, amenErr = e.provider.Amenities(callCtx, summary.ID)
	}()
	wg.Wait()

	if imagesErr != nil {
		log.Printf("enrich post %d: images lookup failed: %v", summary.ID, imagesErr)
	} else if images != nil {
		enriched.Images = images
	}
	if amenErr != nil {
		log.Printf("enrich post %d: amenities lookup failed: %v", summary.ID, amenErr)
	} else if amenities != nil {
		enriched.Amenities = amenities
	}

	// Only complete enrichments are cached, so a degraded listing is
	// retried on the next search.
	if e.cache != nil && imagesErr == nil && amenErr == nil {
		e.cache.Add(summary.ID, enrichmentEntry{images: enriched.Images, amenities: enriched.Amenities})
	}

	return enriched
}

func (e *Enricher) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.cfg.CallTimeout > 0 {
		return context.WithTimeout(ctx, e.cfg.CallTimeout)
	}
	return context.WithCancel(ctx)
}
