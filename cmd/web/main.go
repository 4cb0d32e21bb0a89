package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sleepifoxx/timtro-web/internal/config"
	"github.com/sleepifoxx/timtro-web/internal/logging"
	"github.com/sleepifoxx/timtro-web/internal/metrics"
	"github.com/sleepifoxx/timtro-web/internal/repository/rentapi"
	"github.com/sleepifoxx/timtro-web/internal/service"
	"github.com/sleepifoxx/timtro-web/internal/session"
	transport "github.com/sleepifoxx/timtro-web/internal/transport/http"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("logstash mirror disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	collector := metrics.NewCollector()

	client := rentapi.NewClient(cfg.APIBaseURL,
		rentapi.WithHTTPClient(&http.Client{Timeout: cfg.UpstreamTimeout}),
		rentapi.WithRateLimit(cfg.UpstreamRPS, cfg.UpstreamBurst),
		rentapi.WithObserver(collector.RecordUpstream),
	)

	listings := rentapi.NewListingRepo(client)
	enrichment := rentapi.NewEnrichmentRepo(client)
	favorites := rentapi.NewFavoriteRepo(client)
	accounts := rentapi.NewAccountRepo(client)
	comments := rentapi.NewCommentRepo(client)
	history := rentapi.NewHistoryRepo(client)

	enricher := service.NewEnricher(enrichment, service.EnricherConfig{
		Workers:     cfg.EnrichWorkers,
		CallTimeout: cfg.EnrichTimeout,
		CacheSize:   cfg.EnrichCacheSize,
		CacheTTL:    cfg.EnrichCacheTTL,
	})

	searchSvc := service.NewSearchService(listings, enricher)
	favoriteSvc := service.NewFavoriteService(favorites, listings, enricher)
	listingSvc := service.NewListingService(listings, enrichment, enricher, comments, history)
	accountSvc := service.NewAccountService(accounts)

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)

	e := transport.NewRouter(cfg.AllowOrigins, collector)
	transport.RegisterSearch(e, sessions, searchSvc, favoriteSvc, collector, cfg.PageSize, cfg.HomeFeedSize)
	transport.RegisterListings(e, sessions, listingSvc, favoriteSvc)
	transport.RegisterFavorites(e, sessions, favoriteSvc, collector)
	transport.RegisterAuth(e, sessions, accountSvc)
	transport.RegisterProfile(e, sessions, accountSvc, listingSvc, cfg.HistoryPageLimit)
	transport.RegisterSwagger(e)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
