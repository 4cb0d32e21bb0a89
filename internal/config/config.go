package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	APIBaseURL      string
	SessionSecret   string
	SessionTTL      time.Duration
	CookieSecure    bool
	AllowOrigins    []string
	LogstashTCPAddr string

	UpstreamRPS      float64
	UpstreamBurst    int
	UpstreamTimeout  time.Duration
	EnrichWorkers    int
	EnrichTimeout    time.Duration
	EnrichCacheSize  int
	EnrichCacheTTL   time.Duration
	PageSize         int
	HomeFeedSize     int
	HistoryPageLimit int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	return Config{
		Port:            getenv("PORT", "3000"),
		APIBaseURL:      must("RENT_API_BASE_URL"),
		SessionSecret:   must("SESSION_SECRET"),
		SessionTTL:      duration("SESSION_TTL", 24*time.Hour),
		CookieSecure:    getenv("COOKIE_SECURE", "false") == "true",
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),

		UpstreamRPS:      floatenv("UPSTREAM_RPS", 50),
		UpstreamBurst:    intenv("UPSTREAM_BURST", 100),
		UpstreamTimeout:  duration("UPSTREAM_TIMEOUT", 10*time.Second),
		EnrichWorkers:    intenv("ENRICH_WORKERS", 8),
		EnrichTimeout:    duration("ENRICH_TIMEOUT", 5*time.Second),
		EnrichCacheSize:  intenv("ENRICH_CACHE_SIZE", 512),
		EnrichCacheTTL:   duration("ENRICH_CACHE_TTL", time.Minute),
		PageSize:         intenv("PAGE_SIZE", 12),
		HomeFeedSize:     intenv("HOME_FEED_SIZE", 8),
		HistoryPageLimit: intenv("HISTORY_PAGE_LIMIT", 10),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}

func intenv(k string, d int) int {
	if v, err := strconv.Atoi(getenv(k, "")); err == nil && v > 0 {
		return v
	}
	return d
}

func floatenv(k string, d float64) float64 {
	if v, err := strconv.ParseFloat(getenv(k, ""), 64); err == nil && v >= 0 {
		return v
	}
	return d
}

func duration(k string, d time.Duration) time.Duration {
	if v, err := time.ParseDuration(getenv(k, "")); err == nil && v > 0 {
		return v
	}
	return d
}
