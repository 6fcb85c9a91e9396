package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	platformstrings "courtfinder/pkg/platform/strings"
)

// Config captures process-level configuration. It is built once in main and
// passed into constructors so nothing reads ambient global state.
type Config struct {
	Addr        string
	DatabaseURL string
	Redis       RedisConfig
	Search      SearchConfig
}

// RedisConfig holds connection settings for the optional Redis cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// SearchConfig holds the knobs the search engine needs injected. Defaults
// mirror the production service; tests override fields directly.
type SearchConfig struct {
	// AddressFinderURL is the primary geocoding provider (full postcodes only).
	AddressFinderURL string
	// MapitURL is the secondary provider: partial-postcode centroids and
	// local authority lookups.
	MapitURL string
	// ProviderTimeout bounds each provider HTTP call.
	ProviderTimeout time.Duration
	// ProximityLimit caps distance-ranked result lists.
	ProximityLimit int
	// MoneyClaimsSlug identifies the national money-claims venue.
	MoneyClaimsSlug string
	// NIAreasOfLaw lists area-of-law slugs still served for Northern
	// Ireland postcodes.
	NIAreasOfLaw []string
	// PostcodeCacheTTL bounds how long resolved coordinates are reused.
	PostcodeCacheTTL time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Addr:        envOr("COURTFINDER_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envIntOr("REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDurationOr("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDurationOr("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDurationOr("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Search: DefaultSearchConfig(),
	}
}

// DefaultSearchConfig returns the production search settings, with provider
// URLs overridable from the environment.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		AddressFinderURL: envOr("ADDRESS_FINDER_URL", "https://addressfinder.service.gov.uk/postcodes"),
		MapitURL:         envOr("MAPIT_URL", "https://mapit.mysociety.org/postcode"),
		ProviderTimeout:  envDurationOr("POSTCODE_PROVIDER_TIMEOUT", 3*time.Second),
		ProximityLimit:   envIntOr("SEARCH_PROXIMITY_LIMIT", 10),
		MoneyClaimsSlug:  envOr("MONEY_CLAIMS_SLUG", "county-court-money-claims-centre-ccmcc"),
		NIAreasOfLaw:     envListOr("NI_AREAS_OF_LAW", []string{"immigration"}),
		PostcodeCacheTTL: envDurationOr("POSTCODE_CACHE_TTL", 24*time.Hour),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envListOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		if out := platformstrings.DedupeAndTrim(strings.Split(v, ",")); len(out) > 0 {
			return out
		}
	}
	return fallback
}
