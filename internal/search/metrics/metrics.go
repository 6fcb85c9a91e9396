package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the search module.
type Metrics struct {
	// Searches by kind ("text", "postcode") and outcome ("results",
	// "empty", "no_coverage", "invalid_postcode", "error")
	Searches *prometheus.CounterVec

	// Postcode lookup latency by provider
	LookupLatency *prometheus.HistogramVec

	// Provider failures by provider
	ProviderErrors *prometheus.CounterVec
}

// New creates a new Metrics instance with all search module metrics registered.
func New() *Metrics {
	return &Metrics{
		Searches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "courtfinder_searches_total",
			Help: "Total searches by kind and outcome",
		}, []string{"kind", "outcome"}),

		LookupLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "courtfinder_postcode_lookup_duration_seconds",
			Help:    "Duration of postcode provider lookups",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"provider"}),

		ProviderErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "courtfinder_postcode_provider_errors_total",
			Help: "Total postcode provider failures",
		}, []string{"provider"}),
	}
}

// IncrementSearch records one search by kind and outcome.
func (m *Metrics) IncrementSearch(kind, outcome string) {
	if m != nil {
		m.Searches.WithLabelValues(kind, outcome).Inc()
	}
}

// ObserveLookup records the duration of one provider lookup.
func (m *Metrics) ObserveLookup(provider string, d time.Duration) {
	if m != nil {
		m.LookupLatency.WithLabelValues(provider).Observe(d.Seconds())
	}
}

// IncrementProviderError records one provider failure.
func (m *Metrics) IncrementProviderError(provider string) {
	if m != nil {
		m.ProviderErrors.WithLabelValues(provider).Inc()
	}
}
