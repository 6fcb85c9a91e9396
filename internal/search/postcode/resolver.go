package postcode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"courtfinder/pkg/platform/circuit"
	"courtfinder/pkg/platform/sentinel"
)

// Metrics is the observability hook the resolver feeds. Satisfied by the
// search metrics package; nil disables instrumentation.
type Metrics interface {
	ObserveLookup(provider string, d time.Duration)
	IncrementProviderError(provider string)
}

// Resolver turns raw postcode input into a Resolved value. Providers form an
// explicit ordered list; the first one whose capabilities cover the lookup
// shape and whose circuit is closed is used. The resolver never retries: a
// failed provider call surfaces as-is, and retry policy stays with the
// boundary layer.
type Resolver struct {
	providers []Provider
	breakers  map[string]*circuit.Breaker
	cache     Cache
	logger    *slog.Logger
	metrics   Metrics
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCache attaches a resolved-postcode cache. Cache failures are treated
// as misses, never as resolution failures.
func WithCache(cache Cache) Option {
	return func(r *Resolver) { r.cache = cache }
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

func WithMetrics(m Metrics) Option {
	return func(r *Resolver) { r.metrics = m }
}

// NewResolver builds a resolver over an ordered provider list.
func NewResolver(providers []Provider, opts ...Option) (*Resolver, error) {
	if len(providers) == 0 {
		return nil, fmt.Errorf("at least one postcode provider is required")
	}
	r := &Resolver{
		providers: providers,
		breakers:  make(map[string]*circuit.Breaker, len(providers)),
	}
	for _, p := range providers {
		r.breakers[p.Name()] = circuit.New(p.Name(), circuit.WithFailureThreshold(5), circuit.WithSuccessThreshold(2))
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve validates and geocodes a raw postcode. Malformed input fails with
// *InvalidPostcodeError before any network call. Resolution is all-or-nothing:
// on any error the returned Resolved is nil.
func (r *Resolver) Resolve(ctx context.Context, raw string) (*Resolved, error) {
	pc := Normalize(raw)

	var partial bool
	switch {
	case IsFull(pc):
		partial = false
	case IsPartial(pc):
		partial = true
	default:
		return nil, &InvalidPostcodeError{Postcode: raw}
	}

	if cached := r.fromCache(ctx, pc); cached != nil {
		return cached, nil
	}

	provider := r.pick(func(p Provider) bool { return !partial || p.SupportsPartial() })
	if provider == nil {
		return nil, &ProviderError{Provider: "none", Err: fmt.Errorf("no provider supports partial postcodes")}
	}

	start := time.Now()
	point, err := provider.Geocode(ctx, pc, partial)
	r.observe(provider, time.Since(start), err)
	r.recordOutcome(ctx, provider, err)
	if err != nil {
		return nil, err
	}

	resolved := &Resolved{
		Postcode:        pc,
		Lat:             point.Lat,
		Lon:             point.Lon,
		Partial:         partial,
		Scotland:        IsScotland(pc),
		NorthernIreland: IsNorthernIreland(pc),
	}
	r.toCache(ctx, pc, resolved)
	return resolved, nil
}

// LocalAuthority maps a resolved postcode to its administrative district via
// the first provider capable of the lookup.
func (r *Resolver) LocalAuthority(ctx context.Context, resolved *Resolved) (string, error) {
	provider := r.pick(func(p Provider) bool { return p.SupportsLocalAuthority() })
	if provider == nil {
		return "", &ProviderError{Provider: "none", Err: fmt.Errorf("no provider supports local authority lookup")}
	}
	start := time.Now()
	la, err := provider.LocalAuthority(ctx, resolved.Postcode)
	r.observe(provider, time.Since(start), err)
	r.recordOutcome(ctx, provider, err)
	return la, err
}

func (r *Resolver) observe(provider Provider, d time.Duration, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.ObserveLookup(provider.Name(), d)
	if err != nil && !IsInvalid(err) {
		r.metrics.IncrementProviderError(provider.Name())
	}
}

// pick returns the first provider in order satisfying the capability test
// whose circuit is closed. When every capable circuit is open the first
// capable provider is used anyway, so a tripped breaker degrades to one live
// probe per request instead of a guaranteed failure.
func (r *Resolver) pick(capable func(Provider) bool) Provider {
	var first Provider
	for _, p := range r.providers {
		if !capable(p) {
			continue
		}
		if first == nil {
			first = p
		}
		if b := r.breakers[p.Name()]; b == nil || !b.IsOpen() {
			return p
		}
	}
	return first
}

// recordOutcome feeds the provider's breaker. An invalid-postcode response
// counts as a success: the provider answered, the input was just wrong.
func (r *Resolver) recordOutcome(ctx context.Context, provider Provider, err error) {
	b := r.breakers[provider.Name()]
	if b == nil {
		return
	}
	if err == nil || IsInvalid(err) {
		_, change := b.RecordSuccess()
		if change.Closed && r.logger != nil {
			r.logger.InfoContext(ctx, "postcode provider circuit closed", "provider", provider.Name())
		}
		return
	}
	_, change := b.RecordFailure()
	if change.Opened && r.logger != nil {
		r.logger.WarnContext(ctx, "postcode provider circuit opened", "provider", provider.Name())
	}
}

func (r *Resolver) fromCache(ctx context.Context, pc string) *Resolved {
	if r.cache == nil {
		return nil
	}
	cached, err := r.cache.Get(ctx, pc)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) && r.logger != nil {
			r.logger.WarnContext(ctx, "postcode cache read failed", "error", err)
		}
		return nil
	}
	return cached
}

func (r *Resolver) toCache(ctx context.Context, pc string, resolved *Resolved) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, pc, resolved); err != nil && r.logger != nil {
		r.logger.WarnContext(ctx, "postcode cache write failed", "error", err)
	}
}
