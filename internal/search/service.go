package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"courtfinder/internal/courts/models"
	"courtfinder/internal/courts/store"
	"courtfinder/internal/platform/config"
	searchmetrics "courtfinder/internal/search/metrics"
	"courtfinder/internal/search/postcode"
	"courtfinder/pkg/platform/sentinel"
	platformstrings "courtfinder/pkg/platform/strings"
)

// AreaMoneyClaims is the area-of-law slug with a fixed national routing.
const AreaMoneyClaims = "money-claims"

// Resolver is the postcode resolution contract the engine consumes.
type Resolver interface {
	Resolve(ctx context.Context, raw string) (*postcode.Resolved, error)
	LocalAuthority(ctx context.Context, resolved *postcode.Resolved) (string, error)
}

// Service executes court searches. Each request is independent and
// stateless; the service only reads from the store.
type Service struct {
	store    store.Reader
	resolver Resolver
	cfg      config.SearchConfig
	logger   *slog.Logger
	metrics  *searchmetrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *searchmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New builds the search service. The configuration is injected so tests can
// run against fixtures without ambient state.
func New(st store.Reader, resolver Resolver, cfg config.SearchConfig, opts ...Option) (*Service, error) {
	if st == nil {
		return nil, fmt.Errorf("court store is required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("postcode resolver is required")
	}
	svc := &Service{store: st, resolver: resolver, cfg: cfg}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Search dispatches on the query variant.
func (s *Service) Search(ctx context.Context, q Query) (*Result, error) {
	switch {
	case q.Text != nil:
		return s.SearchByText(ctx, q.Text.Raw)
	case q.Postcode != nil:
		return s.SearchByPostcode(ctx, q.Postcode.RawPostcode, q.Postcode.AreaOfLaw)
	default:
		return nil, &CourtSearchError{Op: "dispatch", Err: fmt.Errorf("query has no variant")}
	}
}

// SearchByText matches venues whose name or address contains every query
// token at a word boundary, order-independent and case-insensitive.
func (s *Service) SearchByText(ctx context.Context, raw string) (*Result, error) {
	tokens := platformstrings.Tokenize(raw)
	if len(tokens) == 0 {
		return &Result{}, nil
	}

	courts, err := s.store.SearchByTokens(ctx, strings.Join(tokens, " "), tokens)
	if err != nil {
		s.countSearch("text", "error")
		return nil, &CourtSearchError{Op: "text search", Err: err}
	}

	result := &Result{Courts: make([]RankedCourt, 0, len(courts))}
	for _, c := range courts {
		result.Courts = append(result.Courts, RankedCourt{Court: c})
	}
	s.countSearch("text", outcomeFor(result))
	return result, nil
}

// SearchByPostcode resolves the postcode and ranks venues for the area of
// law. An empty or "all" area searches every area and merges by venue.
func (s *Service) SearchByPostcode(ctx context.Context, rawPostcode, areaOfLaw string) (*Result, error) {
	resolved, err := s.resolver.Resolve(ctx, rawPostcode)
	if err != nil {
		s.countSearch("postcode", postcodeOutcome(err))
		return nil, err
	}
	return s.SearchResolved(ctx, resolved, areaOfLaw)
}

// SearchResolved runs the postcode search against an already resolved
// postcode. Repeating the call with unchanged data yields identical ordered
// results.
func (s *Service) SearchResolved(ctx context.Context, resolved *postcode.Resolved, areaOfLaw string) (*Result, error) {
	if areaOfLaw == "" {
		areaOfLaw = AreaOfLawAll
	}

	// Money claims route to the designated national venue unconditionally.
	if areaOfLaw == AreaMoneyClaims {
		return s.moneyClaimsResult(ctx, resolved)
	}

	// Northern Ireland has its own court service; only allow-listed areas
	// of law return results here.
	if resolved.NorthernIreland && !s.servesNorthernIreland(areaOfLaw) {
		s.countSearch("postcode", "no_coverage")
		return &Result{NoRegionalCoverage: true}, nil
	}

	areas, err := s.areasToSearch(ctx, areaOfLaw)
	if err != nil {
		return nil, err
	}

	merged := make(map[int64]RankedCourt)
	single := areaOfLaw != AreaOfLawAll

	var singleResult []RankedCourt
	for _, area := range areas {
		ranked, err := s.courtsForArea(ctx, resolved, area)
		if err != nil {
			s.countSearch("postcode", "error")
			return nil, err
		}
		if single {
			singleResult = ranked
			break
		}
		for _, rc := range ranked {
			prev, seen := merged[rc.Court.ID]
			if !seen || lessDistance(rc.DistanceMiles, prev.DistanceMiles) {
				merged[rc.Court.ID] = rc
			}
		}
	}

	result := &Result{Scotland: resolved.Scotland}
	if single {
		result.Courts = singleResult
	} else {
		result.Courts = sortRanked(mapValues(merged))
		if len(result.Courts) > s.cfg.ProximityLimit {
			result.Courts = result.Courts[:s.cfg.ProximityLimit]
		}
	}
	s.countSearch("postcode", outcomeFor(result))
	return result, nil
}

// SinglePointOfEntry reports whether the area of law has a designated
// single-point-of-entry venue, which drives the clarifying step.
func (s *Service) SinglePointOfEntry(ctx context.Context, areaOfLaw string) (bool, error) {
	area, err := s.store.AreaOfLawBySlug(ctx, areaOfLaw)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, &UnknownAreaOfLawError{Slug: areaOfLaw}
		}
		return false, &CourtSearchError{Op: "area of law lookup", Err: err}
	}
	associations, err := s.store.CourtAreasOfLaw(ctx, area.ID)
	if err != nil {
		return false, &CourtSearchError{Op: "court areas of law", Err: err}
	}
	for _, ca := range associations {
		if ca.SinglePointOfEntry {
			return true, nil
		}
	}
	return false, nil
}

// AreasOfLaw lists every area of law for the chooser step.
func (s *Service) AreasOfLaw(ctx context.Context) ([]models.AreaOfLaw, error) {
	areas, err := s.store.ListAreasOfLaw(ctx)
	if err != nil {
		return nil, &CourtSearchError{Op: "list areas of law", Err: err}
	}
	return areas, nil
}

func (s *Service) moneyClaimsResult(ctx context.Context, resolved *postcode.Resolved) (*Result, error) {
	court, err := s.store.CourtBySlug(ctx, s.cfg.MoneyClaimsSlug)
	if err != nil {
		s.countSearch("postcode", "error")
		return nil, &CourtSearchError{Op: "money claims venue", Err: err}
	}
	s.countSearch("postcode", "results")
	return &Result{
		Courts:   []RankedCourt{{Court: court}},
		Scotland: resolved.Scotland,
	}, nil
}

func (s *Service) servesNorthernIreland(areaOfLaw string) bool {
	for _, slug := range s.cfg.NIAreasOfLaw {
		if slug == areaOfLaw {
			return true
		}
	}
	return false
}

func (s *Service) areasToSearch(ctx context.Context, areaOfLaw string) ([]models.AreaOfLaw, error) {
	if areaOfLaw == AreaOfLawAll {
		areas, err := s.store.ListAreasOfLaw(ctx)
		if err != nil {
			s.countSearch("postcode", "error")
			return nil, &CourtSearchError{Op: "list areas of law", Err: err}
		}
		return areas, nil
	}

	area, err := s.store.AreaOfLawBySlug(ctx, areaOfLaw)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.countSearch("postcode", "error")
			return nil, &UnknownAreaOfLawError{Slug: areaOfLaw}
		}
		s.countSearch("postcode", "error")
		return nil, &CourtSearchError{Op: "area of law lookup", Err: err}
	}
	return []models.AreaOfLaw{*area}, nil
}

// courtsForArea ranks venues for one area of law: local-authority coverage
// when the association demands it, proximity otherwise.
func (s *Service) courtsForArea(ctx context.Context, resolved *postcode.Resolved, area models.AreaOfLaw) ([]RankedCourt, error) {
	associations, err := s.store.CourtAreasOfLaw(ctx, area.ID)
	if err != nil {
		return nil, &CourtSearchError{Op: "court areas of law", Err: err}
	}

	laRestricted := false
	for _, ca := range associations {
		if ca.LocalAuthorityRestricted {
			laRestricted = true
			break
		}
	}

	if laRestricted {
		ranked, err := s.localAuthorityCourts(ctx, resolved, area)
		if err != nil {
			return nil, err
		}
		if len(ranked) > 0 {
			return ranked, nil
		}
		// No coverage row: fall back to the nearest venue offering the
		// area of law.
	}

	return s.proximityCourts(ctx, resolved, area)
}

func (s *Service) localAuthorityCourts(ctx context.Context, resolved *postcode.Resolved, area models.AreaOfLaw) ([]RankedCourt, error) {
	la, err := s.resolver.LocalAuthority(ctx, resolved)
	if err != nil {
		if postcode.IsInvalid(err) {
			// District unknown for this postcode; the proximity
			// fallback still applies.
			return nil, nil
		}
		return nil, err
	}

	courts, err := s.store.CourtsByLocalAuthority(ctx, la, area.ID)
	if err != nil {
		return nil, &CourtSearchError{Op: "local authority courts", Err: err}
	}
	return sortRanked(s.annotate(resolved, courts)), nil
}

func (s *Service) proximityCourts(ctx context.Context, resolved *postcode.Resolved, area models.AreaOfLaw) ([]RankedCourt, error) {
	courts, err := s.store.CourtsByAreaOfLaw(ctx, area.ID)
	if err != nil {
		return nil, &CourtSearchError{Op: "courts by area of law", Err: err}
	}
	ranked := sortRanked(s.annotate(resolved, courts))
	if len(ranked) > s.cfg.ProximityLimit {
		ranked = ranked[:s.cfg.ProximityLimit]
	}
	return ranked, nil
}

// annotate attaches great-circle distances. Venues without coordinates are
// kept but rank after every distance-annotated venue.
func (s *Service) annotate(resolved *postcode.Resolved, courts []*models.Court) []RankedCourt {
	ranked := make([]RankedCourt, 0, len(courts))
	for _, c := range courts {
		rc := RankedCourt{Court: c}
		if c.HasCoords() {
			d := distanceMiles(resolved.Lat, resolved.Lon, *c.Lat, *c.Lon)
			rc.DistanceMiles = &d
		}
		ranked = append(ranked, rc)
	}
	return ranked
}

// sortRanked orders by distance ascending with name as the tie-break, so
// identical inputs always produce identical output order.
func sortRanked(ranked []RankedCourt) []RankedCourt {
	sort.SliceStable(ranked, func(i, j int) bool {
		di, dj := ranked[i].DistanceMiles, ranked[j].DistanceMiles
		switch {
		case di == nil && dj == nil:
			return ranked[i].Court.Name < ranked[j].Court.Name
		case di == nil:
			return false
		case dj == nil:
			return true
		case *di != *dj:
			return *di < *dj
		default:
			return ranked[i].Court.Name < ranked[j].Court.Name
		}
	})
	return ranked
}

func lessDistance(a, b *float64) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}

func mapValues(m map[int64]RankedCourt) []RankedCourt {
	out := make([]RankedCourt, 0, len(m))
	for _, rc := range m {
		out = append(out, rc)
	}
	return out
}

func (s *Service) countSearch(kind, outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementSearch(kind, outcome)
	}
}

func outcomeFor(r *Result) string {
	switch {
	case r.NoRegionalCoverage:
		return "no_coverage"
	case len(r.Courts) == 0:
		return "empty"
	default:
		return "results"
	}
}

func postcodeOutcome(err error) string {
	if postcode.IsInvalid(err) {
		return "invalid_postcode"
	}
	return "error"
}
