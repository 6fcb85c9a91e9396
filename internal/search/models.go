// Package search implements the court search engine: free-text and
// postcode-driven venue lookups with jurisdiction and routing rules.
package search

import (
	"courtfinder/internal/courts/models"
)

// AreaOfLawAll is the sentinel slug meaning "search every area of law".
const AreaOfLawAll = "all"

// Query is the request shape accepted by the engine: exactly one of the two
// variants, decided at the request boundary.
type Query struct {
	Text     *TextQuery
	Postcode *PostcodeQuery
}

// TextQuery is a free-text address or venue name search.
type TextQuery struct {
	Raw string
}

// PostcodeQuery is a postcode search scoped to an area of law.
type PostcodeQuery struct {
	RawPostcode string
	AreaOfLaw   string
	// SPOE carries the single-point-of-entry choice made on the
	// clarifying step ("start" or "continue"); empty when the step has
	// not been visited.
	SPOE string
}

// RankedCourt is one search hit. DistanceMiles is set only for geo-ranked
// results.
type RankedCourt struct {
	Court         *models.Court `json:"court"`
	DistanceMiles *float64      `json:"distance_miles,omitempty"`
}

// Result is an ordered, deduplicated venue list. Invariant: never contains a
// venue with displayed=false; ordering is stable for identical inputs.
type Result struct {
	Courts []RankedCourt `json:"courts"`

	// Scotland annotates the result so the boundary can render
	// Scotland-specific guidance; it does not change the ranked set.
	Scotland bool `json:"scotland,omitempty"`

	// NoRegionalCoverage marks the intentional "no results for this
	// region" state (Northern Ireland outside the allow-list). Distinct
	// from an empty Courts slice, which means "no matches found".
	NoRegionalCoverage bool `json:"no_regional_coverage,omitempty"`
}
