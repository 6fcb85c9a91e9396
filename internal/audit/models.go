// Package audit records a trail of executed searches for operational
// analysis. Events are emitted from the search boundary and persisted off
// the request path by a background worker.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Event is one executed search. Keep it transport-agnostic so stores and
// sinks can fan out.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`

	// Kind is "text" or "postcode".
	Kind      string `json:"kind"`
	Query     string `json:"query,omitempty"`
	Postcode  string `json:"postcode,omitempty"`
	AreaOfLaw string `json:"area_of_law,omitempty"`

	// Results is the number of venues returned.
	Results int `json:"results"`

	// Outcome mirrors the search metrics labels: "results", "empty",
	// "no_coverage", "invalid_postcode", "error", "redirect".
	Outcome string `json:"outcome"`
}
