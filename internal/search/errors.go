package search

import "fmt"

// CourtSearchError marks a data-layer or internal invariant failure during
// search execution. Always surfaced as a server error, never swallowed.
type CourtSearchError struct {
	Op  string
	Err error
}

func (e *CourtSearchError) Error() string {
	return fmt.Sprintf("court search %s: %v", e.Op, e.Err)
}

func (e *CourtSearchError) Unwrap() error { return e.Err }

// UnknownAreaOfLawError marks a request for an area of law that does not
// exist. The boundary maps it to a bad-request response.
type UnknownAreaOfLawError struct {
	Slug string
}

func (e *UnknownAreaOfLawError) Error() string {
	return fmt.Sprintf("unknown area of law %q", e.Slug)
}
