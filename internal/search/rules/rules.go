// Package rules holds the request routing policy for the search boundary as
// an ordered rule table. Evaluation is pure: rules read an immutable view of
// the request and return an action, they never perform I/O.
package rules

import "net/url"

// View is the request snapshot the rules evaluate. The boundary fills it in
// before evaluation; rules never look anywhere else.
type View struct {
	// HasQueryParam reports whether the q parameter was present at all,
	// distinct from present-but-blank.
	HasQueryParam bool
	Query         string

	HasPostcodeParam bool
	Postcode         string

	AreaOfLaw string

	// SPOE is the single-point-of-entry choice carried from the
	// clarifying step; empty when the step has not been visited.
	SPOE string

	// SinglePointOfEntry reports whether the requested area of law has a
	// designated single-point-of-entry venue.
	SinglePointOfEntry bool

	// InvalidPostcode is set after resolution rejects the postcode, so
	// the table can route the user back to the postcode form.
	InvalidPostcode bool

	// UnknownAreaOfLaw is set when the requested area-of-law slug does
	// not exist.
	UnknownAreaOfLaw bool
}

// Kind enumerates rule outcomes.
type Kind int

const (
	// Proceed lets the search run.
	Proceed Kind = iota
	// Redirect sends the user to another step instead of searching.
	Redirect
	// Reject refuses the request outright.
	Reject
)

// Action is the outcome of evaluating the table against one request.
type Action struct {
	Kind   Kind
	Target string
	Params url.Values
	// Reason explains a rejection.
	Reason string
}

// Location renders the redirect target with its query parameters.
func (a Action) Location() string {
	if len(a.Params) == 0 {
		return a.Target
	}
	return a.Target + "?" + a.Params.Encode()
}

// Rule is one condition, action pair. Name shows up in logs.
type Rule struct {
	Name string
	When func(View) bool
	Then func(View) Action
}

// Evaluate walks the table in order and returns the first matching rule's
// action plus its name. No rule matching means Proceed.
func Evaluate(table []Rule, v View) (Action, string) {
	for _, r := range table {
		if r.When(v) {
			return r.Then(v), r.Name
		}
	}
	return Action{Kind: Proceed}, ""
}

// Table is the routing policy for /search/results, ordered most specific
// first.
func Table() []Rule {
	return []Rule{
		{
			Name: "no search input",
			When: func(v View) bool { return !v.HasQueryParam && !v.HasPostcodeParam },
			Then: func(View) Action {
				return Action{Kind: Redirect, Target: "/search/"}
			},
		},
		{
			Name: "blank query",
			When: func(v View) bool { return v.HasQueryParam && v.Query == "" },
			Then: func(View) Action {
				return Action{Kind: Redirect, Target: "/search/address", Params: url.Values{"error": {"noquery"}}}
			},
		},
		{
			Name: "blank postcode",
			When: func(v View) bool { return v.HasPostcodeParam && v.Postcode == "" },
			Then: func(v View) Action {
				params := url.Values{"error": {"nopostcode"}}
				if v.AreaOfLaw != "" {
					params.Set("aol", v.AreaOfLaw)
				}
				return Action{Kind: Redirect, Target: "/search/postcode", Params: params}
			},
		},
		{
			Name: "invalid postcode",
			When: func(v View) bool { return v.HasPostcodeParam && v.InvalidPostcode },
			Then: func(v View) Action {
				params := url.Values{"error": {"badpostcode"}, "postcode": {v.Postcode}}
				if v.AreaOfLaw != "" {
					params.Set("aol", v.AreaOfLaw)
				}
				return Action{Kind: Redirect, Target: "/search/postcode", Params: params}
			},
		},
		{
			Name: "unknown area of law",
			When: func(v View) bool { return v.UnknownAreaOfLaw },
			Then: func(v View) Action {
				return Action{Kind: Reject, Reason: "unknown area of law"}
			},
		},
		{
			Name: "single point of entry clarification",
			When: func(v View) bool {
				return v.HasPostcodeParam && v.SinglePointOfEntry && v.SPOE == ""
			},
			Then: func(v View) Action {
				params := url.Values{"aol": {v.AreaOfLaw}, "postcode": {v.Postcode}}
				return Action{Kind: Redirect, Target: "/search/spoe", Params: params}
			},
		},
	}
}
