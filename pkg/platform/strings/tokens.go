// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
	"unicode"
)

// Tokenize splits a free-text query on whitespace, collapsing runs of
// whitespace and discarding empty tokens. Tokens are lowercased so callers
// can match case-insensitively.
//
// Example:
//
//	Tokenize("  Accrington    Magistrates ")
//	// Returns: []string{"accrington", "magistrates"}
func Tokenize(query string) []string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
//
// Example:
//
//	DedupeAndTrim([]string{"  foo ", "bar", "foo", "", "  "})
//	// Returns: []string{"foo", "bar"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// Words splits a venue name or address into match words: maximal runs of
// letters and digits. Punctuation and hyphens are boundaries, so a query
// token can match each half of a hyphenated name.
func Words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
