package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "collapses whitespace runs",
			input: "Accrington    Magistrates",
			want:  []string{"accrington", "magistrates"},
		},
		{
			name:  "trims leading and trailing whitespace",
			input: "  crown court  ",
			want:  []string{"crown", "court"},
		},
		{
			name:  "lowercases tokens",
			input: "TAMESIDE Court",
			want:  []string{"tameside", "court"},
		},
		{
			name:  "empty input yields nil",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "splits on punctuation",
			input: "Accrington Magistrates' Court",
			want:  []string{"accrington", "magistrates", "court"},
		},
		{
			name:  "hyphens are boundaries",
			input: "money-claims",
			want:  []string{"money", "claims"},
		},
		{
			name:  "digits stay inside words",
			input: "Example2 Court",
			want:  []string{"example2", "court"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.input))
		})
	}
}

func TestDedupeAndTrim(t *testing.T) {
	t.Run("removes duplicates and empties preserving order", func(t *testing.T) {
		got := DedupeAndTrim([]string{"  foo ", "bar", "foo", "", "  "})
		assert.Equal(t, []string{"foo", "bar"}, got)
	})

	t.Run("empty slice passes through", func(t *testing.T) {
		assert.Empty(t, DedupeAndTrim(nil))
	})
}
