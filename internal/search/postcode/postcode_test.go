package postcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFull(t *testing.T) {
	full := []string{
		"EC1A 1BB", "EC1A1BB", "W1A 0AX", "W1A0AX", "M1 1AE", "M11AE",
		"B33 8TH", "B338TH", "CR2 6XH", "CR26XH", "DN55 1PT", "DN551PT",
	}
	for _, pc := range full {
		assert.True(t, IsFull(pc), "expected %q to be a full postcode", pc)
	}

	notFull := []string{
		"EC1A 1", "EC1A1", "W1A 0", "W1A0", "M1 1", "M11", "B33 8", "B338",
		"CR2 6", "CR26", "DN55 1", "DN551", "EC1", "EC", "E", "E1", "B33",
		"foo", "123", "not a postcode", "ZZZ1 2YYY", "Z111 2YY",
	}
	for _, pc := range notFull {
		assert.False(t, IsFull(pc), "expected %q not to be a full postcode", pc)
	}
}

func TestIsFullCaseAndWhitespace(t *testing.T) {
	assert.True(t, IsFull("se15 4uh"))
	assert.True(t, IsFull("  SE15   4UH  "))
}

func TestIsPartial(t *testing.T) {
	for _, pc := range []string{"SE15", "G2", "AB10", "BT2", "E1", "DN55"} {
		assert.True(t, IsPartial(pc), "expected %q to be a partial postcode", pc)
	}
	for _, pc := range []string{"SE15 4UH", "SE15 4", "foo", "E", ""} {
		assert.False(t, IsPartial(pc), "expected %q not to be a partial postcode", pc)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  SE154UH  ", "SE154UH"},
		{"se15  4uh", "SE15 4UH"},
		{"SE15\t4UH", "SE15 4UH"},
		{"SE15  ", "SE15"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.input))
	}
}

func TestJurisdiction(t *testing.T) {
	tests := []struct {
		postcode string
		scotland bool
		ni       bool
	}{
		{"G2 4PP", true, false},
		{"G2", true, false},
		{"AB10", true, false},
		{"AB10 7LY", true, false},
		{"EH1 1AA", true, false},
		{"BA2 7AY", false, false},
		{"BT2", false, true},
		{"bt48 6aa", false, true},
		{"SE15 4UH", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.postcode, func(t *testing.T) {
			assert.Equal(t, tt.scotland, IsScotland(tt.postcode))
			assert.Equal(t, tt.ni, IsNorthernIreland(tt.postcode))
		})
	}
}
