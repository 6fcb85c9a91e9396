// Package postcode normalizes, validates, and geocodes UK postcodes via
// external providers, and classifies their jurisdiction.
package postcode

import (
	"regexp"
	"strings"
)

// Full postcodes: outward code (1-2 letters, 1-2 digits, optional letter)
// plus inward code (digit and two letters). Partial postcodes are the
// outward code alone, enough for an area-centroid lookup but not an exact
// geocode.
var (
	fullPattern    = regexp.MustCompile(`^[A-Z]{1,2}[0-9]{1,2}[A-Z]? ?[0-9][A-Z]{2}$`)
	partialPattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9]{1,2}[A-Z]?$`)
	areaPattern    = regexp.MustCompile(`^[A-Z]{1,2}`)
)

// Postcode areas entirely within Scotland or Northern Ireland. TD and DG
// straddle the border but route to Scottish guidance like the original
// service.
var (
	scottishAreas = map[string]bool{
		"AB": true, "DD": true, "DG": true, "EH": true, "FK": true,
		"G": true, "HS": true, "IV": true, "KA": true, "KW": true,
		"KY": true, "ML": true, "PA": true, "PH": true, "TD": true,
		"ZE": true,
	}
	northernIrelandAreas = map[string]bool{"BT": true}
)

// Normalize trims surrounding whitespace, collapses internal whitespace to a
// single space, and uppercases the input.
func Normalize(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), " "))
}

// IsFull reports whether the normalized input is a complete UK postcode.
func IsFull(pc string) bool {
	return fullPattern.MatchString(Normalize(pc))
}

// IsPartial reports whether the normalized input is an outward code alone.
func IsPartial(pc string) bool {
	return partialPattern.MatchString(Normalize(pc))
}

// Area extracts the postcode area: the leading letters of the outward code.
func Area(pc string) string {
	return areaPattern.FindString(Normalize(pc))
}

// IsScotland reports whether the postcode area is Scottish.
func IsScotland(pc string) bool {
	return scottishAreas[Area(pc)]
}

// IsNorthernIreland reports whether the postcode area is in Northern Ireland.
func IsNorthernIreland(pc string) bool {
	return northernIrelandAreas[Area(pc)]
}

// Resolved is a postcode after geocoding. It is immutable once returned by
// the resolver: either the coordinates are valid or resolution failed and no
// Resolved value exists.
type Resolved struct {
	Postcode        string  `json:"postcode"`
	Lat             float64 `json:"lat"`
	Lon             float64 `json:"lon"`
	Partial         bool    `json:"partial"`
	Scotland        bool    `json:"scotland"`
	NorthernIreland bool    `json:"northern_ireland"`
}
