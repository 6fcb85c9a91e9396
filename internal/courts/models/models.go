// Package models defines the venue records the search engine and the courts
// API read. Records are owned by the ingestion pipeline; this service only
// reads them.
package models

import "time"

// Court is a displayable court or tribunal venue.
type Court struct {
	ID           int64        `json:"id"`
	Slug         string       `json:"slug"`
	Name         string       `json:"name"`
	Number       *int         `json:"number,omitempty"`
	CCICode      *int         `json:"cci_code,omitempty"`
	Lat          *float64     `json:"lat,omitempty"`
	Lon          *float64     `json:"lon,omitempty"`
	Displayed    bool         `json:"displayed"`
	Alert        string       `json:"alert,omitempty"`
	Info         string       `json:"info,omitempty"`
	ImageFile    string       `json:"image_file,omitempty"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Addresses    []Address    `json:"addresses,omitempty"`
	Contacts     []Contact    `json:"contacts,omitempty"`
	Emails       []Email      `json:"emails,omitempty"`
	Types        []string     `json:"court_types,omitempty"`
	Facilities   []Facility   `json:"facilities,omitempty"`
	OpeningTimes []string     `json:"opening_times,omitempty"`
	AreasOfLaw   []AreaOfLaw  `json:"areas_of_law,omitempty"`
	Parking      *ParkingInfo `json:"parking,omitempty"`
}

// HasCoords reports whether the venue can take part in proximity ranking.
func (c *Court) HasCoords() bool {
	return c.Lat != nil && c.Lon != nil
}

// Address is a venue address of a given type ("Visit us", "Write to us",
// "Visit or contact us").
type Address struct {
	Type     string `json:"type"`
	Address  string `json:"address"`
	Postcode string `json:"postcode"`
	Town     string `json:"town"`
	County   string `json:"county,omitempty"`
}

// Contact is a named phone number, ordered for display.
type Contact struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	SortOrder   int    `json:"sort_order"`
	Explanation string `json:"explanation,omitempty"`
}

// Email is a contact email with an optional description.
type Email struct {
	Description string `json:"description,omitempty"`
	Address     string `json:"address"`
}

// Facility is an amenity offered at a venue.
type Facility struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ParkingInfo describes venue parking arrangements.
type ParkingInfo struct {
	Onsite    string `json:"onsite,omitempty"`
	Offsite   string `json:"offsite,omitempty"`
	BlueBadge string `json:"blue_badge,omitempty"`
}

// AreaOfLaw is a legal-matter category used to filter venues.
type AreaOfLaw struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CourtAreaOfLaw associates a venue with an area of law it handles.
// SinglePointOfEntry marks the designated first-contact venue for the area;
// LocalAuthorityRestricted switches matching from pure proximity to
// local-authority coverage.
type CourtAreaOfLaw struct {
	CourtID                  int64
	AreaOfLawID              int64
	SinglePointOfEntry       bool
	LocalAuthorityRestricted bool
}

// LocalAuthorityCoverage asserts a venue is the catchment venue for an
// administrative district and area of law, overriding distance ranking.
type LocalAuthorityCoverage struct {
	CourtID        int64
	AreaOfLawID    int64
	LocalAuthority string
}

// CourtPostcode is an explicit postcode-prefix coverage entry for a venue.
type CourtPostcode struct {
	CourtID  int64
	Postcode string
}
