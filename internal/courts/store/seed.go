package store

import (
	"time"

	"courtfinder/internal/courts/models"
)

// Seeded area-of-law IDs, stable so tests can reference them directly.
const (
	AreaDivorceID     int64 = 1
	AreaCrimeID       int64 = 2
	AreaImmigrationID int64 = 3
	AreaMoneyClaimsID int64 = 4
	AreaChildrenID    int64 = 5
)

func ptrFloat(f float64) *float64 { return &f }
func ptrInt(n int) *int           { return &n }

// SeedCourts populates an in-memory store with a small venue set used by
// unit tests and local development: a northern magistrates' court that
// covers a London borough for divorce, a nearby London county court, the
// national money-claims centre, and an undisplayed venue.
func SeedCourts(s *InMemoryStore) {
	updated := time.Date(2014, time.April, 16, 0, 0, 0, 0, time.UTC)

	for _, a := range []models.AreaOfLaw{
		{ID: AreaDivorceID, Name: "Divorce", Slug: "divorce"},
		{ID: AreaCrimeID, Name: "Crime", Slug: "crime"},
		{ID: AreaImmigrationID, Name: "Immigration", Slug: "immigration"},
		{ID: AreaMoneyClaimsID, Name: "Money claims", Slug: "money-claims"},
		{ID: AreaChildrenID, Name: "Children", Slug: "children"},
	} {
		s.AddAreaOfLaw(a)
	}

	accrington := &models.Court{
		ID:        1,
		Slug:      "accrington-magistrates-court",
		Name:      "Accrington Magistrates' Court",
		Number:    ptrInt(1725),
		CCICode:   ptrInt(242),
		Lat:       ptrFloat(53.7491281714105),
		Lon:       ptrFloat(-2.359323760375),
		Displayed: true,
		UpdatedAt: updated,
		Addresses: []models.Address{
			{Type: "Visit us", Address: "East Lancashire Magistrates' Court, The Law Courts", Postcode: "BB5 2BH", Town: "Accrington", County: "Lancashire"},
			{Type: "Write to us", Address: "Accrington Magistrates' Court, Northgate", Postcode: "BB1 7DJ", Town: "Blackburn", County: "Lancashire"},
		},
		Contacts: []models.Contact{
			{Name: "Enquiries", Number: "01254  687500", SortOrder: 1},
			{Name: "Fax", Number: "0870 739 4254", SortOrder: 2},
		},
		Emails: []models.Email{
			{Description: "Enquiries", Address: "ln-blackburnmcenq@hmcts.gsi.gov.uk"},
		},
		Types:        []string{"Magistrates' Court"},
		OpeningTimes: []string{"Court building open: Monday to Friday 9am to 5pm"},
		Facilities: []models.Facility{
			{Name: "Interview room", Description: "Three interview rooms are available at this venue."},
			{Name: "Refreshments", Description: "Vending machines are available at this venue."},
		},
		Parking: &models.ParkingInfo{Offsite: "paid", BlueBadge: "onsite"},
	}
	s.AddCourt(accrington)

	lambeth := &models.Court{
		ID:        2,
		Slug:      "lambeth-county-court",
		Name:      "Lambeth County Court",
		Lat:       ptrFloat(51.4816181350784),
		Lon:       ptrFloat(-0.1136827344917),
		Displayed: true,
		UpdatedAt: updated,
		Addresses: []models.Address{
			{Type: "Visit us", Address: "Cleaver Street, Kennington Road", Postcode: "SE11 4DZ", Town: "London"},
		},
	}
	s.AddCourt(lambeth)

	ccmcc := &models.Court{
		ID:        3,
		Slug:      "county-court-money-claims-centre-ccmcc",
		Name:      "County Court Money Claims Centre (CCMCC)",
		Lat:       ptrFloat(53.4794892),
		Lon:       ptrFloat(-2.2451148),
		Displayed: true,
		UpdatedAt: updated,
		Addresses: []models.Address{
			{Type: "Write to us", Address: "PO Box 527", Postcode: "M5 0BY", Town: "Salford"},
		},
	}
	s.AddCourt(ccmcc)

	tameside := &models.Court{
		ID:        4,
		Slug:      "tameside-magistrates-court",
		Name:      "Tameside Magistrates' Court",
		Lat:       ptrFloat(53.4872684505318),
		Lon:       ptrFloat(-2.0998438549042),
		Displayed: true,
		Alert:     "Please allow additional time for security checks.",
		UpdatedAt: updated,
		Addresses: []models.Address{
			{Type: "Visit us", Address: "Henry Square", Postcode: "OL6 7TP", Town: "Ashton-Under-Lyne"},
		},
		Parking: &models.ParkingInfo{Offsite: "paid", BlueBadge: "onsite"},
	}
	s.AddCourt(tameside)

	inactive := &models.Court{
		ID:        5,
		Slug:      "old-court-no-longer-in-use",
		Name:      "Example2 Court",
		Lat:       ptrFloat(0),
		Lon:       ptrFloat(0),
		Displayed: false,
		UpdatedAt: updated,
	}
	s.AddCourt(inactive)

	// Divorce is local-authority-restricted; Accrington covers Southwark.
	s.AddCourtAreaOfLaw(models.CourtAreaOfLaw{CourtID: accrington.ID, AreaOfLawID: AreaDivorceID, LocalAuthorityRestricted: true})
	s.AddCourtAreaOfLaw(models.CourtAreaOfLaw{CourtID: lambeth.ID, AreaOfLawID: AreaDivorceID, LocalAuthorityRestricted: true})
	s.AddCoverage(models.LocalAuthorityCoverage{CourtID: accrington.ID, AreaOfLawID: AreaDivorceID, LocalAuthority: "Southwark Borough Council"})
	s.AddCoverage(models.LocalAuthorityCoverage{CourtID: lambeth.ID, AreaOfLawID: AreaDivorceID, LocalAuthority: "Lambeth Borough Council"})

	// Crime and immigration rank by proximity.
	s.AddCourtAreaOfLaw(models.CourtAreaOfLaw{CourtID: accrington.ID, AreaOfLawID: AreaCrimeID})
	s.AddCourtAreaOfLaw(models.CourtAreaOfLaw{CourtID: tameside.ID, AreaOfLawID: AreaCrimeID})
	s.AddCourtAreaOfLaw(models.CourtAreaOfLaw{CourtID: lambeth.ID, AreaOfLawID: AreaImmigrationID})
	s.AddCourtAreaOfLaw(models.CourtAreaOfLaw{CourtID: tameside.ID, AreaOfLawID: AreaImmigrationID})

	// Money claims routes to the CCMCC regardless of distance.
	s.AddCourtAreaOfLaw(models.CourtAreaOfLaw{CourtID: ccmcc.ID, AreaOfLawID: AreaMoneyClaimsID})

	// Children has a single point of entry.
	s.AddCourtAreaOfLaw(models.CourtAreaOfLaw{CourtID: lambeth.ID, AreaOfLawID: AreaChildrenID, SinglePointOfEntry: true})

	s.AddCourtPostcode(models.CourtPostcode{CourtID: accrington.ID, Postcode: "BB5"})
}
