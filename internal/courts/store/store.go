// Package store provides read access to venue records. Stores are pure I/O;
// ranking and business rules live in the search service.
package store

import (
	"context"

	"courtfinder/internal/courts/models"
)

// Reader is the read contract the search engine and courts API consume.
type Reader interface {
	// CourtBySlug returns the full venue record, including associations,
	// or sentinel.ErrNotFound. Undisplayed venues are still returned so
	// the boundary can render the "no longer in service" state.
	CourtBySlug(ctx context.Context, slug string) (*models.Court, error)

	// CourtsByNameInitial lists displayed venues whose name starts with
	// the given letter, ordered by name ascending.
	CourtsByNameInitial(ctx context.Context, letter string) ([]*models.Court, error)

	// SearchByTokens returns displayed venues whose name or postal address
	// matches every token at a word boundary, ordered exact-name-match
	// first, then by name ascending. Tokens are lowercase.
	SearchByTokens(ctx context.Context, query string, tokens []string) ([]*models.Court, error)

	// AreaOfLawBySlug returns the area of law, or sentinel.ErrNotFound.
	AreaOfLawBySlug(ctx context.Context, slug string) (*models.AreaOfLaw, error)

	// ListAreasOfLaw returns every area of law, ordered by name.
	ListAreasOfLaw(ctx context.Context) ([]models.AreaOfLaw, error)

	// CourtAreasOfLaw returns the venue associations for an area of law.
	CourtAreasOfLaw(ctx context.Context, areaOfLawID int64) ([]models.CourtAreaOfLaw, error)

	// CourtsByAreaOfLaw returns displayed venues handling the area of law.
	CourtsByAreaOfLaw(ctx context.Context, areaOfLawID int64) ([]*models.Court, error)

	// CourtsByLocalAuthority returns displayed venues with a coverage row
	// for (local authority, area of law).
	CourtsByLocalAuthority(ctx context.Context, localAuthority string, areaOfLawID int64) ([]*models.Court, error)

	// PostcodesCovered lists the explicit postcode coverage for a venue.
	PostcodesCovered(ctx context.Context, courtID int64) ([]string, error)
}
