package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtfinder/pkg/platform/sentinel"
)

func seeded(t *testing.T) *InMemoryStore {
	t.Helper()
	s := NewInMemoryStore()
	SeedCourts(s)
	return s
}

func TestCourtBySlug(t *testing.T) {
	s := seeded(t)

	court, err := s.CourtBySlug(context.Background(), "accrington-magistrates-court")

	require.NoError(t, err)
	assert.Equal(t, "Accrington Magistrates' Court", court.Name)
	require.NotNil(t, court.CCICode)
	assert.Equal(t, 242, *court.CCICode)
}

func TestCourtBySlug_NotFound(t *testing.T) {
	s := seeded(t)

	_, err := s.CourtBySlug(context.Background(), "nowhere")

	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestCourtsByNameInitial(t *testing.T) {
	s := seeded(t)

	courts, err := s.CourtsByNameInitial(context.Background(), "L")

	require.NoError(t, err)
	require.Len(t, courts, 1)
	assert.Equal(t, "lambeth-county-court", courts[0].Slug)
}

func TestSearchByTokens_WordPrefix(t *testing.T) {
	s := seeded(t)

	courts, err := s.SearchByTokens(context.Background(), "tameside", []string{"tameside"})

	require.NoError(t, err)
	require.Len(t, courts, 1)
	assert.Equal(t, "tameside-magistrates-court", courts[0].Slug)
}

func TestSearchByTokens_MidWordTokenDoesNotMatch(t *testing.T) {
	s := seeded(t)

	courts, err := s.SearchByTokens(context.Background(), "ample2", []string{"ample2"})

	require.NoError(t, err)
	assert.Empty(t, courts)
}

func TestSearchByTokens_AllTokensRequired(t *testing.T) {
	s := seeded(t)

	courts, err := s.SearchByTokens(context.Background(), "accrington zzz", []string{"accrington", "zzz"})

	require.NoError(t, err)
	assert.Empty(t, courts)
}

func TestSearchByTokens_MatchesAddressAndPostcode(t *testing.T) {
	s := seeded(t)

	byTown, err := s.SearchByTokens(context.Background(), "salford", []string{"salford"})
	require.NoError(t, err)
	require.Len(t, byTown, 1)
	assert.Equal(t, "county-court-money-claims-centre-ccmcc", byTown[0].Slug)

	byPostcode, err := s.SearchByTokens(context.Background(), "ol6", []string{"ol6"})
	require.NoError(t, err)
	require.Len(t, byPostcode, 1)
	assert.Equal(t, "tameside-magistrates-court", byPostcode[0].Slug)
}

func TestSearchByTokens_SkipsUndisplayed(t *testing.T) {
	s := seeded(t)

	courts, err := s.SearchByTokens(context.Background(), "example2", []string{"example2"})

	require.NoError(t, err)
	assert.Empty(t, courts)
}

func TestAreaOfLawBySlug(t *testing.T) {
	s := seeded(t)

	area, err := s.AreaOfLawBySlug(context.Background(), "divorce")
	require.NoError(t, err)
	assert.Equal(t, AreaDivorceID, area.ID)

	_, err = s.AreaOfLawBySlug(context.Background(), "conveyancing")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestListAreasOfLaw_SortedByName(t *testing.T) {
	s := seeded(t)

	areas, err := s.ListAreasOfLaw(context.Background())

	require.NoError(t, err)
	require.Len(t, areas, 5)
	for i := 1; i < len(areas); i++ {
		assert.LessOrEqual(t, areas[i-1].Name, areas[i].Name)
	}
}

func TestCourtAreasOfLaw(t *testing.T) {
	s := seeded(t)

	associations, err := s.CourtAreasOfLaw(context.Background(), AreaDivorceID)

	require.NoError(t, err)
	require.Len(t, associations, 2)
	for _, ca := range associations {
		assert.True(t, ca.LocalAuthorityRestricted)
	}
}

func TestCourtsByLocalAuthority(t *testing.T) {
	s := seeded(t)

	courts, err := s.CourtsByLocalAuthority(context.Background(), "Southwark Borough Council", AreaDivorceID)

	require.NoError(t, err)
	require.Len(t, courts, 1)
	assert.Equal(t, "accrington-magistrates-court", courts[0].Slug)
}

func TestCourtsByLocalAuthority_WrongAreaOfLaw(t *testing.T) {
	s := seeded(t)

	courts, err := s.CourtsByLocalAuthority(context.Background(), "Southwark Borough Council", AreaCrimeID)

	require.NoError(t, err)
	assert.Empty(t, courts)
}

func TestPostcodesCovered(t *testing.T) {
	s := seeded(t)

	postcodes, err := s.PostcodesCovered(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"BB5"}, postcodes)
}
