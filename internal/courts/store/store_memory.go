package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"courtfinder/internal/courts/models"
	"courtfinder/pkg/platform/sentinel"
	platformstrings "courtfinder/pkg/platform/strings"
)

// InMemoryStore holds venue records in memory. It backs unit tests and local
// development; production uses PostgresStore.
type InMemoryStore struct {
	mu             sync.RWMutex
	courts         []*models.Court
	areasOfLaw     []models.AreaOfLaw
	courtAreas     []models.CourtAreaOfLaw
	coverage       []models.LocalAuthorityCoverage
	courtPostcodes []models.CourtPostcode
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// AddCourt registers a venue.
func (s *InMemoryStore) AddCourt(c *models.Court) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courts = append(s.courts, c)
}

// AddAreaOfLaw registers an area of law.
func (s *InMemoryStore) AddAreaOfLaw(a models.AreaOfLaw) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.areasOfLaw = append(s.areasOfLaw, a)
}

// AddCourtAreaOfLaw associates a venue with an area of law.
func (s *InMemoryStore) AddCourtAreaOfLaw(ca models.CourtAreaOfLaw) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courtAreas = append(s.courtAreas, ca)
}

// AddCoverage registers a local-authority coverage row.
func (s *InMemoryStore) AddCoverage(c models.LocalAuthorityCoverage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coverage = append(s.coverage, c)
}

// AddCourtPostcode registers an explicit postcode coverage entry.
func (s *InMemoryStore) AddCourtPostcode(cp models.CourtPostcode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courtPostcodes = append(s.courtPostcodes, cp)
}

func (s *InMemoryStore) CourtBySlug(_ context.Context, slug string) (*models.Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courts {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) CourtsByNameInitial(_ context.Context, letter string) ([]*models.Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prefix := strings.ToLower(letter)
	var out []*models.Court
	for _, c := range s.courts {
		if c.Displayed && strings.HasPrefix(strings.ToLower(c.Name), prefix) {
			out = append(out, c)
		}
	}
	sortByName(out)
	return out, nil
}

func (s *InMemoryStore) SearchByTokens(_ context.Context, query string, tokens []string) ([]*models.Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Court
	for _, c := range s.courts {
		if !c.Displayed {
			continue
		}
		if matchesAllTokens(c, tokens) {
			out = append(out, c)
		}
	}

	// Exact name matches rank first; remaining ties break by name.
	q := strings.ToLower(strings.Join(strings.Fields(query), " "))
	sort.SliceStable(out, func(i, j int) bool {
		ei := strings.ToLower(out[i].Name) == q
		ej := strings.ToLower(out[j].Name) == q
		if ei != ej {
			return ei
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// matchesAllTokens applies the word-boundary rule: every token must be a
// prefix of some word in the venue name or an address. "ample2" therefore
// does not match "Example2 Court".
func matchesAllTokens(c *models.Court, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	var words []string
	words = append(words, platformstrings.Words(c.Name)...)
	for _, a := range c.Addresses {
		words = append(words, platformstrings.Words(a.Address)...)
		words = append(words, platformstrings.Words(a.Town)...)
		words = append(words, platformstrings.Words(a.Postcode)...)
	}
	for _, tok := range tokens {
		found := false
		for _, w := range words {
			if strings.HasPrefix(w, tok) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (s *InMemoryStore) AreaOfLawBySlug(_ context.Context, slug string) (*models.AreaOfLaw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.areasOfLaw {
		if s.areasOfLaw[i].Slug == slug {
			a := s.areasOfLaw[i]
			return &a, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListAreasOfLaw(_ context.Context) ([]models.AreaOfLaw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]models.AreaOfLaw{}, s.areasOfLaw...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) CourtAreasOfLaw(_ context.Context, areaOfLawID int64) ([]models.CourtAreaOfLaw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CourtAreaOfLaw
	for _, ca := range s.courtAreas {
		if ca.AreaOfLawID == areaOfLawID {
			out = append(out, ca)
		}
	}
	return out, nil
}

func (s *InMemoryStore) CourtsByAreaOfLaw(_ context.Context, areaOfLawID int64) ([]*models.Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Court
	for _, ca := range s.courtAreas {
		if ca.AreaOfLawID != areaOfLawID {
			continue
		}
		if c := s.courtByID(ca.CourtID); c != nil && c.Displayed {
			out = append(out, c)
		}
	}
	sortByName(out)
	return out, nil
}

func (s *InMemoryStore) CourtsByLocalAuthority(_ context.Context, localAuthority string, areaOfLawID int64) ([]*models.Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Court
	for _, cov := range s.coverage {
		if cov.AreaOfLawID != areaOfLawID || cov.LocalAuthority != localAuthority {
			continue
		}
		if c := s.courtByID(cov.CourtID); c != nil && c.Displayed {
			out = append(out, c)
		}
	}
	sortByName(out)
	return out, nil
}

func (s *InMemoryStore) PostcodesCovered(_ context.Context, courtID int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for _, cp := range s.courtPostcodes {
		if cp.CourtID == courtID {
			out = append(out, cp.Postcode)
		}
	}
	return out, nil
}

// courtByID must be called with the lock held.
func (s *InMemoryStore) courtByID(id int64) *models.Court {
	for _, c := range s.courts {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func sortByName(courts []*models.Court) {
	sort.Slice(courts, func(i, j int) bool { return courts[i].Name < courts[j].Name })
}
