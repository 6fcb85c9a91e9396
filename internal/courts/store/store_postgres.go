package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"courtfinder/internal/courts/models"
	"courtfinder/pkg/platform/sentinel"
)

// PostgresStore reads venue records from PostgreSQL. The ingestion pipeline
// owns writes; this store is read-only.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed venue store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const courtColumns = `c.id, c.slug, c.name, c.number, c.cci_code, c.lat, c.lon, c.displayed, c.alert, c.info, c.image_file, c.updated_at`

func (s *PostgresStore) CourtBySlug(ctx context.Context, slug string) (*models.Court, error) {
	query := fmt.Sprintf(`SELECT %s FROM courts c WHERE c.slug = $1`, courtColumns)
	court, err := scanCourt(s.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("court by slug: %w", err)
	}
	if err := s.loadAssociations(ctx, court); err != nil {
		return nil, fmt.Errorf("court by slug: %w", err)
	}
	return court, nil
}

func (s *PostgresStore) CourtsByNameInitial(ctx context.Context, letter string) ([]*models.Court, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM courts c
		WHERE c.displayed AND c.name ILIKE $1 || '%%'
		ORDER BY c.name ASC
	`, courtColumns)
	courts, err := s.queryCourts(ctx, query, letter)
	if err != nil {
		return nil, fmt.Errorf("courts by name initial: %w", err)
	}
	return courts, nil
}

func (s *PostgresStore) SearchByTokens(ctx context.Context, query string, tokens []string) ([]*models.Court, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	// Each token must match at a word start somewhere in the name or the
	// aggregated address text; \m anchors to a word boundary so "ample2"
	// cannot match "Example2".
	var sb strings.Builder
	args := []any{strings.Join(tokens, " ")}
	sb.WriteString(fmt.Sprintf(`
		SELECT %s FROM courts c
		LEFT JOIN (
			SELECT court_id,
			       string_agg(address || ' ' || town || ' ' || postcode, ' ') AS text
			FROM court_addresses GROUP BY court_id
		) a ON a.court_id = c.id
		WHERE c.displayed
	`, courtColumns))
	for _, tok := range tokens {
		args = append(args, regexp.QuoteMeta(tok))
		sb.WriteString(fmt.Sprintf(" AND (c.name || ' ' || COALESCE(a.text, '')) ~* ('\\m' || $%d)", len(args)))
	}
	sb.WriteString(" ORDER BY (LOWER(c.name) = LOWER($1)) DESC, c.name ASC")

	courts, err := s.queryCourts(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("search by tokens: %w", err)
	}
	return courts, nil
}

func (s *PostgresStore) AreaOfLawBySlug(ctx context.Context, slug string) (*models.AreaOfLaw, error) {
	var a models.AreaOfLaw
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, slug FROM areas_of_law WHERE slug = $1`, slug,
	).Scan(&a.ID, &a.Name, &a.Slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("area of law by slug: %w", err)
	}
	return &a, nil
}

func (s *PostgresStore) ListAreasOfLaw(ctx context.Context) ([]models.AreaOfLaw, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, slug FROM areas_of_law ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list areas of law: %w", err)
	}
	defer rows.Close()

	var out []models.AreaOfLaw
	for rows.Next() {
		var a models.AreaOfLaw
		if err := rows.Scan(&a.ID, &a.Name, &a.Slug); err != nil {
			return nil, fmt.Errorf("scan area of law: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CourtAreasOfLaw(ctx context.Context, areaOfLawID int64) ([]models.CourtAreaOfLaw, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT court_id, area_of_law_id, single_point_of_entry, local_authority_restricted
		FROM court_areas_of_law WHERE area_of_law_id = $1
	`, areaOfLawID)
	if err != nil {
		return nil, fmt.Errorf("court areas of law: %w", err)
	}
	defer rows.Close()

	var out []models.CourtAreaOfLaw
	for rows.Next() {
		var ca models.CourtAreaOfLaw
		if err := rows.Scan(&ca.CourtID, &ca.AreaOfLawID, &ca.SinglePointOfEntry, &ca.LocalAuthorityRestricted); err != nil {
			return nil, fmt.Errorf("scan court area of law: %w", err)
		}
		out = append(out, ca)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CourtsByAreaOfLaw(ctx context.Context, areaOfLawID int64) ([]*models.Court, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM courts c
		JOIN court_areas_of_law ca ON ca.court_id = c.id
		WHERE c.displayed AND ca.area_of_law_id = $1
		ORDER BY c.name ASC
	`, courtColumns)
	courts, err := s.queryCourts(ctx, query, areaOfLawID)
	if err != nil {
		return nil, fmt.Errorf("courts by area of law: %w", err)
	}
	return courts, nil
}

func (s *PostgresStore) CourtsByLocalAuthority(ctx context.Context, localAuthority string, areaOfLawID int64) ([]*models.Court, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM courts c
		JOIN court_local_authority_areas_of_law cl ON cl.court_id = c.id
		WHERE c.displayed AND cl.local_authority = $1 AND cl.area_of_law_id = $2
		ORDER BY c.name ASC
	`, courtColumns)
	courts, err := s.queryCourts(ctx, query, localAuthority, areaOfLawID)
	if err != nil {
		return nil, fmt.Errorf("courts by local authority: %w", err)
	}
	return courts, nil
}

func (s *PostgresStore) PostcodesCovered(ctx context.Context, courtID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT postcode FROM court_postcodes WHERE court_id = $1 ORDER BY postcode ASC`, courtID)
	if err != nil {
		return nil, fmt.Errorf("postcodes covered: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var pc string
		if err := rows.Scan(&pc); err != nil {
			return nil, fmt.Errorf("scan court postcode: %w", err)
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

func (s *PostgresStore) queryCourts(ctx context.Context, query string, args ...any) ([]*models.Court, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Court
	for rows.Next() {
		court, err := scanCourt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, court)
	}
	return out, rows.Err()
}

// loadAssociations fills the collections rendered on the venue detail page.
func (s *PostgresStore) loadAssociations(ctx context.Context, court *models.Court) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT address_type, address, postcode, town, county
		FROM court_addresses WHERE court_id = $1
	`, court.ID)
	if err != nil {
		return fmt.Errorf("load addresses: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(&a.Type, &a.Address, &a.Postcode, &a.Town, &a.County); err != nil {
			return fmt.Errorf("scan address: %w", err)
		}
		court.Addresses = append(court.Addresses, a)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	contactRows, err := s.db.QueryContext(ctx, `
		SELECT name, number, sort_order, explanation
		FROM court_contacts WHERE court_id = $1 ORDER BY sort_order ASC
	`, court.ID)
	if err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}
	defer contactRows.Close()
	for contactRows.Next() {
		var c models.Contact
		if err := contactRows.Scan(&c.Name, &c.Number, &c.SortOrder, &c.Explanation); err != nil {
			return fmt.Errorf("scan contact: %w", err)
		}
		court.Contacts = append(court.Contacts, c)
	}
	if err := contactRows.Err(); err != nil {
		return err
	}

	emailRows, err := s.db.QueryContext(ctx, `
		SELECT description, address FROM court_emails WHERE court_id = $1
	`, court.ID)
	if err != nil {
		return fmt.Errorf("load emails: %w", err)
	}
	defer emailRows.Close()
	for emailRows.Next() {
		var e models.Email
		if err := emailRows.Scan(&e.Description, &e.Address); err != nil {
			return fmt.Errorf("scan email: %w", err)
		}
		court.Emails = append(court.Emails, e)
	}
	if err := emailRows.Err(); err != nil {
		return err
	}

	typeRows, err := s.db.QueryContext(ctx, `
		SELECT court_type FROM court_types WHERE court_id = $1 ORDER BY court_type ASC
	`, court.ID)
	if err != nil {
		return fmt.Errorf("load court types: %w", err)
	}
	defer typeRows.Close()
	for typeRows.Next() {
		var t string
		if err := typeRows.Scan(&t); err != nil {
			return fmt.Errorf("scan court type: %w", err)
		}
		court.Types = append(court.Types, t)
	}
	if err := typeRows.Err(); err != nil {
		return err
	}

	facilityRows, err := s.db.QueryContext(ctx, `
		SELECT name, description FROM court_facilities WHERE court_id = $1 ORDER BY name ASC
	`, court.ID)
	if err != nil {
		return fmt.Errorf("load facilities: %w", err)
	}
	defer facilityRows.Close()
	for facilityRows.Next() {
		var f models.Facility
		if err := facilityRows.Scan(&f.Name, &f.Description); err != nil {
			return fmt.Errorf("scan facility: %w", err)
		}
		court.Facilities = append(court.Facilities, f)
	}
	if err := facilityRows.Err(); err != nil {
		return err
	}

	openingRows, err := s.db.QueryContext(ctx, `
		SELECT description FROM court_opening_times WHERE court_id = $1
	`, court.ID)
	if err != nil {
		return fmt.Errorf("load opening times: %w", err)
	}
	defer openingRows.Close()
	for openingRows.Next() {
		var o string
		if err := openingRows.Scan(&o); err != nil {
			return fmt.Errorf("scan opening time: %w", err)
		}
		court.OpeningTimes = append(court.OpeningTimes, o)
	}
	if err := openingRows.Err(); err != nil {
		return err
	}

	aolRows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.name, a.slug
		FROM areas_of_law a
		JOIN court_areas_of_law ca ON ca.area_of_law_id = a.id
		WHERE ca.court_id = $1 ORDER BY a.name ASC
	`, court.ID)
	if err != nil {
		return fmt.Errorf("load areas of law: %w", err)
	}
	defer aolRows.Close()
	for aolRows.Next() {
		var a models.AreaOfLaw
		if err := aolRows.Scan(&a.ID, &a.Name, &a.Slug); err != nil {
			return fmt.Errorf("scan area of law: %w", err)
		}
		court.AreasOfLaw = append(court.AreasOfLaw, a)
	}
	if err := aolRows.Err(); err != nil {
		return err
	}

	var p models.ParkingInfo
	err = s.db.QueryRowContext(ctx, `
		SELECT onsite, offsite, blue_badge FROM court_parking WHERE court_id = $1
	`, court.ID).Scan(&p.Onsite, &p.Offsite, &p.BlueBadge)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// no parking info recorded
	case err != nil:
		return fmt.Errorf("load parking: %w", err)
	default:
		court.Parking = &p
	}

	return nil
}

type courtRow interface {
	Scan(dest ...any) error
}

func scanCourt(row courtRow) (*models.Court, error) {
	var c models.Court
	var number, cci sql.NullInt64
	var lat, lon sql.NullFloat64
	var alert, info, image sql.NullString
	if err := row.Scan(&c.ID, &c.Slug, &c.Name, &number, &cci, &lat, &lon,
		&c.Displayed, &alert, &info, &image, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if number.Valid {
		n := int(number.Int64)
		c.Number = &n
	}
	if cci.Valid {
		n := int(cci.Int64)
		c.CCICode = &n
	}
	if lat.Valid {
		c.Lat = &lat.Float64
	}
	if lon.Valid {
		c.Lon = &lon.Float64
	}
	c.Alert = alert.String
	c.Info = info.String
	c.ImageFile = image.String
	return &c, nil
}
