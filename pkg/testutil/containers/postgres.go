//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance with the
// courtfinder schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	URL       string
	DB        *sql.DB
}

// NewPostgresContainer starts a PostgreSQL container and applies the schema.
// The container is terminated when the test finishes.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("courtfinder"),
		tcpostgres.WithUsername("courtfinder"),
		tcpostgres.WithPassword("courtfinder"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		t.Fatalf("failed to open postgres connection: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		t.Fatalf("failed to ping postgres: %v", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	return &PostgresContainer{Container: container, URL: url, DB: db}
}

// TruncateTables empties the given tables between tests.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	for _, table := range tables {
		if _, err := p.DB.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS courts (
	id         BIGINT PRIMARY KEY,
	slug       TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	number     INTEGER,
	cci_code   INTEGER,
	lat        DOUBLE PRECISION,
	lon        DOUBLE PRECISION,
	displayed  BOOLEAN NOT NULL DEFAULT TRUE,
	alert      TEXT,
	info       TEXT,
	image_file TEXT,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS court_addresses (
	court_id     BIGINT NOT NULL REFERENCES courts(id) ON DELETE CASCADE,
	address_type TEXT NOT NULL,
	address      TEXT NOT NULL,
	postcode     TEXT NOT NULL DEFAULT '',
	town         TEXT NOT NULL DEFAULT '',
	county       TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS court_contacts (
	court_id    BIGINT NOT NULL REFERENCES courts(id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	number      TEXT NOT NULL,
	sort_order  INTEGER NOT NULL DEFAULT 0,
	explanation TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS court_emails (
	court_id    BIGINT NOT NULL REFERENCES courts(id) ON DELETE CASCADE,
	description TEXT NOT NULL,
	address     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS court_types (
	court_id   BIGINT NOT NULL REFERENCES courts(id) ON DELETE CASCADE,
	court_type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS court_facilities (
	court_id    BIGINT NOT NULL REFERENCES courts(id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS court_opening_times (
	court_id    BIGINT NOT NULL REFERENCES courts(id) ON DELETE CASCADE,
	description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS areas_of_law (
	id   BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS court_areas_of_law (
	court_id                   BIGINT NOT NULL REFERENCES courts(id) ON DELETE CASCADE,
	area_of_law_id             BIGINT NOT NULL REFERENCES areas_of_law(id) ON DELETE CASCADE,
	single_point_of_entry      BOOLEAN NOT NULL DEFAULT FALSE,
	local_authority_restricted BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (court_id, area_of_law_id)
);

CREATE TABLE IF NOT EXISTS court_local_authority_areas_of_law (
	court_id        BIGINT NOT NULL REFERENCES courts(id) ON DELETE CASCADE,
	area_of_law_id  BIGINT NOT NULL REFERENCES areas_of_law(id) ON DELETE CASCADE,
	local_authority TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS court_postcodes (
	court_id BIGINT NOT NULL REFERENCES courts(id) ON DELETE CASCADE,
	postcode TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS court_parking (
	court_id   BIGINT PRIMARY KEY REFERENCES courts(id) ON DELETE CASCADE,
	onsite     TEXT NOT NULL DEFAULT '',
	offsite    TEXT NOT NULL DEFAULT '',
	blue_badge TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS search_audit_events (
	id          UUID PRIMARY KEY,
	created_at  TIMESTAMPTZ NOT NULL,
	request_id  TEXT NOT NULL DEFAULT '',
	kind        TEXT NOT NULL,
	query       TEXT NOT NULL DEFAULT '',
	postcode    TEXT NOT NULL DEFAULT '',
	area_of_law TEXT NOT NULL DEFAULT '',
	results     INTEGER NOT NULL DEFAULT 0,
	outcome     TEXT NOT NULL
);
`
