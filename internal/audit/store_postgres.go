package audit

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore persists audit events in the search_audit_events table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO search_audit_events
			(id, created_at, request_id, kind, query, postcode, area_of_law, results, outcome)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, event.ID, event.Timestamp, event.RequestID, event.Kind, event.Query,
		event.Postcode, event.AreaOfLaw, event.Results, event.Outcome)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, request_id, kind, query, postcode, area_of_law, results, outcome
		FROM search_audit_events ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.RequestID, &e.Kind, &e.Query,
			&e.Postcode, &e.AreaOfLaw, &e.Results, &e.Outcome); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
