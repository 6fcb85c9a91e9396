//go:build integration

package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"courtfinder/internal/audit"
	"courtfinder/pkg/testutil/containers"
)

type PostgresAuditSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *audit.PostgresStore
}

func TestPostgresAuditSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresAuditSuite))
}

func (s *PostgresAuditSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = audit.NewPostgres(s.postgres.DB)
}

func (s *PostgresAuditSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "search_audit_events"))
}

func (s *PostgresAuditSuite) TestAppendAndList() {
	ctx := context.Background()
	first := audit.Event{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
		RequestID: "req-1",
		Kind:      "postcode",
		Postcode:  "SE15 4UH",
		AreaOfLaw: "divorce",
		Results:   1,
		Outcome:   "results",
	}
	second := audit.Event{
		ID:        uuid.New(),
		Timestamp: first.Timestamp.Add(time.Second),
		Kind:      "text",
		Query:     "accrington",
		Outcome:   "empty",
	}

	s.Require().NoError(s.store.Append(ctx, first))
	s.Require().NoError(s.store.Append(ctx, second))

	events, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(first.ID, events[0].ID)
	s.Equal("divorce", events[0].AreaOfLaw)
	s.Equal("accrington", events[1].Query)
	s.Equal("empty", events[1].Outcome)
}
