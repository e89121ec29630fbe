package pg

import (
	"context"
	"fmt"

	"github.com/lib/pq"
)

// CountedTables are the tables whose row counts are exported as gauges.
var CountedTables = []string{
	"profiles", "impact_posts", "impact_comments", "teams", "team_members",
	"team_join_requests", "team_messages", "user_courses", "problem_joins",
	"hackathon_registrations",
}

// CountRows returns the row count of every table in CountedTables.
func (s *Storage) CountRows(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(CountedTables))
	for _, table := range CountedTables {
		var n int64
		query := fmt.Sprintf("SELECT count(*) FROM %s", pq.QuoteIdentifier(table))
		if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
			return nil, classify("count "+table, err)
		}
		counts[table] = n
	}
	return counts, nil
}
