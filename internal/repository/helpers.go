package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studypal/internal/db"
)

// parseTime parses an RFC3339 column value, returning the zero time when the
// value is empty or malformed.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// countRows runs a single COUNT(*) query.
func countRows(ctx context.Context, conn db.DBTX, table string) (int, error) {
	var n int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}
