package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/louisbranch/clinicdesk/internal/services/admin/storage"
)

// RunQuery executes an ad-hoc SQL statement verbatim and returns the result
// as displayable strings. Nothing is sandboxed here; the console screen
// carries the warning.
func (s *Store) RunQuery(ctx context.Context, query string) (storage.QueryResult, error) {
	if err := s.ready(ctx); err != nil {
		return storage.QueryResult{}, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return storage.QueryResult{}, fmt.Errorf("query is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, query)
	if err != nil {
		return storage.QueryResult{}, fmt.Errorf("run query: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	columns, err := rows.Columns()
	if err != nil {
		return storage.QueryResult{}, fmt.Errorf("query columns: %w", err)
	}

	result := storage.QueryResult{Columns: columns}
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return storage.QueryResult{}, fmt.Errorf("scan query row: %w", err)
		}

		cells := make([]string, len(columns))
		for i, value := range values {
			if value.Valid {
				cells[i] = value.String
			} else {
				cells[i] = "NULL"
			}
		}
		result.Rows = append(result.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return storage.QueryResult{}, fmt.Errorf("iterate query rows: %w", err)
	}
	return result, nil
}
