package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careeriq/internal/database"
)

var errSchemaMismatch = errors.New("schema mismatch")

const columnsQuery = `SELECT column_name FROM information_schema.columns
WHERE table_schema = 'public' AND table_name = $1`

// EnsureTableColumns fails when table lacks any of columns. Every missing
// column is named in the error, in the order given.
func EnsureTableColumns(ctx context.Context, q database.Querier, table string, columns ...string) error {
	if q == nil {
		return fmt.Errorf("nil db")
	}
	if strings.TrimSpace(table) == "" {
		return fmt.Errorf("empty table")
	}

	present, err := tableColumns(ctx, q, table)
	if err != nil {
		return fmt.Errorf("read columns of %s: %w", table, err)
	}

	var missing []string
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
		if !present[col] {
			missing = append(missing, table+"."+col)
		}
	}

	switch len(missing) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%w: missing column %s", errSchemaMismatch, missing[0])
	default:
		return fmt.Errorf("%w: missing columns %s", errSchemaMismatch, strings.Join(missing, ", "))
	}
}

func tableColumns(ctx context.Context, q database.Querier, table string) (map[string]bool, error) {
	rows, err := q.Query(ctx, columnsQuery, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out[name] = true
	}
	return out, rows.Err()
}
