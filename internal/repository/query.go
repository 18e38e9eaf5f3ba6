package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

// namedReturning runs an INSERT/UPDATE ... RETURNING statement with named
// parameters and scans the single returned row into dest. Driver errors are
// classified; lib/pq may surface constraint failures either from the query
// call or from the row iterator, so both paths are checked.
func namedReturning(ctx context.Context, ext sqlx.ExtContext, query string, arg interface{}, dest ...interface{}) error {
	rows, err := sqlx.NamedQueryContext(ctx, ext, query, arg)
	if err != nil {
		return classify(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return classify(err)
		}
		return ErrNotFound
	}
	if err := rows.Scan(dest...); err != nil {
		return classify(err)
	}
	return classify(rows.Err())
}

// likePattern builds a case-insensitive substring pattern for ILIKE, escaping
// the LIKE metacharacters in term.
func likePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(strings.TrimSpace(term)) + "%"
}

// affected converts a zero rows-affected count into ErrNotFound.
func affected(n int64, err error) error {
	if err != nil {
		return classify(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
