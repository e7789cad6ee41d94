// Package store holds the repository layer: one repository per table,
// squirrel-built SQL executed on a pgx pool and scanned with pgxscan.
package store

import (
	sq "github.com/Masterminds/squirrel"
)

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
