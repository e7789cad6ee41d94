package store

import (
	"context"
	"fmt"

	"launchpad/internal/utils"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const viewLogTableName = "launchpad.view_logs"

type ViewLogRepository struct {
	pool *pgxpool.Pool
}

func NewViewLogRepository(pool *pgxpool.Pool) *ViewLogRepository {
	return &ViewLogRepository{pool: pool}
}

// RecordView appends one view row. viewerID may be empty for anonymous
// traffic. Callers treat failures as best-effort.
func (r *ViewLogRepository) RecordView(ctx context.Context, startupID, viewerID string) error {
	query, args, err := psql().
		Insert(viewLogTableName).
		Columns("id", "startup_id", "viewer_id", "created_at").
		Values(utils.NanoID(), startupID, nullable(viewerID), sq.Expr("now()")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate view insert query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to record view")
}

func (r *ViewLogRepository) CountByStartup(ctx context.Context, startupID string) (int64, error) {
	query, args, err := psql().
		Select("count(*)").
		From(viewLogTableName).
		Where(sq.Eq{"startup_id": startupID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate view count query: %w", err)
	}

	var count int64
	if err := pgxscan.Get(ctx, r.pool, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count views: %w", err)
	}

	return count, nil
}

func (r *ViewLogRepository) DeleteByStartup(ctx context.Context, startupID string) error {
	query, args, err := psql().
		Delete(viewLogTableName).
		Where(sq.Eq{"startup_id": startupID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate view delete query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete view logs")
}
