package store

import (
	"context"
	"fmt"
	"time"

	"launchpad/internal/apperror"
	"launchpad/internal/media"
	"launchpad/internal/utils"
	"launchpad/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const startupTableName = "launchpad.startups"

var startupColumns = utils.StructTagValues(types.Startup{})

type StartupRepository struct {
	pool *pgxpool.Pool
}

func NewStartupRepository(pool *pgxpool.Pool) *StartupRepository {
	return &StartupRepository{pool: pool}
}

func (r *StartupRepository) Startup(ctx context.Context, startupID string) (*types.Startup, error) {

	query, args, err := psql().Select(startupColumns...).From(startupTableName).
		Where(sq.Eq{"id": startupID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate startup query: %w", err)
	}

	var startup = new(types.Startup)
	err = pgxscan.Get(ctx, r.pool, startup, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, apperror.NotFound("startup", startupID)
	}

	return startup, nil
}

func (r *StartupRepository) StartupBySlug(ctx context.Context, slug string) (*types.Startup, error) {

	query, args, err := psql().Select(startupColumns...).From(startupTableName).
		Where(sq.Eq{"slug": slug}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate startup by slug query: %w", err)
	}

	var startup = new(types.Startup)
	err = pgxscan.Get(ctx, r.pool, startup, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, apperror.NotFound("startup", slug)
	}

	return startup, nil
}

func (r *StartupRepository) StartupsByUser(ctx context.Context, userID string) ([]*types.Startup, error) {

	query, args, err := psql().Select(startupColumns...).From(startupTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate startups by user query: %w", err)
	}

	var startups = make([]*types.Startup, 0)
	err = pgxscan.Select(ctx, r.pool, &startups, query, args...)
	if err != nil {
		return nil, utils.ErrorWrapOrNil(err, "failed to fetch startups by user")
	}

	return startups, nil
}

func (r *StartupRepository) StartupsByStatus(ctx context.Context, status types.StartupStatus) ([]*types.Startup, error) {

	query, args, err := psql().Select(startupColumns...).From(startupTableName).
		Where(sq.Eq{"status": status}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate startups by status query: %w", err)
	}

	var startups = make([]*types.Startup, 0)
	err = pgxscan.Select(ctx, r.pool, &startups, query, args...)
	if err != nil {
		return nil, utils.ErrorWrapOrNil(err, "failed to fetch startups by status")
	}

	return startups, nil
}

// BrowseFilter narrows the public approved listing.
type BrowseFilter struct {
	CategoryID string
	Search     string
	Limit      uint64
}

func (r *StartupRepository) ApprovedStartups(ctx context.Context, filter BrowseFilter) ([]*types.Startup, error) {

	builder := psql().Select(startupColumns...).From(startupTableName).
		Where(sq.Eq{"status": types.StartupStatusApproved}).
		OrderBy("created_at desc")

	if filter.CategoryID != "" {
		builder = builder.Where(sq.Eq{"category_id": filter.CategoryID})
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"tagline": pattern},
			sq.ILike{"description": pattern},
		})
	}

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate browse query: %w", err)
	}

	var startups = make([]*types.Startup, 0)
	err = pgxscan.Select(ctx, r.pool, &startups, query, args...)
	if err != nil {
		return nil, utils.ErrorWrapOrNil(err, "failed to fetch approved startups")
	}

	return startups, nil
}

func (r *StartupRepository) SlugExists(ctx context.Context, slug string) (bool, error) {

	query, args, err := psql().Select("1").From(startupTableName).
		Where(sq.Eq{"slug": slug}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to generate slug exists query: %w", err)
	}

	var one int
	err = pgxscan.Get(ctx, r.pool, &one, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return false, err
	}

	return err == nil, nil
}

func (r *StartupRepository) CreateStartup(ctx context.Context, startup *types.Startup) error {

	now := time.Now()
	startup.ID = utils.NanoID()
	startup.CreatedAt = now
	startup.UpdatedAt = now

	if startup.Status == "" {
		startup.Status = types.StartupStatusPending
	}
	if startup.MediaImages == nil {
		startup.MediaImages = []string{}
	}
	if startup.MediaDocuments == nil {
		startup.MediaDocuments = []string{}
	}
	if startup.MediaVideos == nil {
		startup.MediaVideos = []string{}
	}

	startupMap := utils.StructToMap(startup)

	query, args, err := psql().Insert(startupTableName).SetMap(startupMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert startup query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create startup")

}

func (r *StartupRepository) UpdateStartup(ctx context.Context, startupID string, startup *types.Startup) error {

	now := time.Now()
	startup.ID = startupID
	startup.UpdatedAt = now

	startupMap := utils.StructToMap(startup)

	query, args, err := psql().Update(startupTableName).SetMap(startupMap).Where(sq.Eq{"id": startupID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update startup query for startup %s: %w", startupID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)

	return utils.ErrorWrapOrNil(err, "failed to update startup")

}

// UpdateMedia persists a reconciled media set. The media columns travel in
// one UPDATE so attach and detach touch exactly one row and no dependent
// tables.
func (r *StartupRepository) UpdateMedia(ctx context.Context, startupID string, set media.Set) error {

	columns := media.Columns(set)
	columns["updated_at"] = time.Now()

	query, args, err := psql().Update(startupTableName).SetMap(columns).Where(sq.Eq{"id": startupID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate media update query for startup %s: %w", startupID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)

	return utils.ErrorWrapOrNil(err, "failed to update startup media")

}

// UpdateStatus performs a moderation transition. Any status may follow any
// other; authorization is the caller's concern.
func (r *StartupRepository) UpdateStatus(ctx context.Context, startupID string, status types.StartupStatus) error {

	query, args, err := psql().Update(startupTableName).
		SetMap(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		}).
		Where(sq.Eq{"id": startupID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate status update query for startup %s: %w", startupID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return utils.ErrorWrapOrNil(err, "failed to update startup status")
	}

	if tag.RowsAffected() == 0 {
		return apperror.NotFound("startup", startupID)
	}

	return nil
}

func (r *StartupRepository) DeleteStartup(ctx context.Context, startupID string) error {

	query, args, err := psql().Delete(startupTableName).Where(sq.Eq{"id": startupID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete startup query for startup %s: %w", startupID, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)

	return utils.ErrorWrapOrNil(err, "failed to delete startup")

}
