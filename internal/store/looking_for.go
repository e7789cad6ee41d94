package store

import (
	"context"
	"fmt"
	"time"

	"launchpad/internal/utils"
	"launchpad/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	lookingForTableName        = "launchpad.looking_for_options"
	startupLookingForTableName = "launchpad.startup_looking_for"
)

var lookingForColumns = utils.StructTagValues(types.LookingForOption{})

type LookingForRepository struct {
	pool *pgxpool.Pool
}

func NewLookingForRepository(pool *pgxpool.Pool) *LookingForRepository {
	return &LookingForRepository{pool: pool}
}

func (r *LookingForRepository) AllOptions(ctx context.Context) ([]*types.LookingForOption, error) {
	query, args, err := psql().
		Select(lookingForColumns...).
		From(lookingForTableName).
		OrderBy("display_order ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate looking-for options query: %w", err)
	}

	var options []*types.LookingForOption
	err = pgxscan.Select(ctx, r.pool, &options, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch looking-for options: %w", err)
	}

	return options, nil
}

func (r *LookingForRepository) OptionsByStartup(ctx context.Context, startupID string) ([]*types.LookingForOption, error) {
	prefixed := make([]string, 0, len(lookingForColumns))
	for _, col := range lookingForColumns {
		prefixed = append(prefixed, "o."+col)
	}

	query, args, err := psql().
		Select(prefixed...).
		From(startupLookingForTableName + " a").
		Join(lookingForTableName + " o ON o.id = a.option_id").
		Where(sq.Eq{"a.startup_id": startupID}).
		OrderBy("o.display_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate startup looking-for query: %w", err)
	}

	var options = make([]*types.LookingForOption, 0)
	err = pgxscan.Select(ctx, r.pool, &options, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch startup looking-for options: %w", err)
	}

	return options, nil
}

// ReplaceAssignments resets a startup's looking-for tags to optionIDs.
func (r *LookingForRepository) ReplaceAssignments(ctx context.Context, startupID string, optionIDs []string) error {

	query, args, err := psql().
		Delete(startupLookingForTableName).
		Where(sq.Eq{"startup_id": startupID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate assignment delete query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear looking-for assignments: %w", err)
	}

	if len(optionIDs) == 0 {
		return nil
	}

	builder := psql().
		Insert(startupLookingForTableName).
		Columns("startup_id", "option_id", "created_at")

	now := time.Now()
	for _, optionID := range optionIDs {
		builder = builder.Values(startupID, optionID, now)
	}

	query, args, err = builder.Suffix("ON CONFLICT (startup_id, option_id) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate assignment insert query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert looking-for assignments: %w", err)
	}

	return nil
}

func (r *LookingForRepository) DeleteByStartup(ctx context.Context, startupID string) error {
	query, args, err := psql().
		Delete(startupLookingForTableName).
		Where(sq.Eq{"startup_id": startupID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate assignment delete query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete looking-for assignments")
}

func (r *LookingForRepository) UpsertOption(ctx context.Context, option *types.LookingForOption) error {
	query := `
		INSERT INTO launchpad.looking_for_options (id, name, slug, display_order, created_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name, slug = EXCLUDED.slug, display_order = EXCLUDED.display_order`

	_, err := r.pool.Exec(ctx, query, option.ID, option.Name, option.Slug, option.DisplayOrder)
	if err != nil {
		return fmt.Errorf("upsert looking-for option: %w", err)
	}

	return nil
}
