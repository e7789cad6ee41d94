package store

import (
	"context"
	"fmt"

	"launchpad/internal/apperror"
	"launchpad/internal/utils"
	"launchpad/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileTableName = "launchpad.profiles"

var profileColumns = utils.StructTagValues(types.Profile{})

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Profile(ctx context.Context, userID string) (*types.Profile, error) {
	query, args, err := psql().
		Select(profileColumns...).
		From(profileTableName).
		Where(sq.Eq{"id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile query: %w", err)
	}

	var profile = new(types.Profile)
	err = pgxscan.Get(ctx, r.pool, profile, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, apperror.NotFound("profile", userID)
	}

	return profile, nil
}

// UpsertProfile creates the row on first login and refreshes email/name on
// subsequent ones. Role changes only through the upsert default or a manual
// update; registration never elevates.
func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile *types.Profile) error {
	if profile.Role == "" {
		profile.Role = types.RoleFounder
	}

	query := `
		INSERT INTO launchpad.profiles (id, email, full_name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (id)
		DO UPDATE SET email = EXCLUDED.email, full_name = EXCLUDED.full_name, updated_at = now()`

	_, err := r.pool.Exec(ctx, query, profile.ID, profile.Email, nullable(utils.PtrString(profile.FullName)), profile.Role)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	return nil
}
