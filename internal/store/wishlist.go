package store

import (
	"context"
	"fmt"

	"launchpad/internal/utils"
	"launchpad/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const wishlistTableName = "launchpad.wishlist"

type WishlistRepository struct {
	pool *pgxpool.Pool
}

func NewWishlistRepository(pool *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{pool: pool}
}

// AddItem is idempotent: adding a startup already on the wishlist is a
// no-op.
func (r *WishlistRepository) AddItem(ctx context.Context, userID, startupID string) error {
	query := `
		INSERT INTO launchpad.wishlist (user_id, startup_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id, startup_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, userID, startupID)
	if err != nil {
		return fmt.Errorf("add wishlist item: %w", err)
	}

	return nil
}

func (r *WishlistRepository) RemoveItem(ctx context.Context, userID, startupID string) error {
	query, args, err := psql().
		Delete(wishlistTableName).
		Where(sq.Eq{"user_id": userID, "startup_id": startupID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate wishlist delete query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to remove wishlist item")
}

func (r *WishlistRepository) DeleteByStartup(ctx context.Context, startupID string) error {
	query, args, err := psql().
		Delete(wishlistTableName).
		Where(sq.Eq{"startup_id": startupID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate wishlist delete query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete wishlist rows")
}

// StartupsByUser returns the wishlisted startups, most recently added first.
func (r *WishlistRepository) StartupsByUser(ctx context.Context, userID string) ([]*types.Startup, error) {
	prefixed := make([]string, 0, len(startupColumns))
	for _, col := range startupColumns {
		prefixed = append(prefixed, "s."+col)
	}

	query, args, err := psql().
		Select(prefixed...).
		From(wishlistTableName + " w").
		Join(startupTableName + " s ON s.id = w.startup_id").
		Where(sq.Eq{"w.user_id": userID}).
		OrderBy("w.created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate wishlist query: %w", err)
	}

	var startups = make([]*types.Startup, 0)
	err = pgxscan.Select(ctx, r.pool, &startups, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist startups: %w", err)
	}

	return startups, nil
}

func (r *WishlistRepository) Contains(ctx context.Context, userID, startupID string) (bool, error) {
	query, args, err := psql().
		Select("1").
		From(wishlistTableName).
		Where(sq.Eq{"user_id": userID, "startup_id": startupID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to generate wishlist lookup query: %w", err)
	}

	var one int
	err = pgxscan.Get(ctx, r.pool, &one, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return false, err
	}

	return err == nil, nil
}
