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

const socialLinkTableName = "launchpad.social_links"

var socialLinkColumns = utils.StructTagValues(types.SocialLink{})

type SocialLinkRepository struct {
	pool *pgxpool.Pool
}

func NewSocialLinkRepository(pool *pgxpool.Pool) *SocialLinkRepository {
	return &SocialLinkRepository{pool: pool}
}

func (r *SocialLinkRepository) LinksByStartup(ctx context.Context, startupID string) ([]*types.SocialLink, error) {
	query, args, err := psql().
		Select(socialLinkColumns...).
		From(socialLinkTableName).
		Where(sq.Eq{"startup_id": startupID}).
		OrderBy("platform ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate social links query: %w", err)
	}

	var links = make([]*types.SocialLink, 0)
	err = pgxscan.Select(ctx, r.pool, &links, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch social links: %w", err)
	}

	return links, nil
}

// ReplaceLinks syncs a startup's social links with a delete-then-insert
// sweep. Uniqueness per (startup, platform) is intended but not schema
// enforced; concurrent writers are last-write-wins like the rest of the row.
func (r *SocialLinkRepository) ReplaceLinks(ctx context.Context, startupID string, links []types.SocialLinkPayload) error {

	query, args, err := psql().
		Delete(socialLinkTableName).
		Where(sq.Eq{"startup_id": startupID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate social link delete query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear social links: %w", err)
	}

	if len(links) == 0 {
		return nil
	}

	builder := psql().
		Insert(socialLinkTableName).
		Columns("id", "startup_id", "platform", "url", "created_at")

	now := time.Now()
	for _, link := range links {
		builder = builder.Values(utils.NanoID(), startupID, link.Platform, link.URL, now)
	}

	query, args, err = builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate social link insert query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert social links: %w", err)
	}

	return nil
}

func (r *SocialLinkRepository) DeleteByStartup(ctx context.Context, startupID string) error {
	query, args, err := psql().
		Delete(socialLinkTableName).
		Where(sq.Eq{"startup_id": startupID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate social link delete query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete social links")
}
