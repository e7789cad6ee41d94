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

const voteTableName = "launchpad.votes"

type VoteRepository struct {
	pool *pgxpool.Pool
}

func NewVoteRepository(pool *pgxpool.Pool) *VoteRepository {
	return &VoteRepository{pool: pool}
}

// UpsertVote records or overwrites the caller's vote. One row per
// (startup_id, user_id) is schema enforced.
func (r *VoteRepository) UpsertVote(ctx context.Context, startupID, userID string, upvote bool) error {
	query := `
		INSERT INTO launchpad.votes (startup_id, user_id, upvote, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (startup_id, user_id)
		DO UPDATE SET upvote = EXCLUDED.upvote, updated_at = now()`

	_, err := r.pool.Exec(ctx, query, startupID, userID, upvote)
	if err != nil {
		return fmt.Errorf("upsert vote: %w", err)
	}

	return nil
}

func (r *VoteRepository) DeleteVote(ctx context.Context, startupID, userID string) error {
	query, args, err := psql().
		Delete(voteTableName).
		Where(sq.Eq{"startup_id": startupID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate vote delete query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete vote")
}

func (r *VoteRepository) DeleteByStartup(ctx context.Context, startupID string) error {
	query, args, err := psql().
		Delete(voteTableName).
		Where(sq.Eq{"startup_id": startupID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate vote delete query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete votes")
}

// Counts derives the up/down tallies by counting rows grouped by the vote
// boolean.
func (r *VoteRepository) Counts(ctx context.Context, startupID string) (types.VoteCounts, error) {
	query := `
		SELECT
			count(*) FILTER (WHERE upvote)     AS upvotes,
			count(*) FILTER (WHERE NOT upvote) AS downvotes
		FROM launchpad.votes
		WHERE startup_id = $1`

	var counts types.VoteCounts
	err := pgxscan.Get(ctx, r.pool, &counts, query, startupID)
	if err != nil {
		return types.VoteCounts{}, fmt.Errorf("count votes: %w", err)
	}

	return counts, nil
}

func (r *VoteRepository) VoteByUser(ctx context.Context, startupID, userID string) (*types.Vote, error) {
	query, args, err := psql().
		Select(utils.StructTagValues(types.Vote{})...).
		From(voteTableName).
		Where(sq.Eq{"startup_id": startupID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate vote query: %w", err)
	}

	var vote = new(types.Vote)
	err = pgxscan.Get(ctx, r.pool, vote, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch vote: %w", err)
	}

	return vote, nil
}
