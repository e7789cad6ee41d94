package store

import (
	"context"
	"encoding/json"
	"fmt"

	"launchpad/internal/utils"
	"launchpad/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const auditTableName = "launchpad.audit_log"

type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

// Append writes one audit entry. Callers swallow the returned error after
// logging it: audit failures never mask the primary operation.
func (r *AuditRepository) Append(ctx context.Context, entry *types.AuditEntry) error {
	entry.ID = utils.NanoID()

	details, err := json.Marshal(entry.Details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}

	query, args, err := psql().
		Insert(auditTableName).
		Columns("id", "user_id", "action", "entity_type", "entity_id", "details", "created_at").
		Values(entry.ID, entry.UserID, entry.Action, entry.EntityType, entry.EntityID, details, sq.Expr("now()")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate audit insert query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to append audit entry")
}
