package types

import "time"

// Audit actions recorded by the write paths.
const (
	AuditActionCreateStartup = "create_startup"
	AuditActionUpdateStartup = "update_startup"
	AuditActionDeleteStartup = "delete_startup"
	AuditActionUpdateMedia   = "update_media"
	AuditActionUpdateStatus  = "update_status"
)

type AuditEntry struct {
	ID         string         `db:"id" json:"id"`
	UserID     string         `db:"user_id" json:"userId"`
	Action     string         `db:"action" json:"action"`
	EntityType string         `db:"entity_type" json:"entityType"`
	EntityID   string         `db:"entity_id" json:"entityId"`
	Details    map[string]any `db:"details" json:"details"`
	CreatedAt  time.Time      `db:"created_at" json:"createdAt"`
}
