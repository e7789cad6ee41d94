package types

import "time"

// WishlistItem marks a startup an investor is tracking. One row per
// (user_id, startup_id).
type WishlistItem struct {
	UserID    string    `db:"user_id" json:"userId"`
	StartupID string    `db:"startup_id" json:"startupId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`

	Startup *Startup `db:"-" json:"startup,omitempty"`
}
