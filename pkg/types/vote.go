package types

import "time"

// Vote is one user's up/down vote on a startup. At most one row exists per
// (startup_id, user_id); repeat votes overwrite the previous one.
type Vote struct {
	StartupID string    `db:"startup_id" json:"startupId"`
	UserID    string    `db:"user_id" json:"userId"`
	Upvote    bool      `db:"upvote" json:"upvote"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// VoteCounts holds the derived per-startup tallies.
type VoteCounts struct {
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
}
