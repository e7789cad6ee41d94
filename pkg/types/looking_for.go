package types

import "time"

// LookingForOption is one entry in the fixed "what we're seeking" catalog.
type LookingForOption struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Slug         string    `db:"slug" json:"slug"`
	DisplayOrder int       `db:"display_order" json:"displayOrder"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// StartupLookingFor joins startups to looking-for options.
type StartupLookingFor struct {
	StartupID string    `db:"startup_id" json:"startupId"`
	OptionID  string    `db:"option_id" json:"optionId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`

	Option *LookingForOption `db:"-" json:"option,omitempty"`
}
