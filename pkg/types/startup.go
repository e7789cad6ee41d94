package types

import (
	"time"
)

type StartupStatus string

const (
	StartupStatusPending     StartupStatus = "pending"
	StartupStatusApproved    StartupStatus = "approved"
	StartupStatusRejected    StartupStatus = "rejected"
	StartupStatusFlaggedSpam StartupStatus = "flagged_spam"
)

// ValidStatus reports whether s is one of the recognized startup statuses.
func ValidStatus(s StartupStatus) bool {
	switch s {
	case StartupStatusPending, StartupStatusApproved, StartupStatusRejected, StartupStatusFlaggedSpam:
		return true
	}
	return false
}

type Startup struct {
	ID     string `db:"id" json:"id"`
	UserID string `db:"user_id" json:"userId"`

	Name        string  `db:"name" json:"name"`
	Slug        string  `db:"slug" json:"slug"`
	Tagline     *string `db:"tagline" json:"tagline"`
	Description *string `db:"description" json:"description"`
	CategoryID  *string `db:"category_id" json:"categoryId"`

	FoundedAt     *time.Time `db:"founded_at" json:"foundedAt"`
	WebsiteURL    *string    `db:"website_url" json:"websiteUrl"`
	FundingStage  *string    `db:"funding_stage" json:"fundingStage"`
	FundingAmount *int64     `db:"funding_amount" json:"fundingAmount"`
	TeamSize      *int       `db:"team_size" json:"teamSize"`
	Location      *string    `db:"location" json:"location"`

	Status StartupStatus `db:"status" json:"status"`

	// Denormalized media columns. logo_url, when set, is mirrored into
	// media_images; pitch_deck_url, when set, is an element of
	// media_documents. URLs are unique within each array.
	LogoURL        *string  `db:"logo_url" json:"logoUrl"`
	PitchDeckURL   *string  `db:"pitch_deck_url" json:"pitchDeckUrl"`
	MediaImages    []string `db:"media_images" json:"mediaImages"`
	MediaDocuments []string `db:"media_documents" json:"mediaDocuments"`
	MediaVideos    []string `db:"media_videos" json:"mediaVideos"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// StartupCard is the listing projection with derived counters attached.
type StartupCard struct {
	Startup
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
	Views     int64 `json:"views"`
}
