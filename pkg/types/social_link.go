package types

import "time"

// Known social platforms. The column is free text; these are the values the
// dashboard UI offers.
const (
	PlatformLinkedIn  = "linkedin"
	PlatformTwitter   = "twitter"
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformYouTube   = "youtube"
)

type SocialLink struct {
	ID        string    `db:"id" json:"id"`
	StartupID string    `db:"startup_id" json:"startupId"`
	Platform  string    `db:"platform" json:"platform"`
	URL       string    `db:"url" json:"url"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
