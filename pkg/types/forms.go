package types

// Wizard submission payloads. The creation wizard collects its steps client
// side and submits a single multipart request whose basicInfo, detailedInfo,
// and mediaInfo fields are JSON-encoded blocks; file parts ride alongside.

type StartupBasicInfo struct {
	Name       string `json:"name"`
	Tagline    string `json:"tagline"`
	CategoryID string `json:"categoryId"`
	WebsiteURL string `json:"websiteUrl"`
}

type StartupDetailedInfo struct {
	Description   string              `json:"description"`
	FoundedAt     string              `json:"foundedAt"` // YYYY-MM-DD
	FundingStage  string              `json:"fundingStage"`
	FundingAmount *int64              `json:"fundingAmount"`
	TeamSize      *int                `json:"teamSize"`
	Location      string              `json:"location"`
	LookingFor    []string            `json:"lookingFor"` // option IDs
	SocialLinks   []SocialLinkPayload `json:"socialLinks"`
}

type SocialLinkPayload struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// StartupMediaInfo carries media already hosted elsewhere (the wizard also
// uploads file parts, which take the same attach path after upload).
type StartupMediaInfo struct {
	VideoURLs []string `json:"videoUrls"`
}

// MediaRequest is the body of POST/DELETE /api/startups/{id}/media.
type MediaRequest struct {
	MediaType   string `json:"mediaType"`
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// StatusRequest is the body of POST /api/admin/startups/{id}/status.
type StatusRequest struct {
	Status StartupStatus `json:"status"`
}

// VoteRequest is the body of POST /api/startups/{id}/vote.
type VoteRequest struct {
	Upvote bool `json:"upvote"`
}
