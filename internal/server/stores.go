package server

import (
	"context"

	"launchpad/internal/media"
	"launchpad/internal/store"
	"launchpad/pkg/types"
)

// Per-table datastore dependencies of the handlers. The concrete
// implementations live in internal/store; tests substitute stubs.

type StartupStore interface {
	Startup(ctx context.Context, startupID string) (*types.Startup, error)
	StartupBySlug(ctx context.Context, slug string) (*types.Startup, error)
	StartupsByUser(ctx context.Context, userID string) ([]*types.Startup, error)
	StartupsByStatus(ctx context.Context, status types.StartupStatus) ([]*types.Startup, error)
	ApprovedStartups(ctx context.Context, filter store.BrowseFilter) ([]*types.Startup, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	CreateStartup(ctx context.Context, startup *types.Startup) error
	UpdateStartup(ctx context.Context, startupID string, startup *types.Startup) error
	UpdateMedia(ctx context.Context, startupID string, set media.Set) error
	UpdateStatus(ctx context.Context, startupID string, status types.StartupStatus) error
	DeleteStartup(ctx context.Context, startupID string) error
}

type CategoryStore interface {
	AllCategories(ctx context.Context) ([]*types.Category, error)
	CategoryByID(ctx context.Context, id string) (*types.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*types.Category, error)
}

type SocialLinkStore interface {
	LinksByStartup(ctx context.Context, startupID string) ([]*types.SocialLink, error)
	ReplaceLinks(ctx context.Context, startupID string, links []types.SocialLinkPayload) error
	DeleteByStartup(ctx context.Context, startupID string) error
}

type VoteStore interface {
	UpsertVote(ctx context.Context, startupID, userID string, upvote bool) error
	DeleteVote(ctx context.Context, startupID, userID string) error
	DeleteByStartup(ctx context.Context, startupID string) error
	Counts(ctx context.Context, startupID string) (types.VoteCounts, error)
}

type WishlistStore interface {
	AddItem(ctx context.Context, userID, startupID string) error
	RemoveItem(ctx context.Context, userID, startupID string) error
	DeleteByStartup(ctx context.Context, startupID string) error
	StartupsByUser(ctx context.Context, userID string) ([]*types.Startup, error)
}

type LookingForStore interface {
	AllOptions(ctx context.Context) ([]*types.LookingForOption, error)
	OptionsByStartup(ctx context.Context, startupID string) ([]*types.LookingForOption, error)
	ReplaceAssignments(ctx context.Context, startupID string, optionIDs []string) error
	DeleteByStartup(ctx context.Context, startupID string) error
}

type ProfileStore interface {
	Profile(ctx context.Context, userID string) (*types.Profile, error)
	UpsertProfile(ctx context.Context, profile *types.Profile) error
}

type ViewLogStore interface {
	RecordView(ctx context.Context, startupID, viewerID string) error
	CountByStartup(ctx context.Context, startupID string) (int64, error)
	DeleteByStartup(ctx context.Context, startupID string) error
}

type AuditStore interface {
	Append(ctx context.Context, entry *types.AuditEntry) error
}
