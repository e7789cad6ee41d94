package seed

import (
	"context"
	"fmt"

	"launchpad/internal/store"
	"launchpad/pkg/types"
)

// SeedLookingForOptions upserts the fixed "what we're seeking" catalog the
// wizard offers. Options are never deleted here; removing one would orphan
// existing startup assignments.
func SeedLookingForOptions(ctx context.Context, repo *store.LookingForRepository) ([]types.LookingForOption, error) {
	options := []types.LookingForOption{
		{
			ID:           "Xr7T4KjL1pYdS5fGhE9aUzC3vBn6MmQw",
			Name:         "Funding",
			Slug:         "funding",
			DisplayOrder: 1,
		},
		{
			ID:           "Jl9PyDs2FgHe6AuZc4VbN8mQw3XrT5Kk",
			Name:         "Co-founder",
			Slug:         "co-founder",
			DisplayOrder: 2,
		},
		{
			ID:           "Pd5SfGh3EaUz7CvBn1MmQw9XrT2KjL6y",
			Name:         "Mentorship",
			Slug:         "mentorship",
			DisplayOrder: 3,
		},
		{
			ID:           "Eh1AuZc5VbN9mQw2XrT6KjL4pYdS8fGg",
			Name:         "Hiring",
			Slug:         "hiring",
			DisplayOrder: 4,
		},
		{
			ID:           "Cz3VbN7mQw4XrT8KjL2pYdS6fGhE1aUu",
			Name:         "Partnerships",
			Slug:         "partnerships",
			DisplayOrder: 5,
		},
		{
			ID:           "Nb8MmQw6XrT3KjL7pYdS1fGhE5aUzC9v",
			Name:         "Beta users",
			Slug:         "beta-users",
			DisplayOrder: 6,
		},
		{
			ID:           "Wq2XrT9KjL5pYdS3fGhE7aUzC4vBn1Mm",
			Name:         "Advisors",
			Slug:         "advisors",
			DisplayOrder: 7,
		},
	}

	for i := range options {
		if err := repo.UpsertOption(ctx, &options[i]); err != nil {
			return nil, fmt.Errorf("failed to upsert looking-for option %s: %w", options[i].Slug, err)
		}
	}

	return options, nil
}
