package seed

import (
	"context"
	"fmt"

	"launchpad/internal/store"
	"launchpad/internal/utils"
	"launchpad/pkg/types"
)

// SeedCategories syncs the database with the category definitions below.
// This file is the source of truth for categories:
// - Inserts new categories that don't exist
// - Updates existing categories that have changed
// - Deletes categories from DB that aren't in this list
//
// To generate new IDs: `go run ./cmd/launchpad nanoid`
func SeedCategories(ctx context.Context, repo *store.CategoryRepository) ([]types.Category, error) {
	// Define seed data with fixed IDs
	categories := []types.Category{
		{
			ID:           "fR2mXhQw8KtNp4ZvLbYc6JdSgE9nTaU3",
			Name:         "Fintech",
			Slug:         "fintech",
			Description:  utils.StringPtr("Payments, banking, lending, and financial infrastructure"),
			Icon:         utils.StringPtr("credit-card"),
			DisplayOrder: 1,
			IsActive:     true,
		},
		{
			ID:           "Kp7YtWq2XmBn5RjZcV4LdF8sGhA1eNu6",
			Name:         "Healthtech",
			Slug:         "healthtech",
			Description:  utils.StringPtr("Digital health, diagnostics, care delivery, and biotech tooling"),
			Icon:         utils.StringPtr("heart-pulse"),
			DisplayOrder: 2,
			IsActive:     true,
		},
		{
			ID:           "Zc4VbN8mQw2XrT6KjL9pYdS3fGhE5aU1",
			Name:         "AI & Machine Learning",
			Slug:         "ai-machine-learning",
			Description:  utils.StringPtr("Applied AI products, model infrastructure, and data platforms"),
			Icon:         utils.StringPtr("cpu"),
			DisplayOrder: 3,
			IsActive:     true,
		},
		{
			ID:           "Qw9XrT3KjL6pYdS8fGhE2aUzC5vBn4Mm",
			Name:         "E-commerce",
			Slug:         "e-commerce",
			Description:  utils.StringPtr("Marketplaces, retail enablement, and logistics for commerce"),
			Icon:         utils.StringPtr("shopping-cart"),
			DisplayOrder: 4,
			IsActive:     true,
		},
		{
			ID:           "Td6KjL2pYdS5fGhE9aUzC3vBn8MmQw1X",
			Name:         "Developer Tools",
			Slug:         "developer-tools",
			Description:  utils.StringPtr("Infrastructure, observability, and productivity for engineers"),
			Icon:         utils.StringPtr("terminal"),
			DisplayOrder: 5,
			IsActive:     true,
		},
		{
			ID:           "Yd3SfGhE7aUzC1vBn5MmQw8XrT4KjL2p",
			Name:         "Edtech",
			Slug:         "edtech",
			Description:  utils.StringPtr("Learning platforms, credentialing, and education operations"),
			Icon:         utils.StringPtr("book"),
			DisplayOrder: 6,
			IsActive:     true,
		},
		{
			ID:           "Gh5EaUzC9vBn3MmQw6XrT1KjL8pYdS2f",
			Name:         "Climate & Energy",
			Slug:         "climate-energy",
			Description:  utils.StringPtr("Clean energy, carbon accounting, and sustainability tooling"),
			Icon:         utils.StringPtr("leaf"),
			DisplayOrder: 7,
			IsActive:     true,
		},
		{
			ID:           "Uz8CvBn2MmQw5XrT9KjL3pYdS6fGhE1a",
			Name:         "Proptech",
			Slug:         "proptech",
			Description:  utils.StringPtr("Real estate marketplaces, property management, and construction"),
			Icon:         utils.StringPtr("building"),
			DisplayOrder: 8,
			IsActive:     true,
		},
		{
			ID:           "Bn6MmQw1XrT5KjL9pYdS3fGhE8aUzC2v",
			Name:         "Consumer",
			Slug:         "consumer",
			Description:  utils.StringPtr("Consumer apps, social products, and subscription services"),
			Icon:         utils.StringPtr("users"),
			DisplayOrder: 9,
			IsActive:     true,
		},
		{
			ID:           "Mm3QwXr8T2KjL6pYdS9fGhE4aUzC7vBn",
			Name:         "Other",
			Slug:         "other",
			Description:  utils.StringPtr("Everything that does not fit the categories above"),
			Icon:         utils.StringPtr("grid"),
			DisplayOrder: 10,
			IsActive:     true,
		},
	}

	ids := make([]string, 0, len(categories))
	for _, cat := range categories {
		ids = append(ids, cat.ID)
	}

	if err := repo.DeleteCategoriesNotIn(ctx, ids); err != nil {
		return nil, fmt.Errorf("failed to delete stale categories: %w", err)
	}

	for i := range categories {
		if err := repo.UpsertCategory(ctx, &categories[i]); err != nil {
			return nil, fmt.Errorf("failed to upsert category %s: %w", categories[i].Slug, err)
		}
	}

	return categories, nil
}
