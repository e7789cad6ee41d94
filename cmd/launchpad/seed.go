package main

import (
	"context"
	"fmt"

	"launchpad/internal/db"
	"launchpad/internal/seed"
	"launchpad/internal/store"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with initial data",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Dump seeded rows",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		categoryRepo := store.NewCategoryRepository(pool)
		lookingForRepo := store.NewLookingForRepository(pool)

		logrus.Info("Seeding categories...")
		categories, err := seed.SeedCategories(ctx, categoryRepo)
		if err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}

		logrus.Info("Seeding looking-for options...")
		options, err := seed.SeedLookingForOptions(ctx, lookingForRepo)
		if err != nil {
			return fmt.Errorf("failed to seed looking-for options: %w", err)
		}

		if c.Bool("verbose") {
			pp.Println(categories)
			pp.Println(options)
		}

		logrus.WithFields(logrus.Fields{
			"categories": len(categories),
			"options":    len(options),
		}).Info("Seed complete")

		return nil
	},
}
