package main

import (
	"context"
	"fmt"

	"github.com/andresuchdata/salesops-analytics/internal/config"
	"github.com/andresuchdata/salesops-analytics/internal/repository"
	"github.com/andresuchdata/salesops-analytics/internal/repository/postgres"
	"github.com/andresuchdata/salesops-analytics/pkg/logger"
	"github.com/urfave/cli/v2"
)

type contextKey string

const dbKey contextKey = "db"

func initDB(cfg *config.Config) cli.BeforeFunc {
	return func(c *cli.Context) error {
		db, err := postgres.NewDB(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.Context = context.WithValue(c.Context, dbKey, db)
		return nil
	}
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey).(*postgres.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func snapshotRepository(c *cli.Context) (repository.SnapshotRepository, error) {
	db, ok := c.Context.Value(dbKey).(*postgres.DB)
	if !ok || db == nil {
		return nil, fmt.Errorf("database connection not initialised")
	}
	return postgres.NewSnapshotRepository(db), nil
}

func dbCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:   "db",
		Usage:  "Persist the dataset to Postgres",
		Before: initDB(cfg),
		After:  closeDB,
		Subcommands: []*cli.Command{
			{
				Name:   "push",
				Usage:  "Create the schema and replace its contents with a fresh snapshot",
				Action: runPush,
			},
			{
				Name:   "counts",
				Usage:  "Print row counts for every snapshot table",
				Action: runCounts,
			},
			{
				Name:   "catalogs",
				Usage:  "Read the catalogs back and report what was found",
				Action: runCatalogs,
			},
		},
	}
}

func runPush(c *cli.Context) error {
	repo, err := snapshotRepository(c)
	if err != nil {
		return err
	}
	ds, err := buildDataset(c)
	if err != nil {
		return err
	}

	if err := repo.EnsureSchema(c.Context); err != nil {
		return err
	}
	written, err := repo.SaveSnapshot(c.Context, ds)
	if err != nil {
		return err
	}

	logger.Log.Info().Str("dataset_id", ds.ID()).Interface("rows", written).Msg("Snapshot persisted")
	return nil
}

func runCounts(c *cli.Context) error {
	repo, err := snapshotRepository(c)
	if err != nil {
		return err
	}
	counts, err := repo.TableCounts(c.Context)
	if err != nil {
		return err
	}
	for table, n := range counts {
		fmt.Printf("%-20s %d\n", table, n)
	}
	return nil
}

func runCatalogs(c *cli.Context) error {
	repo, err := snapshotRepository(c)
	if err != nil {
		return err
	}
	records, err := repo.LoadCatalogs(c.Context)
	if err != nil {
		return err
	}

	logger.Log.Info().
		Int("products", len(records.Products)).
		Int("routes", len(records.Routes)).
		Int("salesmen", len(records.Salesmen)).
		Int("customers", len(records.Customers)).
		Int("users", len(records.Users)).
		Int("holidays", len(records.Holidays)).
		Msg("Catalogs loaded")
	return nil
}
