package main

import (
	"fmt"
	"os"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/config"
	"github.com/andresuchdata/salesops-analytics/internal/dataset"
	"github.com/andresuchdata/salesops-analytics/pkg/logger"
	"github.com/urfave/cli/v2"
)

func datasetFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "Generator seed; 0 derives one from the clock",
			Value:   cfg.Dataset.Seed,
			EnvVars: []string{"DATASET_SEED"},
		},
		&cli.IntFlag{
			Name:    "days",
			Usage:   "Number of trailing days to generate",
			Value:   cfg.Dataset.Days,
			EnvVars: []string{"DATASET_DAYS"},
		},
		&cli.StringFlag{
			Name:    "ref-date",
			Usage:   "Reference date (YYYY-MM-DD), defaults to today",
			Value:   cfg.Dataset.ReferenceDate,
			EnvVars: []string{"DATASET_REFERENCE_DATE"},
		},
		&cli.StringFlag{
			Name:    "timezone",
			Usage:   "IANA timezone the calendar days are cut in",
			Value:   cfg.Dataset.Timezone,
			EnvVars: []string{"DATASET_TIMEZONE"},
		},
	}
}

// buildDataset generates the snapshot described by the global flags.
func buildDataset(c *cli.Context) (*dataset.Dataset, error) {
	dc := config.DatasetConfig{
		Seed:          c.Uint64("seed"),
		Days:          c.Int("days"),
		ReferenceDate: c.String("ref-date"),
		Timezone:      c.String("timezone"),
	}
	ref, err := dc.Reference(time.Now())
	if err != nil {
		return nil, err
	}
	if dc.Seed == 0 {
		dc.Seed = uint64(time.Now().UnixNano())
	}

	ds := dataset.Generate(dataset.Options{Seed: dc.Seed, ReferenceDate: ref, Days: dc.Days})
	logger.Log.Info().
		Str("dataset_id", ds.ID()).
		Uint64("seed", ds.Seed()).
		Str("window", ds.Window().String()).
		Interface("counts", ds.Counts()).
		Msg("Dataset generated")
	return ds, nil
}

func main() {
	cfg := config.Load()
	logger.SetLevel(cfg.Log.Level)
	logger.SetFormat(cfg.Log.Format)

	app := &cli.App{
		Name:  "seed",
		Usage: "Generate the sales and field-operations dataset and ship it to files, object storage or Postgres",
		Flags: datasetFlags(cfg),
		Commands: []*cli.Command{
			dumpCommand(),
			exportCommand(cfg),
			dbCommand(cfg),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
