package main

import (
	"fmt"

	"github.com/andresuchdata/salesops-analytics/internal/config"
	"github.com/andresuchdata/salesops-analytics/internal/dataset"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
	"github.com/andresuchdata/salesops-analytics/internal/export"
	"github.com/andresuchdata/salesops-analytics/internal/service"
	"github.com/andresuchdata/salesops-analytics/internal/storage"
	"github.com/andresuchdata/salesops-analytics/pkg/logger"
	"github.com/urfave/cli/v2"
)

func exportCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Render analytics reports as Excel workbooks",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "report",
				Usage: "Report to render (repeatable), defaults to all",
			},
			&cli.StringFlag{
				Name:    "dir",
				Usage:   "Directory the workbooks are written to",
				Value:   cfg.App.ExportDir,
				EnvVars: []string{"APP_EXPORT_DIR"},
			},
			&cli.StringFlag{
				Name:  "date-range",
				Usage: "Period token applied to every report",
			},
			&cli.BoolFlag{
				Name:  "publish",
				Usage: "Upload to object storage instead of writing files",
			},
		},
		Action: func(c *cli.Context) error {
			return runExport(c, cfg.Storage)
		},
	}
}

func runExport(c *cli.Context, storageCfg config.StorageConfig) error {
	ds, err := buildDataset(c)
	if err != nil {
		return err
	}

	var store storage.ObjectStorage
	if c.Bool("publish") {
		client, err := storage.NewMinioClient(storage.MinioConfig{
			Endpoint:  storageCfg.Endpoint,
			AccessKey: storageCfg.AccessKey,
			SecretKey: storageCfg.SecretKey,
			Bucket:    storageCfg.Bucket,
			Region:    storageCfg.Region,
			UseSSL:    storageCfg.UseSSL,
		})
		if err != nil {
			return fmt.Errorf("object storage: %w", err)
		}
		if err := client.EnsureBucket(c.Context); err != nil {
			return fmt.Errorf("object storage: %w", err)
		}
		store = client
	}

	svc := service.NewExportService(dataset.NewStaticProvider(ds), store, storageCfg.Prefix)
	filter := domain.Filter{DateRange: c.String("date-range")}

	reports := c.StringSlice("report")
	if len(reports) == 0 {
		reports = export.Reports()
	}

	for _, report := range reports {
		if store != nil {
			published, err := svc.Publish(c.Context, report, filter)
			if err != nil {
				return err
			}
			logger.Log.Info().Str("report", report).Str("key", published.Key).Int64("size", published.Size).Msg("Report published")
			continue
		}

		path, err := svc.SaveLocal(c.Context, report, filter, c.String("dir"))
		if err != nil {
			return err
		}
		logger.Log.Info().Str("report", report).Str("path", path).Msg("Report written")
	}
	return nil
}
