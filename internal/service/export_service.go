package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/analytics"
	"github.com/andresuchdata/salesops-analytics/internal/dataset"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
	"github.com/andresuchdata/salesops-analytics/internal/export"
	"github.com/andresuchdata/salesops-analytics/internal/storage"
	"github.com/rs/zerolog/log"
)

// ExportFile is a rendered report workbook.
type ExportFile struct {
	Report      string
	FileName    string
	ContentType string
	Data        []byte
}

// ExportService renders reports from the current snapshot and optionally
// publishes them to object storage.
type ExportService struct {
	provider *dataset.Provider
	store    storage.ObjectStorage
	prefix   string
}

// NewExportService accepts a nil store, in which case publishing reports ErrStorageDisabled.
func NewExportService(provider *dataset.Provider, store storage.ObjectStorage, prefix string) *ExportService {
	return &ExportService{provider: provider, store: store, prefix: prefix}
}

func (s *ExportService) Build(ctx context.Context, report string, filter domain.Filter) (*ExportFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e := analytics.New(s.provider.Get())
	sheets, err := export.BuildReport(e, report, filter)
	if err != nil {
		return nil, err
	}

	data, err := export.Bytes(sheets...)
	if err != nil {
		return nil, fmt.Errorf("render %s report: %w", report, err)
	}

	return &ExportFile{
		Report:      report,
		FileName:    export.FileName(report, e),
		ContentType: export.ContentTypeXLSX,
		Data:        data,
	}, nil
}

// Publish renders the report and uploads it under the configured prefix.
func (s *ExportService) Publish(ctx context.Context, report string, filter domain.Filter) (*domain.PublishedExport, error) {
	if s.store == nil {
		return nil, domain.ErrStorageDisabled
	}

	file, err := s.Build(ctx, report, filter)
	if err != nil {
		return nil, err
	}

	key := storage.ObjectKey(s.prefix, file.FileName)
	if err := s.store.UploadObject(ctx, key, file.Data, file.ContentType); err != nil {
		return nil, fmt.Errorf("publish %s report: %w", report, err)
	}

	log.Info().
		Str("report", report).
		Str("key", key).
		Int("bytes", len(file.Data)).
		Msg("export published")

	return &domain.PublishedExport{
		Report:      report,
		FileName:    file.FileName,
		Key:         key,
		Size:        int64(len(file.Data)),
		PublishedAt: time.Now().UTC(),
	}, nil
}

// ListPublished lists workbooks already uploaded under the prefix.
func (s *ExportService) ListPublished(ctx context.Context) ([]storage.ObjectInfo, error) {
	if s.store == nil {
		return nil, domain.ErrStorageDisabled
	}

	objects, err := s.store.ListObjects(ctx, storage.ObjectKey(s.prefix, ""))
	if err != nil {
		return nil, fmt.Errorf("list published exports: %w", err)
	}
	return objects, nil
}

// SaveLocal renders the report into dir and returns the written path.
func (s *ExportService) SaveLocal(ctx context.Context, report string, filter domain.Filter, dir string) (string, error) {
	file, err := s.Build(ctx, report, filter)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure export dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, file.FileName)
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
