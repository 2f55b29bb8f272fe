package repository

import (
	"context"

	"github.com/andresuchdata/salesops-analytics/internal/dataset"
)

// SnapshotRepository persists generated datasets so they can be queried with SQL tooling.
type SnapshotRepository interface {
	EnsureSchema(ctx context.Context) error
	// SaveSnapshot replaces the stored snapshot with ds and returns rows written per table.
	SaveSnapshot(ctx context.Context, ds *dataset.Dataset) (map[string]int64, error)
	TableCounts(ctx context.Context) (map[string]int64, error)
	// LoadCatalogs reads back the master data of the stored snapshot.
	LoadCatalogs(ctx context.Context) (dataset.Records, error)
}
