package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/config"
	"github.com/andresuchdata/salesops-analytics/internal/daterange"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	dashboardKeyPrefix = "dashboard:"
	kpiKeyPrefix       = dashboardKeyPrefix + "kpi"
	trendKeyPrefix     = dashboardKeyPrefix + "trend"
)

// DashboardCache memoizes the KPI and trend queries per dataset snapshot.
// Entries are keyed by dataset ID so a regenerated snapshot never reads stale values.
type DashboardCache interface {
	GetKPI(ctx context.Context, datasetID string, filter domain.Filter) (*domain.KPISummary, bool, error)
	SetKPI(ctx context.Context, datasetID string, filter domain.Filter, kpi *domain.KPISummary) error
	GetTrend(ctx context.Context, datasetID string, filter domain.Filter) ([]domain.TrendPoint, bool, error)
	SetTrend(ctx context.Context, datasetID string, filter domain.Filter, points []domain.TrendPoint) error
	InvalidateAll(ctx context.Context) error
	Close() error
}

type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopDashboardCache struct{}

func NewDashboardCache(cfg config.CacheConfig) (DashboardCache, error) {
	if !cfg.Enabled {
		return &noopDashboardCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisDashboardCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopDashboardCache() DashboardCache {
	return &noopDashboardCache{}
}

func (c *redisDashboardCache) GetKPI(ctx context.Context, datasetID string, filter domain.Filter) (*domain.KPISummary, bool, error) {
	kpi, ok, err := getJSON[domain.KPISummary](ctx, c.client, buildKey(kpiKeyPrefix, datasetID, filter))
	if err != nil || !ok {
		return nil, ok, err
	}
	return &kpi, true, nil
}

func (c *redisDashboardCache) SetKPI(ctx context.Context, datasetID string, filter domain.Filter, kpi *domain.KPISummary) error {
	return setJSON(ctx, c.client, buildKey(kpiKeyPrefix, datasetID, filter), kpi, c.ttl)
}

func (c *redisDashboardCache) GetTrend(ctx context.Context, datasetID string, filter domain.Filter) ([]domain.TrendPoint, bool, error) {
	return getJSON[[]domain.TrendPoint](ctx, c.client, buildKey(trendKeyPrefix, datasetID, filter))
}

func (c *redisDashboardCache) SetTrend(ctx context.Context, datasetID string, filter domain.Filter, points []domain.TrendPoint) error {
	return setJSON(ctx, c.client, buildKey(trendKeyPrefix, datasetID, filter), points, c.ttl)
}

func (c *redisDashboardCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, dashboardKeyPrefix, scanBatchSize)
}

func (c *redisDashboardCache) Close() error {
	return c.client.Close()
}

func (n *noopDashboardCache) GetKPI(ctx context.Context, datasetID string, filter domain.Filter) (*domain.KPISummary, bool, error) {
	return nil, false, nil
}

func (n *noopDashboardCache) SetKPI(ctx context.Context, datasetID string, filter domain.Filter, kpi *domain.KPISummary) error {
	return nil
}

func (n *noopDashboardCache) GetTrend(ctx context.Context, datasetID string, filter domain.Filter) ([]domain.TrendPoint, bool, error) {
	return nil, false, nil
}

func (n *noopDashboardCache) SetTrend(ctx context.Context, datasetID string, filter domain.Filter, points []domain.TrendPoint) error {
	return nil
}

func (n *noopDashboardCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func (n *noopDashboardCache) Close() error {
	return nil
}

func buildKey(prefix, datasetID string, filter domain.Filter) string {
	return fmt.Sprintf("%s:%s:%s", prefix, datasetID, filterHash(filter))
}

// filterHash folds every filter field that changes a dashboard answer into a stable digest.
func filterHash(filter domain.Filter) string {
	parts := []string{}

	if filter.HasExplicitRange() {
		parts = append(parts,
			"start="+daterange.ISODate(*filter.StartDate),
			"end="+daterange.ISODate(*filter.EndDate))
	} else if filter.DateRange != "" {
		token, _ := daterange.Normalize(filter.DateRange)
		parts = append(parts, "range="+token)
	}

	for name, value := range map[string]string{
		"customer": filter.CustomerCode,
		"user":     filter.UserCode,
		"route":    filter.RouteCode,
		"region":   filter.RegionCode,
		"channel":  filter.ChannelCode,
	} {
		if value != "" {
			parts = append(parts, name+"="+value)
		}
	}

	if len(parts) == 0 {
		return "default"
	}

	sort.Strings(parts)
	raw := strings.Join(parts, "|")
	sum := sha1.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}
