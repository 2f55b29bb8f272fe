package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/config"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
)

func TestFilterHashDefault(t *testing.T) {
	if got := filterHash(domain.Filter{}); got != "default" {
		t.Errorf("empty filter hash = %q, want default", got)
	}
	if got := filterHash(domain.Filter{Limit: 5, Page: 2}); got != "default" {
		t.Errorf("paging should not affect hash, got %q", got)
	}
}

func TestFilterHashNormalizesToken(t *testing.T) {
	a := filterHash(domain.Filter{DateRange: "thisMonth", RouteCode: "RT001"})
	b := filterHash(domain.Filter{DateRange: "THISMONTH", RouteCode: "RT001"})
	if a != b {
		t.Errorf("token case changed hash: %s vs %s", a, b)
	}

	c := filterHash(domain.Filter{DateRange: "thisMonth", RouteCode: "RT002"})
	if a == c {
		t.Error("different routes share a hash")
	}
}

func TestFilterHashExplicitRange(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	sameDay := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	a := filterHash(domain.Filter{StartDate: &start, EndDate: &end})
	b := filterHash(domain.Filter{StartDate: &start, EndDate: &sameDay, DateRange: "lastWeek"})
	if a != b {
		t.Errorf("explicit range should hash by calendar day and win over the token")
	}
	if a == filterHash(domain.Filter{DateRange: "thisMonth"}) {
		t.Error("explicit range collides with token")
	}
}

func TestBuildKeyScopesByDataset(t *testing.T) {
	f := domain.Filter{DateRange: "last30Days"}

	k1 := buildKey(kpiKeyPrefix, "ds-1", f)
	k2 := buildKey(kpiKeyPrefix, "ds-2", f)
	if k1 == k2 {
		t.Error("datasets share a key")
	}
	if !strings.HasPrefix(k1, dashboardKeyPrefix) || !strings.HasPrefix(buildKey(trendKeyPrefix, "ds-1", f), dashboardKeyPrefix) {
		t.Error("keys must live under the invalidation prefix")
	}
	if buildKey(kpiKeyPrefix, "ds-1", f) == buildKey(trendKeyPrefix, "ds-1", f) {
		t.Error("kpi and trend share a key")
	}
}

func TestNewDashboardCacheDisabled(t *testing.T) {
	c, err := NewDashboardCache(config.CacheConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	if err := c.SetKPI(ctx, "ds", domain.Filter{}, &domain.KPISummary{}); err != nil {
		t.Fatalf("noop set: %v", err)
	}
	if _, ok, err := c.GetKPI(ctx, "ds", domain.Filter{}); ok || err != nil {
		t.Errorf("noop get = %v, %v", ok, err)
	}
	if _, ok, _ := c.GetTrend(ctx, "ds", domain.Filter{}); ok {
		t.Error("noop trend hit")
	}
}

func TestBuildRedisOptions(t *testing.T) {
	opts, err := buildRedisOptions(config.CacheConfig{RedisURL: "redis://:secret@cache.internal:6380/2"})
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	if opts.Addr != "cache.internal:6380" || opts.Password != "secret" || opts.DB != 2 {
		t.Errorf("url options = %s %q %d", opts.Addr, opts.Password, opts.DB)
	}

	opts, err = buildRedisOptions(config.CacheConfig{})
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if opts.Addr != "127.0.0.1:6379" {
		t.Errorf("default addr = %s", opts.Addr)
	}

	if _, err := buildRedisOptions(config.CacheConfig{RedisURL: "://bad"}); err == nil {
		t.Error("expected error for malformed url")
	}
}
