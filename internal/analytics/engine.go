// Package analytics answers dashboard questions over a dataset snapshot.
// Every query is total: empty inputs produce zero-valued results, never errors.
package analytics

import (
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/dataset"
	"github.com/andresuchdata/salesops-analytics/internal/daterange"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
)

const (
	defaultTopLimit      = 10
	defaultListLimit     = 100
	fieldOpsJourneyLimit = 50
	fieldOpsVisitLimit   = 100
	collectedShare       = 0.75
	customRange          = "custom"
)

type Engine struct {
	ds *dataset.Dataset
}

func New(ds *dataset.Dataset) *Engine {
	return &Engine{ds: ds}
}

func (e *Engine) Dataset() *dataset.Dataset { return e.ds }

// resolve scopes f to a concrete range relative to the snapshot's reference date.
func (e *Engine) resolve(f domain.Filter) daterange.Range {
	loc := e.ds.Location()
	if f.HasExplicitRange() {
		return daterange.New(calendarDay(*f.StartDate, loc), calendarDay(*f.EndDate, loc))
	}
	return daterange.Resolve(f.DateRange, e.ds.ReferenceDate().In(loc))
}

// scope resolves f, or covers the whole generated window when f names no period.
func (e *Engine) scope(f domain.Filter) daterange.Range {
	if !f.HasPeriod() {
		return e.ds.Window()
	}
	return e.resolve(f)
}

// calendarDay keeps the caller's calendar date but anchors it in the snapshot's timezone.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func rangeLabel(f domain.Filter) string {
	if f.HasExplicitRange() {
		return customRange
	}
	token, _ := daterange.Normalize(f.DateRange)
	return token
}

func (e *Engine) transactionsIn(r daterange.Range, f domain.Filter) []domain.Transaction {
	var out []domain.Transaction
	for _, t := range e.ds.Transactions() {
		if r.Contains(t.TrxDate) && f.MatchesTransaction(t) {
			out = append(out, t)
		}
	}
	return out
}

func salesOnly(txns []domain.Transaction) []domain.Transaction {
	var out []domain.Transaction
	for _, t := range txns {
		if t.IsSale() {
			out = append(out, t)
		}
	}
	return out
}

// percentChange is 0 unless the previous value is positive.
func percentChange(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return round2((current - previous) / previous * 100)
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func share(part, total float64) float64 {
	return round2(safeDiv(part, total) * 100)
}

func limitOr(n, fallback int) int {
	if n <= 0 {
		return fallback
	}
	return n
}

func truncate[T any](xs []T, n int) []T {
	if n >= 0 && len(xs) > n {
		return xs[:n]
	}
	return xs
}

func round2(v float64) float64 { return dataset.Round2(v) }

// nonNil keeps JSON output as [] instead of null.
func nonNil[T any](xs []T) []T {
	if xs == nil {
		return []T{}
	}
	return xs
}
