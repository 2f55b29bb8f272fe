package daterange

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		token string
		start time.Time
		end   time.Time
	}{
		{Today, date(2024, 3, 15), date(2024, 3, 15)},
		{Yesterday, date(2024, 3, 14), date(2024, 3, 14)},
		{ThisWeek, date(2024, 3, 9), date(2024, 3, 15)},
		{LastWeek, date(2024, 3, 2), date(2024, 3, 8)},
		{ThisMonth, date(2024, 3, 1), date(2024, 3, 15)},
		{LastMonth, date(2024, 2, 1), date(2024, 2, 29)},
		{ThisQuarter, date(2024, 1, 1), date(2024, 3, 15)},
		{LastQuarter, date(2023, 10, 1), date(2023, 12, 31)},
		{ThisYear, date(2024, 1, 1), date(2024, 3, 15)},
		{Last30Days, date(2024, 2, 15), date(2024, 3, 15)},
		{"last30days", date(2024, 2, 15), date(2024, 3, 15)},
		{"fortnight", date(2024, 2, 15), date(2024, 3, 15)},
		{"", date(2024, 2, 15), date(2024, 3, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := Resolve(tt.token, ref)
			if !got.Start.Equal(tt.start) || !got.End.Equal(tt.end) {
				t.Errorf("Resolve(%q) = %s, want %s..%s", tt.token, got, ISODate(tt.start), ISODate(tt.end))
			}
		})
	}
}

func TestResolveQuarterBoundaries(t *testing.T) {
	tests := []struct {
		ref   time.Time
		token string
		start time.Time
		end   time.Time
	}{
		{date(2024, 5, 20), ThisQuarter, date(2024, 4, 1), date(2024, 5, 20)},
		{date(2024, 5, 20), LastQuarter, date(2024, 1, 1), date(2024, 3, 31)},
		{date(2024, 12, 31), LastQuarter, date(2024, 7, 1), date(2024, 9, 30)},
		{date(2024, 10, 1), ThisQuarter, date(2024, 10, 1), date(2024, 10, 1)},
		{date(2023, 3, 31), LastMonth, date(2023, 2, 1), date(2023, 2, 28)},
	}

	for _, tt := range tests {
		got := Resolve(tt.token, tt.ref)
		if !got.Start.Equal(tt.start) || !got.End.Equal(tt.end) {
			t.Errorf("Resolve(%q, %s) = %s, want %s..%s", tt.token, ISODate(tt.ref), got, ISODate(tt.start), ISODate(tt.end))
		}
	}
}

func TestRangeHelpers(t *testing.T) {
	r := Resolve(ThisMonth, date(2024, 3, 15))

	if got := r.Days(); got != 15 {
		t.Fatalf("Days() = %d, want 15", got)
	}

	prev := r.Previous()
	if !prev.Start.Equal(date(2024, 2, 15)) || !prev.End.Equal(date(2024, 2, 29)) {
		t.Errorf("Previous() = %s, want 2024-02-15..2024-02-29", prev)
	}
	if prev.Days() != r.Days() {
		t.Errorf("Previous().Days() = %d, want %d", prev.Days(), r.Days())
	}

	if !r.Contains(time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)) {
		t.Error("expected end day to be inclusive")
	}
	if r.Contains(time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)) {
		t.Error("expected day before start to be excluded")
	}
}

func TestNewSwapsReversedDates(t *testing.T) {
	r := New(date(2024, 3, 10), date(2024, 3, 1))
	if !r.Start.Equal(date(2024, 3, 1)) || !r.End.Equal(date(2024, 3, 10)) {
		t.Errorf("New() = %s, want 2024-03-01..2024-03-10", r)
	}
}

func TestWeekStart(t *testing.T) {
	// 2024-03-15 is a Friday.
	if got := WeekStart(date(2024, 3, 15)); !got.Equal(date(2024, 3, 10)) {
		t.Errorf("WeekStart() = %s, want 2024-03-10", ISODate(got))
	}
	if got := WeekStart(date(2024, 3, 10)); !got.Equal(date(2024, 3, 10)) {
		t.Errorf("WeekStart(sunday) = %s, want 2024-03-10", ISODate(got))
	}
}
