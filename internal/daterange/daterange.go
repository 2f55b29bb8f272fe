// Package daterange maps symbolic period tokens onto inclusive calendar-day ranges.
package daterange

import (
	"strings"
	"time"
)

const (
	Today       = "today"
	Yesterday   = "yesterday"
	ThisWeek    = "thisWeek"
	LastWeek    = "lastWeek"
	ThisMonth   = "thisMonth"
	LastMonth   = "lastMonth"
	ThisQuarter = "thisQuarter"
	LastQuarter = "lastQuarter"
	ThisYear    = "thisYear"
	Last30Days  = "last30Days"

	// Default applies to empty and unrecognised tokens.
	Default = Last30Days

	isoDate = "2006-01-02"
)

var tokens = []string{
	Today, Yesterday, ThisWeek, LastWeek, ThisMonth,
	LastMonth, ThisQuarter, LastQuarter, ThisYear, Last30Days,
}

// Tokens returns the recognised tokens in presentation order.
func Tokens() []string {
	out := make([]string, len(tokens))
	copy(out, tokens)
	return out
}

// Range is an inclusive pair of calendar days, both at midnight.
type Range struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// New builds a range from caller dates, swapping them when reversed.
func New(start, end time.Time) Range {
	s, e := Day(start), Day(end)
	if e.Before(s) {
		s, e = e, s
	}
	return Range{Start: s, End: e}
}

// Normalize maps aliases onto canonical tokens and reports whether the token is known.
func Normalize(token string) (string, bool) {
	trimmed := strings.TrimSpace(token)
	for _, t := range tokens {
		if strings.EqualFold(t, trimmed) {
			return t, true
		}
	}
	return Default, false
}

// Resolve converts token into a range relative to ref. Unknown tokens resolve as last30Days.
func Resolve(token string, ref time.Time) Range {
	current := Day(ref)
	canonical, _ := Normalize(token)

	switch canonical {
	case Today:
		return Range{Start: current, End: current}
	case Yesterday:
		d := current.AddDate(0, 0, -1)
		return Range{Start: d, End: d}
	case ThisWeek:
		return Range{Start: current.AddDate(0, 0, -6), End: current}
	case LastWeek:
		return Range{Start: current.AddDate(0, 0, -13), End: current.AddDate(0, 0, -7)}
	case ThisMonth:
		return Range{Start: monthStart(current), End: current}
	case LastMonth:
		start := monthStart(current).AddDate(0, -1, 0)
		return Range{Start: start, End: monthEnd(start)}
	case ThisQuarter:
		return Range{Start: quarterStart(current), End: current}
	case LastQuarter:
		start := quarterStart(current).AddDate(0, -3, 0)
		return Range{Start: start, End: quarterStart(current).AddDate(0, 0, -1)}
	case ThisYear:
		return Range{Start: time.Date(current.Year(), time.January, 1, 0, 0, 0, 0, current.Location()), End: current}
	default:
		return Range{Start: current.AddDate(0, 0, -29), End: current}
	}
}

// Contains reports whether t falls on any calendar day of the range.
func (r Range) Contains(t time.Time) bool {
	d := Day(t.In(r.Start.Location()))
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days is the inclusive number of calendar days covered.
func (r Range) Days() int {
	days := 0
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// Previous is the equal-length range ending the day before Start.
func (r Range) Previous() Range {
	end := r.Start.AddDate(0, 0, -1)
	return Range{Start: end.AddDate(0, 0, -(r.Days() - 1)), End: end}
}

func (r Range) String() string {
	return r.Start.Format(isoDate) + ".." + r.End.Format(isoDate)
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time { return monthStart(Day(t)) }

// MonthEnd returns the last day of t's month.
func MonthEnd(t time.Time) time.Time { return monthEnd(Day(t)) }

// WeekStart returns the Sunday starting t's week.
func WeekStart(t time.Time) time.Time {
	d := Day(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// ISODate formats t as YYYY-MM-DD.
func ISODate(t time.Time) string { return t.Format(isoDate) }

// ParseISODate parses YYYY-MM-DD in loc.
func ParseISODate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(isoDate, strings.TrimSpace(s), loc)
}

func monthStart(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
}

func monthEnd(d time.Time) time.Time {
	return monthStart(d).AddDate(0, 1, -1)
}

func quarterStart(d time.Time) time.Time {
	firstMonth := time.Month((int(d.Month())-1)/3*3 + 1)
	return time.Date(d.Year(), firstMonth, 1, 0, 0, 0, 0, d.Location())
}
