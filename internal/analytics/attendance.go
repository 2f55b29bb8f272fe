package analytics

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/daterange"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
)

// matchesOption treats "" and "all" as no constraint.
func matchesOption(want, got string) bool {
	return want == "" || strings.EqualFold(want, "all") || want == got
}

func matchesAttendance(f domain.Filter, a domain.Attendance) bool {
	return matchesOption(f.UserCode, a.UserCode) &&
		matchesOption(f.Role, a.Role) &&
		matchesOption(f.Department, a.Department) &&
		matchesOption(f.Status, a.Status)
}

func (e *Engine) attendanceIn(r daterange.Range, f domain.Filter) []domain.Attendance {
	out := []domain.Attendance{}
	for _, a := range e.ds.Attendance() {
		if r.Contains(a.Date) && matchesAttendance(f, a) {
			out = append(out, a)
		}
	}
	return out
}

// Attendance lists attendance rows newest first.
func (e *Engine) Attendance(f domain.Filter) []domain.Attendance {
	out := e.attendanceIn(e.scope(f), f)
	slices.SortStableFunc(out, func(a, b domain.Attendance) int { return b.Date.Compare(a.Date) })
	if f.Limit > 0 {
		out = truncate(out, f.Limit)
	}
	return out
}

// UserAttendanceSummary totals one user's attendance for the period (thisMonth by default).
// Unknown users yield an all-zero summary.
func (e *Engine) UserAttendanceSummary(userCode string, f domain.Filter) domain.AttendanceSummary {
	f = f.WithDefaultRange(daterange.ThisMonth)
	r := e.resolve(f)

	var rows []domain.Attendance
	for _, a := range e.ds.Attendance() {
		if a.UserCode == userCode && r.Contains(a.Date) {
			rows = append(rows, a)
		}
	}

	s := summarize(rows)
	s.UserCode = userCode
	s.DateRange = rangeLabel(f)
	s.StartDate = r.Start
	s.EndDate = r.End
	return s
}

func summarize(rows []domain.Attendance) domain.AttendanceSummary {
	var (
		s       domain.AttendanceSummary
		effSum  float64
		effDays int
	)

	s.TotalDays = len(rows)
	for _, a := range rows {
		switch {
		case a.Status == domain.AttendancePresent:
			s.PresentDays++
		case a.Status == domain.AttendanceAbsent:
			s.AbsentDays++
		case a.Status == domain.AttendanceWeekend:
			s.WeekendDays++
		case a.Status == domain.AttendanceHoliday:
			s.HolidayDays++
		case domain.IsLeaveStatus(a.Status):
			s.LeaveDays++
		}
		if a.IsLate {
			s.LateDays++
		}
		if a.IsEarlyCheckout {
			s.EarlyCheckouts++
		}

		s.TotalWorkingHours += a.WorkingHours
		s.TotalProductiveHours += a.ProductiveHours
		s.TotalFieldHours += a.FieldHours
		s.TotalOfficeHours += a.OfficeHours
		s.TotalTravelHours += a.TravelHours
		s.TotalBreakHours += a.BreakHours
		s.TotalOvertimeHours += a.OvertimeHours
		s.TotalCustomerVisits += a.CustomerVisits
		s.TotalSalesCalls += a.SalesCalls
		s.TotalDistanceKm += a.DistanceKm
		s.TotalFuelLiters += a.FuelLiters
		s.TotalSalesAmount += a.SalesAmount
		if a.Efficiency > 0 {
			effSum += a.Efficiency
			effDays++
		}
	}

	s.WorkingDays = s.TotalDays - s.WeekendDays - s.HolidayDays
	s.AttendancePct = round2(safeDiv(float64(s.PresentDays), float64(s.WorkingDays)) * 100)
	s.AvgEfficiency = round2(effSum / float64(max(effDays, 1)))
	s.AvgWorkingHours = round2(safeDiv(s.TotalWorkingHours, float64(s.PresentDays)))
	s.AvgProductiveHours = round2(safeDiv(s.TotalProductiveHours, float64(s.PresentDays)))

	for _, f := range []*float64{
		&s.TotalWorkingHours, &s.TotalProductiveHours, &s.TotalFieldHours, &s.TotalOfficeHours,
		&s.TotalTravelHours, &s.TotalBreakHours, &s.TotalOvertimeHours,
		&s.TotalDistanceKm, &s.TotalFuelLiters, &s.TotalSalesAmount,
	} {
		*f = round2(*f)
	}
	return s
}

// AttendanceAnalytics pairs every matching user with their summary for the period.
func (e *Engine) AttendanceAnalytics(f domain.Filter) []domain.UserAttendanceAnalytics {
	out := []domain.UserAttendanceAnalytics{}
	for _, u := range e.ds.Users() {
		if !matchesOption(f.UserCode, u.UserCode) || !matchesOption(f.Role, u.Role) || !matchesOption(f.Department, u.Department) {
			continue
		}
		out = append(out, domain.UserAttendanceAnalytics{
			User:    u,
			Summary: e.UserAttendanceSummary(u.UserCode, f),
		})
	}
	return out
}

// WeeklyAttendance buckets rows by Sunday-starting week (thisMonth by default).
func (e *Engine) WeeklyAttendance(f domain.Filter) []domain.AttendanceRollup {
	rows := e.attendanceIn(e.resolve(f.WithDefaultRange(daterange.ThisMonth)), f)
	return rollup(rows, func(d time.Time) string { return daterange.ISODate(daterange.WeekStart(d)) })
}

// MonthlyAttendance buckets rows by calendar month, keyed YYYY-MM (thisYear by default).
func (e *Engine) MonthlyAttendance(f domain.Filter) []domain.AttendanceRollup {
	rows := e.attendanceIn(e.resolve(f.WithDefaultRange(daterange.ThisYear)), f)
	return rollup(rows, func(d time.Time) string { return d.Format("2006-01") })
}

func rollup(rows []domain.Attendance, key func(time.Time) string) []domain.AttendanceRollup {
	index := make(map[string]int)
	out := []domain.AttendanceRollup{}
	for _, a := range rows {
		k := key(a.Date)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, domain.AttendanceRollup{Period: k})
		}
		b := &out[i]
		b.Records++
		switch {
		case a.Status == domain.AttendancePresent:
			b.PresentDays++
		case a.Status == domain.AttendanceAbsent:
			b.AbsentDays++
		case domain.IsLeaveStatus(a.Status):
			b.LeaveDays++
		}
		if domain.IsWorkingDayStatus(a.Status) {
			b.WorkingDays++
		}
		if a.IsLate {
			b.LateDays++
		}
		b.TotalWorkingHours += a.WorkingHours
		b.TotalProductiveHours += a.ProductiveHours
		b.TotalOvertimeHours += a.OvertimeHours
		b.TotalSalesAmount += a.SalesAmount
	}

	for i := range out {
		out[i].TotalWorkingHours = round2(out[i].TotalWorkingHours)
		out[i].TotalProductiveHours = round2(out[i].TotalProductiveHours)
		out[i].TotalOvertimeHours = round2(out[i].TotalOvertimeHours)
		out[i].TotalSalesAmount = round2(out[i].TotalSalesAmount)
	}
	slices.SortStableFunc(out, func(a, b domain.AttendanceRollup) int { return cmp.Compare(a.Period, b.Period) })
	return out
}

// LeaveBalances returns leave usage rows, optionally for a single user.
func (e *Engine) LeaveBalances(f domain.Filter) []domain.LeaveBalance {
	out := []domain.LeaveBalance{}
	for _, lb := range e.ds.LeaveBalances() {
		if matchesOption(f.UserCode, lb.UserCode) {
			out = append(out, lb)
		}
	}
	return out
}
