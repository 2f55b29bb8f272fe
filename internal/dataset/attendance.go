package dataset

import (
	"fmt"
	"strings"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/daterange"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
)

const (
	absentThreshold = 5
	leaveThreshold  = 10
	lateAfterHour   = 9
	shiftEndHour    = 17
	overtimeOdds    = 5
)

var leaveStatuses = []string{domain.LeaveSick, domain.LeaveCasual, domain.LeaveAnnual, domain.LeaveEmergency}

// isWeekend follows the Friday/Saturday weekend.
func isWeekend(d time.Time) bool {
	return d.Weekday() == time.Friday || d.Weekday() == time.Saturday
}

func (g *generator) attendance(r Records) []domain.Attendance {
	holidays := make(map[string]string, len(r.Holidays))
	for _, h := range r.Holidays {
		holidays[daterange.ISODate(h.Date)] = h.Name
	}

	out := make([]domain.Attendance, 0, g.days*len(r.Users))
	for back := g.days - 1; back >= 0; back-- {
		day := g.dayAt(back)
		holiday, isHoliday := holidays[daterange.ISODate(day)]
		weekend := isWeekend(day)

		for _, u := range r.Users {
			a := domain.Attendance{
				AttendanceID: "ATT" + u.UserCode + strings.ReplaceAll(daterange.ISODate(day), "-", ""),
				UserCode:     u.UserCode,
				UserName:     u.UserName,
				Role:         u.Role,
				Department:   u.Department,
				Date:         day,
			}

			switch {
			case isHoliday:
				a.Status = domain.AttendanceHoliday
				a.Remarks = holiday
			case weekend:
				a.Status = domain.AttendanceWeekend
				a.Remarks = "Weekend"
			default:
				g.workday(&a, u, day)
			}
			out = append(out, a)
		}
	}
	return out
}

func (g *generator) workday(a *domain.Attendance, u domain.User, day time.Time) {
	roll := between(g.rnd, 1, 100)
	switch {
	case roll <= absentThreshold:
		a.Status = domain.AttendanceAbsent
		a.Remarks = "Absent without notice"
		return
	case roll <= leaveThreshold:
		a.Status = pick(g.rnd, leaveStatuses)
		a.Remarks = a.Status + " approved"
		return
	}

	a.Status = domain.AttendancePresent

	inHour := between(g.rnd, 8, 9)
	inMinute := between(g.rnd, 0, 59)
	if inHour == 9 {
		inMinute = between(g.rnd, 0, 30)
	}
	outHour := between(g.rnd, 17, 18)
	outMinute := between(g.rnd, 0, 59)
	if outHour == 18 {
		outMinute = between(g.rnd, 0, 30)
	}

	checkIn := day.Add(time.Duration(inHour)*time.Hour + time.Duration(inMinute)*time.Minute)
	checkOut := day.Add(time.Duration(outHour)*time.Hour + time.Duration(outMinute)*time.Minute)
	a.CheckIn = &checkIn
	a.CheckOut = &checkOut
	a.IsLate = inHour > lateAfterHour || (inHour == lateAfterHour && inMinute > 0)
	a.IsEarlyCheckout = outHour < shiftEndHour

	working := checkOut.Sub(checkIn).Hours()
	pct := func(lo, hi int) float64 { return float64(between(g.rnd, lo, hi)) / 100 }

	if u.Department == DepartmentSales {
		a.FieldHours = working * pct(60, 80)
		a.OfficeHours = working - a.FieldHours
		a.TravelHours = working * pct(20, 30)
		a.BreakHours = float64(between(g.rnd, 10, 15)) / 10
		a.ProductiveHours = working - a.TravelHours - a.BreakHours
		a.IdleHours = working * pct(5, 15)
		a.CustomerVisits = between(g.rnd, 8, 15)
		a.SalesCalls = between(g.rnd, 5, 12)
		a.DistanceKm = float64(between(g.rnd, 50, 200))
		a.FuelLiters = a.DistanceKm / float64(between(g.rnd, 8, 12))
		a.SalesAmount = float64(between(g.rnd, 2000, 15000))
		a.TargetAchievement = float64(between(g.rnd, 60, 120))
		a.Location = pick(g.rnd, fieldLocations)
	} else {
		a.OfficeHours = working
		a.BreakHours = float64(between(g.rnd, 10, 15)) / 10
		a.ProductiveHours = working - a.BreakHours
		a.IdleHours = working * pct(10, 20)
		a.Location = officeLocation
	}
	a.Efficiency = a.ProductiveHours / working * 100

	if oneIn(g.rnd, overtimeOdds) {
		a.OvertimeHours = float64(between(g.rnd, 1, 3))
		working += a.OvertimeHours
	}
	a.WorkingHours = working

	switch {
	case a.IsLate && a.IsEarlyCheckout:
		a.Remarks = "Late arrival and early departure"
	case a.IsLate:
		a.Remarks = fmt.Sprintf("Late by %d minutes", inMinute)
	case a.IsEarlyCheckout:
		a.Remarks = "Early checkout"
	default:
		a.Remarks = "On time"
	}

	roundAttendance(a)
}

func roundAttendance(a *domain.Attendance) {
	for _, f := range []*float64{
		&a.WorkingHours, &a.ProductiveHours, &a.FieldHours, &a.OfficeHours,
		&a.TravelHours, &a.BreakHours, &a.IdleHours, &a.OvertimeHours,
		&a.DistanceKm, &a.FuelLiters, &a.SalesAmount, &a.TargetAchievement, &a.Efficiency,
	} {
		*f = Round2(*f)
	}
}
