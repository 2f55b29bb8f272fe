// Package dataset builds the synthetic sales and field-operations snapshot
// that the analytics engine queries.
package dataset

import (
	"slices"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/daterange"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
)

// Records are the raw collections a Dataset is assembled from. Daily sales and
// leave balances are always derived and never supplied.
type Records struct {
	Products       []domain.Product
	Routes         []domain.Route
	Salesmen       []domain.Salesman
	Customers      []domain.Customer
	Transactions   []domain.Transaction
	StockMovements []domain.StockMovement
	Journeys       []domain.Journey
	Visits         []domain.Visit
	Targets        []domain.Target
	Users          []domain.User
	Holidays       []domain.Holiday
	Attendance     []domain.Attendance
}

// Dataset is a read-only snapshot. Accessors hand out copies of the backing
// slices; the line items inside a transaction are shared and must not be modified.
type Dataset struct {
	id            string
	seed          uint64
	referenceDate time.Time
	days          int
	generatedAt   time.Time

	records      Records
	dailySales   []domain.DailySales
	leaveBalance []domain.LeaveBalance
}

// FromRecords assembles a snapshot covering the days-long window ending on ref.
func FromRecords(ref time.Time, days int, r Records) *Dataset {
	if days <= 0 {
		days = DefaultDays
	}
	ds := &Dataset{
		referenceDate: daterange.Day(ref),
		days:          days,
		generatedAt:   time.Now(),
		records:       r,
	}
	ds.dailySales = deriveDailySales(ds.Window(), r.Transactions)
	ds.leaveBalance = deriveLeaveBalances(r.Users, r.Attendance)
	return ds
}

func (d *Dataset) ID() string {
	return d.id
}

func (d *Dataset) Seed() uint64 {
	return d.seed
}

func (d *Dataset) ReferenceDate() time.Time {
	return d.referenceDate
}

func (d *Dataset) Days() int {
	return d.days
}

func (d *Dataset) GeneratedAt() time.Time {
	return d.generatedAt
}

func (d *Dataset) Location() *time.Location {
	return d.referenceDate.Location()
}

// Window is the generated range: the trailing days ending on the reference date.
func (d *Dataset) Window() daterange.Range {
	return daterange.Range{
		Start: d.referenceDate.AddDate(0, 0, -(d.days - 1)),
		End:   d.referenceDate,
	}
}

func (d *Dataset) Products() []domain.Product {
	return slices.Clone(d.records.Products)
}

func (d *Dataset) Routes() []domain.Route {
	return slices.Clone(d.records.Routes)
}

func (d *Dataset) Salesmen() []domain.Salesman {
	return slices.Clone(d.records.Salesmen)
}

func (d *Dataset) Customers() []domain.Customer {
	return slices.Clone(d.records.Customers)
}

func (d *Dataset) Transactions() []domain.Transaction {
	return slices.Clone(d.records.Transactions)
}

func (d *Dataset) DailySales() []domain.DailySales {
	return slices.Clone(d.dailySales)
}

func (d *Dataset) StockMovements() []domain.StockMovement {
	return slices.Clone(d.records.StockMovements)
}

func (d *Dataset) Journeys() []domain.Journey {
	return slices.Clone(d.records.Journeys)
}

func (d *Dataset) Visits() []domain.Visit {
	return slices.Clone(d.records.Visits)
}

func (d *Dataset) Targets() []domain.Target {
	return slices.Clone(d.records.Targets)
}

func (d *Dataset) Users() []domain.User {
	return slices.Clone(d.records.Users)
}

func (d *Dataset) Holidays() []domain.Holiday {
	return slices.Clone(d.records.Holidays)
}

func (d *Dataset) Attendance() []domain.Attendance {
	return slices.Clone(d.records.Attendance)
}

func (d *Dataset) LeaveBalances() []domain.LeaveBalance {
	return slices.Clone(d.leaveBalance)
}

// Counts summarises collection sizes for logging and health output.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		"products":        len(d.records.Products),
		"routes":          len(d.records.Routes),
		"salesmen":        len(d.records.Salesmen),
		"customers":       len(d.records.Customers),
		"transactions":    len(d.records.Transactions),
		"daily_sales":     len(d.dailySales),
		"stock_movements": len(d.records.StockMovements),
		"journeys":        len(d.records.Journeys),
		"visits":          len(d.records.Visits),
		"targets":         len(d.records.Targets),
		"users":           len(d.records.Users),
		"attendance":      len(d.records.Attendance),
	}
}

// deriveDailySales emits one row per day of window, oldest first.
func deriveDailySales(window daterange.Range, txns []domain.Transaction) []domain.DailySales {
	type bucket struct {
		row       domain.DailySales
		customers map[string]struct{}
	}

	byDay := make(map[string]*bucket)
	var out []domain.DailySales
	var order []string
	for day := window.Start; !day.After(window.End); day = day.AddDate(0, 0, 1) {
		key := daterange.ISODate(day)
		byDay[key] = &bucket{row: domain.DailySales{Date: day}, customers: make(map[string]struct{})}
		order = append(order, key)
	}

	for _, t := range txns {
		b, ok := byDay[daterange.ISODate(t.TrxDate.In(window.Start.Location()))]
		if !ok {
			continue
		}
		if t.IsSale() {
			b.row.TotalSales += t.TotalAmount
			b.row.TotalTransactions++
			b.customers[t.CustomerCode] = struct{}{}
		} else {
			b.row.TotalReturns += -t.TotalAmount
			b.row.ReturnCount++
		}
	}

	out = make([]domain.DailySales, 0, len(order))
	for _, key := range order {
		b := byDay[key]
		b.row.TotalSales = Round2(b.row.TotalSales)
		b.row.TotalReturns = Round2(b.row.TotalReturns)
		b.row.NetSales = Round2(b.row.TotalSales - b.row.TotalReturns)
		b.row.TotalCustomers = len(b.customers)
		out = append(out, b.row)
	}
	return out
}

func deriveLeaveBalances(users []domain.User, attendance []domain.Attendance) []domain.LeaveBalance {
	used := make(map[string]map[string]int)
	for _, a := range attendance {
		if !domain.IsLeaveStatus(a.Status) {
			continue
		}
		if used[a.UserCode] == nil {
			used[a.UserCode] = make(map[string]int)
		}
		used[a.UserCode][a.Status]++
	}

	out := make([]domain.LeaveBalance, 0, len(users)*len(domain.LeaveTypes))
	for _, u := range users {
		for _, lt := range domain.LeaveTypes {
			n := used[u.UserCode][lt.Status]
			out = append(out, domain.LeaveBalance{
				UserCode:  u.UserCode,
				UserName:  u.UserName,
				LeaveType: lt.Status,
				Total:     lt.Entitlement,
				Used:      n,
				Balance:   lt.Entitlement - n,
			})
		}
	}
	return out
}
