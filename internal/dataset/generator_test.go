package dataset

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/daterange"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
)

var testRef = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func generateFixture(t *testing.T) *Dataset {
	t.Helper()
	return Generate(Options{Seed: 42, ReferenceDate: testRef})
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 0.011
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(Options{Seed: 7, ReferenceDate: testRef})
	b := Generate(Options{Seed: 7, ReferenceDate: testRef})

	if !reflect.DeepEqual(a.Transactions(), b.Transactions()) {
		t.Fatal("same seed produced different transactions")
	}
	if !reflect.DeepEqual(a.Attendance(), b.Attendance()) {
		t.Fatal("same seed produced different attendance")
	}

	c := Generate(Options{Seed: 8, ReferenceDate: testRef})
	if reflect.DeepEqual(a.Transactions(), c.Transactions()) {
		t.Fatal("different seeds produced identical transactions")
	}
}

func TestGenerateAcceptsInjectedRand(t *testing.T) {
	a := Generate(Options{Rand: NewRand(99), ReferenceDate: testRef})
	b := Generate(Options{Seed: 99, ReferenceDate: testRef})
	if !reflect.DeepEqual(a.Transactions(), b.Transactions()) {
		t.Fatal("injected rand and equal seed should agree")
	}
}

func TestCatalogSizes(t *testing.T) {
	ds := generateFixture(t)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"products", len(ds.Products()), 20},
		{"routes", len(ds.Routes()), 8},
		{"salesmen", len(ds.Salesmen()), 8},
		{"customers", len(ds.Customers()), 15},
		{"users", len(ds.Users()), 12},
		{"daily sales", len(ds.DailySales()), DefaultDays},
		{"targets", len(ds.Targets()), 8 * targetMonths},
		{"attendance", len(ds.Attendance()), DefaultDays * 12},
		{"leave balances", len(ds.LeaveBalances()), 12 * len(domain.LeaveTypes)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	for _, c := range ds.Customers() {
		if c.Status != domain.CustomerStatusActive {
			t.Errorf("%s status = %q, want %q", c.CustomerCode, c.Status, domain.CustomerStatusActive)
		}
	}
}

func TestTransactionInvariants(t *testing.T) {
	ds := generateFixture(t)

	salesmanRoute := make(map[string]string)
	for _, s := range ds.Salesmen() {
		salesmanRoute[s.UserCode] = s.RouteCode
	}
	customerRoute := make(map[string]string)
	for _, c := range ds.Customers() {
		customerRoute[c.CustomerCode] = c.RouteCode
	}

	window := ds.Window()
	perDay := make(map[string]int)
	seen := make(map[string]bool)
	for _, tx := range ds.Transactions() {
		if seen[tx.TrxCode] {
			t.Fatalf("duplicate transaction code %s", tx.TrxCode)
		}
		seen[tx.TrxCode] = true
		perDay[daterange.ISODate(tx.TrxDate)]++

		if !window.Contains(tx.TrxDate) {
			t.Errorf("%s: date %s outside window %s", tx.TrxCode, tx.TrxDate, window)
		}
		if tx.IsReturn() && tx.TotalAmount > 0 {
			t.Errorf("%s: return with positive amount %.2f", tx.TrxCode, tx.TotalAmount)
		}
		if tx.IsSale() && tx.TotalAmount < 0 {
			t.Errorf("%s: sale with negative amount %.2f", tx.TrxCode, tx.TotalAmount)
		}
		if n := len(tx.Items); n < 2 || n > 8 {
			t.Errorf("%s: %d line items", tx.TrxCode, n)
		}
		if tx.DiscountPercent < 0 || tx.DiscountPercent > maxDiscountPct {
			t.Errorf("%s: discount %.0f%% out of range", tx.TrxCode, tx.DiscountPercent)
		}

		var lines float64
		for _, item := range tx.Items {
			if item.Quantity < 1 || item.Quantity > 10 {
				t.Errorf("%s: quantity %d out of range", tx.TrxCode, item.Quantity)
			}
			lines += item.TotalAmount
		}
		want := (lines - tx.DiscountAmount) * 1.05
		if math.Abs(math.Abs(tx.TotalAmount)-want) > 0.02 {
			t.Errorf("%s: final %.2f, want %.2f", tx.TrxCode, math.Abs(tx.TotalAmount), want)
		}

		if salesmanRoute[tx.UserCode] != customerRoute[tx.CustomerCode] {
			t.Errorf("%s: salesman %s does not serve customer %s", tx.TrxCode, tx.UserCode, tx.CustomerCode)
		}
	}

	if len(perDay) != DefaultDays {
		t.Fatalf("transactions cover %d days, want %d", len(perDay), DefaultDays)
	}
	for day, n := range perDay {
		if n < 15 || n > 35 {
			t.Errorf("%s: %d transactions, want 15..35", day, n)
		}
	}
}

func TestDailySalesConsistency(t *testing.T) {
	ds := generateFixture(t)

	sales := make(map[string]float64)
	returns := make(map[string]float64)
	customers := make(map[string]map[string]struct{})
	for _, tx := range ds.Transactions() {
		key := daterange.ISODate(tx.TrxDate)
		if tx.IsSale() {
			sales[key] += tx.TotalAmount
			if customers[key] == nil {
				customers[key] = make(map[string]struct{})
			}
			customers[key][tx.CustomerCode] = struct{}{}
		} else {
			returns[key] += -tx.TotalAmount
		}
	}

	for _, d := range ds.DailySales() {
		key := daterange.ISODate(d.Date)
		if !almostEqual(d.TotalSales, sales[key]) {
			t.Errorf("%s: total sales %.2f, want %.2f", key, d.TotalSales, sales[key])
		}
		if !almostEqual(d.TotalReturns, returns[key]) {
			t.Errorf("%s: total returns %.2f, want %.2f", key, d.TotalReturns, returns[key])
		}
		if d.TotalCustomers != len(customers[key]) {
			t.Errorf("%s: customers %d, want %d", key, d.TotalCustomers, len(customers[key]))
		}
		if !almostEqual(d.NetSales, d.TotalSales-d.TotalReturns) {
			t.Errorf("%s: net %.2f != %.2f - %.2f", key, d.NetSales, d.TotalSales, d.TotalReturns)
		}
	}
}

func TestStockMovements(t *testing.T) {
	ds := generateFixture(t)

	returnItems := 0
	for _, tx := range ds.Transactions() {
		if tx.IsReturn() {
			returnItems += len(tx.Items)
		}
	}

	returnRows := 0
	for _, m := range ds.StockMovements() {
		if m.Quantity >= 0 {
			t.Errorf("%s: quantity %d, want negative", m.MovementCode, m.Quantity)
		}
		switch {
		case m.IsReturn:
			returnRows++
			if m.TrxCode == "" {
				t.Errorf("%s: return movement without transaction", m.MovementCode)
			}
		case m.IsWastage:
			if m.Quantity < -5 {
				t.Errorf("%s: wastage quantity %d", m.MovementCode, m.Quantity)
			}
		default:
			t.Errorf("%s: movement is neither return nor wastage", m.MovementCode)
		}
	}

	if returnRows != returnItems {
		t.Errorf("return movements = %d, want %d", returnRows, returnItems)
	}
}

func TestJourneysAndVisits(t *testing.T) {
	ds := generateFixture(t)

	daySales := make(map[string]float64)
	for _, tx := range ds.Transactions() {
		if tx.IsSale() {
			daySales[tx.UserCode+"|"+daterange.ISODate(tx.TrxDate)] += tx.TotalAmount
		}
	}

	visitsByJourney := make(map[string][]domain.Visit)
	for _, v := range ds.Visits() {
		visitsByJourney[v.JourneyCode] = append(visitsByJourney[v.JourneyCode], v)
	}

	journeys := ds.Journeys()
	if len(journeys) == 0 {
		t.Fatal("no journeys generated")
	}

	for _, j := range journeys {
		if j.PlannedVisits < 8 || j.PlannedVisits > 15 {
			t.Errorf("%s: planned visits %d", j.JourneyCode, j.PlannedVisits)
		}
		if j.ProductiveVisits > j.PlannedVisits {
			t.Errorf("%s: productive %d > planned %d", j.JourneyCode, j.ProductiveVisits, j.PlannedVisits)
		}
		if h := j.StartTime.Hour(); h < 7 || h > 9 {
			t.Errorf("%s: start hour %d", j.JourneyCode, h)
		}
		if h := j.EndTime.Hour(); h < 16 || h > 18 {
			t.Errorf("%s: end hour %d", j.JourneyCode, h)
		}
		if want := daySales[j.UserCode+"|"+daterange.ISODate(j.JourneyDate)]; !almostEqual(j.TotalSales, want) {
			t.Errorf("%s: total sales %.2f, want %.2f", j.JourneyCode, j.TotalSales, want)
		}

		visits := visitsByJourney[j.JourneyCode]
		if len(visits) != j.PlannedVisits {
			t.Fatalf("%s: %d visits, want %d", j.JourneyCode, len(visits), j.PlannedVisits)
		}
		for i, v := range visits {
			if want := j.StartTime.Add(time.Duration(i) * visitSpacing); !v.CheckIn.Equal(want) {
				t.Errorf("%s: check-in %s, want %s", v.VisitCode, v.CheckIn, want)
			}
			if v.DurationMinutes < 10 || v.DurationMinutes > 45 {
				t.Errorf("%s: duration %d", v.VisitCode, v.DurationMinutes)
			}
			if v.IsProductive != (i < j.ProductiveVisits) {
				t.Errorf("%s: productive flag %v at index %d", v.VisitCode, v.IsProductive, i)
			}
			if v.IsProductive && (v.SalesAmount < 500 || v.SalesAmount > 5000) {
				t.Errorf("%s: productive sales %.0f", v.VisitCode, v.SalesAmount)
			}
			if !v.IsProductive && v.SalesAmount != 0 {
				t.Errorf("%s: non-productive visit with sales %.0f", v.VisitCode, v.SalesAmount)
			}
		}
	}
}

func TestTargets(t *testing.T) {
	ds := generateFixture(t)

	for _, tg := range ds.Targets() {
		if tg.TargetAmount < 80000 || tg.TargetAmount > 150000 {
			t.Errorf("%s: target %.0f out of range", tg.TargetCode, tg.TargetAmount)
		}
		if tg.StartDate.Day() != 1 || !tg.EndDate.Equal(daterange.MonthEnd(tg.StartDate)) {
			t.Errorf("%s: period %s..%s is not a calendar month", tg.TargetCode, tg.StartDate, tg.EndDate)
		}
		if got := domain.TargetStatusFor(tg.AchievementPct); got != tg.Status {
			t.Errorf("%s: status %q, want %q", tg.TargetCode, tg.Status, got)
		}
	}
}

func TestAttendanceRows(t *testing.T) {
	ds := generateFixture(t)

	for _, a := range ds.Attendance() {
		weekend := a.Date.Weekday() == time.Friday || a.Date.Weekday() == time.Saturday
		if weekend && a.Status != domain.AttendanceWeekend && a.Status != domain.AttendanceHoliday {
			t.Errorf("%s: weekend day with status %q", a.AttendanceID, a.Status)
		}
		if a.Status == domain.AttendancePresent {
			if weekend {
				t.Errorf("%s: present on a weekend", a.AttendanceID)
			}
			if a.CheckIn == nil || a.CheckOut == nil || a.WorkingHours <= 0 {
				t.Errorf("%s: present without times", a.AttendanceID)
			}
			continue
		}
		if a.CheckIn != nil || a.WorkingHours != 0 {
			t.Errorf("%s: %s row carries working time", a.AttendanceID, a.Status)
		}
	}
}

func TestFromRecordsDerivesDailyRows(t *testing.T) {
	ref := testRef
	ds := FromRecords(ref, 3, Records{
		Transactions: []domain.Transaction{
			{TrxCode: "T1", TrxDate: ref, TrxType: domain.TrxTypeSale, CustomerCode: "C1", TotalAmount: 100},
			{TrxCode: "T2", TrxDate: ref, TrxType: domain.TrxTypeSale, CustomerCode: "C1", TotalAmount: 50},
			{TrxCode: "T3", TrxDate: ref, TrxType: domain.TrxTypeReturn, CustomerCode: "C2", TotalAmount: -30},
			{TrxCode: "T4", TrxDate: ref.AddDate(0, 0, -10), TrxType: domain.TrxTypeSale, CustomerCode: "C3", TotalAmount: 999},
		},
	})

	rows := ds.DailySales()
	if len(rows) != 3 {
		t.Fatalf("got %d daily rows, want 3", len(rows))
	}
	last := rows[2]
	if last.TotalSales != 150 || last.TotalReturns != 30 || last.NetSales != 120 {
		t.Errorf("last day = %+v", last)
	}
	if last.TotalTransactions != 2 || last.TotalCustomers != 1 || last.ReturnCount != 1 {
		t.Errorf("last day counts = %+v", last)
	}
	if rows[0].TotalSales != 0 {
		t.Errorf("first day sales = %.2f, want 0", rows[0].TotalSales)
	}
}

func TestProvider(t *testing.T) {
	p := NewProvider(Options{Seed: 3, ReferenceDate: testRef, Days: 10})

	first := p.Get()
	if first != p.Get() {
		t.Fatal("Get() should return the cached snapshot")
	}

	next := p.Regenerate(4)
	if next == first {
		t.Fatal("Regenerate() should swap the snapshot")
	}
	if p.Get() != next || next.Seed() != 4 {
		t.Fatalf("Get() after Regenerate returned seed %d", p.Get().Seed())
	}
}
