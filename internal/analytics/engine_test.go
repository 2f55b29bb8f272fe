package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/dataset"
	"github.com/andresuchdata/salesops-analytics/internal/daterange"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
)

var ref = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 10, 0, 0, 0, time.UTC)
}

func sale(code, customer string, at time.Time, amount float64, items ...domain.LineItem) domain.Transaction {
	return domain.Transaction{
		TrxCode:      code,
		TrxDate:      at,
		TrxType:      domain.TrxTypeSale,
		CustomerCode: customer,
		UserCode:     "SLS001",
		RouteCode:    "RT001",
		PaymentType:  domain.PaymentCash,
		TotalAmount:  amount,
		Items:        items,
	}
}

func fixtureEngine(t *testing.T) *Engine {
	t.Helper()

	refund := sale("TRX000003", "CUST001", day(time.March, 12), -200)
	refund.TrxType = domain.TrxTypeReturn

	credit := sale("TRX000004", "CUST002", day(time.February, 20), 1500)
	credit.UserCode = "SLS002"
	credit.RouteCode = "RT002"
	credit.PaymentType = domain.PaymentCredit
	credit.IsVanSales = true

	ds := dataset.FromRecords(ref, 90, dataset.Records{
		Products:  dataset.Products(),
		Routes:    dataset.Routes(),
		Salesmen:  dataset.Salesmen(),
		Customers: dataset.Customers(),
		Users:     dataset.Users(),
		Transactions: []domain.Transaction{
			credit,
			sale("TRX000001", "CUST001", day(time.March, 5), 1200,
				domain.LineItem{ItemCode: "FRM007", Category: "Nuts", Quantity: 1, UnitPrice: 1299, TotalAmount: 1299}),
			sale("TRX000002", "CUST001", day(time.March, 10), 800,
				domain.LineItem{ItemCode: "FRM001", Category: "Nuts", Quantity: 1, UnitPrice: 599, TotalAmount: 599}),
			refund,
			sale("TRX000005", "CUST003", day(time.March, 14), 500),
		},
	})
	return New(ds)
}

func generatedEngine(t *testing.T) *Engine {
	t.Helper()
	return New(dataset.Generate(dataset.Options{Seed: 11, ReferenceDate: ref}))
}

func TestTopCustomersExcludesReturns(t *testing.T) {
	e := fixtureEngine(t)

	got := e.TopCustomers(1, domain.Filter{DateRange: daterange.ThisMonth})
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	if got[0].CustomerCode != "CUST001" || got[0].TotalSales != 2000 || got[0].TotalOrders != 2 {
		t.Errorf("got %+v, want CUST001 with 2000 over 2 orders", got[0])
	}
}

func TestKPISummary(t *testing.T) {
	e := fixtureEngine(t)

	k := e.KPISummary(domain.Filter{})
	if k.DateRange != daterange.ThisMonth {
		t.Errorf("default range = %q, want thisMonth", k.DateRange)
	}

	want := domain.PeriodMetrics{
		GrossSales: 2500, ReturnSales: 200, NetSales: 2300,
		TotalOrders: 3, ReturnOrders: 1, NetOrders: 2, UniqueCustomers: 2,
	}
	if k.Current != want {
		t.Errorf("current = %+v, want %+v", k.Current, want)
	}
	if k.Previous.NetSales != 1500 || k.Previous.NetOrders != 1 {
		t.Errorf("previous = %+v", k.Previous)
	}
	if !k.PrevStartDate.Equal(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("previous period starts %s", k.PrevStartDate)
	}
	if k.AverageOrderValue != 1150 {
		t.Errorf("average order value = %.2f, want 1150", k.AverageOrderValue)
	}
	if k.NetSalesChange != 53.33 {
		t.Errorf("net sales change = %.2f, want 53.33", k.NetSalesChange)
	}
	if k.NetOrdersChange != 100 {
		t.Errorf("net orders change = %.2f, want 100", k.NetOrdersChange)
	}
	if k.MTDSales != 2500 || k.YTDSales != 4000 {
		t.Errorf("mtd/ytd = %.2f/%.2f, want 2500/4000", k.MTDSales, k.YTDSales)
	}
}

func TestKPISummaryZeroDivision(t *testing.T) {
	e := fixtureEngine(t)

	today := e.KPISummary(domain.Filter{DateRange: daterange.Today})
	if today.Current.NetSales != 0 || today.Previous.NetSales != 500 {
		t.Fatalf("today current/previous = %.2f/%.2f, want 0/500", today.Current.NetSales, today.Previous.NetSales)
	}
	if today.AverageOrderValue != 0 || today.NetSalesChange != -100 || today.NetOrdersChange != -100 {
		t.Errorf("drop to an empty day = %+v", today)
	}

	quiet := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	empty := e.KPISummary(domain.Filter{StartDate: &quiet, EndDate: &quiet})
	if empty.AverageOrderValue != 0 || empty.NetSalesChange != 0 || empty.NetOrdersChange != 0 {
		t.Errorf("empty periods = %+v", empty)
	}

	start := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	k := e.KPISummary(domain.Filter{StartDate: &start, EndDate: &start})
	if k.DateRange != "custom" {
		t.Errorf("date range label = %q, want custom", k.DateRange)
	}
	if k.Current.NetSales != 500 || k.Previous.NetSales != 0 {
		t.Fatalf("current/previous = %.2f/%.2f", k.Current.NetSales, k.Previous.NetSales)
	}
	if k.NetSalesChange != 0 {
		t.Errorf("net sales change with empty previous = %.2f, want 0", k.NetSalesChange)
	}
	if math.IsNaN(k.AverageOrderValueChange) || math.IsInf(k.AverageOrderValueChange, 0) {
		t.Errorf("average order value change = %v", k.AverageOrderValueChange)
	}
}

func TestKPINetInvariants(t *testing.T) {
	e := generatedEngine(t)

	for _, token := range daterange.Tokens() {
		k := e.KPISummary(domain.Filter{DateRange: token})
		for name, m := range map[string]domain.PeriodMetrics{"current": k.Current, "previous": k.Previous} {
			if math.Abs(m.NetSales-(m.GrossSales-m.ReturnSales)) > 0.011 {
				t.Errorf("%s/%s: net %.2f != %.2f - %.2f", token, name, m.NetSales, m.GrossSales, m.ReturnSales)
			}
			if m.NetOrders != m.TotalOrders-m.ReturnOrders {
				t.Errorf("%s/%s: net orders %d != %d - %d", token, name, m.NetOrders, m.TotalOrders, m.ReturnOrders)
			}
		}
	}
}

func TestTopNOrdering(t *testing.T) {
	e := generatedEngine(t)

	customers := e.TopCustomers(3, domain.Filter{DateRange: daterange.Last30Days})
	if len(customers) == 0 || len(customers) > 3 {
		t.Fatalf("got %d customers, want 1..3", len(customers))
	}
	for i := 1; i < len(customers); i++ {
		if customers[i-1].TotalSales < customers[i].TotalSales {
			t.Errorf("customers not descending at %d: %.2f < %.2f", i, customers[i-1].TotalSales, customers[i].TotalSales)
		}
	}

	products := e.TopProducts(5, domain.Filter{DateRange: daterange.Last30Days})
	if len(products) != 5 {
		t.Fatalf("got %d products, want 5", len(products))
	}
	for i := 1; i < len(products); i++ {
		if products[i-1].TotalSales < products[i].TotalSales {
			t.Errorf("products not descending at %d", i)
		}
	}
}

func TestTopProductsFixture(t *testing.T) {
	e := fixtureEngine(t)

	got := e.TopProducts(10, domain.Filter{DateRange: daterange.ThisMonth})
	if len(got) != 2 {
		t.Fatalf("got %d products, want 2", len(got))
	}
	if got[0].ItemCode != "FRM007" || got[0].TotalSales != 1299 || got[0].QuantitySold != 1 {
		t.Errorf("first = %+v", got[0])
	}
}

func TestCustomerAnalyticsCoversCatalog(t *testing.T) {
	e := fixtureEngine(t)

	rows := e.CustomerAnalytics(domain.Filter{})
	if len(rows) != 15 {
		t.Fatalf("got %d rows, want 15", len(rows))
	}
	if rows[0].CustomerCode != "CUST001" || rows[0].TotalSales != 2000 || rows[0].ReturnAmount != 200 {
		t.Errorf("first row = %+v", rows[0])
	}
	if rows[0].LastOrderDate == nil || !rows[0].LastOrderDate.Equal(day(time.March, 10)) {
		t.Errorf("last order date = %v", rows[0].LastOrderDate)
	}

	zero := 0
	for _, r := range rows {
		if r.TotalOrders == 0 {
			zero++
			if r.TotalSales != 0 || r.AvgOrderValue != 0 || r.LastOrderDate != nil {
				t.Errorf("%s: idle customer with values %+v", r.CustomerCode, r)
			}
		}
	}
	if zero != 12 {
		t.Errorf("idle customers = %d, want 12", zero)
	}
}

func TestProductAnalyticsCoversCatalog(t *testing.T) {
	e := generatedEngine(t)

	rows := e.ProductAnalytics(domain.Filter{})
	if len(rows) != 20 {
		t.Fatalf("got %d rows, want 20", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].TotalRevenue < rows[i].TotalRevenue {
			t.Errorf("not descending at %d", i)
		}
	}
}

func TestSalesTrendAscending(t *testing.T) {
	e := generatedEngine(t)

	points := e.SalesTrend(domain.Filter{DateRange: daterange.Last30Days})
	if len(points) != 30 {
		t.Fatalf("got %d points, want 30", len(points))
	}
	if points[0].Date != "2024-02-15" || points[29].Date != "2024-03-15" {
		t.Errorf("range %s..%s", points[0].Date, points[29].Date)
	}
	for i := 1; i < len(points); i++ {
		if points[i-1].Date >= points[i].Date {
			t.Errorf("not ascending at %d", i)
		}
	}
}

func TestFieldOperationsAnalytics(t *testing.T) {
	e := generatedEngine(t)

	res := e.FieldOperationsAnalytics(domain.Filter{DateRange: daterange.ThisMonth})
	if res.TotalJourneys == 0 {
		t.Fatal("expected journeys this month")
	}
	if res.ProductivityRate < 0 || res.ProductivityRate > 100 {
		t.Errorf("productivity rate %.2f out of bounds", res.ProductivityRate)
	}
	if len(res.Journeys) > fieldOpsJourneyLimit || len(res.Visits) > fieldOpsVisitLimit {
		t.Errorf("lists not truncated: %d journeys, %d visits", len(res.Journeys), len(res.Visits))
	}

	planned := 0
	for _, j := range e.Journeys(domain.Filter{DateRange: daterange.ThisMonth}) {
		planned += j.PlannedVisits
	}
	if planned != res.TotalVisits {
		t.Errorf("total visits %d, want %d", res.TotalVisits, planned)
	}

	empty := New(dataset.FromRecords(ref, 90, dataset.Records{})).FieldOperationsAnalytics(domain.Filter{})
	if empty.ProductivityRate != 0 || empty.AvgSalesPerJourney != 0 {
		t.Errorf("empty analytics = %+v", empty)
	}
}

func TestSalesBreakdowns(t *testing.T) {
	e := fixtureEngine(t)

	analysis := e.SalesAnalysis(domain.Filter{})
	if analysis.TotalSales != 4000 || analysis.TotalOrders != 4 {
		t.Fatalf("totals = %.2f/%d", analysis.TotalSales, analysis.TotalOrders)
	}
	if analysis.BySalesman[0].Code != "SLS001" || analysis.BySalesman[0].SharePct != 62.5 {
		t.Errorf("by salesman = %+v", analysis.BySalesman)
	}
	if top := analysis.BySalesman[0]; top.UniqueCustomers != 2 || top.AvgOrderValue != 833.33 {
		t.Errorf("SLS001 customers/aov = %d/%.2f, want 2/833.33", top.UniqueCustomers, top.AvgOrderValue)
	}
	if second := analysis.BySalesman[1]; second.UniqueCustomers != 1 || second.AvgOrderValue != 1500 {
		t.Errorf("SLS002 customers/aov = %d/%.2f, want 1/1500", second.UniqueCustomers, second.AvgOrderValue)
	}

	payments := e.PaymentAnalysis(domain.Filter{})
	if len(payments) != 3 || payments[1].PaymentType != domain.PaymentCredit || payments[1].TotalAmount != 1500 {
		t.Errorf("payments = %+v", payments)
	}

	van := e.VanSales(domain.Filter{})
	if van.VanOrders != 1 || van.TotalVanSales != 1500 || van.VanSharePct != 37.5 {
		t.Errorf("van sales = %+v", van)
	}

	finance := e.CollectionsFinance(domain.Filter{})
	if finance.TotalCollected != 3000 || finance.TotalOutstanding != 1000 || finance.CollectionRate != 75 {
		t.Errorf("collections = %+v", finance)
	}
	if finance.Customers[0].CustomerCode != "CUST001" {
		t.Errorf("largest outstanding = %s, want CUST001", finance.Customers[0].CustomerCode)
	}

	perf := e.SalesPerformance(domain.Filter{UserCode: "SLS001"})
	if len(perf) != 1 || perf[0].TotalSales != 2500 || perf[0].UniqueCustomers != 2 || perf[0].ReturnAmount != 200 {
		t.Errorf("performance = %+v", perf)
	}
}

func TestTransactionsNewestFirst(t *testing.T) {
	e := fixtureEngine(t)

	got := e.Transactions(domain.Filter{CustomerCode: "CUST001", Limit: 2})
	if len(got) != 2 {
		t.Fatalf("got %d, want 2", len(got))
	}
	if got[0].TrxCode != "TRX000003" || got[1].TrxCode != "TRX000002" {
		t.Errorf("order = %s, %s", got[0].TrxCode, got[1].TrxCode)
	}
}

func TestPercentChange(t *testing.T) {
	cases := []struct {
		current, previous, want float64
	}{
		{150, 100, 50},
		{0, 500, -100},
		{500, 0, 0},
		{500, -1000, 0},
		{1, 3, -66.67},
	}
	for _, tc := range cases {
		if got := percentChange(tc.current, tc.previous); got != tc.want {
			t.Errorf("percentChange(%v, %v) = %v, want %v", tc.current, tc.previous, got, tc.want)
		}
	}
}
