package export

import (
	"fmt"
	"strings"

	"github.com/andresuchdata/salesops-analytics/internal/analytics"
	"github.com/andresuchdata/salesops-analytics/internal/daterange"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
)

const (
	ReportDashboard    = "dashboard"
	ReportCustomers    = "customers"
	ReportProducts     = "products"
	ReportDailySales   = "daily-sales"
	ReportTransactions = "transactions"
	ReportAttendance   = "attendance"
)

var reports = map[string]func(*analytics.Engine, domain.Filter) []Sheet{
	ReportDashboard:    dashboardSheets,
	ReportCustomers:    customerSheets,
	ReportProducts:     productSheets,
	ReportDailySales:   dailySalesSheets,
	ReportTransactions: transactionSheets,
	ReportAttendance:   attendanceSheets,
}

// Reports lists the report names BuildReport accepts.
func Reports() []string {
	return []string{ReportDashboard, ReportCustomers, ReportProducts, ReportDailySales, ReportTransactions, ReportAttendance}
}

// BuildReport assembles the sheets of a named report.
func BuildReport(e *analytics.Engine, report string, f domain.Filter) ([]Sheet, error) {
	build, ok := reports[strings.ToLower(strings.TrimSpace(report))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownReport, report)
	}
	return build(e, f), nil
}

// FileName names the workbook after the report and the snapshot reference date.
func FileName(report string, e *analytics.Engine) string {
	return fmt.Sprintf("%s_%s.xlsx", strings.ToLower(report), daterange.ISODate(e.Dataset().ReferenceDate()))
}

func dashboardSheets(e *analytics.Engine, f domain.Filter) []Sheet {
	k := e.KPISummary(f)
	kpi := Sheet{
		Name:    "KPI",
		Headers: []string{"Metric", "Current", "Previous", "Change %"},
		Rows: [][]any{
			{"Gross Sales", k.Current.GrossSales, k.Previous.GrossSales, nil},
			{"Returns", k.Current.ReturnSales, k.Previous.ReturnSales, nil},
			{"Net Sales", k.Current.NetSales, k.Previous.NetSales, k.NetSalesChange},
			{"Net Orders", k.Current.NetOrders, k.Previous.NetOrders, k.NetOrdersChange},
			{"Unique Customers", k.Current.UniqueCustomers, k.Previous.UniqueCustomers, k.UniqueCustomersChange},
			{"Average Order Value", k.AverageOrderValue, k.PrevAverageOrderValue, k.AverageOrderValueChange},
			{"MTD Sales", k.MTDSales, nil, nil},
			{"YTD Sales", k.YTDSales, nil, nil},
		},
	}

	trend := Sheet{Name: "Sales Trend", Headers: []string{"Date", "Sales", "Returns", "Net Sales", "Orders", "Customers"}}
	for _, p := range e.SalesTrend(f) {
		trend.Rows = append(trend.Rows, []any{p.Date, p.Sales, p.Returns, p.NetSales, p.Orders, p.Customers})
	}

	customers := Sheet{Name: "Top Customers", Headers: []string{"Customer Code", "Customer Name", "Route", "Total Sales", "Orders"}}
	for _, c := range e.TopCustomers(0, f) {
		customers.Rows = append(customers.Rows, []any{c.CustomerCode, c.CustomerName, c.RouteCode, c.TotalSales, c.TotalOrders})
	}

	products := Sheet{Name: "Top Products", Headers: []string{"Item Code", "Item Name", "Category", "Quantity", "Total Sales"}}
	for _, p := range e.TopProducts(0, f) {
		products.Rows = append(products.Rows, []any{p.ItemCode, p.ItemName, p.Category, p.QuantitySold, p.TotalSales})
	}

	return []Sheet{kpi, trend, customers, products}
}

func customerSheets(e *analytics.Engine, f domain.Filter) []Sheet {
	s := Sheet{
		Name: "Customers",
		Headers: []string{
			"Customer Code", "Customer Name", "Route", "Channel", "Credit Limit",
			"Total Sales", "Orders", "Returns", "Avg Order Value", "Last Order",
		},
	}
	for _, c := range e.CustomerAnalytics(f) {
		last := ""
		if c.LastOrderDate != nil {
			last = daterange.ISODate(*c.LastOrderDate)
		}
		s.Rows = append(s.Rows, []any{
			c.CustomerCode, c.CustomerName, c.RouteName, c.ChannelName, c.CreditLimit,
			c.TotalSales, c.TotalOrders, c.ReturnAmount, c.AvgOrderValue, last,
		})
	}
	return []Sheet{s}
}

func productSheets(e *analytics.Engine, f domain.Filter) []Sheet {
	products := Sheet{
		Name:    "Products",
		Headers: []string{"Item Code", "Item Name", "Category", "Base Price", "Quantity Sold", "Revenue", "Lines", "Avg Price"},
	}
	for _, p := range e.ProductAnalytics(f) {
		products.Rows = append(products.Rows, []any{
			p.ItemCode, p.ItemName, p.Category, p.BasePrice, p.TotalQuantitySold, p.TotalRevenue, p.TotalOrders, p.AvgSellingPrice,
		})
	}

	categories := Sheet{Name: "Categories", Headers: []string{"Category", "Total Sales", "Quantity", "Lines", "Products", "Share %"}}
	for _, c := range e.CategoryPerformance(f) {
		categories.Rows = append(categories.Rows, []any{c.Category, c.TotalSales, c.QuantitySold, c.TotalOrders, c.ProductCount, c.SharePct})
	}
	return []Sheet{products, categories}
}

func dailySalesSheets(e *analytics.Engine, f domain.Filter) []Sheet {
	s := Sheet{Name: "Daily Sales", Headers: []string{"Date", "Sales", "Returns", "Net Sales", "Transactions", "Return Count", "Customers"}}
	for _, d := range e.DailySales(f) {
		s.Rows = append(s.Rows, []any{
			daterange.ISODate(d.Date), d.TotalSales, d.TotalReturns, d.NetSales, d.TotalTransactions, d.ReturnCount, d.TotalCustomers,
		})
	}
	return []Sheet{s}
}

func transactionSheets(e *analytics.Engine, f domain.Filter) []Sheet {
	txns := Sheet{
		Name: "Transactions",
		Headers: []string{
			"Trx Code", "Date", "Type", "Customer", "Salesman", "Route", "Payment",
			"Subtotal", "Discount", "Tax", "Total", "Van Sale",
		},
	}
	lines := Sheet{Name: "Line Items", Headers: []string{"Trx Code", "Line", "Item Code", "Item Name", "Quantity", "Unit Price", "Total"}}

	for _, t := range e.Transactions(f) {
		txns.Rows = append(txns.Rows, []any{
			t.TrxCode, t.TrxDate.Format("2006-01-02 15:04"), string(t.TrxType), t.CustomerCode, t.UserCode, t.RouteCode,
			string(t.PaymentType), t.Subtotal, t.DiscountAmount, t.TaxAmount, t.TotalAmount, t.IsVanSales,
		})
		for _, item := range t.Items {
			lines.Rows = append(lines.Rows, []any{t.TrxCode, item.LineNo, item.ItemCode, item.ItemName, item.Quantity, item.UnitPrice, item.TotalAmount})
		}
	}
	return []Sheet{txns, lines}
}

func attendanceSheets(e *analytics.Engine, f domain.Filter) []Sheet {
	summary := Sheet{
		Name: "Summary",
		Headers: []string{
			"User Code", "User Name", "Role", "Department", "Working Days", "Present", "Absent",
			"Leave", "Late", "Attendance %", "Working Hours", "Productive Hours", "Avg Efficiency",
		},
	}
	for _, u := range e.AttendanceAnalytics(f) {
		s := u.Summary
		summary.Rows = append(summary.Rows, []any{
			u.UserCode, u.UserName, u.Role, u.Department, s.WorkingDays, s.PresentDays, s.AbsentDays,
			s.LeaveDays, s.LateDays, s.AttendancePct, s.TotalWorkingHours, s.TotalProductiveHours, s.AvgEfficiency,
		})
	}

	monthly := Sheet{Name: "Monthly", Headers: []string{"Month", "Records", "Working Days", "Present", "Absent", "Leave", "Late", "Working Hours"}}
	for _, m := range e.MonthlyAttendance(f) {
		monthly.Rows = append(monthly.Rows, []any{
			m.Period, m.Records, m.WorkingDays, m.PresentDays, m.AbsentDays, m.LeaveDays, m.LateDays, m.TotalWorkingHours,
		})
	}

	leave := Sheet{Name: "Leave Balance", Headers: []string{"User Code", "User Name", "Leave Type", "Total", "Used", "Balance"}}
	for _, lb := range e.LeaveBalances(f) {
		leave.Rows = append(leave.Rows, []any{lb.UserCode, lb.UserName, lb.LeaveType, lb.Total, lb.Used, lb.Balance})
	}

	return []Sheet{summary, monthly, leave}
}
