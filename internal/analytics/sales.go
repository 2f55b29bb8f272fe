package analytics

import (
	"cmp"
	"slices"

	"github.com/andresuchdata/salesops-analytics/internal/daterange"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
)

func periodMetrics(txns []domain.Transaction) domain.PeriodMetrics {
	var m domain.PeriodMetrics
	customers := make(map[string]struct{})
	for _, t := range txns {
		if t.IsSale() {
			m.GrossSales += t.TotalAmount
			m.TotalOrders++
			customers[t.CustomerCode] = struct{}{}
		} else {
			m.ReturnSales += -t.TotalAmount
			m.ReturnOrders++
		}
	}
	m.GrossSales = round2(m.GrossSales)
	m.ReturnSales = round2(m.ReturnSales)
	m.NetSales = round2(m.GrossSales - m.ReturnSales)
	m.NetOrders = m.TotalOrders - m.ReturnOrders
	m.UniqueCustomers = len(customers)
	return m
}

func averageOrderValue(m domain.PeriodMetrics) float64 {
	if m.NetOrders <= 0 {
		return 0
	}
	return round2(m.NetSales / float64(m.NetOrders))
}

func grossSales(txns []domain.Transaction) float64 {
	var total float64
	for _, t := range txns {
		if t.IsSale() {
			total += t.TotalAmount
		}
	}
	return round2(total)
}

// KPISummary compares the requested period (thisMonth by default) with the
// equal-length period immediately before it.
func (e *Engine) KPISummary(f domain.Filter) domain.KPISummary {
	f = f.WithDefaultRange(daterange.ThisMonth)
	cur := e.resolve(f)
	prev := cur.Previous()

	current := periodMetrics(e.transactionsIn(cur, f))
	previous := periodMetrics(e.transactionsIn(prev, f))
	aov := averageOrderValue(current)
	prevAOV := averageOrderValue(previous)

	ref := e.ds.ReferenceDate()
	return domain.KPISummary{
		DateRange:               rangeLabel(f),
		StartDate:               cur.Start,
		EndDate:                 cur.End,
		PrevStartDate:           prev.Start,
		PrevEndDate:             prev.End,
		Current:                 current,
		Previous:                previous,
		AverageOrderValue:       aov,
		PrevAverageOrderValue:   prevAOV,
		NetSalesChange:          percentChange(current.NetSales, previous.NetSales),
		NetOrdersChange:         percentChange(float64(current.NetOrders), float64(previous.NetOrders)),
		UniqueCustomersChange:   percentChange(float64(current.UniqueCustomers), float64(previous.UniqueCustomers)),
		AverageOrderValueChange: percentChange(aov, prevAOV),
		MTDSales:                grossSales(e.transactionsIn(daterange.Resolve(daterange.ThisMonth, ref), f)),
		YTDSales:                grossSales(e.transactionsIn(daterange.Resolve(daterange.ThisYear, ref), f)),
		Currency:                "AED",
	}
}

// SalesTrend reads the daily aggregates, so dimension filters do not apply.
func (e *Engine) SalesTrend(f domain.Filter) []domain.TrendPoint {
	r := e.resolve(f.WithDefaultRange(daterange.ThisMonth))

	out := []domain.TrendPoint{}
	for _, d := range e.ds.DailySales() {
		if !r.Contains(d.Date) {
			continue
		}
		out = append(out, domain.TrendPoint{
			Date:      daterange.ISODate(d.Date),
			Sales:     d.TotalSales,
			Returns:   d.TotalReturns,
			NetSales:  d.NetSales,
			Orders:    d.TotalTransactions,
			Customers: d.TotalCustomers,
		})
	}
	slices.SortStableFunc(out, func(a, b domain.TrendPoint) int { return cmp.Compare(a.Date, b.Date) })
	return out
}

// DailySales is the daywise ledger for the period, oldest first.
func (e *Engine) DailySales(f domain.Filter) []domain.DailySales {
	r := e.scope(f)
	out := []domain.DailySales{}
	for _, d := range e.ds.DailySales() {
		if r.Contains(d.Date) {
			out = append(out, d)
		}
	}
	return out
}

// TopCustomers ranks customers by SALE value. Equal totals keep first-seen order.
func (e *Engine) TopCustomers(limit int, f domain.Filter) []domain.TopCustomer {
	f = f.WithDefaultRange(daterange.ThisMonth)
	sales := salesOnly(e.transactionsIn(e.resolve(f), f))

	index := make(map[string]int)
	var out []domain.TopCustomer
	for _, t := range sales {
		i, ok := index[t.CustomerCode]
		if !ok {
			i = len(out)
			index[t.CustomerCode] = i
			out = append(out, domain.TopCustomer{
				CustomerCode: t.CustomerCode,
				CustomerName: t.CustomerName,
				RouteCode:    t.RouteCode,
			})
		}
		out[i].TotalSales += t.TotalAmount
		out[i].TotalOrders++
	}

	for i := range out {
		out[i].TotalSales = round2(out[i].TotalSales)
	}
	slices.SortStableFunc(out, func(a, b domain.TopCustomer) int { return cmp.Compare(b.TotalSales, a.TotalSales) })
	return nonNil(truncate(out, limitOr(limit, defaultTopLimit)))
}

// TopProducts ranks products by line-item value across SALE transactions.
func (e *Engine) TopProducts(limit int, f domain.Filter) []domain.TopProduct {
	f = f.WithDefaultRange(daterange.ThisMonth)
	sales := salesOnly(e.transactionsIn(e.resolve(f), f))

	index := make(map[string]int)
	var out []domain.TopProduct
	for _, t := range sales {
		for _, item := range t.Items {
			i, ok := index[item.ItemCode]
			if !ok {
				i = len(out)
				index[item.ItemCode] = i
				out = append(out, domain.TopProduct{
					ItemCode: item.ItemCode,
					ItemName: item.ItemName,
					Category: item.Category,
				})
			}
			out[i].QuantitySold += item.Quantity
			out[i].TotalSales += item.TotalAmount
			out[i].TotalOrders++
		}
	}

	for i := range out {
		out[i].TotalSales = round2(out[i].TotalSales)
	}
	slices.SortStableFunc(out, func(a, b domain.TopProduct) int { return cmp.Compare(b.TotalSales, a.TotalSales) })
	return nonNil(truncate(out, limitOr(limit, defaultTopLimit)))
}

// Transactions lists matching transactions, newest first.
func (e *Engine) Transactions(f domain.Filter) []domain.Transaction {
	out := e.transactionsIn(e.scope(f), f)
	slices.SortStableFunc(out, func(a, b domain.Transaction) int { return b.TrxDate.Compare(a.TrxDate) })
	if f.Limit > 0 {
		out = truncate(out, f.Limit)
	}
	return nonNil(out)
}

// SalesPerformance reports one row per salesman in catalog order.
func (e *Engine) SalesPerformance(f domain.Filter) []domain.SalesPerformance {
	txns := e.transactionsIn(e.scope(f), f)
	routes := make(map[string]domain.Route)
	for _, r := range e.ds.Routes() {
		routes[r.RouteCode] = r
	}

	out := []domain.SalesPerformance{}
	for _, s := range e.ds.Salesmen() {
		if f.UserCode != "" && s.UserCode != f.UserCode {
			continue
		}
		if f.RouteCode != "" && s.RouteCode != f.RouteCode {
			continue
		}

		row := domain.SalesPerformance{
			UserCode:  s.UserCode,
			UserName:  s.UserName,
			RouteCode: s.RouteCode,
			RouteName: routes[s.RouteCode].RouteName,
		}
		customers := make(map[string]struct{})
		for _, t := range txns {
			if t.UserCode != s.UserCode {
				continue
			}
			if t.IsReturn() {
				row.ReturnAmount += -t.TotalAmount
				continue
			}
			row.TotalSales += t.TotalAmount
			row.TotalOrders++
			customers[t.CustomerCode] = struct{}{}
		}
		row.TotalSales = round2(row.TotalSales)
		row.ReturnAmount = round2(row.ReturnAmount)
		row.UniqueCustomers = len(customers)
		row.AvgOrderValue = round2(safeDiv(row.TotalSales, float64(row.TotalOrders)))
		out = append(out, row)
	}
	return out
}

// SalesAnalysis splits SALE value by salesman and by route.
func (e *Engine) SalesAnalysis(f domain.Filter) domain.SalesAnalysis {
	sales := salesOnly(e.transactionsIn(e.scope(f), f))

	var total float64
	for _, t := range sales {
		total += t.TotalAmount
	}

	bySalesman := breakdown(sales, total, func(t domain.Transaction) (string, string) { return t.UserCode, t.UserName })
	byRoute := breakdown(sales, total, func(t domain.Transaction) (string, string) { return t.RouteCode, t.RouteName })

	return domain.SalesAnalysis{
		TotalSales:  round2(total),
		TotalOrders: len(sales),
		BySalesman:  bySalesman,
		ByRoute:     byRoute,
	}
}

func breakdown(sales []domain.Transaction, total float64, key func(domain.Transaction) (string, string)) []domain.SalesBreakdown {
	index := make(map[string]int)
	var customers []map[string]struct{}
	out := []domain.SalesBreakdown{}
	for _, t := range sales {
		code, name := key(t)
		i, ok := index[code]
		if !ok {
			i = len(out)
			index[code] = i
			out = append(out, domain.SalesBreakdown{Code: code, Name: name})
			customers = append(customers, make(map[string]struct{}))
		}
		out[i].TotalSales += t.TotalAmount
		out[i].TotalOrders++
		customers[i][t.CustomerCode] = struct{}{}
	}
	for i := range out {
		out[i].UniqueCustomers = len(customers[i])
		out[i].AvgOrderValue = round2(safeDiv(out[i].TotalSales, float64(out[i].TotalOrders)))
		out[i].SharePct = share(out[i].TotalSales, total)
		out[i].TotalSales = round2(out[i].TotalSales)
	}
	slices.SortStableFunc(out, func(a, b domain.SalesBreakdown) int { return cmp.Compare(b.TotalSales, a.TotalSales) })
	return out
}

// PaymentAnalysis groups SALE value by payment type in a fixed type order.
func (e *Engine) PaymentAnalysis(f domain.Filter) []domain.PaymentSummary {
	sales := salesOnly(e.transactionsIn(e.scope(f), f))

	byType := make(map[domain.PaymentType]*domain.PaymentSummary, len(domain.PaymentTypes))
	out := make([]domain.PaymentSummary, len(domain.PaymentTypes))
	for i, pt := range domain.PaymentTypes {
		out[i].PaymentType = pt
		byType[pt] = &out[i]
	}

	var total float64
	for _, t := range sales {
		if row, ok := byType[t.PaymentType]; ok {
			row.TotalAmount += t.TotalAmount
			row.Count++
		}
		total += t.TotalAmount
	}
	for i := range out {
		out[i].SharePct = share(out[i].TotalAmount, total)
		out[i].TotalAmount = round2(out[i].TotalAmount)
	}
	return out
}

// VanSales summarises SALE transactions delivered from a van.
func (e *Engine) VanSales(f domain.Filter) domain.VanSalesSummary {
	sales := salesOnly(e.transactionsIn(e.scope(f), f))

	var total, vanTotal float64
	van := []domain.Transaction{}
	for _, t := range sales {
		total += t.TotalAmount
		if t.IsVanSales {
			vanTotal += t.TotalAmount
			van = append(van, t)
		}
	}

	return domain.VanSalesSummary{
		TotalVanSales: round2(vanTotal),
		VanOrders:     len(van),
		VanSharePct:   share(vanTotal, total),
		AvgOrderValue: round2(safeDiv(vanTotal, float64(len(van)))),
		Transactions:  truncate(van, limitOr(f.Limit, defaultListLimit)),
	}
}

// CollectionsFinance assumes a flat 75% of invoiced SALE value has been collected.
func (e *Engine) CollectionsFinance(f domain.Filter) domain.CollectionsFinance {
	sales := salesOnly(e.transactionsIn(e.scope(f), f))

	invoiced := make(map[string]float64)
	var total float64
	for _, t := range sales {
		invoiced[t.CustomerCode] += t.TotalAmount
		total += t.TotalAmount
	}

	customers := []domain.CustomerCollection{}
	for _, c := range e.ds.Customers() {
		if !matchesCustomer(f, c) {
			continue
		}
		amount := invoiced[c.CustomerCode]
		customers = append(customers, domain.CustomerCollection{
			CustomerCode: c.CustomerCode,
			CustomerName: c.CustomerName,
			CreditLimit:  c.CreditLimit,
			Invoiced:     round2(amount),
			Collected:    round2(amount * collectedShare),
			Outstanding:  round2(amount * (1 - collectedShare)),
		})
	}
	slices.SortStableFunc(customers, func(a, b domain.CustomerCollection) int { return cmp.Compare(b.Outstanding, a.Outstanding) })

	collected := total * collectedShare
	return domain.CollectionsFinance{
		TotalInvoiced:    round2(total),
		TotalCollected:   round2(collected),
		TotalOutstanding: round2(total - collected),
		CollectionRate:   share(collected, total),
		Customers:        customers,
	}
}
