package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/domain"
)

func matchesCustomer(f domain.Filter, c domain.Customer) bool {
	if f.CustomerCode != "" && c.CustomerCode != f.CustomerCode {
		return false
	}
	if f.RouteCode != "" && c.RouteCode != f.RouteCode {
		return false
	}
	if f.ChannelCode != "" && c.ChannelCode != f.ChannelCode {
		return false
	}
	return true
}

// CustomerAnalytics returns one row per catalog customer, including customers
// without sales in the period, ordered by sales value.
func (e *Engine) CustomerAnalytics(f domain.Filter) []domain.CustomerAnalytics {
	txns := e.transactionsIn(e.scope(f), f)

	type agg struct {
		sales, returns float64
		orders         int
		last           time.Time
	}
	byCustomer := make(map[string]*agg)
	for _, t := range txns {
		a := byCustomer[t.CustomerCode]
		if a == nil {
			a = &agg{}
			byCustomer[t.CustomerCode] = a
		}
		if t.IsReturn() {
			a.returns += -t.TotalAmount
			continue
		}
		a.sales += t.TotalAmount
		a.orders++
		if t.TrxDate.After(a.last) {
			a.last = t.TrxDate
		}
	}

	out := []domain.CustomerAnalytics{}
	for _, c := range e.ds.Customers() {
		if !matchesCustomer(f, c) {
			continue
		}
		row := domain.CustomerAnalytics{Customer: c}
		if a := byCustomer[c.CustomerCode]; a != nil {
			row.TotalSales = round2(a.sales)
			row.TotalOrders = a.orders
			row.ReturnAmount = round2(a.returns)
			row.AvgOrderValue = round2(safeDiv(a.sales, float64(a.orders)))
			if !a.last.IsZero() {
				last := a.last
				row.LastOrderDate = &last
			}
		}
		out = append(out, row)
	}
	slices.SortStableFunc(out, func(a, b domain.CustomerAnalytics) int { return cmp.Compare(b.TotalSales, a.TotalSales) })
	return out
}

// ProductAnalytics returns one row per catalog product ordered by revenue.
// TotalOrders counts SALE line items carrying the product.
func (e *Engine) ProductAnalytics(f domain.Filter) []domain.ProductAnalytics {
	sales := salesOnly(e.transactionsIn(e.scope(f), f))

	type agg struct {
		qty     int
		revenue float64
		lines   int
	}
	byProduct := make(map[string]*agg)
	for _, t := range sales {
		for _, item := range t.Items {
			a := byProduct[item.ItemCode]
			if a == nil {
				a = &agg{}
				byProduct[item.ItemCode] = a
			}
			a.qty += item.Quantity
			a.revenue += item.TotalAmount
			a.lines++
		}
	}

	out := []domain.ProductAnalytics{}
	for _, p := range e.ds.Products() {
		row := domain.ProductAnalytics{Product: p}
		if a := byProduct[p.ItemCode]; a != nil {
			row.TotalQuantitySold = a.qty
			row.TotalRevenue = round2(a.revenue)
			row.TotalOrders = a.lines
			row.AvgSellingPrice = round2(safeDiv(a.revenue, float64(a.qty)))
		}
		out = append(out, row)
	}
	slices.SortStableFunc(out, func(a, b domain.ProductAnalytics) int { return cmp.Compare(b.TotalRevenue, a.TotalRevenue) })
	return out
}

// CategoryPerformance groups SALE line items by product category.
func (e *Engine) CategoryPerformance(f domain.Filter) []domain.CategoryPerformance {
	sales := salesOnly(e.transactionsIn(e.scope(f), f))

	index := make(map[string]int)
	products := make(map[string]map[string]struct{})
	out := []domain.CategoryPerformance{}
	var total float64
	for _, t := range sales {
		for _, item := range t.Items {
			category := item.Category
			if category == "" {
				category = "Unknown"
			}
			i, ok := index[category]
			if !ok {
				i = len(out)
				index[category] = i
				products[category] = make(map[string]struct{})
				out = append(out, domain.CategoryPerformance{Category: category})
			}
			out[i].TotalSales += item.TotalAmount
			out[i].QuantitySold += item.Quantity
			out[i].TotalOrders++
			products[category][item.ItemCode] = struct{}{}
			total += item.TotalAmount
		}
	}

	for i := range out {
		out[i].ProductCount = len(products[out[i].Category])
		out[i].SharePct = share(out[i].TotalSales, total)
		out[i].TotalSales = round2(out[i].TotalSales)
	}
	slices.SortStableFunc(out, func(a, b domain.CategoryPerformance) int { return cmp.Compare(b.TotalSales, a.TotalSales) })
	return out
}

func (e *Engine) Products() []domain.Product { return e.ds.Products() }

func (e *Engine) Routes() []domain.Route { return e.ds.Routes() }

func (e *Engine) Salesmen() []domain.Salesman { return e.ds.Salesmen() }

// Customers lists catalog customers, honouring route and channel filters.
func (e *Engine) Customers(f domain.Filter) []domain.Customer {
	out := []domain.Customer{}
	for _, c := range e.ds.Customers() {
		if matchesCustomer(f, c) {
			out = append(out, c)
		}
	}
	return out
}

func (e *Engine) Users() []domain.User { return e.ds.Users() }

func (e *Engine) Holidays() []domain.Holiday { return e.ds.Holidays() }
