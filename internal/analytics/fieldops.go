package analytics

import (
	"cmp"
	"slices"

	"github.com/andresuchdata/salesops-analytics/internal/daterange"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
)

func (e *Engine) journeysIn(r daterange.Range, f domain.Filter) []domain.Journey {
	out := []domain.Journey{}
	for _, j := range e.ds.Journeys() {
		if !r.Contains(j.JourneyDate) {
			continue
		}
		if f.UserCode != "" && j.UserCode != f.UserCode {
			continue
		}
		if f.RouteCode != "" && j.RouteCode != f.RouteCode {
			continue
		}
		out = append(out, j)
	}
	return out
}

// FieldOperationsAnalytics measures journeys in the period and the visits made on them.
func (e *Engine) FieldOperationsAnalytics(f domain.Filter) domain.FieldOperationsAnalytics {
	journeys := e.journeysIn(e.scope(f), f)

	codes := make(map[string]struct{}, len(journeys))
	res := domain.FieldOperationsAnalytics{TotalJourneys: len(journeys)}
	for _, j := range journeys {
		codes[j.JourneyCode] = struct{}{}
		res.TotalJourneySales += j.TotalSales
		res.TotalDistanceKm += j.DistanceKm()
	}

	visits := []domain.Visit{}
	var minutes int
	for _, v := range e.ds.Visits() {
		if _, ok := codes[v.JourneyCode]; !ok {
			continue
		}
		visits = append(visits, v)
		minutes += v.DurationMinutes
		if v.IsProductive {
			res.ProductiveVisits++
		}
	}

	res.TotalVisits = len(visits)
	res.ProductivityRate = round2(safeDiv(float64(res.ProductiveVisits), float64(res.TotalVisits)) * 100)
	res.AvgSalesPerJourney = round2(safeDiv(res.TotalJourneySales, float64(res.TotalJourneys)))
	res.TotalJourneySales = round2(res.TotalJourneySales)
	res.AvgVisitMinutes = round2(safeDiv(float64(minutes), float64(res.TotalVisits)))
	res.Journeys = truncate(journeys, fieldOpsJourneyLimit)
	res.Visits = truncate(visits, fieldOpsVisitLimit)
	return res
}

// Journeys lists matching journeys, newest first.
func (e *Engine) Journeys(f domain.Filter) []domain.Journey {
	out := e.journeysIn(e.scope(f), f)
	slices.SortStableFunc(out, func(a, b domain.Journey) int { return b.JourneyDate.Compare(a.JourneyDate) })
	if f.Limit > 0 {
		out = truncate(out, f.Limit)
	}
	return out
}

// Visits filters by journey, customer and salesman. A period only applies when named.
func (e *Engine) Visits(f domain.Filter) []domain.Visit {
	var r *daterange.Range
	if f.HasPeriod() {
		resolved := e.resolve(f)
		r = &resolved
	}

	out := []domain.Visit{}
	for _, v := range e.ds.Visits() {
		if f.JourneyCode != "" && v.JourneyCode != f.JourneyCode {
			continue
		}
		if f.CustomerCode != "" && v.CustomerCode != f.CustomerCode {
			continue
		}
		if f.UserCode != "" && v.UserCode != f.UserCode {
			continue
		}
		if r != nil && !r.Contains(v.CheckIn) {
			continue
		}
		out = append(out, v)
	}
	if f.Limit > 0 {
		out = truncate(out, f.Limit)
	}
	return out
}

// ReturnsWastage lists stock movements newest first with value totals by reason.
// MovementType narrows to "returns" or "wastage".
func (e *Engine) ReturnsWastage(f domain.Filter) domain.ReturnsWastage {
	r := e.scope(f)

	res := domain.ReturnsWastage{ByReason: []domain.ReasonBreakdown{}, Movements: []domain.StockMovement{}}
	index := make(map[string]int)
	for _, m := range e.ds.StockMovements() {
		if !r.Contains(m.MovementDate) {
			continue
		}
		switch f.MovementType {
		case domain.MovementReturn:
			if !m.IsReturn {
				continue
			}
		case domain.MovementWastage:
			if !m.IsWastage {
				continue
			}
		}
		if f.RouteCode != "" && m.RouteCode != f.RouteCode {
			continue
		}
		if f.CustomerCode != "" && m.CustomerCode != f.CustomerCode {
			continue
		}

		if m.IsReturn {
			res.TotalReturnValue += m.Value
			res.ReturnQuantity += -m.Quantity
		} else {
			res.TotalWastageValue += m.Value
			res.WastageQuantity += -m.Quantity
		}

		i, ok := index[m.Reason]
		if !ok {
			i = len(res.ByReason)
			index[m.Reason] = i
			res.ByReason = append(res.ByReason, domain.ReasonBreakdown{Reason: m.Reason})
		}
		res.ByReason[i].Count++
		res.ByReason[i].Quantity += -m.Quantity
		res.ByReason[i].Value += m.Value

		res.Movements = append(res.Movements, m)
	}

	res.TotalReturnValue = round2(res.TotalReturnValue)
	res.TotalWastageValue = round2(res.TotalWastageValue)
	for i := range res.ByReason {
		res.ByReason[i].Value = round2(res.ByReason[i].Value)
	}
	slices.SortStableFunc(res.ByReason, func(a, b domain.ReasonBreakdown) int { return cmp.Compare(b.Value, a.Value) })
	slices.SortStableFunc(res.Movements, func(a, b domain.StockMovement) int { return b.MovementDate.Compare(a.MovementDate) })
	if f.Limit > 0 {
		res.Movements = truncate(res.Movements, f.Limit)
	}
	return res
}

// Targets lists monthly targets, optionally for one salesman or status tier.
func (e *Engine) Targets(f domain.Filter) []domain.Target {
	out := []domain.Target{}
	for _, t := range e.ds.Targets() {
		if f.UserCode != "" && t.UserCode != f.UserCode {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		out = append(out, t)
	}
	return out
}
