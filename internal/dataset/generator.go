package dataset

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/daterange"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	DefaultDays = 90

	trxCounterStart     = 1000
	returnOdds          = 20
	vanSalesOdds        = 5
	wastageOdds         = 5
	maxDiscountPct      = 15
	journeyDaysOutOf7   = 5
	visitSpacing        = 30 * time.Minute
	targetMonths        = 3
	minProductiveVisits = 6
)

// Options controls a generation run. Rand, when set, takes precedence over Seed.
type Options struct {
	Seed          uint64
	Rand          *rand.Rand
	ReferenceDate time.Time
	Days          int
}

func (o Options) normalized() Options {
	if o.Days <= 0 {
		o.Days = DefaultDays
	}
	if o.ReferenceDate.IsZero() {
		o.ReferenceDate = time.Now()
	}
	if o.Rand == nil {
		o.Rand = NewRand(o.Seed)
	}
	return o
}

type generator struct {
	rnd  *rand.Rand
	ref  time.Time
	days int

	routes          map[string]domain.Route
	salesmanByRoute map[string]domain.Salesman
	customersRoute  map[string][]domain.Customer

	trxCounter int
	movCounter int
	// salesman code + ISO day -> SALE total
	daySales map[string]float64
}

// Generate builds a complete snapshot. It is a pure function of opts: the
// same seed, reference date and window always produce the same records.
func Generate(opts Options) *Dataset {
	opts = opts.normalized()
	ref := daterange.Day(opts.ReferenceDate)

	g := &generator{
		rnd:             opts.Rand,
		ref:             ref,
		days:            opts.Days,
		routes:          make(map[string]domain.Route),
		salesmanByRoute: make(map[string]domain.Salesman),
		customersRoute:  make(map[string][]domain.Customer),
		trxCounter:      trxCounterStart,
		daySales:        make(map[string]float64),
	}

	r := Records{
		Products:  Products(),
		Routes:    Routes(),
		Salesmen:  Salesmen(),
		Customers: Customers(),
		Users:     Users(),
		Holidays:  Holidays(ref.Location()),
	}
	g.index(r)

	r.Transactions, r.StockMovements = g.transactions(r)
	r.Journeys, r.Visits = g.journeys(r)
	r.Targets = g.targets(r)
	r.Attendance = g.attendance(r)

	ds := FromRecords(ref, opts.Days, r)
	ds.id = uuid.NewString()
	ds.seed = opts.Seed

	log.Debug().
		Str("dataset_id", ds.id).
		Uint64("seed", opts.Seed).
		Str("reference_date", daterange.ISODate(ref)).
		Int("transactions", len(r.Transactions)).
		Int("journeys", len(r.Journeys)).
		Msg("dataset generated")

	return ds
}

func (g *generator) index(r Records) {
	for _, rt := range r.Routes {
		g.routes[rt.RouteCode] = rt
	}
	for _, s := range r.Salesmen {
		g.salesmanByRoute[s.RouteCode] = s
	}
	for _, c := range r.Customers {
		g.customersRoute[c.RouteCode] = append(g.customersRoute[c.RouteCode], c)
	}
}

// dayAt returns the simulated day that is back days before the reference date.
func (g *generator) dayAt(back int) time.Time {
	return g.ref.AddDate(0, 0, -back)
}

func (g *generator) transactions(r Records) ([]domain.Transaction, []domain.StockMovement) {
	var (
		txns      []domain.Transaction
		movements []domain.StockMovement
	)

	for back := g.days - 1; back >= 0; back-- {
		day := g.dayAt(back)
		count := between(g.rnd, 15, 35)
		for range count {
			t := g.transaction(r, day, back)
			txns = append(txns, t)
			if t.IsReturn() {
				movements = append(movements, g.returnMovements(t)...)
			} else {
				g.daySales[t.UserCode+"|"+daterange.ISODate(day)] += t.TotalAmount
			}
		}

		if oneIn(g.rnd, wastageOdds) {
			movements = append(movements, g.wastage(r, day))
		}
	}

	return txns, movements
}

func (g *generator) transaction(r Records, day time.Time, back int) domain.Transaction {
	cust := pick(g.rnd, r.Customers)
	route := g.routes[cust.RouteCode]
	sm := g.salesmanByRoute[cust.RouteCode]

	at := day.Add(time.Duration(between(g.rnd, 8, 19))*time.Hour + time.Duration(between(g.rnd, 0, 59))*time.Minute)
	numItems := between(g.rnd, 2, 8)
	isReturn := oneIn(g.rnd, returnOdds)
	payment := domain.PaymentTypes[between(g.rnd, 0, len(domain.PaymentTypes)-1)]

	items := make([]domain.LineItem, 0, numItems)
	var subtotal float64
	for i := range numItems {
		p := pick(g.rnd, r.Products)
		qty := between(g.rnd, 1, 10)
		total := p.BasePrice * float64(qty)
		subtotal += total
		items = append(items, domain.LineItem{
			LineNo:      i + 1,
			ItemCode:    p.ItemCode,
			ItemName:    p.ItemName,
			Category:    p.Category,
			Quantity:    qty,
			UnitPrice:   p.BasePrice,
			TotalAmount: total,
		})
	}

	discountPct := float64(between(g.rnd, 0, maxDiscountPct))
	discount := Round2(subtotal * discountPct / 100)
	taxable := subtotal - discount
	tax := Round2(taxable * taxRate / 100)
	final := Round2(taxable + tax)

	trxType := domain.TrxTypeSale
	if isReturn {
		trxType = domain.TrxTypeReturn
		final = -final
	}

	code := fmt.Sprintf("TRX%06d", g.trxCounter)
	g.trxCounter++

	return domain.Transaction{
		TrxCode:         code,
		TrxDate:         at,
		TrxType:         trxType,
		CustomerCode:    cust.CustomerCode,
		CustomerName:    cust.CustomerName,
		UserCode:        sm.UserCode,
		UserName:        sm.UserName,
		RouteCode:       route.RouteCode,
		RouteName:       route.RouteName,
		RegionCode:      route.RegionCode,
		ChannelCode:     cust.ChannelCode,
		JourneyCode:     journeyCode(back, sm.UserCode),
		VisitCode:       fmt.Sprintf("VST%03d%s", back, cust.CustomerCode),
		PaymentType:     payment,
		Subtotal:        subtotal,
		DiscountPercent: discountPct,
		DiscountAmount:  discount,
		TaxAmount:       tax,
		TotalAmount:     final,
		IsVanSales:      oneIn(g.rnd, vanSalesOdds),
		Status:          domain.TrxStatusCompleted,
		Items:           items,
	}
}

func journeyCode(back int, userCode string) string {
	return fmt.Sprintf("JRN%03d%s", back, userCode)
}

func (g *generator) nextMovementCode() string {
	g.movCounter++
	return fmt.Sprintf("MOV%06d", g.movCounter)
}

func (g *generator) returnMovements(t domain.Transaction) []domain.StockMovement {
	out := make([]domain.StockMovement, 0, len(t.Items))
	for _, item := range t.Items {
		out = append(out, domain.StockMovement{
			MovementCode: g.nextMovementCode(),
			MovementDate: t.TrxDate,
			ItemCode:     item.ItemCode,
			ItemName:     item.ItemName,
			Quantity:     -item.Quantity,
			IsReturn:     true,
			Value:        item.TotalAmount,
			Reason:       pick(g.rnd, returnReasons),
			TrxCode:      t.TrxCode,
			CustomerCode: t.CustomerCode,
			UserCode:     t.UserCode,
			RouteCode:    t.RouteCode,
		})
	}
	return out
}

func (g *generator) wastage(r Records, day time.Time) domain.StockMovement {
	p := pick(g.rnd, r.Products)
	qty := between(g.rnd, 1, 5)
	return domain.StockMovement{
		MovementCode: g.nextMovementCode(),
		MovementDate: day,
		ItemCode:     p.ItemCode,
		ItemName:     p.ItemName,
		Quantity:     -qty,
		IsWastage:    true,
		Value:        p.BasePrice * float64(qty),
		Reason:       pick(g.rnd, wastageReasons),
	}
}

func (g *generator) journeys(r Records) ([]domain.Journey, []domain.Visit) {
	var (
		journeys []domain.Journey
		visits   []domain.Visit
	)

	for back := g.days - 1; back >= 0; back-- {
		day := g.dayAt(back)
		for _, sm := range r.Salesmen {
			if between(g.rnd, 1, 7) > journeyDaysOutOf7 {
				continue
			}

			route := g.routes[sm.RouteCode]
			start := day.Add(time.Duration(between(g.rnd, 7, 9))*time.Hour + time.Duration(between(g.rnd, 0, 59))*time.Minute)
			end := day.Add(time.Duration(between(g.rnd, 16, 18))*time.Hour + time.Duration(between(g.rnd, 0, 59))*time.Minute)
			startOdo := between(g.rnd, 5000, 50000)
			endOdo := startOdo + between(g.rnd, 50, 250)
			planned := between(g.rnd, 8, 15)
			productive := between(g.rnd, min(minProductiveVisits, planned), planned)

			j := domain.Journey{
				JourneyCode:      journeyCode(back, sm.UserCode),
				JourneyDate:      day,
				UserCode:         sm.UserCode,
				UserName:         sm.UserName,
				RouteCode:        route.RouteCode,
				RouteName:        route.RouteName,
				StartTime:        start,
				EndTime:          end,
				StartOdometer:    startOdo,
				EndOdometer:      endOdo,
				PlannedVisits:    planned,
				ProductiveVisits: productive,
				TotalSales:       Round2(g.daySales[sm.UserCode+"|"+daterange.ISODate(day)]),
				Status:           domain.JourneyStatusCompleted,
			}
			journeys = append(journeys, j)
			visits = append(visits, g.visits(r, j)...)
		}
	}

	return journeys, visits
}

func (g *generator) visits(r Records, j domain.Journey) []domain.Visit {
	pool := g.customersRoute[j.RouteCode]
	if len(pool) == 0 {
		pool = r.Customers
	}

	out := make([]domain.Visit, 0, j.PlannedVisits)
	for i := range j.PlannedVisits {
		cust := pick(g.rnd, pool)
		checkIn := j.StartTime.Add(time.Duration(i) * visitSpacing)
		duration := between(g.rnd, 10, 45)
		productive := i < j.ProductiveVisits

		v := domain.Visit{
			VisitCode:       fmt.Sprintf("VST%s%02d", j.JourneyCode, i+1),
			JourneyCode:     j.JourneyCode,
			UserCode:        j.UserCode,
			CustomerCode:    cust.CustomerCode,
			CustomerName:    cust.CustomerName,
			CheckIn:         checkIn,
			CheckOut:        checkIn.Add(time.Duration(duration) * time.Minute),
			DurationMinutes: duration,
			VisitType:       domain.VisitTypeNonProductive,
			IsProductive:    productive,
			Latitude:        cust.Latitude,
			Longitude:       cust.Longitude,
		}
		if productive {
			v.VisitType = domain.VisitTypeProductive
			v.SalesAmount = float64(between(g.rnd, 500, 5000))
		}
		out = append(out, v)
	}
	return out
}

func (g *generator) targets(r Records) []domain.Target {
	monthly := make(map[string]float64)
	for _, t := range r.Transactions {
		if t.IsSale() {
			monthly[t.UserCode+"|"+t.TrxDate.Format("2006-01")] += t.TotalAmount
		}
	}

	out := make([]domain.Target, 0, len(r.Salesmen)*targetMonths)
	for _, sm := range r.Salesmen {
		for m := range targetMonths {
			start := daterange.MonthStart(g.ref).AddDate(0, -m, 0)
			amount := float64(between(g.rnd, 80000, 150000))
			achieved := Round2(monthly[sm.UserCode+"|"+start.Format("2006-01")])
			pct := Round2(achieved / amount * 100)

			out = append(out, domain.Target{
				TargetCode:     fmt.Sprintf("TGT%s%02d", sm.UserCode, int(start.Month())),
				UserCode:       sm.UserCode,
				UserName:       sm.UserName,
				PeriodType:     "Monthly",
				StartDate:      start,
				EndDate:        daterange.MonthEnd(start),
				TargetAmount:   amount,
				AchievedAmount: achieved,
				AchievementPct: pct,
				Status:         domain.TargetStatusFor(pct),
			})
		}
	}
	return out
}
