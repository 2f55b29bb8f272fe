package service

import (
	"context"
	"fmt"

	"github.com/andresuchdata/salesops-analytics/internal/analytics"
	"github.com/andresuchdata/salesops-analytics/internal/cache"
	"github.com/andresuchdata/salesops-analytics/internal/dataset"
	"github.com/andresuchdata/salesops-analytics/internal/daterange"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const overviewTopLimit = 5

// DashboardService is the single entry point for dashboard queries. Every
// method reads the provider's current snapshot, so a regeneration is picked up
// by the next call without restarting.
type DashboardService struct {
	provider *dataset.Provider
	cache    cache.DashboardCache
}

func NewDashboardService(provider *dataset.Provider, cacheImpl cache.DashboardCache) *DashboardService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopDashboardCache()
	}
	return &DashboardService{provider: provider, cache: cacheImpl}
}

func (s *DashboardService) engine(ctx context.Context) (*analytics.Engine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return analytics.New(s.provider.Get()), nil
}

// query runs fn against the current snapshot unless ctx is already done.
func query[T any](ctx context.Context, s *DashboardService, fn func(*analytics.Engine) T) (T, error) {
	e, err := s.engine(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(e), nil
}

func (s *DashboardService) GetKPISummary(ctx context.Context, filter domain.Filter) (*domain.KPISummary, error) {
	e, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}
	id := e.Dataset().ID()

	if kpi, ok, err := s.cache.GetKPI(ctx, id, filter); err == nil && ok {
		return kpi, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("dashboard: cache get kpi failed")
	}

	kpi := e.KPISummary(filter)
	if err := s.cache.SetKPI(ctx, id, filter, &kpi); err != nil {
		log.Warn().Err(err).Msg("dashboard: cache set kpi failed")
	}
	return &kpi, nil
}

func (s *DashboardService) GetSalesTrend(ctx context.Context, filter domain.Filter) ([]domain.TrendPoint, error) {
	e, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}
	id := e.Dataset().ID()

	if points, ok, err := s.cache.GetTrend(ctx, id, filter); err == nil && ok {
		return points, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("dashboard: cache get sales trend failed")
	}

	points := e.SalesTrend(filter)
	if err := s.cache.SetTrend(ctx, id, filter, points); err != nil {
		log.Warn().Err(err).Msg("dashboard: cache set sales trend failed")
	}
	return points, nil
}

func (s *DashboardService) GetTopCustomers(ctx context.Context, limit int, filter domain.Filter) ([]domain.TopCustomer, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.TopCustomer { return e.TopCustomers(limit, filter) })
}

func (s *DashboardService) GetTopProducts(ctx context.Context, limit int, filter domain.Filter) ([]domain.TopProduct, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.TopProduct { return e.TopProducts(limit, filter) })
}

// GetDashboard assembles the landing page payload, running its four queries concurrently.
func (s *DashboardService) GetDashboard(ctx context.Context, filter domain.Filter) (*domain.DashboardOverview, error) {
	var out domain.DashboardOverview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		kpi, err := s.GetKPISummary(gctx, filter)
		out.KPI = kpi
		return err
	})
	g.Go(func() error {
		trend, err := s.GetSalesTrend(gctx, filter)
		out.SalesTrend = trend
		return err
	})
	g.Go(func() error {
		customers, err := s.GetTopCustomers(gctx, overviewTopLimit, filter)
		out.TopCustomers = customers
		return err
	})
	g.Go(func() error {
		products, err := s.GetTopProducts(gctx, overviewTopLimit, filter)
		out.TopProducts = products
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build dashboard: %w", err)
	}
	return &out, nil
}

func (s *DashboardService) GetTransactions(ctx context.Context, filter domain.Filter) ([]domain.Transaction, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.Transaction { return e.Transactions(filter) })
}

func (s *DashboardService) GetDailySales(ctx context.Context, filter domain.Filter) ([]domain.DailySales, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.DailySales { return e.DailySales(filter) })
}

func (s *DashboardService) GetSalesPerformance(ctx context.Context, filter domain.Filter) ([]domain.SalesPerformance, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.SalesPerformance { return e.SalesPerformance(filter) })
}

func (s *DashboardService) GetSalesAnalysis(ctx context.Context, filter domain.Filter) (domain.SalesAnalysis, error) {
	return query(ctx, s, func(e *analytics.Engine) domain.SalesAnalysis { return e.SalesAnalysis(filter) })
}

func (s *DashboardService) GetPaymentAnalysis(ctx context.Context, filter domain.Filter) ([]domain.PaymentSummary, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.PaymentSummary { return e.PaymentAnalysis(filter) })
}

func (s *DashboardService) GetVanSales(ctx context.Context, filter domain.Filter) (domain.VanSalesSummary, error) {
	return query(ctx, s, func(e *analytics.Engine) domain.VanSalesSummary { return e.VanSales(filter) })
}

func (s *DashboardService) GetCollectionsFinance(ctx context.Context, filter domain.Filter) (domain.CollectionsFinance, error) {
	return query(ctx, s, func(e *analytics.Engine) domain.CollectionsFinance { return e.CollectionsFinance(filter) })
}

func (s *DashboardService) GetCustomerAnalytics(ctx context.Context, filter domain.Filter) ([]domain.CustomerAnalytics, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.CustomerAnalytics { return e.CustomerAnalytics(filter) })
}

func (s *DashboardService) GetProductAnalytics(ctx context.Context, filter domain.Filter) ([]domain.ProductAnalytics, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.ProductAnalytics { return e.ProductAnalytics(filter) })
}

func (s *DashboardService) GetCategoryPerformance(ctx context.Context, filter domain.Filter) ([]domain.CategoryPerformance, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.CategoryPerformance { return e.CategoryPerformance(filter) })
}

func (s *DashboardService) GetFieldOperations(ctx context.Context, filter domain.Filter) (domain.FieldOperationsAnalytics, error) {
	return query(ctx, s, func(e *analytics.Engine) domain.FieldOperationsAnalytics { return e.FieldOperationsAnalytics(filter) })
}

func (s *DashboardService) GetJourneys(ctx context.Context, filter domain.Filter) ([]domain.Journey, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.Journey { return e.Journeys(filter) })
}

func (s *DashboardService) GetVisits(ctx context.Context, filter domain.Filter) ([]domain.Visit, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.Visit { return e.Visits(filter) })
}

func (s *DashboardService) GetReturnsWastage(ctx context.Context, filter domain.Filter) (domain.ReturnsWastage, error) {
	return query(ctx, s, func(e *analytics.Engine) domain.ReturnsWastage { return e.ReturnsWastage(filter) })
}

func (s *DashboardService) GetTargets(ctx context.Context, filter domain.Filter) ([]domain.Target, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.Target { return e.Targets(filter) })
}

func (s *DashboardService) GetProducts(ctx context.Context) ([]domain.Product, error) {
	return query(ctx, s, (*analytics.Engine).Products)
}

func (s *DashboardService) GetRoutes(ctx context.Context) ([]domain.Route, error) {
	return query(ctx, s, (*analytics.Engine).Routes)
}

func (s *DashboardService) GetSalesmen(ctx context.Context) ([]domain.Salesman, error) {
	return query(ctx, s, (*analytics.Engine).Salesmen)
}

func (s *DashboardService) GetCustomers(ctx context.Context, filter domain.Filter) ([]domain.Customer, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.Customer { return e.Customers(filter) })
}

func (s *DashboardService) GetUsers(ctx context.Context) ([]domain.User, error) {
	return query(ctx, s, (*analytics.Engine).Users)
}

func (s *DashboardService) GetHolidays(ctx context.Context) ([]domain.Holiday, error) {
	return query(ctx, s, (*analytics.Engine).Holidays)
}

// GetDateRanges resolves every supported token against the snapshot reference date.
func (s *DashboardService) GetDateRanges(ctx context.Context) (map[string]daterange.Range, error) {
	return query(ctx, s, func(e *analytics.Engine) map[string]daterange.Range {
		ref := e.Dataset().ReferenceDate()
		out := make(map[string]daterange.Range, len(daterange.Tokens()))
		for _, token := range daterange.Tokens() {
			out[token] = daterange.Resolve(token, ref)
		}
		return out
	})
}

func (s *DashboardService) GetAttendance(ctx context.Context, filter domain.Filter) ([]domain.Attendance, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.Attendance { return e.Attendance(filter) })
}

func (s *DashboardService) GetAttendanceAnalytics(ctx context.Context, filter domain.Filter) ([]domain.UserAttendanceAnalytics, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.UserAttendanceAnalytics { return e.AttendanceAnalytics(filter) })
}

func (s *DashboardService) GetUserAttendanceSummary(ctx context.Context, userCode string, filter domain.Filter) (domain.AttendanceSummary, error) {
	return query(ctx, s, func(e *analytics.Engine) domain.AttendanceSummary { return e.UserAttendanceSummary(userCode, filter) })
}

func (s *DashboardService) GetWeeklyAttendance(ctx context.Context, filter domain.Filter) ([]domain.AttendanceRollup, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.AttendanceRollup { return e.WeeklyAttendance(filter) })
}

func (s *DashboardService) GetMonthlyAttendance(ctx context.Context, filter domain.Filter) ([]domain.AttendanceRollup, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.AttendanceRollup { return e.MonthlyAttendance(filter) })
}

func (s *DashboardService) GetLeaveBalances(ctx context.Context, filter domain.Filter) ([]domain.LeaveBalance, error) {
	return query(ctx, s, func(e *analytics.Engine) []domain.LeaveBalance { return e.LeaveBalances(filter) })
}

func (s *DashboardService) DatasetInfo(ctx context.Context) (domain.DatasetInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.DatasetInfo{}, err
	}
	return describe(s.provider.Get()), nil
}

// RegenerateDataset swaps in a snapshot built from seed and drops cached answers
// computed from the previous one.
func (s *DashboardService) RegenerateDataset(ctx context.Context, seed uint64) (domain.DatasetInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.DatasetInfo{}, err
	}

	ds := s.provider.Regenerate(seed)
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("dashboard: cache invalidation after regenerate failed")
	}
	return describe(ds), nil
}

func describe(ds *dataset.Dataset) domain.DatasetInfo {
	return domain.DatasetInfo{
		ID:            ds.ID(),
		Seed:          ds.Seed(),
		ReferenceDate: ds.ReferenceDate(),
		Days:          ds.Days(),
		GeneratedAt:   ds.GeneratedAt(),
		Counts:        ds.Counts(),
	}
}
