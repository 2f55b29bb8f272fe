package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/andresuchdata/salesops-analytics/internal/dataset"
	"github.com/andresuchdata/salesops-analytics/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository writes catalogs through sqlx named inserts and bulk-loads
// fact tables with COPY over a dedicated pgx connection.
type SnapshotRepository struct {
	db *DB
}

func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) EnsureSchema(ctx context.Context) error {
	return r.db.EnsureSchema(ctx)
}

type catalogInsert struct {
	table string
	query string
	rows  func(ds *dataset.Dataset) any
	count func(ds *dataset.Dataset) int
}

var catalogInserts = []catalogInsert{
	{
		table: "products",
		query: `INSERT INTO products (item_code, item_name, category, brand, base_price, uom, conversion_factor, tax_percentage)
			VALUES (:item_code, :item_name, :category, :brand, :base_price, :uom, :conversion_factor, :tax_percentage)`,
		rows:  func(ds *dataset.Dataset) any { return ds.Products() },
		count: func(ds *dataset.Dataset) int { return len(ds.Products()) },
	},
	{
		table: "routes",
		query: `INSERT INTO routes (route_code, route_name, region_code, region_name)
			VALUES (:route_code, :route_name, :region_code, :region_name)`,
		rows:  func(ds *dataset.Dataset) any { return ds.Routes() },
		count: func(ds *dataset.Dataset) int { return len(ds.Routes()) },
	},
	{
		table: "salesmen",
		query: `INSERT INTO salesmen (user_code, user_name, route_code, mobile, email)
			VALUES (:user_code, :user_name, :route_code, :mobile, :email)`,
		rows:  func(ds *dataset.Dataset) any { return ds.Salesmen() },
		count: func(ds *dataset.Dataset) int { return len(ds.Salesmen()) },
	},
	{
		table: "customers",
		query: `INSERT INTO customers (customer_code, customer_name, route_code, route_name, channel_code, channel_name,
				credit_limit, outstanding_amount, latitude, longitude, status)
			VALUES (:customer_code, :customer_name, :route_code, :route_name, :channel_code, :channel_name,
				:credit_limit, :outstanding_amount, :latitude, :longitude, :status)`,
		rows:  func(ds *dataset.Dataset) any { return ds.Customers() },
		count: func(ds *dataset.Dataset) int { return len(ds.Customers()) },
	},
	{
		table: "users",
		query: `INSERT INTO users (user_code, user_name, role, department, email, mobile, join_date, is_active)
			VALUES (:user_code, :user_name, :role, :department, :email, :mobile, :join_date, :is_active)`,
		rows:  func(ds *dataset.Dataset) any { return ds.Users() },
		count: func(ds *dataset.Dataset) int { return len(ds.Users()) },
	},
	{
		table: "holidays",
		query: `INSERT INTO holidays (holiday_date, name, holiday_type) VALUES (:holiday_date, :name, :holiday_type)`,
		rows:  func(ds *dataset.Dataset) any { return ds.Holidays() },
		count: func(ds *dataset.Dataset) int { return len(ds.Holidays()) },
	},
}

// SaveSnapshot truncates every snapshot table, then writes ds. Catalogs commit
// before facts are copied; a failed copy leaves catalogs without facts.
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, ds *dataset.Dataset) (map[string]int64, error) {
	written := make(map[string]int64, len(snapshotTables))

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "TRUNCATE "+strings.Join(snapshotTables, ", ")); err != nil {
			return fmt.Errorf("truncate snapshot tables: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO dataset_snapshots (id, seed, reference_date, days, generated_at) VALUES ($1, $2, $3, $4, $5)`,
			ds.ID(), int64(ds.Seed()), ds.ReferenceDate(), ds.Days(), ds.GeneratedAt(),
		); err != nil {
			return fmt.Errorf("insert snapshot header: %w", err)
		}

		for _, c := range catalogInserts {
			n := c.count(ds)
			if n == 0 {
				continue
			}
			if _, err := tx.NamedExecContext(ctx, c.query, c.rows(ds)); err != nil {
				return fmt.Errorf("insert %s: %w", c.table, err)
			}
			written[c.table] = int64(n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := r.copyFacts(ctx, ds, written); err != nil {
		return nil, err
	}

	log.Info().
		Str("dataset_id", ds.ID()).
		Interface("rows", written).
		Msg("snapshot saved to postgres")
	return written, nil
}

func (r *SnapshotRepository) copyFacts(ctx context.Context, ds *dataset.Dataset, written map[string]int64) error {
	conn, err := pgx.Connect(ctx, r.db.dsn)
	if err != nil {
		return fmt.Errorf("open pgx connection: %w", err)
	}
	defer conn.Close(ctx)

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin copy transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, t := range factTables {
		rows := t.rows(ds)
		if len(rows) == 0 {
			continue
		}
		n, err := tx.CopyFrom(ctx, pgx.Identifier{t.table}, t.columns, pgx.CopyFromRows(rows))
		if err != nil {
			return fmt.Errorf("copy %s: %w", t.table, err)
		}
		written[t.table] = n
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit copy transaction: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) TableCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(snapshotTables))
	for _, table := range snapshotTables {
		var n int64
		if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM "+table); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

func (r *SnapshotRepository) LoadCatalogs(ctx context.Context) (dataset.Records, error) {
	var rec dataset.Records

	queries := []struct {
		dest  any
		query string
	}{
		{&rec.Products, `SELECT * FROM products ORDER BY item_code`},
		{&rec.Routes, `SELECT * FROM routes ORDER BY route_code`},
		{&rec.Salesmen, `SELECT * FROM salesmen ORDER BY user_code`},
		{&rec.Customers, `SELECT * FROM customers ORDER BY customer_code`},
		{&rec.Users, `SELECT * FROM users ORDER BY user_code`},
		{&rec.Holidays, `SELECT * FROM holidays ORDER BY holiday_date`},
	}
	for _, q := range queries {
		if err := r.db.SelectContext(ctx, q.dest, q.query); err != nil {
			return dataset.Records{}, fmt.Errorf("load catalogs: %w", err)
		}
	}
	return rec, nil
}

type factTable struct {
	table   string
	columns []string
	rows    func(ds *dataset.Dataset) [][]any
}

var factTables = []factTable{
	{
		table: "transactions",
		columns: []string{
			"trx_code", "trx_date", "trx_type", "customer_code", "user_code", "route_code", "region_code",
			"channel_code", "journey_code", "visit_code", "payment_type", "subtotal", "discount_percent",
			"discount_amount", "tax_amount", "total_amount", "is_van_sales", "status",
		},
		rows: func(ds *dataset.Dataset) [][]any {
			txns := ds.Transactions()
			out := make([][]any, 0, len(txns))
			for _, t := range txns {
				out = append(out, []any{
					t.TrxCode, t.TrxDate, string(t.TrxType), t.CustomerCode, t.UserCode, t.RouteCode, t.RegionCode,
					t.ChannelCode, t.JourneyCode, t.VisitCode, string(t.PaymentType), t.Subtotal, t.DiscountPercent,
					t.DiscountAmount, t.TaxAmount, t.TotalAmount, t.IsVanSales, int32(t.Status),
				})
			}
			return out
		},
	},
	{
		table:   "transaction_items",
		columns: []string{"trx_code", "line_no", "item_code", "quantity", "unit_price", "total_amount"},
		rows: func(ds *dataset.Dataset) [][]any {
			var out [][]any
			for _, t := range ds.Transactions() {
				for _, item := range t.Items {
					out = append(out, []any{t.TrxCode, int32(item.LineNo), item.ItemCode, int32(item.Quantity), item.UnitPrice, item.TotalAmount})
				}
			}
			return out
		},
	},
	{
		table:   "daily_sales",
		columns: []string{"sales_date", "total_sales", "total_returns", "net_sales", "total_transactions", "return_count", "total_customers"},
		rows: func(ds *dataset.Dataset) [][]any {
			var out [][]any
			for _, d := range ds.DailySales() {
				out = append(out, []any{d.Date, d.TotalSales, d.TotalReturns, d.NetSales, int32(d.TotalTransactions), int32(d.ReturnCount), int32(d.TotalCustomers)})
			}
			return out
		},
	},
	{
		table: "stock_movements",
		columns: []string{
			"movement_code", "movement_date", "item_code", "quantity", "is_return", "is_wastage", "value",
			"reason", "trx_code", "customer_code", "user_code", "route_code",
		},
		rows: func(ds *dataset.Dataset) [][]any {
			var out [][]any
			for _, m := range ds.StockMovements() {
				out = append(out, []any{
					m.MovementCode, m.MovementDate, m.ItemCode, int32(m.Quantity), m.IsReturn, m.IsWastage, m.Value,
					m.Reason, nullable(m.TrxCode), nullable(m.CustomerCode), nullable(m.UserCode), nullable(m.RouteCode),
				})
			}
			return out
		},
	},
	{
		table: "journeys",
		columns: []string{
			"journey_code", "journey_date", "user_code", "route_code", "start_time", "end_time", "start_odometer",
			"end_odometer", "planned_visits", "productive_visits", "total_sales", "status",
		},
		rows: func(ds *dataset.Dataset) [][]any {
			var out [][]any
			for _, j := range ds.Journeys() {
				out = append(out, []any{
					j.JourneyCode, j.JourneyDate, j.UserCode, j.RouteCode, j.StartTime, j.EndTime, int32(j.StartOdometer),
					int32(j.EndOdometer), int32(j.PlannedVisits), int32(j.ProductiveVisits), j.TotalSales, j.Status,
				})
			}
			return out
		},
	},
	{
		table: "visits",
		columns: []string{
			"visit_code", "journey_code", "user_code", "customer_code", "check_in", "check_out", "duration_minutes",
			"visit_type", "is_productive", "sales_amount", "latitude", "longitude",
		},
		rows: func(ds *dataset.Dataset) [][]any {
			var out [][]any
			for _, v := range ds.Visits() {
				out = append(out, []any{
					v.VisitCode, v.JourneyCode, v.UserCode, v.CustomerCode, v.CheckIn, v.CheckOut, int32(v.DurationMinutes),
					int32(v.VisitType), v.IsProductive, v.SalesAmount, v.Latitude, v.Longitude,
				})
			}
			return out
		},
	},
	{
		table: "targets",
		columns: []string{
			"target_code", "user_code", "period_type", "start_date", "end_date", "target_amount",
			"achieved_amount", "achievement_pct", "status",
		},
		rows: func(ds *dataset.Dataset) [][]any {
			var out [][]any
			for _, t := range ds.Targets() {
				out = append(out, []any{
					t.TargetCode, t.UserCode, t.PeriodType, t.StartDate, t.EndDate, t.TargetAmount,
					t.AchievedAmount, t.AchievementPct, t.Status,
				})
			}
			return out
		},
	},
	{
		table: "attendance",
		columns: []string{
			"attendance_id", "user_code", "attendance_date", "status", "check_in", "check_out", "working_hours",
			"field_hours", "office_hours", "travel_hours", "break_hours", "productive_hours", "idle_hours",
			"overtime_hours", "customer_visits", "sales_calls", "distance_km", "fuel_liters", "sales_amount",
			"target_achievement", "efficiency", "is_late", "is_early_checkout", "location", "remarks",
		},
		rows: func(ds *dataset.Dataset) [][]any {
			var out [][]any
			for _, a := range ds.Attendance() {
				out = append(out, []any{
					a.AttendanceID, a.UserCode, a.Date, a.Status, a.CheckIn, a.CheckOut, a.WorkingHours,
					a.FieldHours, a.OfficeHours, a.TravelHours, a.BreakHours, a.ProductiveHours, a.IdleHours,
					a.OvertimeHours, int32(a.CustomerVisits), int32(a.SalesCalls), a.DistanceKm, a.FuelLiters, a.SalesAmount,
					a.TargetAchievement, a.Efficiency, a.IsLate, a.IsEarlyCheckout, nullable(a.Location), nullable(a.Remarks),
				})
			}
			return out
		},
	},
	{
		table:   "leave_balances",
		columns: []string{"user_code", "leave_type", "total", "used", "balance"},
		rows: func(ds *dataset.Dataset) [][]any {
			var out [][]any
			for _, lb := range ds.LeaveBalances() {
				out = append(out, []any{lb.UserCode, lb.LeaveType, int32(lb.Total), int32(lb.Used), int32(lb.Balance)})
			}
			return out
		},
	},
}

// nullable maps empty optional codes to NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
