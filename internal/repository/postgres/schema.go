package postgres

import (
	"context"
	"fmt"
)

// snapshotTables is every table a snapshot load replaces.
var snapshotTables = []string{
	"transaction_items", "transactions", "daily_sales", "stock_movements", "visits", "journeys",
	"targets", "attendance", "leave_balances", "holidays", "customers", "salesmen", "routes",
	"products", "users", "dataset_snapshots",
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS dataset_snapshots (
	id             TEXT PRIMARY KEY,
	seed           BIGINT NOT NULL,
	reference_date DATE NOT NULL,
	days           INT NOT NULL,
	generated_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	item_code         TEXT PRIMARY KEY,
	item_name         TEXT NOT NULL,
	category          TEXT NOT NULL,
	brand             TEXT NOT NULL,
	base_price        NUMERIC(12,2) NOT NULL,
	uom               TEXT NOT NULL,
	conversion_factor NUMERIC(10,2) NOT NULL,
	tax_percentage    NUMERIC(5,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS routes (
	route_code  TEXT PRIMARY KEY,
	route_name  TEXT NOT NULL,
	region_code TEXT NOT NULL,
	region_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS salesmen (
	user_code  TEXT PRIMARY KEY,
	user_name  TEXT NOT NULL,
	route_code TEXT NOT NULL,
	mobile     TEXT,
	email      TEXT
);

CREATE TABLE IF NOT EXISTS customers (
	customer_code      TEXT PRIMARY KEY,
	customer_name      TEXT NOT NULL,
	route_code         TEXT NOT NULL,
	route_name         TEXT,
	channel_code       TEXT NOT NULL,
	channel_name       TEXT,
	credit_limit       NUMERIC(12,2) NOT NULL,
	outstanding_amount NUMERIC(12,2) NOT NULL,
	latitude           DOUBLE PRECISION,
	longitude          DOUBLE PRECISION,
	status             TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	user_code  TEXT PRIMARY KEY,
	user_name  TEXT NOT NULL,
	role       TEXT NOT NULL,
	department TEXT NOT NULL,
	email      TEXT,
	mobile     TEXT,
	join_date  DATE,
	is_active  BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS holidays (
	holiday_date DATE PRIMARY KEY,
	name         TEXT NOT NULL,
	holiday_type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	trx_code         TEXT PRIMARY KEY,
	trx_date         TIMESTAMPTZ NOT NULL,
	trx_type         TEXT NOT NULL,
	customer_code    TEXT NOT NULL,
	user_code        TEXT NOT NULL,
	route_code       TEXT NOT NULL,
	region_code      TEXT,
	channel_code     TEXT,
	journey_code     TEXT,
	visit_code       TEXT,
	payment_type     TEXT NOT NULL,
	subtotal         NUMERIC(12,2) NOT NULL,
	discount_percent NUMERIC(5,2) NOT NULL,
	discount_amount  NUMERIC(12,2) NOT NULL,
	tax_amount       NUMERIC(12,2) NOT NULL,
	total_amount     NUMERIC(12,2) NOT NULL,
	is_van_sales     BOOLEAN NOT NULL,
	status           INT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (trx_date);
CREATE INDEX IF NOT EXISTS idx_transactions_customer ON transactions (customer_code);

CREATE TABLE IF NOT EXISTS transaction_items (
	trx_code     TEXT NOT NULL,
	line_no      INT NOT NULL,
	item_code    TEXT NOT NULL,
	quantity     INT NOT NULL,
	unit_price   NUMERIC(12,2) NOT NULL,
	total_amount NUMERIC(12,2) NOT NULL,
	PRIMARY KEY (trx_code, line_no)
);

CREATE TABLE IF NOT EXISTS daily_sales (
	sales_date         DATE PRIMARY KEY,
	total_sales        NUMERIC(14,2) NOT NULL,
	total_returns      NUMERIC(14,2) NOT NULL,
	net_sales          NUMERIC(14,2) NOT NULL,
	total_transactions INT NOT NULL,
	return_count       INT NOT NULL,
	total_customers    INT NOT NULL
);

CREATE TABLE IF NOT EXISTS stock_movements (
	movement_code TEXT PRIMARY KEY,
	movement_date TIMESTAMPTZ NOT NULL,
	item_code     TEXT NOT NULL,
	quantity      INT NOT NULL,
	is_return     BOOLEAN NOT NULL,
	is_wastage    BOOLEAN NOT NULL,
	value         NUMERIC(12,2) NOT NULL,
	reason        TEXT NOT NULL,
	trx_code      TEXT,
	customer_code TEXT,
	user_code     TEXT,
	route_code    TEXT
);

CREATE TABLE IF NOT EXISTS journeys (
	journey_code      TEXT PRIMARY KEY,
	journey_date      DATE NOT NULL,
	user_code         TEXT NOT NULL,
	route_code        TEXT NOT NULL,
	start_time        TIMESTAMPTZ NOT NULL,
	end_time          TIMESTAMPTZ NOT NULL,
	start_odometer    INT NOT NULL,
	end_odometer      INT NOT NULL,
	planned_visits    INT NOT NULL,
	productive_visits INT NOT NULL,
	total_sales       NUMERIC(12,2) NOT NULL,
	status            TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS visits (
	visit_code       TEXT PRIMARY KEY,
	journey_code     TEXT NOT NULL,
	user_code        TEXT NOT NULL,
	customer_code    TEXT NOT NULL,
	check_in         TIMESTAMPTZ NOT NULL,
	check_out        TIMESTAMPTZ NOT NULL,
	duration_minutes INT NOT NULL,
	visit_type       INT NOT NULL,
	is_productive    BOOLEAN NOT NULL,
	sales_amount     NUMERIC(12,2) NOT NULL,
	latitude         DOUBLE PRECISION,
	longitude        DOUBLE PRECISION
);

CREATE TABLE IF NOT EXISTS targets (
	target_code     TEXT PRIMARY KEY,
	user_code       TEXT NOT NULL,
	period_type     TEXT NOT NULL,
	start_date      DATE NOT NULL,
	end_date        DATE NOT NULL,
	target_amount   NUMERIC(14,2) NOT NULL,
	achieved_amount NUMERIC(14,2) NOT NULL,
	achievement_pct NUMERIC(7,2) NOT NULL,
	status          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS attendance (
	attendance_id      TEXT PRIMARY KEY,
	user_code          TEXT NOT NULL,
	attendance_date    DATE NOT NULL,
	status             TEXT NOT NULL,
	check_in           TIMESTAMPTZ,
	check_out          TIMESTAMPTZ,
	working_hours      NUMERIC(6,2) NOT NULL,
	field_hours        NUMERIC(6,2) NOT NULL,
	office_hours       NUMERIC(6,2) NOT NULL,
	travel_hours       NUMERIC(6,2) NOT NULL,
	break_hours        NUMERIC(6,2) NOT NULL,
	productive_hours   NUMERIC(6,2) NOT NULL,
	idle_hours         NUMERIC(6,2) NOT NULL,
	overtime_hours     NUMERIC(6,2) NOT NULL,
	customer_visits    INT NOT NULL,
	sales_calls        INT NOT NULL,
	distance_km        NUMERIC(8,2) NOT NULL,
	fuel_liters        NUMERIC(8,2) NOT NULL,
	sales_amount       NUMERIC(12,2) NOT NULL,
	target_achievement NUMERIC(7,2) NOT NULL,
	efficiency         NUMERIC(7,2) NOT NULL,
	is_late            BOOLEAN NOT NULL,
	is_early_checkout  BOOLEAN NOT NULL,
	location           TEXT,
	remarks            TEXT
);
CREATE INDEX IF NOT EXISTS idx_attendance_user_date ON attendance (user_code, attendance_date);

CREATE TABLE IF NOT EXISTS leave_balances (
	user_code  TEXT NOT NULL,
	leave_type TEXT NOT NULL,
	total      INT NOT NULL,
	used       INT NOT NULL,
	balance    INT NOT NULL,
	PRIMARY KEY (user_code, leave_type)
);
`

// EnsureSchema creates the snapshot tables when they are missing.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
