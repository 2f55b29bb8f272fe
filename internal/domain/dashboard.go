package domain

import "time"

// PeriodMetrics holds the sales totals of one period.
type PeriodMetrics struct {
	GrossSales      float64 `json:"gross_sales"`
	ReturnSales     float64 `json:"return_sales"`
	NetSales        float64 `json:"net_sales"`
	TotalOrders     int     `json:"total_orders"`
	ReturnOrders    int     `json:"return_orders"`
	NetOrders       int     `json:"net_orders"`
	UniqueCustomers int     `json:"unique_customers"`
}

type KPISummary struct {
	DateRange               string        `json:"date_range"`
	StartDate               time.Time     `json:"start_date"`
	EndDate                 time.Time     `json:"end_date"`
	PrevStartDate           time.Time     `json:"prev_start_date"`
	PrevEndDate             time.Time     `json:"prev_end_date"`
	Current                 PeriodMetrics `json:"current"`
	Previous                PeriodMetrics `json:"previous"`
	AverageOrderValue       float64       `json:"average_order_value"`
	PrevAverageOrderValue   float64       `json:"prev_average_order_value"`
	NetSalesChange          float64       `json:"net_sales_change"`
	NetOrdersChange         float64       `json:"net_orders_change"`
	UniqueCustomersChange   float64       `json:"unique_customers_change"`
	AverageOrderValueChange float64       `json:"average_order_value_change"`
	MTDSales                float64       `json:"mtd_sales"`
	YTDSales                float64       `json:"ytd_sales"`
	Currency                string        `json:"currency"`
}

type TrendPoint struct {
	Date      string  `json:"date"`
	Sales     float64 `json:"sales"`
	Returns   float64 `json:"returns"`
	NetSales  float64 `json:"net_sales"`
	Orders    int     `json:"orders"`
	Customers int     `json:"customers"`
}

type TopCustomer struct {
	CustomerCode string  `json:"customer_code"`
	CustomerName string  `json:"customer_name"`
	RouteCode    string  `json:"route_code"`
	TotalSales   float64 `json:"total_sales"`
	TotalOrders  int     `json:"total_orders"`
}

type TopProduct struct {
	ItemCode     string  `json:"item_code"`
	ItemName     string  `json:"item_name"`
	Category     string  `json:"category"`
	QuantitySold int     `json:"quantity_sold"`
	TotalSales   float64 `json:"total_sales"`
	TotalOrders  int     `json:"total_orders"`
}

type CustomerAnalytics struct {
	Customer
	TotalSales    float64    `json:"total_sales"`
	TotalOrders   int        `json:"total_orders"`
	ReturnAmount  float64    `json:"return_amount"`
	AvgOrderValue float64    `json:"avg_order_value"`
	LastOrderDate *time.Time `json:"last_order_date"`
}

type ProductAnalytics struct {
	Product
	TotalQuantitySold int     `json:"total_quantity_sold"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalOrders       int     `json:"total_orders"`
	AvgSellingPrice   float64 `json:"avg_selling_price"`
}

type CategoryPerformance struct {
	Category     string  `json:"category"`
	TotalSales   float64 `json:"total_sales"`
	QuantitySold int     `json:"quantity_sold"`
	TotalOrders  int     `json:"total_orders"`
	ProductCount int     `json:"product_count"`
	SharePct     float64 `json:"share_pct"`
}

type FieldOperationsAnalytics struct {
	TotalJourneys      int       `json:"total_journeys"`
	TotalVisits        int       `json:"total_visits"`
	ProductiveVisits   int       `json:"productive_visits"`
	ProductivityRate   float64   `json:"productivity_rate"`
	TotalJourneySales  float64   `json:"total_journey_sales"`
	AvgSalesPerJourney float64   `json:"avg_sales_per_journey"`
	TotalDistanceKm    int       `json:"total_distance_km"`
	AvgVisitMinutes    float64   `json:"avg_visit_minutes"`
	Journeys           []Journey `json:"journeys"`
	Visits             []Visit   `json:"visits"`
}

type SalesPerformance struct {
	UserCode        string  `json:"user_code"`
	UserName        string  `json:"user_name"`
	RouteCode       string  `json:"route_code"`
	RouteName       string  `json:"route_name"`
	TotalSales      float64 `json:"total_sales"`
	TotalOrders     int     `json:"total_orders"`
	ReturnAmount    float64 `json:"return_amount"`
	UniqueCustomers int     `json:"unique_customers"`
	AvgOrderValue   float64 `json:"avg_order_value"`
}

type SalesBreakdown struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	TotalSales      float64 `json:"total_sales"`
	TotalOrders     int     `json:"total_orders"`
	UniqueCustomers int     `json:"unique_customers"`
	AvgOrderValue   float64 `json:"avg_order_value"`
	SharePct        float64 `json:"share_pct"`
}

type SalesAnalysis struct {
	TotalSales  float64          `json:"total_sales"`
	TotalOrders int              `json:"total_orders"`
	BySalesman  []SalesBreakdown `json:"by_salesman"`
	ByRoute     []SalesBreakdown `json:"by_route"`
}

type CustomerCollection struct {
	CustomerCode string  `json:"customer_code"`
	CustomerName string  `json:"customer_name"`
	CreditLimit  float64 `json:"credit_limit"`
	Invoiced     float64 `json:"invoiced"`
	Collected    float64 `json:"collected"`
	Outstanding  float64 `json:"outstanding"`
}

type CollectionsFinance struct {
	TotalInvoiced    float64              `json:"total_invoiced"`
	TotalCollected   float64              `json:"total_collected"`
	TotalOutstanding float64              `json:"total_outstanding"`
	CollectionRate   float64              `json:"collection_rate"`
	Customers        []CustomerCollection `json:"customers"`
}

type PaymentSummary struct {
	PaymentType PaymentType `json:"payment_type"`
	TotalAmount float64     `json:"total_amount"`
	Count       int         `json:"count"`
	SharePct    float64     `json:"share_pct"`
}

type VanSalesSummary struct {
	TotalVanSales float64       `json:"total_van_sales"`
	VanOrders     int           `json:"van_orders"`
	VanSharePct   float64       `json:"van_share_pct"`
	AvgOrderValue float64       `json:"avg_order_value"`
	Transactions  []Transaction `json:"transactions"`
}

type ReasonBreakdown struct {
	Reason   string  `json:"reason"`
	Count    int     `json:"count"`
	Quantity int     `json:"quantity"`
	Value    float64 `json:"value"`
}

type ReturnsWastage struct {
	TotalReturnValue  float64           `json:"total_return_value"`
	TotalWastageValue float64           `json:"total_wastage_value"`
	ReturnQuantity    int               `json:"return_quantity"`
	WastageQuantity   int               `json:"wastage_quantity"`
	ByReason          []ReasonBreakdown `json:"by_reason"`
	Movements         []StockMovement   `json:"movements"`
}

type AttendanceSummary struct {
	UserCode             string    `json:"user_code"`
	DateRange            string    `json:"date_range"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	TotalDays            int       `json:"total_days"`
	WorkingDays          int       `json:"working_days"`
	PresentDays          int       `json:"present_days"`
	AbsentDays           int       `json:"absent_days"`
	LeaveDays            int       `json:"leave_days"`
	WeekendDays          int       `json:"weekend_days"`
	HolidayDays          int       `json:"holiday_days"`
	LateDays             int       `json:"late_days"`
	EarlyCheckouts       int       `json:"early_checkouts"`
	AttendancePct        float64   `json:"attendance_pct"`
	TotalWorkingHours    float64   `json:"total_working_hours"`
	TotalProductiveHours float64   `json:"total_productive_hours"`
	TotalFieldHours      float64   `json:"total_field_hours"`
	TotalOfficeHours     float64   `json:"total_office_hours"`
	TotalTravelHours     float64   `json:"total_travel_hours"`
	TotalBreakHours      float64   `json:"total_break_hours"`
	TotalOvertimeHours   float64   `json:"total_overtime_hours"`
	AvgWorkingHours      float64   `json:"avg_working_hours"`
	AvgProductiveHours   float64   `json:"avg_productive_hours"`
	AvgEfficiency        float64   `json:"avg_efficiency"`
	TotalCustomerVisits  int       `json:"total_customer_visits"`
	TotalSalesCalls      int       `json:"total_sales_calls"`
	TotalSalesAmount     float64   `json:"total_sales_amount"`
	TotalDistanceKm      float64   `json:"total_distance_km"`
	TotalFuelLiters      float64   `json:"total_fuel_liters"`
}

type UserAttendanceAnalytics struct {
	User
	Summary AttendanceSummary `json:"summary"`
}

// AttendanceRollup aggregates attendance for one week (Period = week start date)
// or one month (Period = YYYY-MM).
type AttendanceRollup struct {
	Period               string  `json:"period"`
	Records              int     `json:"records"`
	WorkingDays          int     `json:"working_days"`
	PresentDays          int     `json:"present_days"`
	AbsentDays           int     `json:"absent_days"`
	LeaveDays            int     `json:"leave_days"`
	LateDays             int     `json:"late_days"`
	TotalWorkingHours    float64 `json:"total_working_hours"`
	TotalProductiveHours float64 `json:"total_productive_hours"`
	TotalOvertimeHours   float64 `json:"total_overtime_hours"`
	TotalSalesAmount     float64 `json:"total_sales_amount"`
}

// DashboardOverview is the composite payload served to the landing dashboard.
type DashboardOverview struct {
	KPI          *KPISummary   `json:"kpi"`
	SalesTrend   []TrendPoint  `json:"sales_trend"`
	TopCustomers []TopCustomer `json:"top_customers"`
	TopProducts  []TopProduct  `json:"top_products"`
}
