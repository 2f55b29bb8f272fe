package domain

import "time"

type Product struct {
	ItemCode         string  `json:"item_code" db:"item_code"`
	ItemName         string  `json:"item_name" db:"item_name"`
	Category         string  `json:"category" db:"category"`
	Brand            string  `json:"brand" db:"brand"`
	BasePrice        float64 `json:"base_price" db:"base_price"`
	UOM              string  `json:"uom" db:"uom"`
	ConversionFactor float64 `json:"conversion_factor" db:"conversion_factor"`
	TaxPercentage    float64 `json:"tax_percentage" db:"tax_percentage"`
}

type Route struct {
	RouteCode  string `json:"route_code" db:"route_code"`
	RouteName  string `json:"route_name" db:"route_name"`
	RegionCode string `json:"region_code" db:"region_code"`
	RegionName string `json:"region_name" db:"region_name"`
}

type Salesman struct {
	UserCode  string `json:"user_code" db:"user_code"`
	UserName  string `json:"user_name" db:"user_name"`
	RouteCode string `json:"route_code" db:"route_code"`
	Mobile    string `json:"mobile" db:"mobile"`
	Email     string `json:"email" db:"email"`
}

type Customer struct {
	CustomerCode      string  `json:"customer_code" db:"customer_code"`
	CustomerName      string  `json:"customer_name" db:"customer_name"`
	RouteCode         string  `json:"route_code" db:"route_code"`
	RouteName         string  `json:"route_name" db:"route_name"`
	ChannelCode       string  `json:"channel_code" db:"channel_code"`
	ChannelName       string  `json:"channel_name" db:"channel_name"`
	CreditLimit       float64 `json:"credit_limit" db:"credit_limit"`
	OutstandingAmount float64 `json:"outstanding_amount" db:"outstanding_amount"`
	Latitude          float64 `json:"latitude" db:"latitude"`
	Longitude         float64 `json:"longitude" db:"longitude"`
	Status            string  `json:"status" db:"status"`
}

type LineItem struct {
	LineNo      int     `json:"line_no" db:"line_no"`
	ItemCode    string  `json:"item_code" db:"item_code"`
	ItemName    string  `json:"item_name" db:"item_name"`
	Category    string  `json:"category" db:"category"`
	Quantity    int     `json:"quantity" db:"quantity"`
	UnitPrice   float64 `json:"unit_price" db:"unit_price"`
	TotalAmount float64 `json:"total_amount" db:"total_amount"`
}

// Transaction is a sale or return invoice. TotalAmount is negative for returns.
type Transaction struct {
	TrxCode         string      `json:"trx_code" db:"trx_code"`
	TrxDate         time.Time   `json:"trx_date" db:"trx_date"`
	TrxType         TrxType     `json:"trx_type" db:"trx_type"`
	CustomerCode    string      `json:"customer_code" db:"customer_code"`
	CustomerName    string      `json:"customer_name" db:"customer_name"`
	UserCode        string      `json:"user_code" db:"user_code"`
	UserName        string      `json:"user_name" db:"user_name"`
	RouteCode       string      `json:"route_code" db:"route_code"`
	RouteName       string      `json:"route_name" db:"route_name"`
	RegionCode      string      `json:"region_code" db:"region_code"`
	ChannelCode     string      `json:"channel_code" db:"channel_code"`
	JourneyCode     string      `json:"journey_code" db:"journey_code"`
	VisitCode       string      `json:"visit_code" db:"visit_code"`
	PaymentType     PaymentType `json:"payment_type" db:"payment_type"`
	Subtotal        float64     `json:"subtotal" db:"subtotal"`
	DiscountPercent float64     `json:"discount_percent" db:"discount_percent"`
	DiscountAmount  float64     `json:"discount_amount" db:"discount_amount"`
	TaxAmount       float64     `json:"tax_amount" db:"tax_amount"`
	TotalAmount     float64     `json:"total_amount" db:"total_amount"`
	IsVanSales      bool        `json:"is_van_sales" db:"is_van_sales"`
	Status          int         `json:"status" db:"status"`
	Items           []LineItem  `json:"items" db:"-"`
}

func (t Transaction) IsSale() bool   { return t.TrxType == TrxTypeSale }
func (t Transaction) IsReturn() bool { return t.TrxType == TrxTypeReturn }

type DailySales struct {
	Date              time.Time `json:"date" db:"sales_date"`
	TotalSales        float64   `json:"total_sales" db:"total_sales"`
	TotalReturns      float64   `json:"total_returns" db:"total_returns"`
	NetSales          float64   `json:"net_sales" db:"net_sales"`
	TotalTransactions int       `json:"total_transactions" db:"total_transactions"`
	ReturnCount       int       `json:"return_count" db:"return_count"`
	TotalCustomers    int       `json:"total_customers" db:"total_customers"`
}

type StockMovement struct {
	MovementCode string    `json:"movement_code" db:"movement_code"`
	MovementDate time.Time `json:"movement_date" db:"movement_date"`
	ItemCode     string    `json:"item_code" db:"item_code"`
	ItemName     string    `json:"item_name" db:"item_name"`
	Quantity     int       `json:"quantity" db:"quantity"`
	IsReturn     bool      `json:"is_return" db:"is_return"`
	IsWastage    bool      `json:"is_wastage" db:"is_wastage"`
	Value        float64   `json:"value" db:"value"`
	Reason       string    `json:"reason" db:"reason"`
	TrxCode      string    `json:"trx_code,omitempty" db:"trx_code"`
	CustomerCode string    `json:"customer_code,omitempty" db:"customer_code"`
	UserCode     string    `json:"user_code,omitempty" db:"user_code"`
	RouteCode    string    `json:"route_code,omitempty" db:"route_code"`
}

type Journey struct {
	JourneyCode      string    `json:"journey_code" db:"journey_code"`
	JourneyDate      time.Time `json:"journey_date" db:"journey_date"`
	UserCode         string    `json:"user_code" db:"user_code"`
	UserName         string    `json:"user_name" db:"user_name"`
	RouteCode        string    `json:"route_code" db:"route_code"`
	RouteName        string    `json:"route_name" db:"route_name"`
	StartTime        time.Time `json:"start_time" db:"start_time"`
	EndTime          time.Time `json:"end_time" db:"end_time"`
	StartOdometer    int       `json:"start_odometer" db:"start_odometer"`
	EndOdometer      int       `json:"end_odometer" db:"end_odometer"`
	PlannedVisits    int       `json:"planned_visits" db:"planned_visits"`
	ProductiveVisits int       `json:"productive_visits" db:"productive_visits"`
	TotalSales       float64   `json:"total_sales" db:"total_sales"`
	Status           string    `json:"status" db:"status"`
}

func (j Journey) DistanceKm() int { return j.EndOdometer - j.StartOdometer }

type Visit struct {
	VisitCode       string    `json:"visit_code" db:"visit_code"`
	JourneyCode     string    `json:"journey_code" db:"journey_code"`
	UserCode        string    `json:"user_code" db:"user_code"`
	CustomerCode    string    `json:"customer_code" db:"customer_code"`
	CustomerName    string    `json:"customer_name" db:"customer_name"`
	CheckIn         time.Time `json:"check_in" db:"check_in"`
	CheckOut        time.Time `json:"check_out" db:"check_out"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	VisitType       int       `json:"visit_type" db:"visit_type"`
	IsProductive    bool      `json:"is_productive" db:"is_productive"`
	SalesAmount     float64   `json:"sales_amount" db:"sales_amount"`
	Latitude        float64   `json:"latitude" db:"latitude"`
	Longitude       float64   `json:"longitude" db:"longitude"`
}

type Target struct {
	TargetCode     string    `json:"target_code" db:"target_code"`
	UserCode       string    `json:"user_code" db:"user_code"`
	UserName       string    `json:"user_name" db:"user_name"`
	PeriodType     string    `json:"period_type" db:"period_type"`
	StartDate      time.Time `json:"start_date" db:"start_date"`
	EndDate        time.Time `json:"end_date" db:"end_date"`
	TargetAmount   float64   `json:"target_amount" db:"target_amount"`
	AchievedAmount float64   `json:"achieved_amount" db:"achieved_amount"`
	AchievementPct float64   `json:"achievement_pct" db:"achievement_pct"`
	Status         string    `json:"status" db:"status"`
}

type User struct {
	UserCode   string    `json:"user_code" db:"user_code"`
	UserName   string    `json:"user_name" db:"user_name"`
	Role       string    `json:"role" db:"role"`
	Department string    `json:"department" db:"department"`
	Email      string    `json:"email" db:"email"`
	Mobile     string    `json:"mobile" db:"mobile"`
	JoinDate   time.Time `json:"join_date" db:"join_date"`
	IsActive   bool      `json:"is_active" db:"is_active"`
}

type Holiday struct {
	Date time.Time `json:"date" db:"holiday_date"`
	Name string    `json:"name" db:"name"`
	Type string    `json:"type" db:"holiday_type"`
}

// Attendance is one user-day. Time fields are nil when the user did not check in.
type Attendance struct {
	AttendanceID      string     `json:"attendance_id" db:"attendance_id"`
	UserCode          string     `json:"user_code" db:"user_code"`
	UserName          string     `json:"user_name" db:"user_name"`
	Role              string     `json:"role" db:"role"`
	Department        string     `json:"department" db:"department"`
	Date              time.Time  `json:"date" db:"attendance_date"`
	Status            string     `json:"status" db:"status"`
	CheckIn           *time.Time `json:"check_in,omitempty" db:"check_in"`
	CheckOut          *time.Time `json:"check_out,omitempty" db:"check_out"`
	WorkingHours      float64    `json:"working_hours" db:"working_hours"`
	FieldHours        float64    `json:"field_hours" db:"field_hours"`
	OfficeHours       float64    `json:"office_hours" db:"office_hours"`
	TravelHours       float64    `json:"travel_hours" db:"travel_hours"`
	BreakHours        float64    `json:"break_hours" db:"break_hours"`
	ProductiveHours   float64    `json:"productive_hours" db:"productive_hours"`
	IdleHours         float64    `json:"idle_hours" db:"idle_hours"`
	OvertimeHours     float64    `json:"overtime_hours" db:"overtime_hours"`
	CustomerVisits    int        `json:"customer_visits" db:"customer_visits"`
	SalesCalls        int        `json:"sales_calls" db:"sales_calls"`
	DistanceKm        float64    `json:"distance_km" db:"distance_km"`
	FuelLiters        float64    `json:"fuel_liters" db:"fuel_liters"`
	SalesAmount       float64    `json:"sales_amount" db:"sales_amount"`
	TargetAchievement float64    `json:"target_achievement" db:"target_achievement"`
	Efficiency        float64    `json:"efficiency" db:"efficiency"`
	IsLate            bool       `json:"is_late" db:"is_late"`
	IsEarlyCheckout   bool       `json:"is_early_checkout" db:"is_early_checkout"`
	Location          string     `json:"location,omitempty" db:"location"`
	Remarks           string     `json:"remarks,omitempty" db:"remarks"`
}

type LeaveBalance struct {
	UserCode  string `json:"user_code"`
	UserName  string `json:"user_name"`
	LeaveType string `json:"leave_type"`
	Total     int    `json:"total"`
	Used      int    `json:"used"`
	Balance   int    `json:"balance"`
}
