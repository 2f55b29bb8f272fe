package dataset

import (
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/domain"
)

const (
	brand    = "Farmley"
	currency = "AED"
	taxRate  = 5.0
)

func product(code, name, category string, price float64) domain.Product {
	return domain.Product{
		ItemCode:         code,
		ItemName:         name,
		Category:         category,
		Brand:            brand,
		BasePrice:        price,
		UOM:              "KG",
		ConversionFactor: 1,
		TaxPercentage:    taxRate,
	}
}

// Products is the fixed 20-item catalog.
func Products() []domain.Product {
	return []domain.Product{
		product("FRM001", "Premium Almonds", "Nuts", 599),
		product("FRM002", "Cashew Nuts Whole", "Nuts", 699),
		product("FRM003", "Raisins Golden", "Dried Fruits", 349),
		product("FRM004", "Dried Figs Premium", "Dried Fruits", 799),
		product("FRM005", "Dates Medjool", "Dried Fruits", 899),
		product("FRM006", "Walnuts Premium", "Nuts", 749),
		product("FRM007", "Pistachios Roasted", "Nuts", 1299),
		product("FRM008", "Trail Mix Deluxe", "Mixed Nuts", 499),
		product("FRM009", "Dried Apricots", "Dried Fruits", 549),
		product("FRM010", "Chia Seeds Organic", "Seeds", 399),
		product("FRM011", "Flax Seeds", "Seeds", 299),
		product("FRM012", "Pumpkin Seeds", "Seeds", 449),
		product("FRM013", "Dried Cranberries", "Dried Fruits", 599),
		product("FRM014", "Honey Natural", "Sweeteners", 499),
		product("FRM015", "Quinoa Seeds", "Grains", 649),
		product("FRM016", "Oats Rolled", "Grains", 249),
		product("FRM017", "Protein Mix", "Health Foods", 899),
		product("FRM018", "Dry Coconut Slices", "Dried Fruits", 399),
		product("FRM019", "Makhana Plain", "Snacks", 349),
		product("FRM020", "Mixed Berries Dried", "Dried Fruits", 749),
	}
}

// Routes is the fixed 8-route catalog.
func Routes() []domain.Route {
	return []domain.Route{
		{RouteCode: "RT001", RouteName: "Dubai Downtown", RegionCode: "DXB", RegionName: "Dubai"},
		{RouteCode: "RT002", RouteName: "Dubai Marina", RegionCode: "DXB", RegionName: "Dubai"},
		{RouteCode: "RT003", RouteName: "Jumeirah District", RegionCode: "DXB", RegionName: "Dubai"},
		{RouteCode: "RT004", RouteName: "Abu Dhabi Central", RegionCode: "AUH", RegionName: "Abu Dhabi"},
		{RouteCode: "RT005", RouteName: "Sharjah Main", RegionCode: "SHJ", RegionName: "Sharjah"},
		{RouteCode: "RT006", RouteName: "Ajman City", RegionCode: "AJM", RegionName: "Ajman"},
		{RouteCode: "RT007", RouteName: "Al Ain Route", RegionCode: "ALN", RegionName: "Al Ain"},
		{RouteCode: "RT008", RouteName: "Fujairah Coast", RegionCode: "FUJ", RegionName: "Fujairah"},
	}
}

// Salesmen assigns exactly one salesman to each route.
func Salesmen() []domain.Salesman {
	return []domain.Salesman{
		{UserCode: "SLS001", UserName: "Ahmed Hassan", RouteCode: "RT001", Mobile: "+971501234567", Email: "ahmed.hassan@farmley.com"},
		{UserCode: "SLS002", UserName: "Mohammed Ali", RouteCode: "RT002", Mobile: "+971501234568", Email: "mohammed.ali@farmley.com"},
		{UserCode: "SLS003", UserName: "Fatima Khan", RouteCode: "RT003", Mobile: "+971501234569", Email: "fatima.khan@farmley.com"},
		{UserCode: "SLS004", UserName: "Omar Abdullah", RouteCode: "RT004", Mobile: "+971501234570", Email: "omar.abdullah@farmley.com"},
		{UserCode: "SLS005", UserName: "Sara Ahmed", RouteCode: "RT005", Mobile: "+971501234571", Email: "sara.ahmed@farmley.com"},
		{UserCode: "SLS006", UserName: "Khalid Rahman", RouteCode: "RT006", Mobile: "+971501234572", Email: "khalid.rahman@farmley.com"},
		{UserCode: "SLS007", UserName: "Aisha Mohammed", RouteCode: "RT007", Mobile: "+971501234573", Email: "aisha.mohammed@farmley.com"},
		{UserCode: "SLS008", UserName: "Hassan Ali", RouteCode: "RT008", Mobile: "+971501234574", Email: "hassan.ali@farmley.com"},
	}
}

var channelNames = map[string]string{
	"SUPERMARKET": "Supermarket",
	"HYPERMARKET": "Hypermarket",
	"COOPERATIVE": "Cooperative",
	"MINIMARKET":  "Mini Market",
}

func customer(code, name, route, channel string, credit, outstanding, lat, lng float64) domain.Customer {
	return domain.Customer{
		CustomerCode:      code,
		CustomerName:      name,
		RouteCode:         route,
		ChannelCode:       channel,
		ChannelName:       channelNames[channel],
		CreditLimit:       credit,
		OutstandingAmount: outstanding,
		Latitude:          lat,
		Longitude:         lng,
		Status:            domain.CustomerStatusActive,
	}
}

// Customers is the fixed 15-outlet catalog. RouteName is filled by withRouteNames.
func Customers() []domain.Customer {
	return withRouteNames([]domain.Customer{
		customer("CUST001", "Spinneys Dubai Mall", "RT001", "SUPERMARKET", 50000, 12500, 25.1972, 55.2744),
		customer("CUST002", "Carrefour Marina", "RT002", "HYPERMARKET", 100000, 25000, 25.0824, 55.1395),
		customer("CUST003", "Lulu Express Jumeirah", "RT003", "SUPERMARKET", 75000, 18000, 25.2332, 55.2609),
		customer("CUST004", "Union Coop Abu Dhabi", "RT004", "COOPERATIVE", 60000, 15000, 24.4539, 54.3773),
		customer("CUST005", "Choithrams Sharjah", "RT005", "SUPERMARKET", 45000, 10000, 25.3463, 55.4209),
		customer("CUST006", "West Zone Supermarket", "RT006", "SUPERMARKET", 35000, 8000, 25.4052, 55.5137),
		customer("CUST007", "Al Maya Supermarket", "RT007", "SUPERMARKET", 40000, 9500, 24.2075, 55.7447),
		customer("CUST008", "Day to Day Fujairah", "RT008", "MINIMARKET", 25000, 5000, 25.1288, 56.3265),
		customer("CUST009", "Grandiose Supermarket", "RT001", "SUPERMARKET", 55000, 13000, 25.2048, 55.2708),
		customer("CUST010", "Nesto Hypermarket", "RT002", "HYPERMARKET", 90000, 22000, 25.0752, 55.1329),
		customer("CUST011", "Waitrose Dubai", "RT001", "SUPERMARKET", 70000, 17500, 25.2084, 55.2719),
		customer("CUST012", "Viva Supermarket", "RT003", "SUPERMARKET", 48000, 11000, 25.2422, 55.2866),
		customer("CUST013", "Geant Abu Dhabi", "RT004", "HYPERMARKET", 85000, 20000, 24.4667, 54.3667),
		customer("CUST014", "Safeer Mall Sharjah", "RT005", "SUPERMARKET", 42000, 9800, 25.3574, 55.3916),
		customer("CUST015", "Al Madina Hypermarket", "RT006", "HYPERMARKET", 65000, 14500, 25.4211, 55.5136),
	})
}

func withRouteNames(customers []domain.Customer) []domain.Customer {
	names := make(map[string]string)
	for _, r := range Routes() {
		names[r.RouteCode] = r.RouteName
	}
	for i := range customers {
		customers[i].RouteName = names[customers[i].RouteCode]
	}
	return customers
}

func user(code, name, role, dept, email, mobile string, y int, m time.Month, d int) domain.User {
	return domain.User{
		UserCode:   code,
		UserName:   name,
		Role:       role,
		Department: dept,
		Email:      email,
		Mobile:     mobile,
		JoinDate:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
	}
}

// Users is the staff roster whose attendance is tracked.
func Users() []domain.User {
	return []domain.User{
		user("USR001", "Ahmed Hassan", "Team Leader", DepartmentSales, "ahmed.hassan@farmley.com", "+971501234567", 2022, time.January, 15),
		user("USR002", "Mohammed Ali", "Assistant Team Leader", DepartmentSales, "mohammed.ali@farmley.com", "+971501234568", 2022, time.March, 20),
		user("USR003", "Fatima Khan", "Sales Executive", DepartmentSales, "fatima.khan@farmley.com", "+971501234569", 2022, time.June, 10),
		user("USR004", "Omar Abdullah", "Sales Executive", DepartmentSales, "omar.abdullah@farmley.com", "+971501234570", 2022, time.August, 5),
		user("USR005", "Sara Ahmed", "Sales Executive", DepartmentSales, "sara.ahmed@farmley.com", "+971501234571", 2023, time.February, 12),
		user("USR006", "Khalid Rahman", "Sales Executive", DepartmentSales, "khalid.rahman@farmley.com", "+971501234572", 2023, time.April, 18),
		user("USR007", "Aisha Mohammed", "Team Leader", "Operations", "aisha.mohammed@farmley.com", "+971501234573", 2021, time.November, 8),
		user("USR008", "Hassan Ali", "Assistant Team Leader", "Operations", "hassan.ali@farmley.com", "+971501234574", 2022, time.May, 25),
		user("USR009", "Layla Ibrahim", "Operations Executive", "Operations", "layla.ibrahim@farmley.com", "+971501234575", 2023, time.January, 14),
		user("USR010", "Youssef Malik", "Operations Executive", "Operations", "youssef.malik@farmley.com", "+971501234576", 2023, time.March, 22),
		user("USR011", "Noor Hassan", "HR Manager", "HR", "noor.hassan@farmley.com", "+971501234577", 2021, time.September, 10),
		user("USR012", "Rashid Ahmed", "Finance Manager", "Finance", "rashid.ahmed@farmley.com", "+971501234578", 2021, time.December, 5),
	}
}

const DepartmentSales = "Sales"

const publicHoliday = "Public Holiday"

type holidayDef struct {
	y    int
	m    time.Month
	d    int
	name string
}

// Lunar holidays after 2024 follow the announced UAE calendar and may shift by a day.
var holidayCalendar = []holidayDef{
	{2024, time.January, 1, "New Year Day"},
	{2024, time.April, 10, "Eid al-Fitr"},
	{2024, time.April, 11, "Eid al-Fitr Holiday"},
	{2024, time.April, 12, "Eid al-Fitr Holiday"},
	{2024, time.June, 15, "Arafat Day"},
	{2024, time.June, 16, "Eid al-Adha"},
	{2024, time.June, 17, "Eid al-Adha Holiday"},
	{2024, time.June, 18, "Eid al-Adha Holiday"},
	{2024, time.July, 7, "Islamic New Year"},
	{2024, time.September, 16, "Prophet's Birthday"},
	{2024, time.December, 2, "National Day"},
	{2024, time.December, 3, "National Day Holiday"},
	{2025, time.January, 1, "New Year Day"},
	{2025, time.March, 30, "Eid al-Fitr"},
	{2025, time.March, 31, "Eid al-Fitr Holiday"},
	{2025, time.April, 1, "Eid al-Fitr Holiday"},
	{2025, time.June, 5, "Arafat Day"},
	{2025, time.June, 6, "Eid al-Adha"},
	{2025, time.June, 7, "Eid al-Adha Holiday"},
	{2025, time.June, 8, "Eid al-Adha Holiday"},
	{2025, time.June, 26, "Islamic New Year"},
	{2025, time.September, 4, "Prophet's Birthday"},
	{2025, time.December, 2, "National Day"},
	{2025, time.December, 3, "National Day Holiday"},
	{2026, time.January, 1, "New Year Day"},
	{2026, time.March, 20, "Eid al-Fitr"},
	{2026, time.March, 21, "Eid al-Fitr Holiday"},
	{2026, time.March, 22, "Eid al-Fitr Holiday"},
	{2026, time.May, 26, "Arafat Day"},
	{2026, time.May, 27, "Eid al-Adha"},
	{2026, time.May, 28, "Eid al-Adha Holiday"},
	{2026, time.May, 29, "Eid al-Adha Holiday"},
	{2026, time.June, 16, "Islamic New Year"},
	{2026, time.August, 25, "Prophet's Birthday"},
	{2026, time.December, 2, "National Day"},
	{2026, time.December, 3, "National Day Holiday"},
}

// Holidays returns the public holiday calendar in loc.
func Holidays(loc *time.Location) []domain.Holiday {
	if loc == nil {
		loc = time.UTC
	}
	out := make([]domain.Holiday, 0, len(holidayCalendar))
	for _, h := range holidayCalendar {
		out = append(out, domain.Holiday{
			Date: time.Date(h.y, h.m, h.d, 0, 0, 0, 0, loc),
			Name: h.name,
			Type: publicHoliday,
		})
	}
	return out
}

var fieldLocations = []string{"Dubai Downtown", "Dubai Marina", "Jumeirah", "Abu Dhabi Central", "Sharjah Main"}

const officeLocation = "Head Office"

var (
	returnReasons  = []string{"Damaged", "Expired", "Customer Return"}
	wastageReasons = []string{"Expired", "Damaged in Transit"}
)
