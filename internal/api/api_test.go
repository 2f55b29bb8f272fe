package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/api/middleware"
	"github.com/andresuchdata/salesops-analytics/internal/dataset"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
	"github.com/andresuchdata/salesops-analytics/internal/export"
	"github.com/andresuchdata/salesops-analytics/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var ref = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Pagination *domain.Pagination `json:"pagination"`
	Error      string             `json:"error"`
}

func sale(code, customer string, d int, amount float64) domain.Transaction {
	return domain.Transaction{
		TrxCode:      code,
		TrxDate:      time.Date(2024, time.March, d, 10, 0, 0, 0, time.UTC),
		TrxType:      domain.TrxTypeSale,
		CustomerCode: customer,
		UserCode:     "SLS001",
		RouteCode:    "RT001",
		PaymentType:  domain.PaymentCash,
		TotalAmount:  amount,
	}
}

func fixtureProvider() *dataset.Provider {
	refund := sale("TRX000003", "CUST001", 12, -200)
	refund.TrxType = domain.TrxTypeReturn

	return dataset.NewStaticProvider(dataset.FromRecords(ref, 30, dataset.Records{
		Products:  dataset.Products(),
		Routes:    dataset.Routes(),
		Salesmen:  dataset.Salesmen(),
		Customers: dataset.Customers(),
		Users:     dataset.Users(),
		Transactions: []domain.Transaction{
			sale("TRX000001", "CUST001", 5, 1200),
			sale("TRX000002", "CUST001", 10, 800),
			refund,
			sale("TRX000004", "CUST003", 14, 500),
		},
	}))
}

func newTestRouter(provider *dataset.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(&Services{
		DashboardService: service.NewDashboardService(provider, nil),
		ExportService:    service.NewExportService(provider, nil, "exports"),
	}, nil)
}

func do(t *testing.T, router http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return env
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(fixtureProvider()), http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("response is missing a request id")
	}
}

func TestTopCustomersEndpoint(t *testing.T) {
	w := do(t, newTestRouter(fixtureProvider()), http.MethodGet, "/api/v1/dashboard/top-customers?limit=1&date_range=thisMonth", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}

	env := decode(t, w)
	var rows []domain.TopCustomer
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatal(err)
	}
	if !env.Success || len(rows) != 1 {
		t.Fatalf("got %+v", rows)
	}
	if rows[0].CustomerCode != "CUST001" || rows[0].TotalSales != 2000 || rows[0].TotalOrders != 2 {
		t.Errorf("top customer = %+v", rows[0])
	}
}

func TestTransactionsArePaged(t *testing.T) {
	w := do(t, newTestRouter(fixtureProvider()), http.MethodGet, "/api/v1/sales/transactions?page=2&page_size=3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	env := decode(t, w)
	if env.Pagination == nil {
		t.Fatal("missing pagination block")
	}
	if env.Pagination.TotalItems != 4 || env.Pagination.TotalPages != 2 || env.Pagination.Page != 2 {
		t.Errorf("pagination = %+v", *env.Pagination)
	}

	var rows []domain.Transaction
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].TrxCode != "TRX000001" {
		t.Errorf("last page = %+v", rows)
	}
}

func TestUnknownTokenFallsBack(t *testing.T) {
	w := do(t, newTestRouter(fixtureProvider()), http.MethodGet, "/api/v1/dashboard/kpi?date_range=fortnight", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var kpi domain.KPISummary
	if err := json.Unmarshal(decode(t, w).Data, &kpi); err != nil {
		t.Fatal(err)
	}
	if kpi.DateRange != "last30Days" {
		t.Errorf("date range = %q, want last30Days", kpi.DateRange)
	}
}

func TestExportEndpoints(t *testing.T) {
	router := newTestRouter(fixtureProvider())

	w := do(t, router, http.MethodGet, "/api/v1/exports/customers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != export.ContentTypeXLSX {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "customers_2024-03-15.xlsx") {
		t.Errorf("disposition = %q", w.Header().Get("Content-Disposition"))
	}
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	f.Close()

	if w := do(t, router, http.MethodGet, "/api/v1/exports/inventory", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown report status = %d, want 404", w.Code)
	}

	w = do(t, router, http.MethodGet, "/api/v1/exports/products?publish=true", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("publish without storage status = %d, want 503", w.Code)
	}
	if env := decode(t, w); env.Success || env.Error == "" {
		t.Errorf("error envelope = %+v", env)
	}
}

func TestRegenerateDataset(t *testing.T) {
	provider := dataset.NewProvider(dataset.Options{Seed: 3, ReferenceDate: ref, Days: 30})
	router := newTestRouter(provider)

	w := do(t, router, http.MethodPost, "/api/v1/admin/dataset/regenerate", []byte(`{"seed": 42}`))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	var info domain.DatasetInfo
	if err := json.Unmarshal(decode(t, w).Data, &info); err != nil {
		t.Fatal(err)
	}
	if info.Seed != 42 || info.Days != 30 {
		t.Errorf("info = %+v", info)
	}

	if w := do(t, router, http.MethodPost, "/api/v1/admin/dataset/regenerate", []byte(`{"seed":`)); w.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", w.Code)
	}
}

func TestNormalizeAllowedOrigins(t *testing.T) {
	origins, allowAll := normalizeAllowedOrigins([]string{"https://a.example, https://b.example", " ", "*"})
	if !allowAll {
		t.Error("wildcard not detected")
	}
	if len(origins) != 2 || origins[1] != "https://b.example" {
		t.Errorf("origins = %v", origins)
	}
}
