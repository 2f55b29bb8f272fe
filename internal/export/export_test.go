package export

import (
	"bytes"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/analytics"
	"github.com/andresuchdata/salesops-analytics/internal/dataset"
	"github.com/andresuchdata/salesops-analytics/internal/domain"
	"github.com/xuri/excelize/v2"
)

func testEngine() *analytics.Engine {
	ref := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	return analytics.New(dataset.Generate(dataset.Options{Seed: 3, ReferenceDate: ref}))
}

func open(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestBytesRoundTrip(t *testing.T) {
	data, err := Bytes(
		Sheet{Name: "First", Headers: []string{"Code", "Amount"}, Rows: [][]any{{"A", 10.5}, {"B", nil}}},
		Sheet{Name: "Second", Headers: []string{"Flag"}, Rows: [][]any{{true}}},
	)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	f := open(t, data)
	if got := f.GetSheetList(); !slices.Equal(got, []string{"First", "Second"}) {
		t.Fatalf("sheets = %v", got)
	}

	for cell, want := range map[string]string{"A1": "Code", "B1": "Amount", "A2": "A", "B2": "10.5", "A3": "B", "B3": ""} {
		got, err := f.GetCellValue("First", cell)
		if err != nil {
			t.Fatalf("read %s: %v", cell, err)
		}
		if got != want {
			t.Errorf("First!%s = %q, want %q", cell, got, want)
		}
	}
	if got, _ := f.GetCellValue("Second", "A2"); got != "TRUE" {
		t.Errorf("Second!A2 = %q, want TRUE", got)
	}
}

func TestWorkbookRequiresSheet(t *testing.T) {
	if _, err := Workbook(); err == nil {
		t.Error("expected error for empty workbook")
	}
}

func TestBuildReportUnknown(t *testing.T) {
	_, err := BuildReport(testEngine(), "forecast", domain.Filter{})
	if !errors.Is(err, domain.ErrUnknownReport) {
		t.Errorf("err = %v, want ErrUnknownReport", err)
	}
}

func TestBuildReportCustomers(t *testing.T) {
	sheets, err := BuildReport(testEngine(), " Customers ", domain.Filter{})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if len(sheets) != 1 || len(sheets[0].Rows) != 15 {
		t.Fatalf("got %d sheets", len(sheets))
	}

	data, err := Bytes(sheets...)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	rows, err := open(t, data).GetRows("Customers")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 16 {
		t.Errorf("got %d rows, want header + 15", len(rows))
	}
	if rows[0][0] != "Customer Code" || rows[1][0] == "" {
		t.Errorf("unexpected first rows: %v / %v", rows[0], rows[1])
	}
}

func TestEveryReportBuilds(t *testing.T) {
	e := testEngine()
	for _, name := range Reports() {
		sheets, err := BuildReport(e, name, domain.Filter{DateRange: "last30Days"})
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if _, err := Bytes(sheets...); err != nil {
			t.Errorf("%s: encode: %v", name, err)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("Daily-Sales", testEngine()); got != "daily-sales_2024-03-15.xlsx" {
		t.Errorf("FileName = %q", got)
	}
}
