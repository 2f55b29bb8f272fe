package postgres

import (
	"regexp"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/dataset"
)

func TestFactRowsMatchColumns(t *testing.T) {
	ds := dataset.Generate(dataset.Options{Seed: 4, ReferenceDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Days: 30})

	for _, ft := range factTables {
		rows := ft.rows(ds)
		if len(rows) == 0 {
			t.Errorf("%s: no rows", ft.table)
			continue
		}
		for i, row := range rows {
			if len(row) != len(ft.columns) {
				t.Fatalf("%s row %d has %d values for %d columns", ft.table, i, len(row), len(ft.columns))
			}
		}
		if !slices.Contains(snapshotTables, ft.table) {
			t.Errorf("%s is not truncated on reload", ft.table)
		}
		for _, col := range ft.columns {
			if !strings.Contains(schemaDDL, "\t"+col+" ") {
				t.Errorf("%s.%s missing from schema", ft.table, col)
			}
		}
	}
}

func TestCatalogInsertsCoverSchema(t *testing.T) {
	named := regexp.MustCompile(`:(\w+)`)

	for _, c := range catalogInserts {
		if !slices.Contains(snapshotTables, c.table) {
			t.Errorf("%s is not truncated on reload", c.table)
		}
		if !strings.Contains(schemaDDL, "CREATE TABLE IF NOT EXISTS "+c.table+" (") {
			t.Errorf("%s missing from schema", c.table)
		}
		params := named.FindAllStringSubmatch(c.query, -1)
		if len(params) == 0 {
			t.Errorf("%s insert has no named parameters", c.table)
		}
		for _, p := range params {
			if !strings.Contains(schemaDDL, "\t"+p[1]+" ") {
				t.Errorf("%s.%s missing from schema", c.table, p[1])
			}
		}
	}
}

func TestNullable(t *testing.T) {
	if nullable("") != nil {
		t.Error("empty string should map to NULL")
	}
	if v := nullable("TRX001000"); v == nil || *v != "TRX001000" {
		t.Errorf("nullable = %v", v)
	}
}
