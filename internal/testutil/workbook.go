// Package testutil builds spreadsheet fixtures for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheet is a fixture sheet. The first row is the header.
type Sheet struct {
	Name string
	Rows [][]any
}

// WriteWorkbook saves sheets, in order, as an .xlsx workbook at path.
func WriteWorkbook(t testing.TB, path string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		name := sheet.Name
		if name == "" {
			name = fmt.Sprintf("Sheet%d", i+1)
		}
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("add sheet %q: %v", name, err)
		}
		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			values := row
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				t.Fatalf("write row %d of %q: %v", r+1, name, err)
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("create fixture dir: %v", err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

// OutputHeader is the header row of an output sheet.
var OutputHeader = []any{"Createtime", "HourlyOutput", "NGRate", "Yield", "YieldWithoutSample"}

// OutputSheets returns n output sheets with the given hourly rows each. Row
// values are (Createtime, HourlyOutput, NGRate, Yield, YieldWithoutSample);
// HourlyOutput is offset by the sheet index so workcells are distinguishable.
func OutputSheets(n int, start time.Time, hours int) []Sheet {
	sheets := make([]Sheet, n)
	for i := range sheets {
		rows := [][]any{OutputHeader}
		for h := 0; h < hours; h++ {
			rows = append(rows, []any{
				start.Add(time.Duration(h) * time.Hour),
				100*(i+1) + h,
				0.01,
				0.98,
				0.99,
			})
		}
		sheets[i] = Sheet{Name: fmt.Sprintf("WC%d", i+1), Rows: rows}
	}
	return sheets
}

// DowntimeDay returns the canonical triplet for one date: hourly downtime,
// breakdown and raw downtime sheets. seconds is the Total_seconds of the single
// hourly row for workcell 1; breakdown holds reason -> wc1 duration text.
func DowntimeDay(date time.Time, seconds float64, breakdown map[string]string) []Sheet {
	suffix := date.Format("0102")
	hourly := Sheet{
		Name: "hourly_" + suffix,
		Rows: [][]any{
			{"Createtime", "WORKCELL", "Total_seconds"},
			{date.Add(8 * time.Hour), 1, seconds},
		},
	}
	bd := Sheet{
		Name: "breakdown_" + suffix,
		Rows: [][]any{{"WORKCELL_STATUS", "wc1", "wc2"}},
	}
	for reason, text := range breakdown {
		bd.Rows = append(bd.Rows, []any{reason, text, "00:00:00"})
	}
	raw := Sheet{
		Name: "downtime_" + suffix,
		Rows: [][]any{
			{"Start", "End", "Reason"},
			{"08:00", "08:05", "jam"},
		},
	}
	return []Sheet{hourly, bd, raw}
}
