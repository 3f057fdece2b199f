package parser

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/benji822/pod-dash-app/pkg/poddash/models"
)

func TestParseOutputSheet(t *testing.T) {
	table := &models.RawTable{
		Sheet:   "WC1",
		Columns: []string{"Createtime", "HourlyOutput", "NGRate", "Yield", "YieldWithoutSample", "Shift"},
		Rows: []models.CellRow{
			{R: 2, C: []string{"2022-07-01 08:00:00", "120", "0.0125", "0.98", "97.5%", "A"}},
			{R: 3, C: []string{"2022-07-01 09:00:00", "0", "0", "1", "1", ""}},
		},
	}

	records, err := ParseOutputSheet(table)
	if err != nil {
		t.Fatalf("ParseOutputSheet failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	first := records[0]
	if !first.Createtime.Equal(time.Date(2022, 7, 1, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected Createtime %v", first.Createtime)
	}
	if first.HourlyOutput != 120 || first.NGRate != 0.0125 || first.Yield != 0.98 || first.YieldWithoutSample != 0.975 {
		t.Errorf("Unexpected values: %+v", first)
	}
	if first.Extra["Shift"] != "A" {
		t.Errorf("Expected extra column Shift=A, got %v", first.Extra)
	}
	if second := records[1]; second.HourlyOutput != 0 || second.Yield != 1 || second.Extra["Shift"] != "" {
		t.Errorf("Unexpected second record: %+v", second)
	}
}

func TestParseOutputSheetMissingColumn(t *testing.T) {
	table := &models.RawTable{
		Sheet:   "WC1",
		Columns: []string{"HourlyOutput", "NGRate", "Yield", "YieldWithoutSample"},
	}
	_, err := ParseOutputSheet(table)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("Expected ErrMissingColumn, got %v", err)
	}
}

func TestParseOutputSheetBadCell(t *testing.T) {
	table := &models.RawTable{
		Sheet:   "WC1",
		Columns: models.OutputColumns,
		Rows: []models.CellRow{
			{R: 7, C: []string{"2022-07-01 08:00:00", "many", "0", "0", "0"}},
		},
	}
	_, err := ParseOutputSheet(table)
	if !errors.Is(err, ErrBadValue) {
		t.Fatalf("Expected ErrBadValue, got %v", err)
	}
}

func TestParseOutputSheetBlankValue(t *testing.T) {
	for i, column := range models.OutputColumns[1:] {
		cells := []string{"2022-07-01 08:00:00", "120", "0.01", "0.98", "0.99"}
		cells[i+1] = " "
		table := &models.RawTable{
			Sheet:   "WC1",
			Columns: models.OutputColumns,
			Rows:    []models.CellRow{{R: 4, C: cells}},
		}
		_, err := ParseOutputSheet(table)
		if !errors.Is(err, ErrBadValue) {
			t.Errorf("blank %s: expected ErrBadValue, got %v", column, err)
			continue
		}
		if !strings.Contains(err.Error(), "row 4 column "+column) {
			t.Errorf("blank %s: error %q does not name the cell", column, err)
		}
	}
}
