package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/benji822/pod-dash-app/pkg/poddash/models"
)

// ReadSheet reads the sheet at index from wb and builds its table.
func ReadSheet(wb Workbook, index int) (*models.RawTable, error) {
	names := wb.SheetNames()
	if index < 0 || index >= len(names) {
		return nil, fmt.Errorf("%w: no sheet at index %d", ErrSheetCount, index)
	}
	rows, err := wb.Rows(index)
	if err != nil {
		return nil, err
	}
	return BuildTable(names[index], rows), nil
}

// ZeroFill returns a copy of t with every blank cell outside keep set to "0".
// Key columns such as timestamps and reason codes are passed in keep so a
// blank key is reported rather than silently turned into a value.
func ZeroFill(t *models.RawTable, keep ...string) *models.RawTable {
	skip := make([]bool, len(t.Columns))
	for i, c := range t.Columns {
		for _, k := range keep {
			if c == k {
				skip[i] = true
			}
		}
	}

	out := &models.RawTable{
		Sheet:   t.Sheet,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]models.CellRow, len(t.Rows)),
	}
	for i, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		copy(cells, row.C)
		for j := range cells {
			if cells[j] == "" && !skip[j] {
				cells[j] = "0"
			}
		}
		out.Rows[i] = models.CellRow{R: row.R, C: cells}
	}
	return out
}

// columnIndexes resolves the named columns of t, failing on the first missing one.
func columnIndexes(t *models.RawTable, names ...string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for _, name := range names {
		i := t.ColumnIndex(name)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		idx[name] = i
	}
	return idx, nil
}

// parseNumber parses a numeric cell. Blank cells are zero and a trailing
// percent sign divides by 100.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
		scale = 100
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadValue, s)
	}
	return v / scale, nil
}

// parseCount parses a whole-number cell, rounding values stored as floats.
func parseCount(s string) (int64, error) {
	if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		return i, nil
	}
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	return int64(math.RoundToEven(v)), nil
}

func cellError(t *models.RawTable, row models.CellRow, column string, err error) error {
	return fmt.Errorf("sheet %q row %d column %s: %w", t.Sheet, row.R, column, err)
}
