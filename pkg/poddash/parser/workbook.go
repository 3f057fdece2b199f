package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Workbook is a read-only view over the sheets of a spreadsheet file.
type Workbook interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	// Rows returns the cell text of the sheet at index, row by row.
	Rows(index int) ([][]string, error)
	Close() error
}

// OpenWorkbook opens an .xlsx (excelize) or legacy .xls workbook by extension.
func OpenWorkbook(path string) (Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		return &xlsxWorkbook{f: f, names: f.GetSheetList()}, nil
	case ".xls":
		wb, err := xls.Open(path, "utf-8")
		if err != nil {
			return nil, err
		}
		return newXLSWorkbook(wb), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

type xlsxWorkbook struct {
	f     *excelize.File
	names []string
}

func (w *xlsxWorkbook) SheetNames() []string { return w.names }

// Rows reads raw cell values so dates come back as serial numbers and are
// not subject to the workbook's display format.
func (w *xlsxWorkbook) Rows(index int) ([][]string, error) {
	if index < 0 || index >= len(w.names) {
		return nil, fmt.Errorf("sheet index %d out of range (%d sheets)", index, len(w.names))
	}
	return w.f.GetRows(w.names[index], excelize.Options{RawCellValue: true})
}

func (w *xlsxWorkbook) Close() error { return w.f.Close() }

type xlsWorkbook struct {
	wb    *xls.WorkBook
	names []string
}

func newXLSWorkbook(wb *xls.WorkBook) *xlsWorkbook {
	w := &xlsWorkbook{wb: wb}
	for i := 0; i < wb.NumSheets(); i++ {
		if sheet := wb.GetSheet(i); sheet != nil {
			w.names = append(w.names, sheet.Name)
		}
	}
	return w
}

func (w *xlsWorkbook) SheetNames() []string { return w.names }

// Rows reads every row up to MaxRow. Gaps in the file come back as nil rows
// and trailing blank cells are dropped, as excelize does.
func (w *xlsWorkbook) Rows(index int) ([][]string, error) {
	sheet := w.wb.GetSheet(index)
	if sheet == nil {
		return nil, fmt.Errorf("sheet index %d out of range (%d sheets)", index, len(w.names))
	}

	rows := make([]*xls.Row, int(sheet.MaxRow)+1)
	width := 0
	for r := range rows {
		rows[r] = xlsRow(sheet, r)
		if rows[r] != nil && rows[r].LastCol() > width {
			width = rows[r].LastCol()
		}
	}

	out := make([][]string, len(rows))
	for r, row := range rows {
		if row == nil {
			continue
		}
		// Cells written without a ROW record report LastCol 0, so every row
		// is read to the widest extent seen in the sheet.
		cells := make([]string, width)
		for c := range cells {
			cells[c] = row.Col(c)
		}
		for len(cells) > 0 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}
		out[r] = cells
	}
	return out, nil
}

// xlsRow returns row r of sheet, or nil when the file holds nothing for it.
// WorkSheet.Row dereferences the row without a nil check.
func xlsRow(sheet *xls.WorkSheet, r int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(r)
}

// The xls reader loads the whole file up front and holds no handle.
func (w *xlsWorkbook) Close() error { return nil }
