package parser

import (
	"fmt"
	"strings"

	"github.com/benji822/pod-dash-app/pkg/poddash/models"
)

// BuildTable turns the rows of a sheet into a header-indexed table.
// The header is the first non-empty row; columns start at the first non-empty
// cell of the sheet and end at the last non-empty header cell. Rows with no
// data are dropped.
func BuildTable(sheetName string, rows [][]string) *models.RawTable {
	table := &models.RawTable{Sheet: sheetName}

	minRow, _, minCol, _ := findDataBounds(rows)
	if minRow < 0 {
		return table
	}

	header := rows[minRow]
	last := len(header) - 1
	for last >= minCol && strings.TrimSpace(header[last]) == "" {
		last--
	}
	if last < minCol {
		return table
	}
	table.Columns = headerNames(header[minCol : last+1])

	width := len(table.Columns)
	for rowIdx := minRow + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cells := make([]string, width)
		hasData := false
		for i := 0; i < width; i++ {
			colIdx := minCol + i
			if colIdx >= len(row) {
				break
			}
			cells[i] = strings.TrimSpace(row[colIdx])
			if cells[i] != "" {
				hasData = true
			}
		}
		if !hasData {
			continue
		}
		table.Rows = append(table.Rows, models.CellRow{R: rowIdx + 1, C: cells})
	}

	return table
}

// headerNames trims header cells, names blank ones "Unnamed: <n>" and suffixes
// repeated names with ".1", ".2", ...
func headerNames(cells []string) []string {
	names := make([]string, len(cells))
	seen := make(map[string]int, len(cells))
	for i, cell := range cells {
		name := strings.TrimSpace(cell)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		names[i] = name
	}
	return names
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
