package models

// RawTable is a header-indexed sheet kept as text. Downtime sheets that match
// neither the hourly nor the breakdown signature are passed through as RawTable.
type RawTable struct {
	// Sheet is the sheet name in the source workbook.
	Sheet string `json:"sheet"`
	// Columns are the header names in sheet order.
	Columns []string `json:"columns"`
	// Rows contains the data rows below the header.
	Rows []CellRow `json:"rows,omitempty"`
}

// ColumnIndex returns the position of the named column, or -1.
func (t *RawTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table has a column with the given header.
func (t *RawTable) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}
