// Package models defines data structures for line output and downtime tables.
package models

// CellRow represents a single sheet row with its cell values aligned to the header.
type CellRow struct {
	// R is the row index in the source sheet (1-based).
	R int `json:"r"`
	// C holds cell values in header column order. Blank cells are empty strings
	// unless the table was zero-filled.
	C []string `json:"c"`
}

// Get returns the value at column idx, or "" when the row is shorter.
func (r CellRow) Get(idx int) string {
	if idx < 0 || idx >= len(r.C) {
		return ""
	}
	return r.C[idx]
}
