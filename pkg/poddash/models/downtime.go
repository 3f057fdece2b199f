package models

import (
	"time"

	"cloud.google.com/go/civil"
)

// Column names used to classify and read downtime sheets.
const (
	ColWorkcell       = "WORKCELL"
	ColTotalSeconds   = "Total_seconds"
	ColTotalMinutes   = "Total_minutes"
	ColWorkcellStatus = "WORKCELL_STATUS"
)

// SheetKind is the role a downtime sheet plays within its day group.
type SheetKind string

const (
	// SheetHourly carries per-hour downtime per workcell (has Createtime).
	SheetHourly SheetKind = "hourly_downtime"
	// SheetBreakdown carries downtime per reason code per workcell (has WORKCELL_STATUS).
	SheetBreakdown SheetKind = "downtime_breakdown"
	// SheetRaw is any other sheet.
	SheetRaw SheetKind = "downtime"
)

// DowntimeHourlyRecord is one row of an hourly downtime sheet.
type DowntimeHourlyRecord struct {
	Createtime time.Time `json:"createtime"`
	// Workcell is the 1-based workcell number as written in the sheet.
	Workcell     int     `json:"workcell"`
	TotalSeconds float64 `json:"total_seconds"`
	// TotalMinutes is TotalSeconds/60 rounded half to even, never negative.
	TotalMinutes int64 `json:"total_minutes"`
}

// DowntimeHourlyTable holds the hourly downtime rows of one day.
type DowntimeHourlyTable struct {
	Sheet string `json:"sheet"`
	// Columns are the header names of the source sheet, in order.
	Columns []string               `json:"columns"`
	Records []DowntimeHourlyRecord `json:"records"`
}

// HasColumn reports whether the source sheet carried the named column.
func (t *DowntimeHourlyTable) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// DowntimeBreakdownRecord is one reason-code row of a breakdown sheet.
type DowntimeBreakdownRecord struct {
	// Reason is the WORKCELL_STATUS label of the row.
	Reason string `json:"reason"`
	// Durations maps a workcell column (wc1..wc10) to its duration text.
	Durations map[string]string `json:"durations"`
}

// DowntimeBreakdownTable holds the reason-code breakdown of one day.
type DowntimeBreakdownTable struct {
	Sheet string `json:"sheet"`
	// Columns are the workcell columns in sheet order (WORKCELL_STATUS excluded).
	Columns []string                  `json:"columns"`
	Records []DowntimeBreakdownRecord `json:"records"`
}

// HasColumn reports whether the breakdown carries the given workcell column.
func (t *DowntimeBreakdownTable) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// DowntimeDaySlice groups the three downtime sheets recorded for one line and date.
type DowntimeDaySlice struct {
	Line string     `json:"line"`
	Date civil.Date `json:"date"`
	// Source is the workbook path the group was read from.
	Source string `json:"source"`
	// Group is the 0-based index of the sheet triplet within the workbook.
	Group     int                     `json:"group"`
	Hourly    *DowntimeHourlyTable    `json:"hourly_downtime,omitempty"`
	Breakdown *DowntimeBreakdownTable `json:"downtime_breakdown,omitempty"`
	Raw       *RawTable               `json:"downtime,omitempty"`
}

// ReasonSeconds is the downtime attributed to one reason code.
type ReasonSeconds struct {
	Reason  string `json:"reason"`
	Seconds int64  `json:"seconds"`
}

// Breakdown is a per-reason downtime total for one workcell, in sheet row order.
type Breakdown []ReasonSeconds

// Map returns the breakdown keyed by reason code. Repeated reasons are summed.
func (b Breakdown) Map() map[string]int64 {
	m := make(map[string]int64, len(b))
	for _, r := range b {
		m[r.Reason] += r.Seconds
	}
	return m
}

// Total returns the sum of all reasons.
func (b Breakdown) Total() int64 {
	var total int64
	for _, r := range b {
		total += r.Seconds
	}
	return total
}
