package models

import "time"

// Column names of an output sheet.
const (
	ColCreatetime         = "Createtime"
	ColHourlyOutput       = "HourlyOutput"
	ColNGRate             = "NGRate"
	ColYield              = "Yield"
	ColYieldWithoutSample = "YieldWithoutSample"
)

// OutputColumns lists the columns every output sheet must carry.
var OutputColumns = []string{
	ColCreatetime,
	ColHourlyOutput,
	ColNGRate,
	ColYield,
	ColYieldWithoutSample,
}

// OutputRecord is one hourly row of a workcell output sheet.
type OutputRecord struct {
	// Createtime is the hour the row was recorded for.
	Createtime time.Time `json:"createtime"`
	// HourlyOutput is the number of units produced in that hour.
	HourlyOutput int64 `json:"hourly_output"`
	// NGRate is the reject rate as a fraction.
	NGRate float64 `json:"ng_rate"`
	// Yield is the yield rate as a fraction.
	Yield float64 `json:"yield"`
	// YieldWithoutSample is the yield rate excluding sample units, as a fraction.
	YieldWithoutSample float64 `json:"yield_without_sample"`
	// Extra maps any other sheet column to its cell text.
	Extra map[string]string `json:"extra,omitempty"`
}

// OutputTable is the ordered output of one workcell of one line.
type OutputTable struct {
	// Line is the line identifier.
	Line string `json:"line"`
	// Workcell is the 0-based workcell index (the sheet index in the workbook).
	Workcell int `json:"workcell"`
	// Sheet is the sheet name in the first workbook read for the line.
	Sheet string `json:"sheet"`
	// Sources are the workbook paths the records were read from, in load order.
	Sources []string `json:"sources"`
	// Columns are the header names of the source sheet, in order.
	Columns []string `json:"columns"`
	// Records are the rows in original file order.
	Records []OutputRecord `json:"records"`
}
