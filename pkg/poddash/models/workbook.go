package models

// WorkbookKind identifies which dataset a workbook belongs to.
type WorkbookKind string

const (
	// KindOutput marks a per-line hourly output workbook (one sheet per workcell).
	KindOutput WorkbookKind = "output"
	// KindDowntime marks a per-line downtime workbook (three sheets per day).
	KindDowntime WorkbookKind = "downtime"
)

// WorkbookFile represents a discovered spreadsheet and the line it belongs to.
type WorkbookFile struct {
	// Path is the workbook path as found on disk.
	Path string `json:"path"`
	// Line is the line identifier extracted from the path (e.g. "L1").
	Line string `json:"line"`
	// Kind is the dataset the workbook was discovered under.
	Kind WorkbookKind `json:"kind"`
}
