package parser

import "errors"

var (
	// ErrRootNotFound indicates the directory to scan does not exist.
	ErrRootNotFound = errors.New("root directory not found")
	// ErrNoLineID indicates a workbook path carries no line identifier.
	ErrNoLineID = errors.New("no line identifier in path")
	// ErrUnsupportedFormat indicates a workbook extension no reader handles.
	ErrUnsupportedFormat = errors.New("unsupported workbook format")
	// ErrSheetCount indicates a workbook has the wrong number of sheets.
	ErrSheetCount = errors.New("unexpected sheet count")
	// ErrMissingColumn indicates a required column is absent from a sheet header.
	ErrMissingColumn = errors.New("missing required column")
	// ErrBadValue indicates a cell that cannot be converted to its column type.
	ErrBadValue = errors.New("invalid cell value")
	// ErrMalformedGroup indicates a downtime sheet triplet that cannot form a day.
	ErrMalformedGroup = errors.New("malformed downtime sheet group")
	// ErrBadDuration indicates duration text that is not a recognised duration.
	ErrBadDuration = errors.New("invalid duration")
)
