package poddash

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benji822/pod-dash-app/pkg/poddash/parser"
)

// Load-time sentinels, shared with the parser so errors.Is matches either.
var (
	ErrRootNotFound   = parser.ErrRootNotFound
	ErrNoLineID       = parser.ErrNoLineID
	ErrSheetCount     = parser.ErrSheetCount
	ErrMissingColumn  = parser.ErrMissingColumn
	ErrBadValue       = parser.ErrBadValue
	ErrMalformedGroup = parser.ErrMalformedGroup
	ErrBadDuration    = parser.ErrBadDuration
)

// ErrDuplicateDate indicates two downtime groups of one line carry the same date.
var ErrDuplicateDate = errors.New("duplicate downtime date")

// ErrNotFound indicates a query for a line, date or workcell the dataset does not hold.
var ErrNotFound = errors.New("not found")

// DiscoveryError represents a failure to locate workbooks under the data root.
type DiscoveryError struct {
	Dir string
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovery error in %s: %v", e.Dir, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// LoadError represents a failure to load one workbook.
type LoadError struct {
	Path string
	Line string
	// Sheet is the sheet name, empty when the error concerns the whole workbook.
	Sheet string
	// SheetIndex is the 0-based sheet position, -1 when not applicable.
	SheetIndex int
	// Group is the 0-based downtime sheet triplet, -1 when not applicable.
	Group     int
	Component string // "output", "downtime"
	Err       error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "load error in %s (line %s, %s", e.Path, e.Line, e.Component)
	if e.Group >= 0 {
		fmt.Fprintf(&b, ", group %d", e.Group)
	}
	if e.SheetIndex >= 0 {
		fmt.Fprintf(&b, ", sheet %d", e.SheetIndex)
	}
	if e.Sheet != "" {
		fmt.Fprintf(&b, " %q", e.Sheet)
	}
	fmt.Fprintf(&b, "): %v", e.Err)
	return b.String()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a LoadError that is not tied to a sheet or group.
func NewLoadError(path, line, component string, err error) *LoadError {
	return &LoadError{
		Path:       path,
		Line:       line,
		SheetIndex: -1,
		Group:      -1,
		Component:  component,
		Err:        err,
	}
}

// DurationError represents breakdown text that could not be read as a duration.
type DurationError struct {
	Line   string
	Date   string
	Column string
	Reason string
	Err    error
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("breakdown %s %s %s reason %q: %v", e.Line, e.Date, e.Column, e.Reason, e.Err)
}

func (e *DurationError) Unwrap() error {
	return e.Err
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
