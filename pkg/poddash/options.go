// Package poddash loads line output and downtime workbooks into an immutable
// dataset and answers the filter queries of the dashboards built on it.
package poddash

import (
	"path/filepath"

	"go.uber.org/zap"
)

// WorkcellCount is the number of workcells per line, and the number of sheets
// read from every output workbook.
const WorkcellCount = 10

// ErrorPolicy decides what happens when a single workbook fails to load.
type ErrorPolicy string

const (
	// PolicyAbort fails the whole load on the first workbook error.
	PolicyAbort ErrorPolicy = "abort"
	// PolicySkip drops every table of the affected line and keeps loading.
	PolicySkip ErrorPolicy = "skip"
)

// Options configures loading.
type Options struct {
	// Root is the data directory holding the output and downtime trees.
	Root string
	// OutputDir is the output tree, relative to Root unless absolute.
	OutputDir string
	// DowntimeDir is the downtime tree, relative to Root unless absolute.
	DowntimeDir string
	// Extensions lists the workbook extensions to pick up (e.g. ".xlsx", ".xls").
	Extensions []string
	// OnError is the per-workbook failure policy. Empty means PolicyAbort.
	OnError ErrorPolicy
	// Logger receives load progress. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns options for the conventional data/ layout.
func DefaultOptions() Options {
	return Options{
		Root:        "data",
		OutputDir:   "output",
		DowntimeDir: "downtime",
		Extensions:  []string{".xlsx"},
		OnError:     PolicyAbort,
	}
}

func (o Options) outputRoot() string {
	return o.resolve(o.OutputDir, "output")
}

func (o Options) downtimeRoot() string {
	return o.resolve(o.DowntimeDir, "downtime")
}

func (o Options) resolve(dir, fallback string) string {
	if dir == "" {
		dir = fallback
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(o.Root, dir)
}

func (o Options) policy() ErrorPolicy {
	if o.OnError == "" {
		return PolicyAbort
	}
	return o.OnError
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
