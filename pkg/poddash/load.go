package poddash

import (
	"errors"
	"fmt"
	"time"

	"github.com/benji822/pod-dash-app/pkg/poddash/models"
	"github.com/benji822/pod-dash-app/pkg/poddash/parser"
	"go.uber.org/zap"
)

// Load discovers every output and downtime workbook under opts.Root and builds
// the dataset. Discovery errors are always fatal. Workbook errors abort the
// load under PolicyAbort; under PolicySkip the whole line is dropped from both
// datasets and a warning is logged.
func Load(opts Options) (*Dataset, error) {
	log := opts.logger()
	start := time.Now()

	outputDir := opts.outputRoot()
	outputFiles, err := parser.Locate(outputDir, outputDir, models.KindOutput, opts.Extensions)
	if err != nil {
		return nil, &DiscoveryError{Dir: outputDir, Err: err}
	}
	downtimeDir := opts.downtimeRoot()
	downtimeFiles, err := parser.Locate(downtimeDir, downtimeDir, models.KindDowntime, opts.Extensions)
	if err != nil {
		return nil, &DiscoveryError{Dir: downtimeDir, Err: err}
	}
	log.Debug("workbooks located",
		zap.Int("output", len(outputFiles)),
		zap.Int("downtime", len(downtimeFiles)))

	b := newBuilder()
	failed := make(map[string]error)
	fail := func(line string, err error) error {
		if opts.policy() == PolicyAbort {
			return err
		}
		if _, ok := failed[line]; !ok {
			failed[line] = err
			log.Warn("skipping line", zap.String("line", line), zap.Error(err))
		}
		return nil
	}

	for _, wf := range outputFiles {
		if _, ok := failed[wf.Line]; ok {
			continue
		}
		tables, err := loadOutputWorkbook(wf, log)
		if err != nil {
			if err := fail(wf.Line, err); err != nil {
				return nil, err
			}
			continue
		}
		b.addOutput(wf.Line, tables)
		log.Debug("output workbook loaded", zap.String("path", wf.Path), zap.String("line", wf.Line))
	}

	for _, wf := range downtimeFiles {
		if _, ok := failed[wf.Line]; ok {
			continue
		}
		slices, err := loadDowntimeWorkbook(wf)
		if err == nil {
			if dupErr := b.addDowntime(wf.Line, slices); dupErr != nil {
				err = NewLoadError(wf.Path, wf.Line, "downtime", dupErr)
			}
		}
		if err != nil {
			if err := fail(wf.Line, err); err != nil {
				return nil, err
			}
			continue
		}
		log.Debug("downtime workbook loaded",
			zap.String("path", wf.Path),
			zap.String("line", wf.Line),
			zap.Int("days", len(slices)))
	}

	for line := range failed {
		b.drop(line)
	}

	ds := b.build()
	log.Info("dataset loaded",
		zap.String("snapshot", ds.Snapshot()),
		zap.Strings("lines", ds.Lines()),
		zap.Int("skipped", len(failed)),
		zap.Duration("duration", time.Since(start)))
	return ds, nil
}

// loadOutputWorkbook reads the first WorkcellCount sheets of an output workbook.
func loadOutputWorkbook(wf models.WorkbookFile, log *zap.Logger) ([WorkcellCount]*models.OutputTable, error) {
	var tables [WorkcellCount]*models.OutputTable

	wb, err := parser.OpenWorkbook(wf.Path)
	if err != nil {
		return tables, NewLoadError(wf.Path, wf.Line, "output", err)
	}
	defer wb.Close()

	names := wb.SheetNames()
	if len(names) < WorkcellCount {
		return tables, NewLoadError(wf.Path, wf.Line, "output",
			fmt.Errorf("%w: %d sheets, want %d", ErrSheetCount, len(names), WorkcellCount))
	}
	if len(names) > WorkcellCount {
		log.Warn("ignoring extra output sheets",
			zap.String("path", wf.Path),
			zap.Strings("sheets", names[WorkcellCount:]))
	}

	for i := 0; i < WorkcellCount; i++ {
		sheetErr := func(err error) error {
			e := NewLoadError(wf.Path, wf.Line, "output", err)
			e.Sheet, e.SheetIndex = names[i], i
			return e
		}
		raw, err := parser.ReadSheet(wb, i)
		if err != nil {
			return tables, sheetErr(err)
		}
		records, err := parser.ParseOutputSheet(raw)
		if err != nil {
			return tables, sheetErr(err)
		}
		tables[i] = &models.OutputTable{
			Line:     wf.Line,
			Workcell: i,
			Sheet:    names[i],
			Sources:  []string{wf.Path},
			Columns:  raw.Columns,
			Records:  records,
		}
	}
	return tables, nil
}

// loadDowntimeWorkbook reads every sheet of a downtime workbook in groups of three.
func loadDowntimeWorkbook(wf models.WorkbookFile) ([]*models.DowntimeDaySlice, error) {
	wb, err := parser.OpenWorkbook(wf.Path)
	if err != nil {
		return nil, NewLoadError(wf.Path, wf.Line, "downtime", err)
	}
	defer wb.Close()

	names := wb.SheetNames()
	if len(names)%parser.SheetsPerDay != 0 {
		return nil, NewLoadError(wf.Path, wf.Line, "downtime",
			fmt.Errorf("%w: %d sheets is not a multiple of %d", ErrSheetCount, len(names), parser.SheetsPerDay))
	}

	slices := make([]*models.DowntimeDaySlice, 0, len(names)/parser.SheetsPerDay)
	for g := 0; g < len(names)/parser.SheetsPerDay; g++ {
		groupErr := func(err error, sheet int) error {
			e := NewLoadError(wf.Path, wf.Line, "downtime", err)
			e.Group = g
			if sheet >= 0 {
				e.Sheet, e.SheetIndex = names[sheet], sheet
			}
			return e
		}

		sheets := make([]*models.RawTable, 0, parser.SheetsPerDay)
		for i := g * parser.SheetsPerDay; i < (g+1)*parser.SheetsPerDay; i++ {
			raw, err := parser.ReadSheet(wb, i)
			if err != nil {
				return nil, groupErr(err, i)
			}
			sheets = append(sheets, raw)
		}

		slice, err := parser.ParseDayGroup(sheets)
		if err != nil {
			return nil, groupErr(err, -1)
		}
		slice.Line = wf.Line
		slice.Source = wf.Path
		slice.Group = g
		slices = append(slices, slice)
	}
	return slices, nil
}

// IsLoadError reports whether err came from reading a workbook, as opposed to
// locating one.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
