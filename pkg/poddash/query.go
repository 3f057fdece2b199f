package poddash

import (
	"fmt"
	"sort"

	"cloud.google.com/go/civil"
	"github.com/benji822/pod-dash-app/pkg/poddash/models"
	"github.com/benji822/pod-dash-app/pkg/poddash/parser"
)

// Workcell numbering differs between the two datasets: output sheets are
// 0-based (sheet index), while downtime records and breakdown columns are
// 1-based (WORKCELL = n+1, column wc{n+1}). Every query takes the 0-based
// index and translates where needed.

// BreakdownColumn returns the breakdown column name for a 0-based workcell.
func BreakdownColumn(workcell int) string {
	return fmt.Sprintf("wc%d", workcell+1)
}

func checkWorkcell(workcell int) error {
	if workcell < 0 || workcell >= WorkcellCount {
		return notFound("workcell %d (want 0..%d)", workcell, WorkcellCount-1)
	}
	return nil
}

// OutputTable returns the full output table of one workcell of a line.
func (d *Dataset) OutputTable(line string, workcell int) (*models.OutputTable, error) {
	if err := checkWorkcell(workcell); err != nil {
		return nil, err
	}
	ld, ok := d.lines[line]
	if !ok || !ld.HasOutput() {
		return nil, notFound("output for line %q", line)
	}
	return ld.Output[workcell], nil
}

// OutputSlice returns the output rows of a workcell whose timestamp falls on
// date, in file order. The date must be one of Dates; a known date without
// rows for this line and workcell yields an empty slice and no error.
func (d *Dataset) OutputSlice(line string, workcell int, date civil.Date) ([]models.OutputRecord, error) {
	table, err := d.OutputTable(line, workcell)
	if err != nil {
		return nil, err
	}
	if !d.HasDate(date) {
		return nil, notFound("output for line %q on %s", line, FormatDate(date))
	}
	out := []models.OutputRecord{}
	for _, rec := range table.Records {
		if civil.DateOf(rec.Createtime) == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

// DowntimeDay returns the downtime group of a line for date.
func (d *Dataset) DowntimeDay(line string, date civil.Date) (*models.DowntimeDaySlice, error) {
	ld, ok := d.lines[line]
	if !ok {
		return nil, notFound("line %q", line)
	}
	slice, ok := ld.Downtime[date]
	if !ok {
		return nil, notFound("downtime for line %q on %s", line, FormatDate(date))
	}
	return slice, nil
}

// DowntimeBreakdown returns the downtime per reason code of one workcell,
// in sheet row order, with durations rounded to whole seconds.
func (d *Dataset) DowntimeBreakdown(line string, date civil.Date, workcell int) (models.Breakdown, error) {
	if err := checkWorkcell(workcell); err != nil {
		return nil, err
	}
	slice, err := d.DowntimeDay(line, date)
	if err != nil {
		return nil, err
	}
	if slice.Breakdown == nil {
		return nil, notFound("downtime breakdown for line %q on %s", line, FormatDate(date))
	}
	column := BreakdownColumn(workcell)
	if !slice.Breakdown.HasColumn(column) {
		return nil, notFound("breakdown column %s for line %q on %s", column, line, FormatDate(date))
	}

	out := make(models.Breakdown, 0, len(slice.Breakdown.Records))
	for _, rec := range slice.Breakdown.Records {
		seconds, err := parser.ParseDurationSeconds(rec.Durations[column])
		if err != nil {
			return nil, &DurationError{
				Line:   line,
				Date:   FormatDate(date),
				Column: column,
				Reason: rec.Reason,
				Err:    err,
			}
		}
		out = append(out, models.ReasonSeconds{Reason: rec.Reason, Seconds: parser.RoundSeconds(seconds)})
	}
	return out, nil
}

// HourlyDowntime returns the hourly downtime rows of one workcell, ordered by
// timestamp. Rows sharing a timestamp keep their sheet order. An hourly sheet
// without a WORKCELL column cannot be split by workcell and yields
// ErrMissingColumn rather than an empty result.
func (d *Dataset) HourlyDowntime(line string, date civil.Date, workcell int) ([]models.DowntimeHourlyRecord, error) {
	if err := checkWorkcell(workcell); err != nil {
		return nil, err
	}
	slice, err := d.DowntimeDay(line, date)
	if err != nil {
		return nil, err
	}
	if slice.Hourly == nil {
		return nil, notFound("hourly downtime for line %q on %s", line, FormatDate(date))
	}
	if !slice.Hourly.HasColumn(models.ColWorkcell) {
		return nil, fmt.Errorf("%w: hourly downtime sheet %q of line %q on %s has no %s column",
			ErrMissingColumn, slice.Hourly.Sheet, line, FormatDate(date), models.ColWorkcell)
	}

	out := []models.DowntimeHourlyRecord{}
	for _, rec := range slice.Hourly.Records {
		if rec.Workcell == workcell+1 {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Createtime.Before(out[j].Createtime)
	})
	return out, nil
}

// RawDowntime returns the unclassified downtime sheet of a line for date.
func (d *Dataset) RawDowntime(line string, date civil.Date) (*models.RawTable, error) {
	slice, err := d.DowntimeDay(line, date)
	if err != nil {
		return nil, err
	}
	if slice.Raw == nil {
		return nil, notFound("raw downtime for line %q on %s", line, FormatDate(date))
	}
	return slice.Raw, nil
}
