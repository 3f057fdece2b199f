package parser

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/benji822/pod-dash-app/pkg/poddash/models"
)

// SheetsPerDay is the number of consecutive downtime sheets that describe one date.
const SheetsPerDay = 3

// Classify returns the role of a downtime sheet from its column signature.
// Position within the workbook plays no part.
func Classify(t *models.RawTable) models.SheetKind {
	switch {
	case t.HasColumn(models.ColCreatetime):
		return models.SheetHourly
	case t.HasColumn(models.ColWorkcellStatus):
		return models.SheetBreakdown
	default:
		return models.SheetRaw
	}
}

// ParseHourlySheet reads an hourly downtime sheet. Total_seconds is required.
// WORKCELL may be absent; such a table keeps its day totals but cannot be
// queried per workcell (see Columns). Blank values must already be
// zero-filled; Total_minutes is always recomputed from Total_seconds.
func ParseHourlySheet(t *models.RawTable) (*models.DowntimeHourlyTable, error) {
	idx, err := columnIndexes(t, models.ColCreatetime, models.ColTotalSeconds)
	if err != nil {
		return nil, err
	}
	wcIdx := t.ColumnIndex(models.ColWorkcell)

	table := &models.DowntimeHourlyTable{
		Sheet:   t.Sheet,
		Columns: t.Columns,
		Records: make([]models.DowntimeHourlyRecord, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		var rec models.DowntimeHourlyRecord
		if rec.Createtime, err = ParseTimestamp(row.Get(idx[models.ColCreatetime])); err != nil {
			return nil, cellError(t, row, models.ColCreatetime, err)
		}
		if wcIdx >= 0 {
			wc, err := parseCount(row.Get(wcIdx))
			if err != nil {
				return nil, cellError(t, row, models.ColWorkcell, err)
			}
			rec.Workcell = int(wc)
		}
		if rec.TotalSeconds, err = parseNumber(row.Get(idx[models.ColTotalSeconds])); err != nil {
			return nil, cellError(t, row, models.ColTotalSeconds, err)
		}
		rec.TotalMinutes = MinutesFromSeconds(rec.TotalSeconds)
		table.Records = append(table.Records, rec)
	}
	return table, nil
}

// ParseBreakdownSheet reads a breakdown sheet indexed by WORKCELL_STATUS.
// Durations stay as text; they are converted when a workcell is queried.
func ParseBreakdownSheet(t *models.RawTable) (*models.DowntimeBreakdownTable, error) {
	idx, err := columnIndexes(t, models.ColWorkcellStatus)
	if err != nil {
		return nil, err
	}
	reasonIdx := idx[models.ColWorkcellStatus]

	table := &models.DowntimeBreakdownTable{Sheet: t.Sheet}
	for i, c := range t.Columns {
		if i != reasonIdx {
			table.Columns = append(table.Columns, c)
		}
	}

	for _, row := range t.Rows {
		reason := row.Get(reasonIdx)
		if reason == "" {
			return nil, cellError(t, row, models.ColWorkcellStatus, fmt.Errorf("%w: blank reason code", ErrBadValue))
		}
		rec := models.DowntimeBreakdownRecord{
			Reason:    reason,
			Durations: make(map[string]string, len(table.Columns)),
		}
		for i, c := range t.Columns {
			if i != reasonIdx {
				rec.Durations[c] = row.Get(i)
			}
		}
		table.Records = append(table.Records, rec)
	}
	return table, nil
}

// ParseDayGroup classifies a triplet of downtime sheets and assembles the day
// they describe. The date is the calendar date of the first Createtime of the
// group's hourly sheet, which is the group's first sheet in a regular export.
func ParseDayGroup(sheets []*models.RawTable) (*models.DowntimeDaySlice, error) {
	if len(sheets) != SheetsPerDay {
		return nil, fmt.Errorf("%w: got %d sheets, want %d", ErrMalformedGroup, len(sheets), SheetsPerDay)
	}

	slice := &models.DowntimeDaySlice{}
	for _, raw := range sheets {
		kind := Classify(raw)
		switch kind {
		case models.SheetHourly:
			if slice.Hourly != nil {
				return nil, duplicateKind(kind, raw)
			}
			hourly, err := ParseHourlySheet(ZeroFill(raw, models.ColCreatetime))
			if err != nil {
				return nil, err
			}
			slice.Hourly = hourly
		case models.SheetBreakdown:
			if slice.Breakdown != nil {
				return nil, duplicateKind(kind, raw)
			}
			breakdown, err := ParseBreakdownSheet(ZeroFill(raw, models.ColWorkcellStatus))
			if err != nil {
				return nil, err
			}
			slice.Breakdown = breakdown
		default:
			if slice.Raw != nil {
				return nil, duplicateKind(kind, raw)
			}
			slice.Raw = ZeroFill(raw)
		}
	}

	if slice.Hourly == nil && slice.Breakdown == nil {
		return nil, fmt.Errorf("%w: neither an hourly (%s) nor a breakdown (%s) sheet",
			ErrMalformedGroup, models.ColCreatetime, models.ColWorkcellStatus)
	}
	if slice.Hourly == nil || len(slice.Hourly.Records) == 0 {
		return nil, fmt.Errorf("%w: no %s value to date the group", ErrMalformedGroup, models.ColCreatetime)
	}
	slice.Date = civil.DateOf(slice.Hourly.Records[0].Createtime)
	return slice, nil
}

func duplicateKind(kind models.SheetKind, t *models.RawTable) error {
	return fmt.Errorf("%w: second %s sheet %q", ErrMalformedGroup, kind, t.Sheet)
}
