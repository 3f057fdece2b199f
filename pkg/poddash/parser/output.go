package parser

import (
	"fmt"
	"strings"

	"github.com/benji822/pod-dash-app/pkg/poddash/models"
)

// ParseOutputSheet converts an output sheet into typed records, validating
// that every column in models.OutputColumns is present. Output sheets are not
// zero-filled: a blank required cell in a non-empty row is ErrBadValue.
func ParseOutputSheet(t *models.RawTable) ([]models.OutputRecord, error) {
	idx, err := columnIndexes(t, models.OutputColumns...)
	if err != nil {
		return nil, err
	}

	var extra []int
	for i, c := range t.Columns {
		if !isOutputColumn(c) {
			extra = append(extra, i)
		}
	}

	records := make([]models.OutputRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		var rec models.OutputRecord

		rec.Createtime, err = ParseTimestamp(row.Get(idx[models.ColCreatetime]))
		if err != nil {
			return nil, cellError(t, row, models.ColCreatetime, err)
		}
		values := make(map[string]string, len(models.OutputColumns)-1)
		for _, c := range models.OutputColumns[1:] {
			v := row.Get(idx[c])
			if strings.TrimSpace(v) == "" {
				return nil, cellError(t, row, c, fmt.Errorf("%w: blank value", ErrBadValue))
			}
			values[c] = v
		}
		if rec.HourlyOutput, err = parseCount(values[models.ColHourlyOutput]); err != nil {
			return nil, cellError(t, row, models.ColHourlyOutput, err)
		}
		if rec.NGRate, err = parseNumber(values[models.ColNGRate]); err != nil {
			return nil, cellError(t, row, models.ColNGRate, err)
		}
		if rec.Yield, err = parseNumber(values[models.ColYield]); err != nil {
			return nil, cellError(t, row, models.ColYield, err)
		}
		if rec.YieldWithoutSample, err = parseNumber(values[models.ColYieldWithoutSample]); err != nil {
			return nil, cellError(t, row, models.ColYieldWithoutSample, err)
		}

		if len(extra) > 0 {
			rec.Extra = make(map[string]string, len(extra))
			for _, i := range extra {
				rec.Extra[t.Columns[i]] = row.Get(i)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func isOutputColumn(name string) bool {
	for _, c := range models.OutputColumns {
		if c == name {
			return true
		}
	}
	return false
}
