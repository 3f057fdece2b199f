package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/benji822/pod-dash-app/pkg/poddash"
	"github.com/benji822/pod-dash-app/pkg/poddash/models"
)

// OutputTable tabulates display rows of an output slice. Extra sheet columns
// follow the standard ones in name order.
func OutputTable(rows []poddash.OutputRow) Table {
	extraSet := make(map[string]struct{})
	for _, r := range rows {
		for k := range r.Extra {
			extraSet[k] = struct{}{}
		}
	}
	extra := make([]string, 0, len(extraSet))
	for k := range extraSet {
		extra = append(extra, k)
	}
	sort.Strings(extra)

	t := Table{Columns: append(append([]string(nil), models.OutputColumns...), extra...)}
	for _, r := range rows {
		row := []string{
			r.Createtime,
			strconv.FormatInt(r.HourlyOutput, 10),
			r.NGRate,
			r.Yield,
			r.YieldWithoutSample,
		}
		for _, k := range extra {
			row = append(row, r.Extra[k])
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// BreakdownTable tabulates a per-reason breakdown.
func BreakdownTable(b models.Breakdown) Table {
	t := Table{Columns: []string{"Reason", "Seconds"}}
	for _, r := range b {
		t.Rows = append(t.Rows, []string{r.Reason, strconv.FormatInt(r.Seconds, 10)})
	}
	return t
}

// HourlyTable tabulates hourly downtime rows.
func HourlyTable(records []models.DowntimeHourlyRecord) Table {
	t := Table{Columns: []string{
		models.ColCreatetime, models.ColWorkcell, models.ColTotalSeconds, models.ColTotalMinutes,
	}}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			r.Createtime.Format(poddash.TimestampLayout),
			strconv.Itoa(r.Workcell),
			strconv.FormatFloat(r.TotalSeconds, 'f', -1, 64),
			strconv.FormatInt(r.TotalMinutes, 10),
		})
	}
	return t
}

// RawTable tabulates an unclassified sheet as-is.
func RawTable(raw *models.RawTable) Table {
	t := Table{Columns: raw.Columns}
	for _, r := range raw.Rows {
		t.Rows = append(t.Rows, r.C)
	}
	return t
}

// Filters is what a dashboard builds its line, date and workcell selectors from.
type Filters struct {
	Lines     []string           `json:"lines"`
	Dates     []string           `json:"dates"`
	Workcells []poddash.Workcell `json:"workcells"`
}

// FiltersOf collects the selector values of a dataset, dates as MM/DD/YYYY.
func FiltersOf(ds *poddash.Dataset) Filters {
	f := Filters{Lines: ds.Lines(), Workcells: poddash.Workcells()}
	for _, d := range ds.Dates() {
		f.Dates = append(f.Dates, poddash.FormatDate(d))
	}
	return f
}

// FiltersTable tabulates selector values one kind per row.
func FiltersTable(f Filters) Table {
	t := Table{Columns: []string{"Filter", "Values"}}
	t.Rows = append(t.Rows, []string{"line", strings.Join(f.Lines, " ")})
	t.Rows = append(t.Rows, []string{"date", strings.Join(f.Dates, " ")})
	cells := make([]string, len(f.Workcells))
	for i, w := range f.Workcells {
		cells[i] = strconv.Itoa(w.Index)
	}
	t.Rows = append(t.Rows, []string{"workcell", strings.Join(cells, " ")})
	return t
}
