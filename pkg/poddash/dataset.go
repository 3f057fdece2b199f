package poddash

import (
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/benji822/pod-dash-app/pkg/poddash/models"
	"github.com/google/uuid"
)

// LineData holds everything loaded for one line.
type LineData struct {
	// Output is indexed by 0-based workcell. All entries are nil when the line
	// has no output workbook.
	Output [WorkcellCount]*models.OutputTable
	// Downtime is keyed by calendar date.
	Downtime map[civil.Date]*models.DowntimeDaySlice
}

// HasOutput reports whether any output workbook was loaded for the line.
func (l *LineData) HasOutput() bool {
	return l.Output[0] != nil
}

// Dataset is the in-memory database built once by Load. It is never modified
// afterwards, so it is safe for concurrent readers without locking.
type Dataset struct {
	snapshot string
	loadedAt time.Time
	lines    map[string]*LineData
	dates    map[civil.Date]struct{}
}

// Snapshot returns an identifier unique to this load.
func (d *Dataset) Snapshot() string { return d.snapshot }

// LoadedAt returns when the dataset was built.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Lines returns every line identifier present in either dataset, sorted.
func (d *Dataset) Lines() []string {
	lines := make([]string, 0, len(d.lines))
	for id := range d.lines {
		lines = append(lines, id)
	}
	sort.Strings(lines)
	return lines
}

// OutputDates returns the distinct calendar dates of a line's output rows, ascending.
func (d *Dataset) OutputDates(line string) []civil.Date {
	ld, ok := d.lines[line]
	if !ok {
		return nil
	}
	set := make(map[civil.Date]struct{})
	for _, table := range ld.Output {
		if table == nil {
			continue
		}
		for _, rec := range table.Records {
			set[civil.DateOf(rec.Createtime)] = struct{}{}
		}
	}
	return sortedDates(set)
}

// DowntimeDates returns the dates a line has downtime groups for, ascending.
func (d *Dataset) DowntimeDates(line string) []civil.Date {
	ld, ok := d.lines[line]
	if !ok {
		return nil
	}
	set := make(map[civil.Date]struct{}, len(ld.Downtime))
	for date := range ld.Downtime {
		set[date] = struct{}{}
	}
	return sortedDates(set)
}

// Dates returns the union of output and downtime dates over all lines,
// ascending. These are the dates a caller may query.
func (d *Dataset) Dates() []civil.Date {
	return sortedDates(d.dates)
}

// HasDate reports whether date is one of Dates.
func (d *Dataset) HasDate(date civil.Date) bool {
	_, ok := d.dates[date]
	return ok
}

// Workcell is a selectable workcell: the 0-based index the queries take and
// the label shown to users.
type Workcell struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// Workcells lists the selectable workcells.
func Workcells() []Workcell {
	cells := make([]Workcell, WorkcellCount)
	for i := range cells {
		cells[i] = Workcell{Index: i, Label: fmt.Sprintf("Workcell %d", i+1)}
	}
	return cells
}

func sortedDates(set map[civil.Date]struct{}) []civil.Date {
	dates := make([]civil.Date, 0, len(set))
	for date := range set {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// builder accumulates tables during Load.
type builder struct {
	lines map[string]*LineData
}

func newBuilder() *builder {
	return &builder{lines: make(map[string]*LineData)}
}

func (b *builder) line(id string) *LineData {
	ld, ok := b.lines[id]
	if !ok {
		ld = &LineData{Downtime: make(map[civil.Date]*models.DowntimeDaySlice)}
		b.lines[id] = ld
	}
	return ld
}

// addOutput appends a workbook's tables to the line. Several workbooks for one
// line are concatenated per workcell in the order they are added.
func (b *builder) addOutput(id string, tables [WorkcellCount]*models.OutputTable) {
	ld := b.line(id)
	for i, table := range tables {
		if ld.Output[i] == nil {
			ld.Output[i] = table
			continue
		}
		ld.Output[i].Sources = append(ld.Output[i].Sources, table.Sources...)
		ld.Output[i].Records = append(ld.Output[i].Records, table.Records...)
	}
}

// addDowntime stages a workbook's day groups, rejecting dates already present
// for the line. Nothing is added when any date conflicts.
func (b *builder) addDowntime(id string, slices []*models.DowntimeDaySlice) error {
	ld := b.line(id)
	seen := make(map[civil.Date]int, len(slices))
	for _, s := range slices {
		if prev, ok := ld.Downtime[s.Date]; ok {
			return fmt.Errorf("%w: %s in group %d, already loaded from %s group %d",
				ErrDuplicateDate, FormatDate(s.Date), s.Group, prev.Source, prev.Group)
		}
		if g, ok := seen[s.Date]; ok {
			return fmt.Errorf("%w: %s in groups %d and %d", ErrDuplicateDate, FormatDate(s.Date), g, s.Group)
		}
		seen[s.Date] = s.Group
	}
	for _, s := range slices {
		ld.Downtime[s.Date] = s
	}
	return nil
}

func (b *builder) drop(id string) {
	delete(b.lines, id)
}

func (b *builder) build() *Dataset {
	d := &Dataset{
		snapshot: uuid.New().String(),
		loadedAt: time.Now(),
		lines:    b.lines,
		dates:    make(map[civil.Date]struct{}),
	}
	for line := range d.lines {
		for _, date := range d.OutputDates(line) {
			d.dates[date] = struct{}{}
		}
		for _, date := range d.DowntimeDates(line) {
			d.dates[date] = struct{}{}
		}
	}
	return d
}
