package poddash

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/benji822/pod-dash-app/pkg/poddash/models"
)

// DateLayout is the date format exchanged with the presentation layer.
const DateLayout = "01/02/2006"

// TimestampLayout is how record timestamps are shown.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatDate formats a calendar date as MM/DD/YYYY.
func FormatDate(d civil.Date) string {
	return d.In(time.UTC).Format(DateLayout)
}

// ParseDate parses an MM/DD/YYYY date. Single-digit month and day are accepted.
func ParseDate(s string) (civil.Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateLayout, "1/2/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.DateOf(t), nil
		}
	}
	return civil.Date{}, fmt.Errorf("invalid date %q, want MM/DD/YYYY", s)
}

// FormatRate formats a fractional rate as a percentage with two decimals:
// 0.1234 becomes "12.34%".
func FormatRate(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// ParseRate is the inverse of FormatRate.
func ParseRate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("invalid rate %q: missing %%", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	return v / 100, nil
}

// OutputRow is an output record prepared for display: timestamp as text and
// rates as percentages.
type OutputRow struct {
	Createtime         string            `json:"Createtime"`
	HourlyOutput       int64             `json:"HourlyOutput"`
	NGRate             string            `json:"NGRate"`
	Yield              string            `json:"Yield"`
	YieldWithoutSample string            `json:"YieldWithoutSample"`
	Extra              map[string]string `json:"extra,omitempty"`
}

// FormatOutputRows derives display rows from output records.
func FormatOutputRows(records []models.OutputRecord) []OutputRow {
	rows := make([]OutputRow, len(records))
	for i, rec := range records {
		rows[i] = OutputRow{
			Createtime:         rec.Createtime.Format(TimestampLayout),
			HourlyOutput:       rec.HourlyOutput,
			NGRate:             FormatRate(rec.NGRate),
			Yield:              FormatRate(rec.Yield),
			YieldWithoutSample: FormatRate(rec.YieldWithoutSample),
			Extra:              rec.Extra,
		}
	}
	return rows
}
