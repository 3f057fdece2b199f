package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// SecondsPerDay converts Excel day fractions to seconds.
const SecondsPerDay = 86400

// timestampLayouts are the text forms accepted for Createtime cells that were
// stored as text rather than as Excel serial dates.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"01/02/2006 15:04:05",
	"1/2/2006 15:04:05",
	"01/02/2006 15:04",
	"1/2/2006 15:04",
	"1/2/06 15:04",
	"01/02/2006",
	"1/2/2006",
}

// ParseTimestamp converts a Createtime cell to a time. Numeric cells are Excel
// serial dates (1900 system). The result carries no zone and is returned in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: blank timestamp", ErrBadValue)
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial <= 0 {
			return time.Time{}, fmt.Errorf("%w: timestamp serial %q", ErrBadValue, s)
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", ErrBadValue, err)
		}
		return t.UTC().Round(time.Second), nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a timestamp", ErrBadValue, s)
}

// durationPattern matches "[N day[s][,]] H:MM:SS[.fff]" with an optional sign.
var durationPattern = regexp.MustCompile(`^(-)?(?:(\d+)\s+days?,?\s+)?(\d+):([0-5]?\d):([0-5]?\d(?:\.\d+)?)$`)

// ParseDurationSeconds converts duration text to seconds. Accepted forms are
// clock durations ("00:01:30", "26:00:00", "1 day, 02:00:00", "0 days 00:00:05")
// and bare numbers, which are Excel day fractions as stored for time-formatted
// cells. Blank text is zero.
func ParseDurationSeconds(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %q", ErrBadDuration, s)
		}
		return v * SecondsPerDay, nil
	}

	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrBadDuration, s)
	}
	var days, hours, minutes int64
	if m[2] != "" {
		days, _ = strconv.ParseInt(m[2], 10, 64)
	}
	hours, _ = strconv.ParseInt(m[3], 10, 64)
	minutes, _ = strconv.ParseInt(m[4], 10, 64)
	seconds, _ := strconv.ParseFloat(m[5], 64)

	total := float64(days*SecondsPerDay+hours*3600+minutes*60) + seconds
	if m[1] == "-" {
		total = -total
	}
	return total, nil
}

// RoundSeconds rounds to the nearest whole number, halves to even.
func RoundSeconds(v float64) int64 {
	return int64(math.RoundToEven(v))
}

// MinutesFromSeconds returns seconds/60 rounded half to even, floored at zero.
func MinutesFromSeconds(seconds float64) int64 {
	m := int64(math.RoundToEven(seconds / 60))
	if m < 0 {
		return 0
	}
	return m
}
