package parser

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2022, 7, 1, 8, 0, 0, 0, time.UTC)
	tests := []struct {
		input string
	}{
		{"2022-07-01 08:00:00"},
		{"2022-07-01T08:00:00"},
		{"2022-07-01T08:00:00Z"},
		{"07/01/2022 08:00"},
		{"7/1/2022 8:00"},
		{"44743.333333333336"},
	}

	for _, tt := range tests {
		got, err := ParseTimestamp(tt.input)
		if err != nil {
			t.Errorf("ParseTimestamp(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseTimestamp(%q) = %v, expected %v", tt.input, got, want)
		}
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	for _, input := range []string{"", "0", "-3", "yesterday"} {
		if _, err := ParseTimestamp(input); !errors.Is(err, ErrBadValue) {
			t.Errorf("ParseTimestamp(%q) error = %v, expected ErrBadValue", input, err)
		}
	}
}

func TestParseDurationSeconds(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"00:01:30", 90},
		{"0:01:30", 90},
		{"26:00:00", 93600},
		{"1 day, 02:00:00", 93600},
		{"0 days 00:00:05", 5},
		{"2 days 00:00:00.5", 172800.5},
		{"-00:00:10", -10},
		{"", 0},
		{"0", 0},
		{"0.5", 43200},
	}

	for _, tt := range tests {
		got, err := ParseDurationSeconds(tt.input)
		if err != nil {
			t.Errorf("ParseDurationSeconds(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDurationSeconds(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseDurationSecondsInvalid(t *testing.T) {
	for _, input := range []string{"abc", "1:30", "00:61:00", "00:00:75", "1 week 00:00:00"} {
		if _, err := ParseDurationSeconds(input); !errors.Is(err, ErrBadDuration) {
			t.Errorf("ParseDurationSeconds(%q) error = %v, expected ErrBadDuration", input, err)
		}
	}
}

func TestMinutesFromSeconds(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected int64
	}{
		{150, 2}, // 2.5 rounds half to even
		{210, 4}, // 3.5 rounds half to even
		{89, 1},
		{91, 2},
		{0, 0},
		{-120, 0},
	}
	for _, tt := range tests {
		if got := MinutesFromSeconds(tt.seconds); got != tt.expected {
			t.Errorf("MinutesFromSeconds(%v) = %d, expected %d", tt.seconds, got, tt.expected)
		}
	}
}

func TestRoundSeconds(t *testing.T) {
	if got := RoundSeconds(90.5); got != 90 {
		t.Errorf("RoundSeconds(90.5) = %d, expected 90", got)
	}
	if got := RoundSeconds(91.5); got != 92 {
		t.Errorf("RoundSeconds(91.5) = %d, expected 92", got)
	}
}
