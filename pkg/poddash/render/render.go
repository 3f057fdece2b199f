// Package render writes query results as JSON, CSV or aligned text tables.
package render

import (
	"fmt"
	"io"
	"strings"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatTable Format = "table"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json, csv, or table)", s)
	}
}

// Table is the tabular view of a result, used by the CSV and text encoders.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Write encodes a result. JSON encodes v directly; CSV and text use t.
func Write(w io.Writer, format Format, v any, t Table, pretty bool) error {
	switch format {
	case FormatJSON:
		data, err := ToJSON(v, pretty)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatTable:
		return WriteTable(w, t)
	default:
		return fmt.Errorf("invalid format: %s", format)
	}
}
