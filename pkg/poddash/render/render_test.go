package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/benji822/pod-dash-app/pkg/poddash"
	"github.com/benji822/pod-dash-app/pkg/poddash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", "CSV", " table "} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(models.Breakdown{{Reason: "jam", Seconds: 90}}, false)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"reason":"jam","seconds":90}]`, string(data))

	pretty, err := ToJSON(map[string]int{"a": 1}, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"a\": 1")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, BreakdownTable(models.Breakdown{
		{Reason: "jam", Seconds: 90},
		{Reason: "idle, planned", Seconds: 5},
	}))
	require.NoError(t, err)
	assert.Equal(t, "Reason,Seconds\njam,90\n\"idle, planned\",5\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, Table{
		Columns: []string{"Reason", "Seconds"},
		Rows:    [][]string{{"jam", "90"}, {"停止", "5"}},
	}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "+--------+---------+", lines[0])
	assert.Equal(t, "| Reason | Seconds |", lines[1])
	assert.Equal(t, "| jam    | 90      |", lines[3])
	assert.Equal(t, "| 停止   | 5       |", lines[4])
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, Table{Columns: []string{"A"}}))
	assert.Contains(t, buf.String(), "(no rows)")
}

func TestOutputTable(t *testing.T) {
	rows := poddash.FormatOutputRows([]models.OutputRecord{{
		Createtime:   time.Date(2022, 7, 1, 8, 0, 0, 0, time.UTC),
		HourlyOutput: 7,
		NGRate:       0.5,
		Extra:        map[string]string{"Shift": "B", "Operator": "x"},
	}})

	table := OutputTable(rows)
	assert.Equal(t, []string{
		"Createtime", "HourlyOutput", "NGRate", "Yield", "YieldWithoutSample", "Operator", "Shift",
	}, table.Columns)
	assert.Equal(t, [][]string{
		{"2022-07-01 08:00:00", "7", "50.00%", "0.00%", "0.00%", "x", "B"},
	}, table.Rows)
}

func TestHourlyTable(t *testing.T) {
	table := HourlyTable([]models.DowntimeHourlyRecord{{
		Createtime:   time.Date(2022, 7, 1, 9, 0, 0, 0, time.UTC),
		Workcell:     3,
		TotalSeconds: 150,
		TotalMinutes: 2,
	}})
	assert.Equal(t, [][]string{{"2022-07-01 09:00:00", "3", "150", "2"}}, table.Rows)
}

func TestWriteJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, FormatJSON, models.Breakdown{{Reason: "jam", Seconds: 90}}, Table{}, false)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"reason":"jam","seconds":90}]`, buf.String())
}
