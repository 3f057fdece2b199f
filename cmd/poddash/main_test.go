package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benji822/pod-dash-app/internal/testutil"
	"github.com/benji822/pod-dash-app/pkg/poddash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	day := time.Date(2022, time.July, 1, 0, 0, 0, 0, time.UTC)
	testutil.WriteWorkbook(t, filepath.Join(root, "output", "POD_L1.xlsx"),
		testutil.OutputSheets(poddash.WorkcellCount, day.Add(8*time.Hour), 3)...)
	testutil.WriteWorkbook(t, filepath.Join(root, "downtime", "DT_L1.xlsx"),
		testutil.DowntimeDay(day, 150, map[string]string{"jam": "00:01:30"})...)
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	base := []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--data", writeData(t)}
	cmd.SetArgs(append(args[:1:1], append(base, args[1:]...)...))
	err := cmd.Execute()
	return out.String(), err
}

func TestFiltersCommand(t *testing.T) {
	out, err := execute(t, "filters", "--format", "json")
	require.NoError(t, err)

	var f struct {
		Lines []string `json:"lines"`
		Dates []string `json:"dates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &f))
	assert.Equal(t, []string{"L1"}, f.Lines)
	assert.Equal(t, []string{"07/01/2022"}, f.Dates)
}

func TestOutputCommandCSV(t *testing.T) {
	out, err := execute(t, "output", "--line", "L1", "--date", "07/01/2022", "--workcell", "0", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Createtime,HourlyOutput,NGRate,Yield,YieldWithoutSample", lines[0])
	assert.Equal(t, "2022-07-01 08:00:00,100,1.00%,98.00%,99.00%", lines[1])
}

func TestBreakdownCommand(t *testing.T) {
	out, err := execute(t, "breakdown", "--line", "L1", "--date", "07/01/2022", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"jam":90}`, out)
}

func TestHourlyCommandTable(t *testing.T) {
	out, err := execute(t, "hourly", "--line", "L1", "--date", "07/01/2022", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Total_minutes")
	assert.Contains(t, out, "2022-07-01 08:00:00")
}

func TestQueryCommandErrors(t *testing.T) {
	_, err := execute(t, "output", "--line", "L1", "--date", "2022-07-01")
	assert.Error(t, err)

	_, err = execute(t, "breakdown", "--line", "L9", "--date", "07/01/2022")
	assert.ErrorIs(t, err, poddash.ErrNotFound)

	_, err = execute(t, "output", "--line", "L1")
	assert.Error(t, err, "date is required")

	_, err = execute(t, "filters", "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "filters", "--on-error", "retry")
	assert.Error(t, err)
}
