package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benji822/pod-dash-app/pkg/poddash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLineID(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"POD_L1_output.xlsx", "L1"},
		{"2022/07/L3.xlsx", "L3"},
		{"plant/LA-hourly.xlsx", "LA"},
	}
	for _, tt := range tests {
		got, err := ExtractLineID(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
		assert.Len(t, got, 2)
	}

	_, err := ExtractLineID("pod_output_july.xlsx")
	assert.ErrorIs(t, err, ErrNoLineID)
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestLocate(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "POD_L2.xlsx"))
	touch(t, filepath.Join(root, "sub", "POD_L1.XLSX"))
	touch(t, filepath.Join(root, "POD_L3.xls"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "~$POD_L2.xlsx"))

	files, err := Locate(root, root, models.KindOutput, nil)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, filepath.Join(root, "POD_L2.xlsx"), files[0].Path)
	assert.Equal(t, "L2", files[0].Line)
	assert.Equal(t, models.KindOutput, files[0].Kind)
	assert.Equal(t, "L1", files[1].Line)

	files, err = Locate(root, root, models.KindOutput, []string{".xlsx", ".xls"})
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestLocateMatchesRelativeToBase(t *testing.T) {
	// "LOGS" above the base must not be taken for a line identifier.
	base := filepath.Join(t.TempDir(), "LOGS", "output")
	touch(t, filepath.Join(base, "POD_L7.xlsx"))

	files, err := Locate(base, base, models.KindDowntime, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "L7", files[0].Line)
}

func TestLocateMalformedName(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "POD_L1.xlsx"))
	touch(t, filepath.Join(root, "pod_output.xlsx"))

	_, err := Locate(root, root, models.KindOutput, nil)
	assert.ErrorIs(t, err, ErrNoLineID)
}

func TestLocateMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	_, err := Locate(missing, missing, models.KindOutput, nil)
	assert.ErrorIs(t, err, ErrRootNotFound)
}
