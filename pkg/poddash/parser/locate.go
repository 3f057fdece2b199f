package parser

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/benji822/pod-dash-app/pkg/poddash/models"
)

// DefaultExtensions are the workbook extensions scanned when none are configured.
var DefaultExtensions = []string{".xlsx"}

// lineIDPattern matches a line identifier: "L" followed by exactly one character.
var lineIDPattern = regexp.MustCompile(`L.`)

// ExtractLineID returns the first line identifier found in path.
func ExtractLineID(path string) (string, error) {
	id := lineIDPattern.FindString(filepath.ToSlash(path))
	if id == "" {
		return "", fmt.Errorf("%w: %s", ErrNoLineID, path)
	}
	return id, nil
}

// Locate walks dir recursively and returns every workbook whose extension is in
// exts, sorted by path. Line identifiers are matched against the path relative
// to base, so directories above the data root never contribute a match.
func Locate(base, dir string, kind models.WorkbookKind, exts []string) ([]models.WorkbookFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, dir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, dir)
	}
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	var paths []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		// Office lock files share the workbook extension.
		if strings.HasPrefix(d.Name(), "~$") {
			return nil
		}
		if hasExtension(path, exts) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	files := make([]models.WorkbookFile, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(base, path)
		if err != nil {
			rel = path
		}
		line, err := ExtractLineID(rel)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNoLineID, path)
		}
		files = append(files, models.WorkbookFile{Path: path, Line: line, Kind: kind})
	}
	return files, nil
}

func hasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
