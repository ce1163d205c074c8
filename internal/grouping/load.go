package grouping

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

// Load reads a names list from path. Files ending in .xlsx are read from
// their first sheet; anything else is parsed as CSV.
func Load(path string) (Groups, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return loadXLSX(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open names file: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse reads comma-separated group,name rows without a header. Blank lines
// are skipped by the CSV reader; a leading UTF-8 BOM is dropped.
func Parse(r io.Reader) (Groups, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	b := newBuilder()
	for first := true; ; first = false {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if first && len(row) > 0 {
			row[0] = strings.TrimPrefix(row[0], utf8BOM)
		}
		if len(row) < 2 {
			line, _ := cr.FieldPos(0)
			return nil, &MalformedRowError{Line: line, Fields: len(row)}
		}
		b.add(row[0], row[1])
	}
	return b.groups, nil
}

// loadXLSX reads the first sheet of an Excel workbook. Trailing rows that
// are entirely empty are dropped; excelize already trims trailing empty cells.
func loadXLSX(path string) (Groups, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open names file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%s: read rows: %w", path, err)
	}
	for len(rows) > 0 && isBlankRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}

	g, err := rowsToGroups(rows, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

// Save writes g to path as a JSON object indented with four spaces, keys in
// group order. The parent directory is created if needed.
func Save(path string, g Groups) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(g); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create groups dir: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write groups file: %w", err)
	}
	return nil
}
