// Package plot reads CSV files and renders terminal scatter charts.
package plot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// ErrEmptyCSV is returned when the file contains no rows at all.
var ErrEmptyCSV = errors.New("csv is empty")

// Table is a parsed CSV file. Headers are synthesized as col0..colN when
// the first row looks numeric.
type Table struct {
	Headers []string
	Rows    [][]string
}

// candidate delimiters, tried in order when sniffing.
var delimiters = []rune{',', '\t', ';', '|', ' '}

// sniffDelimiter picks the candidate occurring most often in the sample's
// first line, defaulting to a comma.
func sniffDelimiter(sample string) rune {
	line := sample
	if i := strings.IndexByte(sample, '\n'); i >= 0 {
		line = sample[:i]
	}
	best, bestCount := ',', 0
	for _, d := range delimiters {
		if n := strings.Count(line, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// Read parses the CSV at path. A zero delimiter means sniff from the
// first 4 KiB. Ragged rows are tolerated.
func Read(path string, delimiter rune) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	if delimiter == 0 {
		sample := make([]byte, 4096)
		n, _ := f.Read(sample)
		delimiter = sniffDelimiter(string(sample[:n]))
		if _, err := f.Seek(0, 0); err != nil {
			return Table{}, err
		}
	}

	r := csv.NewReader(f)
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return Table{}, ErrEmptyCSV
	}

	first := rows[0]
	if rowHasAlpha(first) {
		headers := make([]string, len(first))
		for i, h := range first {
			h = strings.TrimSpace(h)
			if h == "" {
				h = fmt.Sprintf("col%d", i)
			}
			headers[i] = h
		}
		return Table{Headers: headers, Rows: rows[1:]}, nil
	}

	headers := make([]string, len(first))
	for i := range first {
		headers[i] = fmt.Sprintf("col%d", i)
	}
	return Table{Headers: headers, Rows: rows}, nil
}

// rowHasAlpha implements the header heuristic: any alphabetic character in
// the first row means the row is a header.
func rowHasAlpha(row []string) bool {
	for _, cell := range row {
		for _, r := range cell {
			if unicode.IsLetter(r) {
				return true
			}
		}
	}
	return false
}

// Column extracts column idx, with missing cells as empty strings.
func (t Table) Column(idx int) []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			out[i] = row[idx]
		}
	}
	return out
}
