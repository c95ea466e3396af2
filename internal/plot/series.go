package plot

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Datetime layouts accepted for x-axis columns, most specific first.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
}

// parseFloat parses one cell. Non-finite values (NaN, ±Inf) are rejected
// along with non-numeric text; neither can be mapped to a chart cell.
func parseFloat(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseTime(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Floats parses a column of cells into float64 values, reporting how many
// cells were skipped as non-numeric or non-finite. Skipped cells are
// dropped, not zero-filled.
func Floats(cells []string) (values []float64, skipped int) {
	values = make([]float64, 0, len(cells))
	for _, c := range cells {
		v, ok := parseFloat(c)
		if !ok {
			skipped++
			continue
		}
		values = append(values, v)
	}
	return values, skipped
}

// Times parses a column of cells as datetimes, trying each known layout.
func Times(cells []string) (values []time.Time, skipped int) {
	values = make([]time.Time, 0, len(cells))
	for _, c := range cells {
		t, ok := parseTime(c)
		if !ok {
			skipped++
			continue
		}
		values = append(values, t)
	}
	return values, skipped
}

// Points pairs an x and a y column row-wise. A row is dropped whenever
// either cell fails to parse, so surviving points always come from the
// same row; skipped counts dropped rows.
func Points(xcells, ycells []string) (xs, ys []float64, skipped int) {
	n := len(xcells)
	if len(ycells) < n {
		n = len(ycells)
	}
	xs = make([]float64, 0, n)
	ys = make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x, okx := parseFloat(xcells[i])
		y, oky := parseFloat(ycells[i])
		if !okx || !oky {
			skipped++
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, skipped
}

// TimePoints pairs a datetime x column with a numeric y column row-wise,
// mapping datetimes to Unix seconds. Rows with an unparseable cell on
// either side are dropped whole.
func TimePoints(xcells, ycells []string) (xs, ys []float64, skipped int) {
	n := len(xcells)
	if len(ycells) < n {
		n = len(ycells)
	}
	xs = make([]float64, 0, n)
	ys = make([]float64, 0, n)
	for i := 0; i < n; i++ {
		t, okx := parseTime(xcells[i])
		y, oky := parseFloat(ycells[i])
		if !okx || !oky {
			skipped++
			continue
		}
		xs = append(xs, float64(t.Unix()))
		ys = append(ys, y)
	}
	return xs, ys, skipped
}
