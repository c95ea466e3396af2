package plot

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadWithHeader(t *testing.T) {
	path := writeCSV(t, "time,value\n1,10\n2,20\n3,15\n")
	tbl, err := Read(path, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"time", "value"}, tbl.Headers)
	assert.Len(t, tbl.Rows, 3)
	assert.Equal(t, []string{"1", "2", "3"}, tbl.Column(0))
}

func TestReadWithoutHeader(t *testing.T) {
	path := writeCSV(t, "1,10\n2,20\n")
	tbl, err := Read(path, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"col0", "col1"}, tbl.Headers)
	assert.Len(t, tbl.Rows, 2)
}

func TestReadSniffsDelimiter(t *testing.T) {
	path := writeCSV(t, "a;b;c\n1;2;3\n")
	tbl, err := Read(path, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, tbl.Headers)

	path = writeCSV(t, "a\tb\n1\t2\n")
	tbl, err = Read(path, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Headers)
}

func TestReadEmpty(t *testing.T) {
	path := writeCSV(t, "")
	_, err := Read(path, 0)
	assert.ErrorIs(t, err, ErrEmptyCSV)
}

func TestFloats(t *testing.T) {
	values, skipped := Floats([]string{"1.5", " 2 ", "oops", "", "-3"})
	assert.Equal(t, []float64{1.5, 2, -3}, values)
	assert.Equal(t, 2, skipped)
}

func TestFloatsRejectsNonFinite(t *testing.T) {
	// strconv.ParseFloat accepts "NaN" and "Inf" spellings, but neither
	// maps to a chart cell.
	values, skipped := Floats([]string{"1", "NaN", "Inf", "-Inf", "2"})
	assert.Equal(t, []float64{1, 2}, values)
	assert.Equal(t, 3, skipped)
}

func TestPointsKeepsRowsAligned(t *testing.T) {
	xs, ys, skipped := Points([]string{"1", "oops", "3"}, []string{"10", "20", "30"})
	assert.Equal(t, []float64{1, 3}, xs)
	assert.Equal(t, []float64{10, 30}, ys)
	assert.Equal(t, 1, skipped)
}

func TestPointsDropsRowOnEitherSide(t *testing.T) {
	xs, ys, skipped := Points([]string{"1", "2", "3"}, []string{"10", "NaN", "30"})
	assert.Equal(t, []float64{1, 3}, xs)
	assert.Equal(t, []float64{10, 30}, ys)
	assert.Equal(t, 1, skipped)
}

func TestTimePoints(t *testing.T) {
	xs, ys, skipped := TimePoints(
		[]string{"2024-01-01", "bad", "2024-01-02"},
		[]string{"5", "6", "7"},
	)
	require.Len(t, xs, 2)
	assert.Equal(t, []float64{5, 7}, ys)
	assert.Equal(t, 1, skipped)
	assert.Greater(t, xs[1], xs[0])
}

func TestTimes(t *testing.T) {
	values, skipped := Times([]string{"2024-01-02", "2024/01/03", "garbage"})
	assert.Len(t, values, 2)
	assert.Equal(t, 1, skipped)
	assert.True(t, values[1].After(values[0]))
}

func TestScatter(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 1, 4, 9, 16}
	out, err := Scatter(xs, ys, Options{Width: 20, Height: 8, Title: "squares"})
	require.NoError(t, err)

	assert.Contains(t, out, "squares")
	assert.Contains(t, out, "•")
	assert.Contains(t, out, "└")
	// y-axis extremes appear as labels
	assert.Contains(t, out, "16")
	assert.True(t, strings.Contains(out, "0"))
}

func TestScatterIgnoresNonFinitePoints(t *testing.T) {
	xs := []float64{0, math.NaN(), 2, 3}
	ys := []float64{0, 1, math.Inf(1), 9}
	out, err := Scatter(xs, ys, Options{Width: 12, Height: 6})
	require.NoError(t, err)
	assert.Contains(t, out, "•")
}

func TestScatterAllPointsNonFinite(t *testing.T) {
	_, err := Scatter([]float64{math.NaN(), math.NaN()}, []float64{1, 2}, Options{})
	assert.Error(t, err)
}

func TestScatterTooFewPoints(t *testing.T) {
	_, err := Scatter([]float64{1}, []float64{1}, Options{})
	assert.Error(t, err)
}

func TestScatterFlatSeries(t *testing.T) {
	out, err := Scatter([]float64{0, 1, 2}, []float64{5, 5, 5}, Options{Width: 10, Height: 4})
	require.NoError(t, err)
	assert.Contains(t, out, "•")
}
