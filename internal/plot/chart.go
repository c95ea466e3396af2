package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	axisStyle  = lipgloss.NewStyle().Faint(true)
	pointStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	labelStyle = lipgloss.NewStyle().Faint(true)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// Options size and label the rendered chart.
type Options struct {
	Width  int // plot cells horizontally, excluding axis gutter
	Height int // plot cells vertically
	Title  string
	XLabel string
	YLabel string
}

const (
	defaultWidth  = 60
	defaultHeight = 16
	gutter        = 10 // y-axis label gutter width
)

// Scatter renders xs/ys pairs into a character-cell scatter chart with a
// labelled frame. Inputs shorter than each other are truncated to the
// common length; pairs with a NaN or infinite coordinate are dropped, as
// they have no cell to land in; fewer than two remaining points cannot
// define a range.
func Scatter(xs, ys []float64, opts Options) (string, error) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	fx := make([]float64, 0, n)
	fy := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if isFinite(xs[i]) && isFinite(ys[i]) {
			fx = append(fx, xs[i])
			fy = append(fy, ys[i])
		}
	}
	xs, ys, n = fx, fy, len(fx)
	if n < 2 {
		return "", fmt.Errorf("scatter: need at least 2 plottable points, got %d", n)
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	xmin, xmax := minMax(xs)
	ymin, ymax := minMax(ys)
	// Degenerate ranges still need a non-zero span to map onto cells.
	if xmax == xmin {
		xmax = xmin + 1
	}
	if ymax == ymin {
		ymax = ymin + 1
	}

	grid := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]bool, width)
	}
	for i := 0; i < n; i++ {
		col := int((xs[i] - xmin) / (xmax - xmin) * float64(width-1))
		row := int((ys[i] - ymin) / (ymax - ymin) * float64(height-1))
		grid[height-1-row][col] = true
	}

	var b strings.Builder
	if opts.Title != "" {
		b.WriteString(strings.Repeat(" ", gutter))
		b.WriteString(titleStyle.Render(opts.Title))
		b.WriteString("\n")
	}

	for r := 0; r < height; r++ {
		label := ""
		switch r {
		case 0:
			label = trimNum(ymax)
		case height - 1:
			label = trimNum(ymin)
		case (height - 1) / 2:
			label = trimNum((ymax + ymin) / 2)
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%*s ", gutter-2, label)))
		b.WriteString(axisStyle.Render("│"))

		var line strings.Builder
		for c := 0; c < width; c++ {
			if grid[r][c] {
				line.WriteString("•")
			} else {
				line.WriteString(" ")
			}
		}
		b.WriteString(pointStyle.Render(line.String()))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", gutter-1))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", width)))
	b.WriteString("\n")

	lo, hi := trimNum(xmin), trimNum(xmax)
	pad := width - len(lo) - len(hi)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(strings.Repeat(" ", gutter))
	b.WriteString(labelStyle.Render(lo + strings.Repeat(" ", pad) + hi))
	b.WriteString("\n")

	if opts.XLabel != "" || opts.YLabel != "" {
		b.WriteString(strings.Repeat(" ", gutter))
		b.WriteString(labelStyle.Render(fmt.Sprintf("x: %s  y: %s", opts.XLabel, opts.YLabel)))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func minMax(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// trimNum formats an axis label compactly, dropping a trailing ".00".
func trimNum(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimSuffix(s, "00")
	s = strings.TrimSuffix(s, ".")
	return s
}
