// Package clock renders a full-screen seven-segment digital clock,
// stopwatch and countdown in the terminal.
package clock

import "strings"

// Seven-segment layout, one bit per segment:
//
//	 aaa
//	f   b
//	 ggg
//	e   c
//	 ddd
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

var digitSegments = [10]uint8{
	segA | segB | segC | segD | segE | segF,        // 0
	segB | segC,                                    // 1
	segA | segB | segG | segE | segD,               // 2
	segA | segB | segG | segC | segD,               // 3
	segF | segG | segB | segC,                      // 4
	segA | segF | segG | segC | segD,               // 5
	segA | segF | segG | segE | segC | segD,        // 6
	segA | segB | segC,                             // 7
	segA | segB | segC | segD | segE | segF | segG, // 8
	segA | segB | segC | segD | segF | segG,        // 9
}

const blockChar = "█"

// renderDigit draws one digit as 7 rows. inner controls the width of the
// horizontal bars and the gap between the vertical bars.
func renderDigit(segments uint8, inner int) []string {
	hbar := strings.Repeat(blockChar, inner)
	space := strings.Repeat(" ", inner)

	vert := func(on bool) string {
		if on {
			return blockChar
		}
		return " "
	}
	horiz := func(on bool) string {
		if on {
			return " " + hbar + " "
		}
		return " " + space + " "
	}

	rows := make([]string, 0, 7)
	rows = append(rows, horiz(segments&segA != 0))
	for i := 0; i < 2; i++ {
		rows = append(rows, vert(segments&segF != 0)+space+vert(segments&segB != 0))
	}
	rows = append(rows, horiz(segments&segG != 0))
	for i := 0; i < 2; i++ {
		rows = append(rows, vert(segments&segE != 0)+space+vert(segments&segC != 0))
	}
	rows = append(rows, horiz(segments&segD != 0))
	return rows
}

// renderColon draws the ":" glyph at the same 7-row height as the digits,
// as two stacked dots around the middle rows.
func renderColon(width int) []string {
	rows := make([]string, 7)
	for i := range rows {
		rows[i] = strings.Repeat(" ", width)
	}
	mid := width / 2
	for _, r := range []int{2, 4} {
		line := []rune(rows[r])
		for _, c := range []int{mid - 1, mid} {
			if c >= 0 && c < len(line) {
				line[c] = '█'
			}
		}
		rows[r] = string(line)
	}
	return rows
}

// RenderBanner renders a time string such as "12:34:56" as a multi-line
// seven-segment banner. Characters other than digits and ':' are skipped.
func RenderBanner(timestr string, inner, gap int) string {
	var glyphs [][]string
	digitWidth := inner + 2

	for _, ch := range timestr {
		switch {
		case ch >= '0' && ch <= '9':
			glyphs = append(glyphs, renderDigit(digitSegments[ch-'0'], inner))
		case ch == ':':
			glyphs = append(glyphs, renderColon(digitWidth))
		}
	}
	if len(glyphs) == 0 {
		return ""
	}

	spacer := strings.Repeat(" ", gap)
	lines := make([]string, 7)
	for r := 0; r < 7; r++ {
		row := make([]string, len(glyphs))
		for i, g := range glyphs {
			row[i] = g[r]
		}
		lines[r] = strings.Join(row, spacer)
	}
	return strings.Join(lines, "\n")
}
