package clock

import "github.com/charmbracelet/lipgloss"

// Size presets map to the inner thickness passed to the segment renderer.
var sizePresets = map[string]int{
	"small":  2,
	"medium": 4,
	"large":  6,
	"xlarge": 8,
}

var colorPresets = map[string]lipgloss.Color{
	"cyan":    lipgloss.Color("14"),
	"magenta": lipgloss.Color("13"),
	"green":   lipgloss.Color("10"),
	"yellow":  lipgloss.Color("11"),
	"red":     lipgloss.Color("9"),
	"blue":    lipgloss.Color("12"),
	"white":   lipgloss.Color("15"),
}

// SizeInner resolves a size preset name, falling back to "large".
func SizeInner(name string) int {
	if inner, ok := sizePresets[name]; ok {
		return inner
	}
	return sizePresets["large"]
}

// BannerStyle returns the style for the rendered banner. Unknown color
// names fall back to cyan, the default clock color.
func BannerStyle(color string) lipgloss.Style {
	c, ok := colorPresets[color]
	if !ok {
		c = colorPresets["cyan"]
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}
