package word

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// Preview renders a markdown file for the terminal.
func Preview(mdPath string, width int) (string, error) {
	raw, err := os.ReadFile(mdPath)
	if err != nil {
		return "", fmt.Errorf("read markdown: %w", err)
	}
	if width <= 0 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(string(raw))
}
