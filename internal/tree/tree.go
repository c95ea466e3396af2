// Package tree renders a styled directory tree, optionally annotating
// files with the output of a registered file processor.
package tree

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	rootStyle = lipgloss.NewStyle().Bold(true)
	dirStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	noteStyle = lipgloss.NewStyle().Faint(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Options control the walk and the rendering.
type Options struct {
	MaxDepth   int  // 0 means unlimited
	SkipHidden bool // skip dotfiles and dot-directories
	Processor  Processor
}

// Render walks root and returns the rendered tree. Unreadable directories
// are rendered inline as "permission denied" leaves; the walk never aborts
// on them.
func Render(root string, opts Options) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", &os.PathError{Op: "tree", Path: root, Err: os.ErrInvalid}
	}

	var b strings.Builder
	b.WriteString(rootStyle.Render("Directory: " + root))
	b.WriteString("\n")
	walk(&b, root, "", 1, opts)
	return b.String(), nil
}

func walk(b *strings.Builder, dir, prefix string, level int, opts Options) {
	if opts.MaxDepth != 0 && level > opts.MaxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		b.WriteString(prefix + "└── " + errStyle.Render("permission denied") + "\n")
		return
	}

	if opts.SkipHidden {
		kept := entries[:0]
		for _, e := range entries {
			if !strings.HasPrefix(e.Name(), ".") {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	for i, e := range entries {
		last := i == len(entries)-1
		connector, childPrefix := "├── ", prefix+"│   "
		if last {
			connector, childPrefix = "└── ", prefix+"    "
		}

		full := filepath.Join(dir, e.Name())
		if e.IsDir() {
			b.WriteString(prefix + connector + dirStyle.Render(e.Name()) + "\n")
			walk(b, full, childPrefix, level+1, opts)
			continue
		}

		line := prefix + connector + e.Name()
		if opts.Processor != nil {
			if note, err := opts.Processor(full); err != nil {
				line += " " + errStyle.Render(err.Error())
			} else if note != "" {
				line += " " + noteStyle.Render(note)
			}
		}
		b.WriteString(line + "\n")
	}
}
