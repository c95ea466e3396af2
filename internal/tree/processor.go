package tree

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
)

// Processor annotates a file visited by the walk. It receives the full
// path and returns a status string shown next to the entry; an empty
// string hides the annotation. Processors must not assume any working
// directory.
type Processor func(path string) (string, error)

var registry = map[string]Processor{}

// Register makes a processor available to `tree --exec <name>`.
// Registering a duplicate name panics; names are package wiring, not user
// input.
func Register(name string, p Processor) {
	if _, dup := registry[name]; dup {
		panic("tree: duplicate processor " + name)
	}
	registry[name] = p
}

// Lookup resolves a registered processor by name.
func Lookup(name string) (Processor, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists registered processors, sorted, for help output.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// stemTest matches filenames whose stem ends in "_test", capturing the
// stem without the suffix and the extension.
var stemTest = regexp.MustCompile(`^(.+?)_test(\.[^.]+)?$`)

// TestFound reports "OK" for files whose name stem ends with "_test".
func TestFound(path string) (string, error) {
	if stemTest.MatchString(filepath.Base(path)) {
		return "OK", nil
	}
	return "", nil
}

// StripTest reports the path a "_test" file would have after removing the
// suffix from its stem. Non-matching files report nothing.
func StripTest(path string) (string, error) {
	m := stemTest.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return "", nil
	}
	renamed := filepath.Join(filepath.Dir(path), m[1]+m[2])
	return fmt.Sprintf("-> %s", renamed), nil
}

func init() {
	Register("testfound", TestFound)
	Register("striptest", StripTest)
}
