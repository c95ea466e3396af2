package tree

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce coalesces bursts of filesystem events into one re-render.
const debounce = 250 * time.Millisecond

// Watch renders the tree, then re-renders it whenever anything under root
// changes, until ctx is cancelled. New subdirectories are added to the
// watch as they appear.
func Watch(ctx context.Context, root string, opts Options, out io.Writer, logger *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addDirs(watcher, root, opts); err != nil {
		return err
	}
	if err := render(out, root, opts); err != nil {
		return err
	}

	var timer *time.Timer
	redraw := make(chan struct{}, 1)
	schedule := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			select {
			case redraw <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			logger.Debug("fs event", zap.String("op", ev.Op.String()), zap.String("name", ev.Name))
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = addDirs(watcher, ev.Name, opts)
				}
			}
			schedule()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))

		case <-redraw:
			if err := render(out, root, opts); err != nil {
				return err
			}
		}
	}
}

func render(out io.Writer, root string, opts Options) error {
	s, err := Render(root, opts)
	if err != nil {
		return err
	}
	// Clear screen and home the cursor between renders.
	_, err = io.WriteString(out, "\033[2J\033[H"+s)
	return err
}

func addDirs(watcher *fsnotify.Watcher, root string, opts Options) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtrees are rendered, not fatal
		}
		if !d.IsDir() {
			return nil
		}
		if opts.SkipHidden && path != root && len(d.Name()) > 0 && d.Name()[0] == '.' {
			return fs.SkipDir
		}
		return watcher.Add(path)
	})
}
