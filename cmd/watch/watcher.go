package watch

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/LegacyCodeHQ/dialect/standards/registry"
)

const debounceInterval = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"build":        true,
	"target":       true,
	".gradle":      true,
	".idea":        true,
	".vscode":      true,
	".cache":       true,
}

// Source extensions matter because the C++ source probe reads them.
var watchedSourceExtensions = map[string]bool{
	".cpp": true,
	".cc":  true,
	".cxx": true,
	".h":   true,
	".hpp": true,
	".hh":  true,
	".hxx": true,
}

// printer serializes detection output and suppresses repeats so the watch
// stream only shows results that actually changed.
type printer struct {
	mu   sync.Mutex
	out  io.Writer
	last string
}

func (p *printer) publish(dir string) {
	lines := detectionLines(dir)

	p.mu.Lock()
	defer p.mu.Unlock()

	if lines == p.last {
		return
	}
	p.last = lines
	fmt.Fprint(p.out, lines)
}

func detectionLines(dir string) string {
	modules := registry.Present(dir)
	if len(modules) == 0 {
		if module, ok := registry.ModuleForName("cpp"); ok {
			modules = append(modules, module)
		}
	}

	var b strings.Builder
	for _, module := range modules {
		detected := module.Detect(dir)
		fmt.Fprintf(&b, "%s %s (%s)\n", detected.Language, detected.Version, detected.Evidence)
	}
	return b.String()
}

func watchAndDetect(ctx context.Context, dir string, out io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, dir); err != nil {
		return fmt.Errorf("failed to watch directories: %w", err)
	}
	addAncestorBuildFileDirs(watcher, dir)

	p := &printer{out: out}
	p.publish(dir)

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevantChange(event) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, func() {
				p.publish(dir)
			})

			if event.Has(fsnotify.Create) {
				addIfDirectory(watcher, event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watcher error: %v\n", err)
		}
	}
}

func isRelevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	if registry.BuildFileNames()[filepath.Base(event.Name)] {
		return true
	}
	return watchedSourceExtensions[filepath.Ext(event.Name)]
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

// addAncestorBuildFileDirs watches the directories above root that hold the
// nearest build files, since evidence can live outside the watched tree.
func addAncestorBuildFileDirs(watcher *fsnotify.Watcher, root string) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return
	}

	for _, module := range registry.Modules() {
		for _, buildFile := range module.BuildFiles() {
			dir := filepath.Dir(absRoot)
			for {
				if _, err := os.Stat(filepath.Join(dir, buildFile)); err == nil {
					_ = watcher.Add(dir)
					break
				}
				parent := filepath.Dir(dir)
				if parent == dir {
					break
				}
				dir = parent
			}
		}
	}
}

func addIfDirectory(watcher *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.IsDir() {
		_ = addWatchDirs(watcher, path)
	}
}
