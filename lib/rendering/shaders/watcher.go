package shaders

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jhenstridge/go-inotify"
)

// editors tend to write in several steps, give them a moment
const settleTime = 100 * time.Millisecond

// Directories are watched rather than the files themselves, so saves that
// replace the file by renaming a temporary one over it are seen too.
const watchMask = inotify.IN_CLOSE_WRITE | inotify.IN_MOVED_TO | inotify.IN_ONLYDIR

// Watcher signals when one of the watched shader files has been rewritten.
// Multiple changes before the render loop picks them up collapse into one.
type Watcher struct {
	watcher *inotify.Watcher
	reload  chan string
	log     *slog.Logger

	// cleaned absolute path -> path as given
	files map[string]string
}

func NewWatcher(paths ...string) (*Watcher, error) {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create inotify watcher: %w", err)
	}

	w := &Watcher{
		watcher: watcher,
		reload:  make(chan string, 1),
		log:     slog.Default().With(slog.String("module", "shaders")),
		files:   make(map[string]string),
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		if path == "" {
			continue
		}
		abs, err := w.addFile(path, dirs)
		if err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("could not watch %s: %w", path, err)
		}
		w.files[abs] = path
		w.log.Debug(fmt.Sprintf("Watching %s", path))
	}
	return w, nil
}

func (w *Watcher) addFile(path string, dirs map[string]bool) (string, error) {
	_, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(abs)
	if !dirs[dir] {
		_, err = w.watcher.AddWatch(dir, watchMask)
		if err != nil {
			return "", err
		}
		dirs[dir] = true
	}
	return abs, nil
}

func (w *Watcher) Start() {
	go w.watch()
}

func (w *Watcher) watch() {
	for ev := range w.watcher.Event {
		if ev.Mask&(inotify.IN_CLOSE_WRITE|inotify.IN_MOVED_TO) == 0 || ev.Watch == nil {
			continue
		}
		path, ok := w.files[filepath.Join(ev.Watch.Path, ev.Name)]
		if !ok {
			continue
		}
		w.log.Debug(fmt.Sprintf("Shader %s changed", path))
		time.Sleep(settleTime)

		select {
		case w.reload <- path:
		default:
			// a reload is already pending
		}
	}
}

// Reloads yields the path of a changed shader file, as it was passed to
// NewWatcher.
func (w *Watcher) Reloads() <-chan string {
	return w.reload
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
