package browse

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettle is how long the database must be quiet before a change is reported.
const DefaultSettle = 200 * time.Millisecond

// Watcher reports changes to a database file made by any process.
type Watcher struct {
	fs        *fsnotify.Watcher
	base      string
	changes   chan struct{}
	done      chan struct{}
	debouncer *Debouncer
	logger    *slog.Logger
}

// Watch starts watching the database at path. Bursts of writes to the file or
// its journal are coalesced into one notification on Changes.
func Watch(path string, settle time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if settle <= 0 {
		settle = DefaultSettle
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		fs:        fsw,
		base:      filepath.Base(path),
		changes:   make(chan struct{}, 1),
		done:      make(chan struct{}),
		debouncer: NewDebouncer(settle),
		logger:    logger,
	}
	go w.loop()
	return w, nil
}

// Changes delivers one value per settled burst of changes.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	w.debouncer.Cancel()
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("database changed", "file", event.Name, "op", event.Op.String())
			w.debouncer.Debounce(w.notify)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// relevant matches the database file and its -journal, -wal and -shm siblings.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.HasPrefix(filepath.Base(event.Name), w.base)
}

func (w *Watcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
