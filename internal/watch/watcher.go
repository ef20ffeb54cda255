// Package watch re-runs puzzles when their input files change.
//
// It watches the input directory for writes to dayNN.txt files and, after a
// short debounce so editors that write in several steps trigger one run,
// calls back with the day number.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/aoc/pkg/log"
	"github.com/bft-labs/aoc/pkg/puzzle"
)

// Func is called with the day whose input changed. Calls never overlap.
type Func func(ctx context.Context, day int)

// Config holds the watcher settings.
type Config struct {
	// Dir is the input directory to watch.
	Dir string
	// Debounce is how long to wait after the last change before calling back.
	// Default: 100 milliseconds
	Debounce time.Duration
	// Days restricts callbacks to these days. Empty means every day.
	Days []int
}

// Watcher watches an input directory.
type Watcher struct {
	dir      string
	debounce time.Duration
	days     map[int]bool
	fn       Func
	logger   log.Logger

	fsw *fsnotify.Watcher

	mu     sync.Mutex // guards timers
	timers map[int]*time.Timer
	runMu  sync.Mutex // serialises fn
	wg     sync.WaitGroup
}

// New starts watching cfg.Dir. The caller must call Run to receive callbacks
// and Close when done.
func New(cfg Config, fn Func, logger log.Logger) (*Watcher, error) {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 100 * time.Millisecond
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(cfg.Dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		dir:      cfg.Dir,
		debounce: cfg.Debounce,
		fn:       fn,
		logger:   logger,
		fsw:      fsw,
		timers:   map[int]*time.Timer{},
	}
	if len(cfg.Days) > 0 {
		w.days = map[int]bool{}
		for _, d := range cfg.Days {
			w.days[d] = true
		}
	}
	return w, nil
}

// DayFromPath maps ".../day04.txt" to 4.
func DayFromPath(path string) (int, bool) {
	base := filepath.Base(path)
	name, ok := strings.CutSuffix(base, ".txt")
	if !ok || !strings.HasPrefix(name, "day") {
		return 0, false
	}
	day, err := puzzle.ParseDay(name)
	if err != nil {
		return 0, false
	}
	return day, true
}

// Run delivers callbacks until ctx is cancelled or the watcher is closed.
// It waits for in-flight callbacks before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.wg.Wait()
	defer w.stopTimers()

	w.logger.Info("watching for input changes", log.String("dir", w.dir))
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			day, ok := DayFromPath(event.Name)
			if !ok || (w.days != nil && !w.days[day]) {
				continue
			}
			w.schedule(ctx, day)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}

// Close stops watching the directory.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) schedule(ctx context.Context, day int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if prev, ok := w.timers[day]; ok && prev.Stop() {
		w.wg.Done()
	}

	w.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()

		w.mu.Lock()
		if w.timers[day] == t {
			delete(w.timers, day)
		}
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		w.runMu.Lock()
		defer w.runMu.Unlock()
		w.logger.Debug("input changed", log.Day(day))
		w.fn(ctx, day)
	})
	w.timers[day] = t
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for day, t := range w.timers {
		if t.Stop() {
			w.wg.Done()
		}
		delete(w.timers, day)
	}
}
