package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bft-labs/aoc/pkg/log"
)

func TestDayFromPath(t *testing.T) {
	tests := []struct {
		path string
		want int
		ok   bool
	}{
		{path: "/in/day04.txt", want: 4, ok: true},
		{path: "day12.txt", want: 12, ok: true},
		{path: "/in/day4.txt", want: 4, ok: true},
		{path: "/in/answers.toml", ok: false},
		{path: "/in/notes.txt", ok: false},
		{path: "/in/day99.txt", ok: false},
		{path: "/in/day04.txt.swp", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := DayFromPath(tt.path)
			if ok != tt.ok || got != tt.want {
				t.Errorf("DayFromPath(%q) = %d, %v; want %d, %v", tt.path, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func startWatcher(t *testing.T, cfg Config) <-chan int {
	t.Helper()
	changed := make(chan int, 16)
	w, err := New(cfg, func(ctx context.Context, day int) { changed <- day }, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run returned error: %v", err)
		}
		w.Close()
	})
	return changed
}

func TestWatcher_CallsBackOnInputChange(t *testing.T) {
	dir := t.TempDir()
	changed := startWatcher(t, Config{Dir: dir, Debounce: 20 * time.Millisecond})

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(filepath.Join(dir, "day03.txt"), []byte("0101\n"), 0o644); err != nil {
			t.Fatalf("write input: %v", err)
		}
	}

	select {
	case day := <-changed:
		if day != 3 {
			t.Errorf("callback day = %d, want 3", day)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no callback after input change")
	}
}

func TestWatcher_DayFilter(t *testing.T) {
	dir := t.TempDir()
	changed := startWatcher(t, Config{Dir: dir, Debounce: 10 * time.Millisecond, Days: []int{1}})

	if err := os.WriteFile(filepath.Join(dir, "day02.txt"), []byte("forward 1\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	select {
	case day := <-changed:
		t.Fatalf("unexpected callback for day %d", day)
	case <-time.After(200 * time.Millisecond):
	}

	if err := os.WriteFile(filepath.Join(dir, "day01.txt"), []byte("1\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	select {
	case day := <-changed:
		if day != 1 {
			t.Errorf("callback day = %d, want 1", day)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no callback for watched day")
	}
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New(Config{Dir: filepath.Join(t.TempDir(), "missing")}, func(context.Context, int) {}, nil)
	if err == nil {
		t.Fatal("New on a missing directory returned nil error")
	}
}
