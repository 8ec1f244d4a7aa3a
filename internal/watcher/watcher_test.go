package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// collectorHandler records every burst the watcher delivers.
type collectorHandler struct {
	mu     sync.Mutex
	bursts [][]string
}

func (c *collectorHandler) handle(paths []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bursts = append(c.bursts, paths)
}

func (c *collectorHandler) wait(t *testing.T, n int) [][]string {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		c.mu.Lock()
		got := len(c.bursts)
		c.mu.Unlock()
		if got >= n {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.bursts) < n {
		t.Fatalf("got %d bursts, want at least %d", len(c.bursts), n)
	}
	out := make([][]string, len(c.bursts))
	copy(out, c.bursts)
	return out
}

func TestWatcherDetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.toml")
	if err := os.WriteFile(path, []byte("name = \"a\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ch := &collectorHandler{}
	w, err := New(ch.handle, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch(dir); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("name = \"b\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	bursts := ch.wait(t, 1)
	found := false
	for _, p := range bursts[0] {
		if p == path {
			found = true
		}
	}
	if !found {
		t.Errorf("burst %v does not include %s", bursts[0], path)
	}
}

func TestWatcherCoalescesBurst(t *testing.T) {
	dir := t.TempDir()

	ch := &collectorHandler{}
	w, err := New(ch.handle, WithDebounce(100*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch(dir); err != nil {
		t.Fatal(err)
	}

	// Several rapid writes to the same file should arrive as one burst.
	path := filepath.Join(dir, "user.json")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte(`{"name":"x"}`), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	ch.wait(t, 1)
	time.Sleep(200 * time.Millisecond)

	ch.mu.Lock()
	got := len(ch.bursts)
	ch.mu.Unlock()
	if got != 1 {
		t.Errorf("bursts = %d, want 1", got)
	}
}

func TestWatcherIgnoresUnrelatedExtensions(t *testing.T) {
	dir := t.TempDir()

	ch := &collectorHandler{}
	w, err := New(ch.handle, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch(dir); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(200 * time.Millisecond)
	ch.mu.Lock()
	got := len(ch.bursts)
	ch.mu.Unlock()
	if got != 0 {
		t.Errorf("bursts = %d, want 0 for non-binding file", got)
	}
}

func TestWatcherErrors(t *testing.T) {
	w, err := New(func([]string) {})
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Watch("/no/such/path"); !errors.Is(err, ErrPathNotExist) {
		t.Errorf("Watch(missing) error = %v, want ErrPathNotExist", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Watch(t.TempDir()); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Watch after close error = %v, want ErrWatcherClosed", err)
	}
	// Close is idempotent.
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
