package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hypnosis-landing/internal/content"
)

const interval = 20 * time.Millisecond

func write(t *testing.T, path, data string, mod time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
}

func start(t *testing.T, path string) <-chan *content.Catalog {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	changes := make(chan *content.Catalog, 4)
	go func() {
		defer close(done)
		Watch(ctx, path, interval, func(c *content.Catalog) { changes <- c })
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	// let the watcher take its first fingerprint
	time.Sleep(3 * interval)
	return changes
}

func TestWatchReportsValidChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	base := time.Now().Add(-time.Hour)
	write(t, path, "business:\n  name: First\n", base)

	changes := start(t, path)

	good := `business:
  name: Second
  person: Ron Queeney
  phone: "(813) 919-5884"
`
	write(t, path, good, base.Add(time.Minute))

	select {
	case c := <-changes:
		if c.Business.Name != "Second" {
			t.Errorf("Expected business 'Second', got '%s'", c.Business.Name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a change notification")
	}
}

func TestWatchSkipsInvalidChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	base := time.Now().Add(-time.Hour)
	write(t, path, "faq: []\n", base)

	changes := start(t, path)

	write(t, path, "business:\n  phone: not-a-number\n", base.Add(time.Minute))

	select {
	case c := <-changes:
		t.Fatalf("Expected invalid content to be skipped, got %+v", c.Business)
	case <-time.After(10 * interval):
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		Watch(ctx, path, interval, func(*content.Catalog) {})
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
