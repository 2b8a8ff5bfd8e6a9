package main

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// syncBuffer is a goroutine-safe log sink; repeat tasks may log while the
// test goroutine reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// captureLogs points the package logger at a buffer for the duration of the
// test, recording down to debug level.
func captureLogs(t *testing.T) *syncBuffer {
	t.Helper()
	buf := &syncBuffer{}
	old := logger
	logger = slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() { logger = old })
	return buf
}

// countLogs counts captured log lines containing substr.
func countLogs(buf *syncBuffer, substr string) int {
	n := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}

// injection records one synthetic key or click delivered to a window.
type injection struct {
	window string
	value  string
	count  int
}

// searchResult scripts one Search outcome.
type searchResult struct {
	ids []string
	err error
}

// fakeTool is an in-memory InputTool recording every call.
type fakeTool struct {
	mu sync.Mutex

	windows      []string       // static Search result
	searchErr    error          // static Search failure
	searchScript []searchResult // consumed first when non-empty
	searches     int

	keyErrs []error // scripted Key results, consumed in order; nil past the end
	keys    []injection

	clickErrs []error
	clicks    []injection

	moves [][2]int
}

func (f *fakeTool) Search(title string, onlyVisible bool) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches++
	if len(f.searchScript) > 0 {
		r := f.searchScript[0]
		f.searchScript = f.searchScript[1:]
		return r.ids, r.err
	}
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.windows, nil
}

func (f *fakeTool) Key(window, key string, count int, clearModifiers bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, injection{window: window, value: key, count: count})
	if len(f.keyErrs) > 0 {
		err := f.keyErrs[0]
		f.keyErrs = f.keyErrs[1:]
		return err
	}
	return nil
}

func (f *fakeTool) Click(window, button string, count int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clicks = append(f.clicks, injection{window: window, value: button, count: count})
	if len(f.clickErrs) > 0 {
		err := f.clickErrs[0]
		f.clickErrs = f.clickErrs[1:]
		return err
	}
	return nil
}

func (f *fakeTool) MoveRelative(dx, dy int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.moves = append(f.moves, [2]int{dx, dy})
	return nil
}

func (f *fakeTool) keyCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.keys)
}

func (f *fakeTool) clickCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clicks)
}

func (f *fakeTool) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searches
}

func (f *fakeTool) keysSnapshot() []injection {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]injection(nil), f.keys...)
}

func (f *fakeTool) clicksSnapshot() []injection {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]injection(nil), f.clicks...)
}

func (f *fakeTool) movesSnapshot() [][2]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][2]int(nil), f.moves...)
}
