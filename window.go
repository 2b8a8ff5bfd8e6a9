package main

import "sync"

// WindowCache resolves and caches the X11 window ID of the target
// application. The ID is shared between the event loop and repeat task
// goroutines, so all access goes through the mutex.
type WindowCache struct {
	mu    sync.Mutex
	tool  InputTool
	title string
	id    string // empty until resolved
}

func NewWindowCache(tool InputTool, title string) *WindowCache {
	return &WindowCache{tool: tool, title: title}
}

// Resolve returns the target window ID, searching for it when the cache is
// empty or force is set. The first visible window whose title matches wins;
// ties fall to whatever order the search tool reports, which usually but not
// guaranteedly follows stacking order. A failed search leaves the cache
// empty so the next call retries.
func (w *WindowCache) Resolve(force bool) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if force {
		w.id = ""
	}
	if w.id != "" {
		return w.id, true
	}

	ids, err := w.tool.Search(w.title, true)
	if err != nil {
		logger.Debug("window: search failed", "title", w.title, "err", err)
		return "", false
	}
	if len(ids) == 0 {
		logger.Debug("window: no visible match", "title", w.title)
		return "", false
	}
	w.id = ids[0]
	logger.Debug("window: resolved", "title", w.title, "id", w.id)
	return w.id, true
}
