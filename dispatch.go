package main

// Dispatcher delivers actions to the target window through the automation
// tool. Key and click delivery get one retry after a forced window refresh,
// which covers the window having been closed and reopened between actions.
type Dispatcher struct {
	tool    InputTool
	windows *WindowCache
}

func NewDispatcher(tool InputTool, windows *WindowCache) *Dispatcher {
	return &Dispatcher{tool: tool, windows: windows}
}

// Send delivers count events of the action to the target window. Returns
// false when the window cannot be found or both delivery attempts fail; the
// event is dropped either way, the caller never retries.
func (d *Dispatcher) Send(a Action, count int) bool {
	var inject func(window string) error
	switch a.Kind {
	case KindKey:
		inject = func(window string) error { return d.tool.Key(window, a.Value, count, true) }
	case KindMouse:
		inject = func(window string) error { return d.tool.Click(window, a.Value, count) }
	default:
		logger.Warn("dispatch: unsupported action kind", "kind", int(a.Kind), "value", a.Value)
		return false
	}
	return d.withWindow(inject)
}

// withWindow runs an injection against the cached target window, forcing one
// re-resolution and retry when the first attempt fails.
func (d *Dispatcher) withWindow(inject func(window string) error) bool {
	window, ok := d.windows.Resolve(false)
	if !ok {
		logger.Error("dispatch: target window not found, cannot send events")
		return false
	}

	err := inject(window)
	if err == nil {
		return true
	}
	logger.Debug("dispatch: delivery failed, refreshing target window", "err", err)

	if window, ok = d.windows.Resolve(true); ok {
		if err = inject(window); err == nil {
			return true
		}
	}
	logger.Error("dispatch: failed to deliver events to target window", "err", err)
	return false
}

// MoveRelative moves the pointer relative to its current position. Pointer
// motion is not tied to the target window. Does nothing when both deltas are
// zero.
func (d *Dispatcher) MoveRelative(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	if err := d.tool.MoveRelative(dx, dy); err != nil {
		logger.Warn("dispatch: relative move failed", "dx", dx, "dy", dy, "err", err)
	}
}
