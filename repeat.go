package main

import (
	"sync"
	"time"
)

// repeatTask is one live hold-repeat goroutine. Closing stop cancels it; the
// task checks the channel around every dispatch, so at most one dispatch can
// still go out after cancellation.
type repeatTask struct {
	stop chan struct{}
}

// Repeater re-fires a held pad's action at a fixed cadence, the way a
// keyboard auto-repeats: an arming delay after the initial press, then one
// dispatch per tick until the pad is released. MIDI hardware sends no
// repeated note-on for a held pad, so the cadence is generated here. At most
// one task runs per note; the mutex makes the check-then-spawn in Start
// atomic against concurrent releases.
type Repeater struct {
	mu       sync.Mutex
	active   map[uint8]*repeatTask
	send     func(a Action, count int)
	delay    time.Duration
	interval time.Duration
}

func NewRepeater(send func(a Action, count int), delay, interval time.Duration) *Repeater {
	return &Repeater{
		active:   make(map[uint8]*repeatTask),
		send:     send,
		delay:    delay,
		interval: interval,
	}
}

// Start spawns a repeat task for the note. No-op for actions without a hold
// repeat count and for notes that already have a live task, so duplicate
// note-on events are harmless.
func (r *Repeater) Start(note uint8, a Action) {
	if a.HoldRepeat == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.active[note]; ok {
		return
	}

	t := &repeatTask{stop: make(chan struct{})}
	r.active[note] = t
	go r.run(t, a)
	logger.Debug("repeat: started", "note", note, "value", a.Value)
}

func (r *Repeater) run(t *repeatTask, a Action) {
	timer := time.NewTimer(r.delay)
	defer timer.Stop()
	select {
	case <-t.stop:
		return
	case <-timer.C:
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		// Checked before every dispatch: a tick and a cancellation can be
		// ready at once, and the dispatch must not win that race twice.
		select {
		case <-t.stop:
			return
		default:
		}
		r.send(a, a.HoldRepeat)
		select {
		case <-t.stop:
			return
		case <-ticker.C:
		}
	}
}

// Stop cancels the note's repeat task. Releases without a running task are
// normal (non-repeating pads, stray releases at startup) and only noted in
// debug logs.
func (r *Repeater) Stop(note uint8) {
	r.mu.Lock()
	t, ok := r.active[note]
	delete(r.active, note)
	r.mu.Unlock()

	if !ok {
		logger.Debug("repeat: stop requested but no repeater active", "note", note)
		return
	}
	close(t.stop)
	logger.Debug("repeat: stopped", "note", note)
}

// StopAll cancels every live repeat task. Used on shutdown.
func (r *Repeater) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for note, t := range r.active {
		close(t.stop)
		delete(r.active, note)
	}
}
