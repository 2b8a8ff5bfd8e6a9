package main

import (
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// msgBuffer is the capacity of the bridge channel between the rtmidi
// listener callback and the event loop. The callback never blocks; events
// beyond the buffer are dropped.
const msgBuffer = 64

// -------------------- Input --------------------

// Input owns the rtmidi driver and the connection to the controller port.
// Incoming messages are bridged from the driver's listener callback onto a
// channel so the event loop can consume them with a plain blocking receive.
type Input struct {
	drv    *rtmididrv.Driver
	port   drivers.In
	stopFn func()

	msgs chan midi.Message
	errs chan error
}

// NewInput initialises the underlying rtmidi driver. Call Close when done.
func NewInput() (*Input, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}
	return &Input{
		drv:  drv,
		msgs: make(chan midi.Message, msgBuffer),
		errs: make(chan error, 1),
	}, nil
}

// Ports lists the names of all available MIDI input ports.
func (in *Input) Ports() []string {
	ins, err := in.drv.Ins()
	if err != nil {
		logger.Error("midi: list inputs failed", "err", err)
		return nil
	}
	names := make([]string, 0, len(ins))
	for _, p := range ins {
		names = append(names, p.String())
	}
	return names
}

// FindPort returns the first input port whose name contains every pattern,
// case-insensitively.
func (in *Input) FindPort(patterns []string) (string, bool) {
	for _, name := range in.Ports() {
		all := true
		for _, pat := range patterns {
			if !containsCI(name, pat) {
				all = false
				break
			}
		}
		if all {
			return name, true
		}
	}
	return "", false
}

// Open connects to the named port and starts the listener.
func (in *Input) Open(name string) error {
	ins, err := in.drv.Ins()
	if err != nil {
		return err
	}
	var found drivers.In
	for _, p := range ins {
		if p.String() == name {
			found = p
			break
		}
	}
	if found == nil {
		return fmt.Errorf("input %q not found", name)
	}
	if err := found.Open(); err != nil {
		return fmt.Errorf("open %q: %w", name, err)
	}

	stop, err := midi.ListenTo(found, func(msg midi.Message, _ int32) {
		select {
		case in.msgs <- msg:
		default:
			logger.Warn("midi: event dropped, consumer not keeping up", "msg", msg.String())
		}
	}, midi.HandleError(func(listenErr error) {
		// Surfaces when the device disconnects. Forward to the event loop,
		// which owns the decision to shut down.
		select {
		case in.errs <- listenErr:
		default:
		}
	}))
	if err != nil {
		_ = found.Close()
		return fmt.Errorf("listen %q: %w", name, err)
	}

	in.port = found
	in.stopFn = stop
	logger.Info("midi: listening", "device", name)
	return nil
}

// Messages is the stream of incoming MIDI messages.
func (in *Input) Messages() <-chan midi.Message { return in.msgs }

// Errors surfaces listener failures, in practice device disconnects.
func (in *Input) Errors() <-chan error { return in.errs }

// Close stops the listener and shuts down the driver.
func (in *Input) Close() {
	if in.stopFn != nil {
		in.stopFn()
		in.stopFn = nil
	}
	if in.port != nil {
		_ = in.port.Close()
		in.port = nil
	}
	in.drv.Close()
}

// -------------------- utility --------------------

func containsCI(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
