package main

import (
	"time"

	"gitlab.com/gomidi/midi/v2"
)

// Router classifies each incoming MIDI message and drives the dispatcher,
// repeater and touchpad. Everything not on the configured channel is dropped
// before classification.
type Router struct {
	channel    uint8
	touchpadCC uint8

	actions    map[uint8]Action
	dispatcher *Dispatcher
	repeater   *Repeater
	touchpad   *Touchpad

	// pressed pads by press time, kept for press/release pairing diagnostics
	active map[uint8]time.Time
}

func NewRouter(cfg Config, d *Dispatcher, rp *Repeater, tp *Touchpad) *Router {
	return &Router{
		channel:    cfg.Channel,
		touchpadCC: cfg.TouchpadCC,
		actions:    padActions,
		dispatcher: d,
		repeater:   rp,
		touchpad:   tp,
		active:     make(map[uint8]time.Time),
	}
}

// Handle processes one MIDI message. Called from the event loop only.
func (r *Router) Handle(msg midi.Message) {
	var ch uint8
	if !channelOf(msg, &ch) {
		logger.Info("midi: unsupported message", "msg", msg.String())
		return
	}
	if ch != r.channel {
		return
	}

	var key, vel, ctl, val uint8
	var bend int16
	var abs uint16
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		r.noteOn(key, vel)
	case msg.GetNoteEnd(&ch, &key):
		r.noteOff(key)
	case msg.GetControlChange(&ch, &ctl, &val) && ctl == r.touchpadCC:
		dx, dy := r.touchpad.Vertical(int(val))
		r.dispatcher.MoveRelative(dx, dy)
	case msg.GetPitchBend(&ch, &bend, &abs):
		dx, dy := r.touchpad.Horizontal(int(bend))
		r.dispatcher.MoveRelative(dx, dy)
	default:
		logger.Info("midi: unsupported message", "msg", msg.String(), "channel", ch)
	}
}

func (r *Router) noteOn(note, velocity uint8) {
	r.active[note] = time.Now()
	logger.Debug("note: on", "note", note, "velocity", velocity)

	a, ok := r.actions[note]
	if !ok {
		logger.Info("note: unmapped note on", "note", note)
		return
	}
	r.dispatcher.Send(a, a.ImmediateCount)
	r.repeater.Start(note, a)
}

func (r *Router) noteOff(note uint8) {
	if pressedAt, ok := r.active[note]; ok {
		delete(r.active, note)
		logger.Debug("note: off", "note", note, "held_ms", time.Since(pressedAt).Milliseconds())
	} else {
		logger.Debug("note: off with no matching active note", "note", note)
	}
	r.repeater.Stop(note)
}

// channelOf extracts the channel from a channel-voice message status byte.
// System messages carry no channel and return false.
func channelOf(msg midi.Message, ch *uint8) bool {
	if len(msg) == 0 || msg[0] < 0x80 || msg[0] > 0xEF {
		return false
	}
	*ch = msg[0] & 0x0F
	return true
}
