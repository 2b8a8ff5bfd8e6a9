package main

// ActionKind says which kind of synthetic input an action emits.
type ActionKind int

const (
	KindKey ActionKind = iota
	KindMouse
)

func (k ActionKind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindMouse:
		return "mouse"
	}
	return "unknown"
}

// Action describes the synthetic input a pad press sends to the target
// window. ImmediateCount events go out on the initial press. HoldRepeat is
// the number of events per repeat tick while the pad stays held; 0 means the
// action never repeats.
type Action struct {
	Kind           ActionKind
	Value          string // X keysym for KindKey, pointer button for KindMouse
	ImmediateCount int
	HoldRepeat     int
}

// padKONTROL pad note numbers (control-surface IDs, not musical pitches).
const (
	PadZoomIn     = 49
	PadZoomOut    = 51
	PadNudgeLeft  = 68
	PadNudgeRight = 56
	PadScrollDown = 63
	PadScrollUp   = 55
	PadGoToStart  = 48
	PadPlayStop   = 52
)

// padActions maps pad notes to transport/navigation actions. Notes missing
// from the table are expected and only logged. Immutable after init.
var padActions = map[uint8]Action{
	PadZoomIn:     {Kind: KindKey, Value: "minus", ImmediateCount: 1},
	PadZoomOut:    {Kind: KindKey, Value: "Escape", ImmediateCount: 1},
	PadNudgeLeft:  {Kind: KindKey, Value: "Left", ImmediateCount: 1, HoldRepeat: 1},
	PadNudgeRight: {Kind: KindKey, Value: "Right", ImmediateCount: 1, HoldRepeat: 3},
	PadScrollDown: {Kind: KindMouse, Value: "5", ImmediateCount: 1, HoldRepeat: 1},
	PadScrollUp:   {Kind: KindMouse, Value: "4", ImmediateCount: 1, HoldRepeat: 1},
	PadGoToStart:  {Kind: KindKey, Value: "Home", ImmediateCount: 1},
	PadPlayStop:   {Kind: KindKey, Value: "space", ImmediateCount: 1},
}
