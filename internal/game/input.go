package game

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"gloomcast/internal/game/keylatch"
)

// Command is an input effect the engine applies immediately, as opposed to
// the latched movement keys sampled once per tick.
type Command int

const (
	None Command = iota
	Quit
	ToggleTextures
	Jump
)

// MoveSet is the movement intent sampled for one tick.
type MoveSet struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
}

// Any reports whether any movement key is held.
func (m MoveSet) Any() bool {
	return m.Forward || m.Backward || m.StrafeLeft || m.StrafeRight
}

// Input decodes terminal key events: movement and turn keys latch, the
// rest map to commands.
type Input struct {
	keys *keylatch.Tracker
}

// NewInput returns an input decoder with no keys held.
func NewInput() *Input {
	return &Input{keys: keylatch.New()}
}

// HandleKey latches movement keys and returns any immediate command.
func (in *Input) HandleKey(ev *tcell.EventKey, now time.Time) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyUp:
		in.keys.Press(keylatch.Forward, now)
	case tcell.KeyDown:
		in.keys.Press(keylatch.Backward, now)
	case tcell.KeyLeft:
		in.keys.Press(keylatch.TurnLeft, now)
	case tcell.KeyRight:
		in.keys.Press(keylatch.TurnRight, now)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			in.keys.Press(keylatch.Forward, now)
		case 's', 'S':
			in.keys.Press(keylatch.Backward, now)
		case 'a', 'A':
			in.keys.Press(keylatch.StrafeLeft, now)
		case 'd', 'D':
			in.keys.Press(keylatch.StrafeRight, now)
		case 'q', 'Q':
			in.keys.Press(keylatch.TurnLeft, now)
		case 'e', 'E':
			in.keys.Press(keylatch.TurnRight, now)
		case 't', 'T':
			return ToggleTextures
		case ' ':
			return Jump
		}
	}
	return None
}

// Movement samples the latched movement keys.
func (in *Input) Movement(now time.Time) MoveSet {
	return MoveSet{
		Forward:     in.keys.Held(keylatch.Forward, now),
		Backward:    in.keys.Held(keylatch.Backward, now),
		StrafeLeft:  in.keys.Held(keylatch.StrafeLeft, now),
		StrafeRight: in.keys.Held(keylatch.StrafeRight, now),
	}
}

// Turning samples the latched turn keys: -1 left, +1 right, 0 for both or
// neither.
func (in *Input) Turning(now time.Time) float64 {
	var turn float64
	if in.keys.Held(keylatch.TurnLeft, now) {
		turn--
	}
	if in.keys.Held(keylatch.TurnRight, now) {
		turn++
	}
	return turn
}
