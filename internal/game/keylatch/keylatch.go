// Package keylatch turns discrete terminal key events into held-key state.
// Terminals report autorepeat presses and never releases, so a key counts
// as held while its latest press is younger than the hold window.
package keylatch

import "time"

// Hold is how long a single press keeps its key held. Terminal autorepeat
// refreshes the latch well inside this window.
const Hold = 200 * time.Millisecond

// Action identifies one latched control.
type Action int

const (
	Forward Action = iota
	Backward
	StrafeLeft
	StrafeRight
	TurnLeft
	TurnRight
	numActions
)

// Tracker holds the expiry instant of each action's latch.
type Tracker struct {
	until [numActions]time.Time
}

// New returns a tracker with every latch expired.
func New() *Tracker { return &Tracker{} }

// Press latches the action as of now.
func (t *Tracker) Press(a Action, now time.Time) {
	t.until[a] = now.Add(Hold)
}

// Held reports whether the action's latch is still fresh at now.
func (t *Tracker) Held(a Action, now time.Time) bool {
	return now.Before(t.until[a])
}
