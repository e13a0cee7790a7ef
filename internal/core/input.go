package core

import "time"

// Key identifies a directional input the game reads each tick.
type Key string

// Directional keys polled by the update step.
const (
	KeyUp    Key = "ArrowUp"
	KeyDown  Key = "ArrowDown"
	KeyLeft  Key = "ArrowLeft"
	KeyRight Key = "ArrowRight"
)

// InputState is a snapshot of which keys are held at the start of a tick.
type InputState struct {
	Keys map[Key]bool
}

// NewInputState creates an empty snapshot with every key released.
func NewInputState() InputState {
	return InputState{Keys: make(map[Key]bool)}
}

// Set marks a key as pressed or released.
func (s *InputState) Set(k Key, pressed bool) {
	if s.Keys == nil {
		s.Keys = make(map[Key]bool)
	}
	s.Keys[k] = pressed
}

// Pressed returns true if the key is held in this snapshot.
func (s InputState) Pressed(k Key) bool {
	if s.Keys == nil {
		return false
	}
	return s.Keys[k]
}

// DefaultHoldWindow is how long a key stays held after its last press event.
// It has to outlast the terminal's auto-repeat delay, or a held key moves,
// stalls until repeats start, then moves again.
const DefaultHoldWindow = 300 * time.Millisecond

// KeyTracker turns a stream of key press events into held-key snapshots.
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until the hold window passes without another event.
type KeyTracker struct {
	hold     time.Duration
	lastSeen map[Key]time.Time
}

// NewKeyTracker creates a tracker with the given hold window.
// A non-positive window falls back to DefaultHoldWindow.
func NewKeyTracker(hold time.Duration) *KeyTracker {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyTracker{
		hold:     hold,
		lastSeen: make(map[Key]time.Time),
	}
}

// Press records a press (or auto-repeat) of k at the given time.
func (t *KeyTracker) Press(k Key, at time.Time) {
	t.lastSeen[k] = at
}

// Release forgets k immediately.
func (t *KeyTracker) Release(k Key) {
	delete(t.lastSeen, k)
}

// Reset releases every key.
func (t *KeyTracker) Reset() {
	clear(t.lastSeen)
}

// Snapshot returns the keys held at now and drops expired ones.
func (t *KeyTracker) Snapshot(now time.Time) InputState {
	s := NewInputState()
	for k, at := range t.lastSeen {
		if now.Sub(at) < t.hold {
			s.Set(k, true)
			continue
		}
		delete(t.lastSeen, k)
	}
	return s
}
