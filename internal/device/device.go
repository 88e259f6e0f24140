// Package device abstracts the host keyboard: live modifier state,
// per-tick press/release transitions, text-input callbacks, and IME
// enablement. The listener core depends only on the Device interface;
// hosts embed their native keyboard behind it.
package device

import "keybridge/internal/key"

// Side selects the left or right instance of a paired modifier key.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Callbacks are the asynchronous event hooks a Device delivers between
// ticks. Delivery is single-threaded with respect to tick polling; the
// host must not invoke them concurrently.
type Callbacks struct {
	// CharacterTyped fires once per text-input character.
	CharacterTyped func(c rune)

	// CompositionChanged fires with the full new IME composition string,
	// including the transition to "" when composition ends.
	CompositionChanged func(text string)
}

// Device is the host keyboard surface the listener polls each tick.
type Device interface {
	// Live modifier state, queried once per tick.
	ShiftDown(side Side) bool
	ControlDown(side Side) bool
	AltDown(side Side) bool
	MetaDown(side Side) bool

	// Per-tick edge detection for a physical key.
	PressedThisTick(code key.Code) bool
	ReleasedThisTick(code key.Code) bool

	// SetIMEEnabled turns IME composition on or off. Hosts may silently
	// reset this flag, so callers re-apply it every tick.
	SetIMEEnabled(enabled bool)

	// Subscribe registers the event callbacks and returns a cancel
	// function that must be called on teardown.
	Subscribe(cb Callbacks) (cancel func())
}
