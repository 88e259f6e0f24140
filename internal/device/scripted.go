package device

import (
	"sync"

	"keybridge/internal/key"
)

// ScriptedDevice is an in-memory Device for tests and the trace tool.
// Press/Release mark per-tick transitions; EndTick clears them the way a
// real host clears its edge flags after each poll.
type ScriptedDevice struct {
	mu       sync.Mutex
	held     map[key.Code]bool
	pressed  map[key.Code]bool
	released map[key.Code]bool

	imeEnabled     bool
	imeEnableCalls int

	cb         Callbacks
	subscribed bool
}

// NewScriptedDevice returns an empty scripted device.
func NewScriptedDevice() *ScriptedDevice {
	return &ScriptedDevice{
		held:     make(map[key.Code]bool),
		pressed:  make(map[key.Code]bool),
		released: make(map[key.Code]bool),
	}
}

// Press marks codes as newly pressed this tick and held thereafter.
func (d *ScriptedDevice) Press(codes ...key.Code) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range codes {
		d.held[c] = true
		d.pressed[c] = true
	}
}

// Release marks codes as newly released this tick.
func (d *ScriptedDevice) Release(codes ...key.Code) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range codes {
		delete(d.held, c)
		d.released[c] = true
	}
}

// EndTick clears the per-tick press/release edges. Call after each
// listener tick, mirroring how a real host resets its transition flags.
func (d *ScriptedDevice) EndTick() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pressed = make(map[key.Code]bool)
	d.released = make(map[key.Code]bool)
}

// Type delivers a character-typed callback, as the host would between ticks.
func (d *ScriptedDevice) Type(c rune) {
	d.mu.Lock()
	cb := d.cb.CharacterTyped
	d.mu.Unlock()
	if cb != nil {
		cb(c)
	}
}

// Compose delivers a composition-changed callback.
func (d *ScriptedDevice) Compose(text string) {
	d.mu.Lock()
	cb := d.cb.CompositionChanged
	d.mu.Unlock()
	if cb != nil {
		cb(text)
	}
}

// IMEEnabled reports the last value passed to SetIMEEnabled.
func (d *ScriptedDevice) IMEEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.imeEnabled
}

// IMEEnableCalls reports how many times SetIMEEnabled was invoked,
// letting tests observe the per-tick re-apply.
func (d *ScriptedDevice) IMEEnableCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.imeEnableCalls
}

// ResetIME simulates the host silently dropping its IME enablement flag.
func (d *ScriptedDevice) ResetIME() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.imeEnabled = false
}

func (d *ScriptedDevice) ShiftDown(side Side) bool {
	return d.heldSide(side, key.CodeShiftLeft, key.CodeShiftRight)
}

func (d *ScriptedDevice) ControlDown(side Side) bool {
	return d.heldSide(side, key.CodeControlLeft, key.CodeControlRight)
}

func (d *ScriptedDevice) AltDown(side Side) bool {
	return d.heldSide(side, key.CodeAltLeft, key.CodeAltRight)
}

func (d *ScriptedDevice) MetaDown(side Side) bool {
	// Either platform variant counts; the scripted device is not tied to
	// one operating system.
	if side == SideLeft {
		return d.heldAny(key.CodeWinLeft, key.CodeCommandLeft)
	}
	return d.heldAny(key.CodeWinRight, key.CodeCommandRight)
}

func (d *ScriptedDevice) heldSide(side Side, left, right key.Code) bool {
	if side == SideLeft {
		return d.heldAny(left)
	}
	return d.heldAny(right)
}

func (d *ScriptedDevice) heldAny(codes ...key.Code) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range codes {
		if d.held[c] {
			return true
		}
	}
	return false
}

func (d *ScriptedDevice) PressedThisTick(code key.Code) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pressed[code]
}

func (d *ScriptedDevice) ReleasedThisTick(code key.Code) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.released[code]
}

func (d *ScriptedDevice) SetIMEEnabled(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.imeEnabled = enabled
	if enabled {
		d.imeEnableCalls++
	}
}

func (d *ScriptedDevice) Subscribe(cb Callbacks) (cancel func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cb = cb
	d.subscribed = true
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.cb = Callbacks{}
		d.subscribed = false
	}
}

// Subscribed reports whether callbacks are currently registered.
func (d *ScriptedDevice) Subscribed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.subscribed
}
