package listener

import (
	"sync"
	"time"

	"keybridge/internal/device"
	"keybridge/internal/ime"
	"keybridge/internal/key"
	"keybridge/internal/logging"
)

// controlKeys is the fixed set of non-character keys polled for press
// transitions each tick, in poll order.
var controlKeys = []string{
	key.NameArrowDown,
	key.NameArrowRight,
	key.NameArrowLeft,
	key.NameArrowUp,
	key.NameBackspace,
	key.NameEnd,
	key.NameEnter,
	key.NameEscape,
	key.NameDelete,
	key.NameHome,
	key.NameInsert,
	key.NamePageDown,
	key.NamePageUp,
	key.NameTab,
}

// Options configures a Listener.
type Options struct {
	// Device is the host keyboard. May be nil: the listener then logs a
	// warning once and every per-tick method becomes a no-op.
	Device device.Device

	// Sink receives the emitted events. Required.
	Sink Sink

	// Capabilities backs the IME gate. Defaults to HostCapabilities.
	Capabilities ime.Capabilities

	// IMEMode overrides the IME platform heuristic.
	IMEMode ime.Mode

	// RepeatInitialDelay and RepeatInterval configure key repeat.
	// Zero values select the defaults.
	RepeatInitialDelay time.Duration
	RepeatInterval     time.Duration

	// Scheduler drives the repeat timer. Defaults to time.AfterFunc.
	Scheduler Scheduler

	// Logger defaults to the global logger.
	Logger *logging.Logger
}

// Listener translates raw device state into normalized key events.
type Listener struct {
	mu   sync.Mutex
	dev  device.Device
	sink Sink
	gate *ime.Gate
	log  *logging.Logger

	sched        Scheduler
	initialDelay time.Duration
	interval     time.Duration

	// mods is the bitmask computed at the top of the current tick (or on
	// the current character callback).
	mods key.Modifier

	// down is the ordered set of key names considered held. Insertion
	// order is press order; a name is never present twice.
	down []string

	repeat *repeatState

	// IME composition buffer: the live composition string, and the
	// characters committed through text input while it was active.
	compText string
	pending  []rune

	unsubscribe func()
}

// New constructs a Listener and subscribes to the device callbacks.
func New(opts Options) *Listener {
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}
	log = log.WithComponent("listener")

	caps := opts.Capabilities
	if caps == nil {
		caps = ime.HostCapabilities{}
	}

	l := &Listener{
		dev:          opts.Device,
		sink:         opts.Sink,
		gate:         ime.NewGate(caps, opts.IMEMode, log),
		log:          log,
		sched:        opts.Scheduler,
		initialDelay: opts.RepeatInitialDelay,
		interval:     opts.RepeatInterval,
	}
	if l.sched == nil {
		l.sched = timerScheduler{}
	}
	if l.initialDelay <= 0 {
		l.initialDelay = DefaultRepeatInitialDelay
	}
	if l.interval <= 0 {
		l.interval = DefaultRepeatInterval
	}

	if l.dev == nil {
		log.Warn("no keyboard device available; key event translation disabled")
		return l
	}

	l.unsubscribe = l.dev.Subscribe(device.Callbacks{
		CharacterTyped:     l.handleCharacterTyped,
		CompositionChanged: l.handleCompositionChanged,
	})
	return l
}

// Close cancels the repeat timer and unsubscribes the device callbacks.
// The listener must not be used afterwards.
func (l *Listener) Close() {
	l.mu.Lock()
	l.cancelRepeatLocked()
	unsub := l.unsubscribe
	l.unsubscribe = nil
	l.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

// Tick runs one poll cycle: refresh the modifier bitmask, re-apply the
// IME decision, then scan control keys, bare modifiers, and releases, in
// that order.
func (l *Listener) Tick() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.dev == nil {
		return
	}

	l.mods = l.computeModifiersLocked()
	l.gate.Apply(l.dev)
	l.pollControlKeysLocked()
	l.pollModifiersLocked()
	l.scanReleasesLocked()
}

// computeModifiersLocked reads the live modifier state and folds each
// left/right pair into one flag.
func (l *Listener) computeModifiersLocked() key.Modifier {
	if l.dev == nil {
		return key.ModNone
	}

	var m key.Modifier
	if l.dev.ShiftDown(device.SideLeft) || l.dev.ShiftDown(device.SideRight) {
		m = m.With(key.ModShift)
	}
	if l.dev.ControlDown(device.SideLeft) || l.dev.ControlDown(device.SideRight) {
		m = m.With(key.ModControl)
	}
	if l.dev.AltDown(device.SideLeft) || l.dev.AltDown(device.SideRight) {
		m = m.With(key.ModAlt)
	}
	if l.dev.MetaDown(device.SideLeft) || l.dev.MetaDown(device.SideRight) {
		m = m.With(key.ModMeta)
	}
	return m
}

// pollControlKeysLocked emits key-down for every control key newly
// pressed this tick and arms the repeat timer for it.
func (l *Listener) pollControlKeysLocked() {
	for _, name := range controlKeys {
		if !l.pressedThisTickLocked(name) {
			continue
		}
		l.sink.KeyDown(key.NewEvent(name, l.mods))
		l.addDownLocked(name)
		l.startRepeatLocked(name)
	}
}

// pollModifiersLocked detects a modifier pressed on its own, with no
// accompanying character, and emits a synthetic key-down for it. The
// event's modifier mask is deliberately empty.
func (l *Listener) pollModifiersLocked() {
	pairs := []struct {
		name  string
		codes []key.Code
	}{
		{key.NameShift, []key.Code{key.CodeShiftLeft, key.CodeShiftRight}},
		{key.NameControl, []key.Code{key.CodeControlLeft, key.CodeControlRight}},
		{key.NameAlt, []key.Code{key.CodeAltLeft, key.CodeAltRight}},
		{key.NameMeta, key.MetaCodes()},
	}

	for _, p := range pairs {
		pressed := false
		for _, c := range p.codes {
			if l.dev.PressedThisTick(c) {
				pressed = true
				break
			}
		}
		if !pressed {
			continue
		}
		l.sink.KeyDown(key.NewEvent(p.name, key.ModNone))
		l.addDownLocked(p.name)
	}
}

// scanReleasesLocked emits key-up for every held name whose physical
// key(s) were released this tick. Names with no physical correlate are
// treated as already released.
func (l *Listener) scanReleasesLocked() {
	snapshot := append([]string(nil), l.down...)
	for _, name := range snapshot {
		released := true
		if codes, ok := key.CodesForName(name); ok {
			released = false
			for _, c := range codes {
				if l.dev.ReleasedThisTick(c) {
					released = true
					break
				}
			}
		}
		if !released {
			continue
		}

		l.removeDownLocked(name)

		if l.repeat != nil && l.repeat.key == name {
			// If the repeat already pulsed, its last synthetic key-up has
			// closed this key; emitting another would double it.
			closed := l.repeat.hasRepeated
			l.cancelRepeatLocked()
			if closed {
				continue
			}
		}
		l.sink.KeyUp(key.NewEvent(name, l.mods))
	}
}

// handleCharacterTyped is the device text-input callback.
func (l *Listener) handleCharacterTyped(c rune) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.dev == nil {
		return
	}

	l.mods = l.computeModifiersLocked()
	mods := l.mods
	if mods.IsAltGr() {
		// AltGr reports as Alt+Control; the consumer must not see a
		// literal chord on the composed character.
		mods = key.ModNone
	}

	name := key.NameForChar(c)
	l.sink.KeyDown(key.NewEvent(name, mods))

	if _, trackable := key.CodeForChar(c); trackable {
		// Release arrives later through the per-tick scan.
		l.addDownLocked(name)
	} else {
		// No physical release will ever be observed for this character.
		l.sink.KeyUp(key.NewEvent(name, mods))
	}

	if l.compText != "" {
		l.pending = append(l.pending, c)
	}
}

// pressedThisTickLocked reports whether any physical code for name was
// newly pressed this tick.
func (l *Listener) pressedThisTickLocked(name string) bool {
	codes, ok := key.CodesForName(name)
	if !ok {
		return false
	}
	for _, c := range codes {
		if l.dev.PressedThisTick(c) {
			return true
		}
	}
	return false
}

func (l *Listener) addDownLocked(name string) {
	for _, n := range l.down {
		if n == name {
			return
		}
	}
	l.down = append(l.down, name)
}

func (l *Listener) removeDownLocked(name string) {
	for i, n := range l.down {
		if n == name {
			l.down = append(l.down[:i], l.down[i+1:]...)
			return
		}
	}
}
