package listener

import (
	"time"

	"keybridge/internal/key"
)

// Key repeat defaults, overridable through Options.
const (
	DefaultRepeatInitialDelay = 500 * time.Millisecond
	DefaultRepeatInterval     = 100 * time.Millisecond
)

// Scheduler schedules a single callback after a delay. The returned
// cancel is idempotent. Injected so tests can fire timers manually.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// timerScheduler is the production Scheduler backed by time.AfterFunc.
type timerScheduler struct{}

func (timerScheduler) Schedule(d time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// repeatState tracks the single live key-repeat episode.
//
// Transitions: armed on a new repeatable press; the first fire closes the
// original physical press with a synthetic key-up and marks hasRepeated;
// every fire emits a full down+up pulse and re-arms at the repeat
// interval. Cancelled by a newer repeatable press or an observed release.
type repeatState struct {
	key         string
	hasRepeated bool
	cancel      func()
}

// startRepeat replaces any live repeat episode with a new one for name.
// Caller holds l.mu.
func (l *Listener) startRepeatLocked(name string) {
	l.cancelRepeatLocked()
	r := &repeatState{key: name}
	l.repeat = r
	r.cancel = l.sched.Schedule(l.initialDelay, func() { l.repeatFire(r) })
}

// cancelRepeat stops the live repeat episode, if any. Caller holds l.mu.
func (l *Listener) cancelRepeatLocked() {
	if l.repeat != nil {
		l.repeat.cancel()
		l.repeat = nil
	}
}

// repeatFire is the timer callback for one repeat pulse.
func (l *Listener) repeatFire(r *repeatState) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// A release or a newer press may have cancelled this episode between
	// the timer firing and the lock being acquired.
	if l.repeat != r {
		return
	}

	if !r.hasRepeated {
		// Close out the original physical press; from here on every pulse
		// is a self-contained down+up pair.
		l.sink.KeyUp(key.NewEvent(r.key, l.mods))
		r.hasRepeated = true
	}

	l.sink.KeyDown(key.NewEvent(r.key, l.mods))
	l.sink.KeyUp(key.NewEvent(r.key, l.mods))

	r.cancel = l.sched.Schedule(l.interval, func() { l.repeatFire(r) })
}
