package listener

import (
	"testing"

	"keybridge/internal/key"
)

func TestRepeatPulseSequence(t *testing.T) {
	l, dev, sink, sched := newTestListener(t)

	dev.Press(key.CodeArrowDown)
	tick(l, dev)
	sink.reset()

	// First fire: synthetic up closing the original press, then a full
	// down+up pulse.
	if !sched.fire() {
		t.Fatal("no armed timer")
	}
	events := sink.all()
	want := []string{"up", "down", "up"}
	if len(events) != len(want) {
		t.Fatalf("first fire events = %v", events)
	}
	for i, k := range want {
		if events[i].kind != k || events[i].ev.Name != key.NameArrowDown {
			t.Errorf("event %d = %v, want %s ArrowDown", i, events[i], k)
		}
	}

	// Subsequent fires: down+up only.
	sink.reset()
	if !sched.fire() {
		t.Fatal("repeat not re-armed")
	}
	events = sink.all()
	if len(events) != 2 || events[0].kind != "down" || events[1].kind != "up" {
		t.Errorf("second fire events = %v, want down+up", events)
	}
}

func TestRepeatEpisodeBalancesDownsAndUps(t *testing.T) {
	l, dev, sink, sched := newTestListener(t)

	dev.Press(key.CodeArrowDown)
	tick(l, dev)
	for i := 0; i < 3; i++ {
		if !sched.fire() {
			t.Fatal("timer not armed")
		}
	}

	// Physical release after repeating: the scanner must not add another
	// key-up on top of the last pulse's.
	dev.Release(key.CodeArrowDown)
	tick(l, dev)

	downs := sink.count("down", key.NameArrowDown)
	ups := sink.count("up", key.NameArrowDown)
	if downs != ups {
		t.Errorf("episode unbalanced: %d downs, %d ups", downs, ups)
	}
	if downs != 4 { // initial press + 3 pulses
		t.Errorf("downs = %d, want 4", downs)
	}

	// Episode over: no timer remains armed.
	if sched.fire() {
		t.Error("timer fired after release")
	}
}

func TestReleaseBeforeFirstRepeat(t *testing.T) {
	l, dev, sink, sched := newTestListener(t)

	dev.Press(key.CodeArrowUp)
	tick(l, dev)
	dev.Release(key.CodeArrowUp)
	tick(l, dev)

	// Released before the initial delay elapsed: one down, one up, timer
	// cancelled.
	if d, u := sink.count("down", key.NameArrowUp), sink.count("up", key.NameArrowUp); d != 1 || u != 1 {
		t.Errorf("downs = %d, ups = %d, want 1/1", d, u)
	}
	if sched.fire() {
		t.Error("cancelled timer still fired")
	}
}

func TestNewPressReplacesRepeat(t *testing.T) {
	l, dev, sink, sched := newTestListener(t)

	dev.Press(key.CodeArrowDown)
	tick(l, dev)
	dev.Press(key.CodeArrowUp)
	tick(l, dev)
	sink.reset()

	// Only the ArrowUp timer can still be live.
	if !sched.fire() {
		t.Fatal("no timer armed for the replacing key")
	}
	for _, ev := range sink.all() {
		if ev.ev.Name != key.NameArrowUp {
			t.Errorf("repeat pulsed %q after replacement", ev.ev.Name)
		}
	}
	if sink.count("down", key.NameArrowUp) == 0 {
		t.Error("no ArrowUp repeat pulse")
	}
}

func TestRepeatFireAfterCancelIsNoop(t *testing.T) {
	l, dev, sink, sched := newTestListener(t)

	dev.Press(key.CodeArrowDown)
	tick(l, dev)

	// Cancel by release, then force-fire whatever the scheduler still
	// holds; the stale callback must detect the cancelled episode.
	dev.Release(key.CodeArrowDown)
	tick(l, dev)
	sink.reset()

	l.mu.Lock()
	stale := l.repeat
	l.mu.Unlock()
	if stale != nil {
		t.Fatal("repeat state not cleared by release")
	}
	for sched.fire() {
	}
	if len(sink.all()) != 0 {
		t.Errorf("stale timer emitted events: %v", sink.all())
	}
}
