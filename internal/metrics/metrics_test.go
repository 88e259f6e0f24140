package metrics

import (
	"strings"
	"testing"

	"keybridge/internal/key"
)

func TestCounterBasics(t *testing.T) {
	reg := NewRegistry()
	c := reg.Counter("test_total", "help text")
	c.Inc()
	c.Add(4)
	if c.Value() != 5 {
		t.Errorf("Value = %d, want 5", c.Value())
	}

	// Same name returns the same counter.
	if reg.Counter("test_total", "") != c {
		t.Error("Counter did not return the registered instance")
	}

	snap := reg.Snapshot()
	if snap["test_total"] != 5 {
		t.Errorf("Snapshot = %v", snap)
	}
}

func TestWriteText(t *testing.T) {
	reg := NewRegistry()
	reg.Counter("b_total", "second").Inc()
	reg.Counter("a_total", "first").Add(2)

	var sb strings.Builder
	if err := reg.WriteText(&sb); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "# HELP a_total first") ||
		!strings.Contains(out, "a_total 2") ||
		!strings.Contains(out, "b_total 1") {
		t.Errorf("unexpected output:\n%s", out)
	}
	// Sorted by name.
	if strings.Index(out, "a_total") > strings.Index(out, "b_total") {
		t.Error("counters not sorted")
	}
}

func TestEventCounter(t *testing.T) {
	reg := NewRegistry()
	s := NewEventCounter(reg, nil)

	s.KeyDown(key.NewEvent("a", key.ModNone))
	s.KeyDown(key.NewEvent("b", key.ModNone))
	s.KeyUp(key.NewEvent("a", key.ModNone))
	s.CompositionChanged("n")
	s.CompositionFinished("你")
	s.CompositionCancelled()

	snap := reg.Snapshot()
	want := map[string]uint64{
		"keybridge_key_down_total":      2,
		"keybridge_key_up_total":        1,
		"keybridge_ime_changed_total":   1,
		"keybridge_ime_finished_total":  1,
		"keybridge_ime_cancelled_total": 1,
	}
	for name, v := range want {
		if snap[name] != v {
			t.Errorf("%s = %d, want %d", name, snap[name], v)
		}
	}
}
