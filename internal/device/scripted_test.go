package device

import (
	"testing"

	"keybridge/internal/key"
)

func TestScriptedDeviceEdges(t *testing.T) {
	d := NewScriptedDevice()

	d.Press(key.CodeA)
	if !d.PressedThisTick(key.CodeA) {
		t.Error("expected A pressed this tick")
	}
	d.EndTick()
	if d.PressedThisTick(key.CodeA) {
		t.Error("press edge survived EndTick")
	}

	d.Release(key.CodeA)
	if !d.ReleasedThisTick(key.CodeA) {
		t.Error("expected A released this tick")
	}
	d.EndTick()
	if d.ReleasedThisTick(key.CodeA) {
		t.Error("release edge survived EndTick")
	}
}

func TestScriptedDeviceModifierSides(t *testing.T) {
	d := NewScriptedDevice()

	d.Press(key.CodeShiftLeft)
	if !d.ShiftDown(SideLeft) {
		t.Error("left shift should be down")
	}
	if d.ShiftDown(SideRight) {
		t.Error("right shift should not be down")
	}

	d.Press(key.CodeCommandRight)
	if !d.MetaDown(SideRight) {
		t.Error("right meta should be down")
	}

	d.Release(key.CodeShiftLeft)
	if d.ShiftDown(SideLeft) {
		t.Error("left shift should be up after release")
	}
}

func TestScriptedDeviceCallbacks(t *testing.T) {
	d := NewScriptedDevice()

	var typed []rune
	var comps []string
	cancel := d.Subscribe(Callbacks{
		CharacterTyped:     func(c rune) { typed = append(typed, c) },
		CompositionChanged: func(s string) { comps = append(comps, s) },
	})

	d.Type('x')
	d.Compose("ni")
	if len(typed) != 1 || typed[0] != 'x' {
		t.Errorf("typed = %q", string(typed))
	}
	if len(comps) != 1 || comps[0] != "ni" {
		t.Errorf("comps = %v", comps)
	}

	cancel()
	d.Type('y')
	if len(typed) != 1 {
		t.Error("callback fired after cancel")
	}
	if d.Subscribed() {
		t.Error("still subscribed after cancel")
	}
}

func TestScriptedDeviceIMEReapply(t *testing.T) {
	d := NewScriptedDevice()
	d.SetIMEEnabled(true)
	d.ResetIME()
	if d.IMEEnabled() {
		t.Error("ResetIME should clear the flag")
	}
	d.SetIMEEnabled(true)
	if !d.IMEEnabled() || d.IMEEnableCalls() != 2 {
		t.Errorf("enabled=%v calls=%d", d.IMEEnabled(), d.IMEEnableCalls())
	}
}
