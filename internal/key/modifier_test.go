package key

import "testing"

func TestModifierHasWithWithout(t *testing.T) {
	m := ModNone.With(ModShift).With(ModControl)
	if !m.Has(ModShift) || !m.Has(ModControl) {
		t.Errorf("expected Shift and Control in %v", m)
	}
	if m.Has(ModAlt) || m.Has(ModMeta) {
		t.Errorf("unexpected Alt/Meta in %v", m)
	}
	m = m.Without(ModShift)
	if m.Has(ModShift) {
		t.Errorf("Shift survived Without: %v", m)
	}
}

func TestModifierIsAltGr(t *testing.T) {
	tests := []struct {
		m    Modifier
		want bool
	}{
		{ModAlt | ModControl, true},
		{ModAlt, false},
		{ModControl, false},
		{ModAlt | ModControl | ModShift, false},
		{ModNone, false},
	}
	for _, tt := range tests {
		if got := tt.m.IsAltGr(); got != tt.want {
			t.Errorf("(%v).IsAltGr() = %v, want %v", tt.m, got, tt.want)
		}
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		m    Modifier
		want string
	}{
		{ModNone, ""},
		{ModShift, "Shift"},
		{ModControl | ModAlt, "Control+Alt"},
		{ModControl | ModAlt | ModShift | ModMeta, "Control+Alt+Shift+Meta"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("(%#x).String() = %q, want %q", uint8(tt.m), got, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	if got := NewEvent("a", ModNone).String(); got != "a" {
		t.Errorf("got %q", got)
	}
	if got := NewEvent(NameArrowDown, ModControl).String(); got != "Control+ArrowDown" {
		t.Errorf("got %q", got)
	}
}
