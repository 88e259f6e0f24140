package key

import "strings"

// Modifier is a bitmask of held modifier keys. It is recomputed wholesale
// from device state on every tick, never mutated incrementally.
type Modifier uint8

const (
	// ModNone indicates no modifiers are held.
	ModNone Modifier = 0

	// ModShift indicates either Shift key.
	ModShift Modifier = 1 << iota

	// ModControl indicates either Control key.
	ModControl

	// ModAlt indicates either Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the platform Meta key (Command on macOS,
	// Windows-logo key on Windows).
	ModMeta
)

// Has reports whether m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m with mod removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsAltGr reports whether m is exactly the Alt+Control chord that AltGr
// keyboards report while composing a character.
func (m Modifier) IsAltGr() bool {
	return m == ModAlt|ModControl
}

// String returns a representation like "Control+Alt" or "" for ModNone.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModControl) {
		parts = append(parts, NameControl)
	}
	if m.Has(ModAlt) {
		parts = append(parts, NameAlt)
	}
	if m.Has(ModShift) {
		parts = append(parts, NameShift)
	}
	if m.Has(ModMeta) {
		parts = append(parts, NameMeta)
	}
	return strings.Join(parts, "+")
}
