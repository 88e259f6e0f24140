package key

// Canonical web key identifiers for keys with no printable character.
// Single printable characters are their own identifier.
const (
	NameArrowDown  = "ArrowDown"
	NameArrowLeft  = "ArrowLeft"
	NameArrowRight = "ArrowRight"
	NameArrowUp    = "ArrowUp"
	NameBackspace  = "Backspace"
	NameDelete     = "Delete"
	NameEnd        = "End"
	NameEnter      = "Enter"
	NameEscape     = "Escape"
	NameHome       = "Home"
	NameInsert     = "Insert"
	NamePageDown   = "PageDown"
	NamePageUp     = "PageUp"
	NameTab        = "Tab"

	NameShift   = "Shift"
	NameControl = "Control"
	NameAlt     = "Alt"
	NameMeta    = "Meta"
)

// Event is a normalized key event in the shape a web surface expects:
// a canonical key name plus the modifier bitmask in effect. Immutable
// once constructed.
type Event struct {
	Name      string
	Modifiers Modifier
}

// NewEvent constructs an Event.
func NewEvent(name string, mods Modifier) Event {
	return Event{Name: name, Modifiers: mods}
}

// String returns a compact representation like "Control+ArrowDown" or "a".
func (e Event) String() string {
	if e.Modifiers == ModNone {
		return e.Name
	}
	return e.Modifiers.String() + "+" + e.Name
}
