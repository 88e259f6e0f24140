package listener

import "keybridge/internal/key"

// Sink consumes the normalized event stream. Implementations must not
// call back into the listener from inside a sink method.
type Sink interface {
	KeyDown(ev key.Event)
	KeyUp(ev key.Event)

	// CompositionChanged delivers the live (uncommitted) IME string.
	CompositionChanged(text string)

	// CompositionFinished delivers the committed text of a composition
	// episode. Mutually exclusive with CompositionCancelled per episode.
	CompositionFinished(text string)

	// CompositionCancelled reports a composition that ended without
	// committing anything.
	CompositionCancelled()
}
