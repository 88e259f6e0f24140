package listener

import "strings"

// handleCompositionChanged is the device composition callback. It drives
// the composition episode state machine:
//
//	prev non-empty, next empty  -> finished(pending) or cancelled
//	next non-empty, next != prev -> changed(next)
//	empty -> empty               -> no-op
func (l *Listener) handleCompositionChanged(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.dev == nil {
		return
	}

	// Windows Pinyin injects apostrophes into the composition string,
	// which desynchronizes the consumer's caret tracking. Strip them.
	next := strings.ReplaceAll(text, "'", "")
	prev := l.compText

	if prev != "" && next == "" {
		if len(l.pending) > 0 {
			l.sink.CompositionFinished(string(l.pending))
			l.pending = nil
		} else {
			l.sink.CompositionCancelled()
		}
	}

	if next != "" && next != prev {
		l.sink.CompositionChanged(next)
	}

	l.compText = next
}
