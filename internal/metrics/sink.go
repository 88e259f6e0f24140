package metrics

import (
	"keybridge/internal/key"
	"keybridge/internal/listener"
)

// EventCounter is a listener.Sink decorator that counts every event
// before forwarding it.
type EventCounter struct {
	next listener.Sink

	downs     *Counter
	ups       *Counter
	changed   *Counter
	finished  *Counter
	cancelled *Counter
}

// NewEventCounter registers the event counters in reg and returns a sink
// forwarding to next. next may be nil.
func NewEventCounter(reg *Registry, next listener.Sink) *EventCounter {
	return &EventCounter{
		next:      next,
		downs:     reg.Counter("keybridge_key_down_total", "Key-down events emitted"),
		ups:       reg.Counter("keybridge_key_up_total", "Key-up events emitted"),
		changed:   reg.Counter("keybridge_ime_changed_total", "IME composition updates emitted"),
		finished:  reg.Counter("keybridge_ime_finished_total", "IME compositions committed"),
		cancelled: reg.Counter("keybridge_ime_cancelled_total", "IME compositions cancelled"),
	}
}

func (s *EventCounter) KeyDown(ev key.Event) {
	s.downs.Inc()
	if s.next != nil {
		s.next.KeyDown(ev)
	}
}

func (s *EventCounter) KeyUp(ev key.Event) {
	s.ups.Inc()
	if s.next != nil {
		s.next.KeyUp(ev)
	}
}

func (s *EventCounter) CompositionChanged(text string) {
	s.changed.Inc()
	if s.next != nil {
		s.next.CompositionChanged(text)
	}
}

func (s *EventCounter) CompositionFinished(text string) {
	s.finished.Inc()
	if s.next != nil {
		s.next.CompositionFinished(text)
	}
}

func (s *EventCounter) CompositionCancelled() {
	s.cancelled.Inc()
	if s.next != nil {
		s.next.CompositionCancelled()
	}
}
