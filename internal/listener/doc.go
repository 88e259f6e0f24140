// Package listener is the event-translation core. It reconciles two
// partially-overlapping sources — per-tick key code transitions polled
// from the device and asynchronous character/composition callbacks — into
// one consistent stream of web-style key-down/key-up events plus the IME
// composition lifecycle, with synthetic key repeat.
//
// Everything is driven from one logical execution context: the host calls
// Tick once per scheduling tick, device callbacks arrive between ticks,
// and the repeat timer fires through an injectable scheduler. A single
// mutex guards the listener state against the timer goroutine.
package listener
