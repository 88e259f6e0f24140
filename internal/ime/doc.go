// Package ime decides whether IME composition should be enabled on the
// host device and re-applies that decision every tick.
//
// The decision itself is trivial everywhere except macOS, where older
// embedded engine builds mishandle composition strings. The platform and
// version facts behind the decision sit behind the Capabilities interface
// so the heuristic can be unit-tested by injection instead of compiled
// conditionally.
package ime
