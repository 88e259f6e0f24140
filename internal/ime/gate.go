package ime

import (
	"strings"
	"sync"

	"keybridge/internal/device"
	"keybridge/internal/logging"
)

// Composition support thresholds for the embedded engine on macOS.
// The 4.x line first shipped working composition in 4.24; every 5.x and
// later build is fine.
const (
	minSupportedFamily = 4
	minSupportedMinor  = 24
)

// Mode overrides the platform heuristic from configuration.
type Mode int

const (
	// ModeAuto applies the platform heuristic.
	ModeAuto Mode = iota
	// ModeEnabled forces IME composition on.
	ModeEnabled
	// ModeDisabled forces IME composition off.
	ModeDisabled
)

// Gate owns the enable-IME decision. The decision is computed once per
// gate lifetime and re-applied to the device on every tick, because hosts
// are known to silently reset their own enablement flag.
type Gate struct {
	caps Capabilities
	mode Mode
	log  *logging.Logger

	mu      sync.Mutex
	decided bool
	enabled bool
	warned  bool
}

// NewGate creates a gate over the given capability query.
func NewGate(caps Capabilities, mode Mode, log *logging.Logger) *Gate {
	if log == nil {
		log = logging.Default()
	}
	return &Gate{caps: caps, mode: mode, log: log.WithComponent("ime")}
}

// Enabled reports whether IME composition should be enabled. The first
// call computes and memoizes the decision; later calls return it.
func (g *Gate) Enabled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.decided {
		return g.enabled
	}
	g.decided = true
	g.enabled = g.decide()
	return g.enabled
}

func (g *Gate) decide() bool {
	if g.engineAllows() {
		return true
	}

	// Whatever disabled composition, CJK users lose ordinary input; say
	// so once.
	if locale := g.caps.InputLocale(); isCJKLocale(locale) && !g.warned {
		g.warned = true
		g.log.Warn("IME composition disabled; CJK input will not compose correctly",
			"engineVersion", g.caps.EngineVersion().String(),
			"inputLocale", locale,
			"osVersion", g.caps.OSVersion())
	}
	return false
}

// engineAllows applies the mode override, then the platform heuristic.
func (g *Gate) engineAllows() bool {
	switch g.mode {
	case ModeEnabled:
		return true
	case ModeDisabled:
		return false
	}
	if g.caps.OS() != "darwin" {
		return true
	}
	return supportsComposition(g.caps.EngineVersion())
}

// Apply re-issues the enablement decision to the device. Idempotent;
// called every tick.
func (g *Gate) Apply(dev device.Device) {
	if dev == nil {
		return
	}
	if g.Enabled() {
		dev.SetIMEEnabled(true)
	}
}

func supportsComposition(v Version) bool {
	if v.Family > minSupportedFamily {
		return true
	}
	return v.Family == minSupportedFamily && v.Minor >= minSupportedMinor
}

// isCJKLocale reports whether the locale tag names a language that relies
// on IME composition for ordinary input.
func isCJKLocale(locale string) bool {
	tag := strings.ToLower(locale)
	for _, lang := range []string{"zh", "ja", "ko"} {
		if tag == lang || strings.HasPrefix(tag, lang+"-") || strings.HasPrefix(tag, lang+"_") {
			return true
		}
	}
	return false
}
