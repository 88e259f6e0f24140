package ime

import (
	"fmt"
	"runtime"
	"strings"
)

// Version identifies the embedded engine build hosting the web surface.
type Version struct {
	Family int
	Minor  int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Family, v.Minor)
}

// Capabilities answers the platform questions the gate needs. Injected so
// the macOS heuristic is testable on any platform.
type Capabilities interface {
	// OS returns the GOOS-style operating system name.
	OS() string

	// EngineVersion returns the embedded engine build version.
	EngineVersion() Version

	// InputLocale returns the OS input language as a BCP-47-ish tag
	// ("zh-CN", "ja_JP", "en-US"). Empty when unknown.
	InputLocale() string

	// OSVersion returns the host operating system version, for log
	// context. Empty when unknown.
	OSVersion() string
}

// HostCapabilities reports facts about the running host. The engine
// version is supplied by the embedder at construction time.
type HostCapabilities struct {
	Engine Version
}

func (h HostCapabilities) OS() string {
	return runtime.GOOS
}

func (h HostCapabilities) EngineVersion() Version {
	return h.Engine
}

func (h HostCapabilities) InputLocale() string {
	return inputLocale()
}

func (h HostCapabilities) OSVersion() string {
	return osVersion()
}

// localeFromEnv extracts a locale tag from the usual POSIX variables.
func localeFromEnv(getenv func(string) string) string {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := getenv(name)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		// Trim encoding/modifier suffixes: "zh_CN.UTF-8@pinyin" -> "zh_CN".
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return v
	}
	return ""
}
