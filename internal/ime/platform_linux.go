//go:build linux

package ime

import (
	"os"
	"strings"

	"github.com/godbus/dbus/v5"
	"golang.org/x/sys/unix"
)

// osVersion returns the kernel release ("6.8.0-40-generic").
func osVersion() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Release[:])
}

// inputLocale queries systemd-localed over D-Bus, falling back to the
// process environment when the bus or the service is unavailable.
func inputLocale() string {
	if tag := localeFromDBus(); tag != "" {
		return tag
	}
	return localeFromEnv(os.Getenv)
}

func localeFromDBus() string {
	conn, err := dbus.SystemBus()
	if err != nil {
		return ""
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.locale1", "/org/freedesktop/locale1")
	prop, err := obj.GetProperty("org.freedesktop.locale1.Locale")
	if err != nil {
		return ""
	}

	entries, ok := prop.Value().([]string)
	if !ok {
		return ""
	}
	// Entries look like "LANG=zh_CN.UTF-8"; the same trimming rules as the
	// environment path apply.
	vars := make(map[string]string, len(entries))
	for _, e := range entries {
		if k, v, found := strings.Cut(e, "="); found {
			vars[k] = v
		}
	}
	return localeFromEnv(func(name string) string { return vars[name] })
}
