//go:build darwin

package ime

import (
	"os"

	"golang.org/x/sys/unix"
)

// osVersion returns the macOS product version ("14.5").
func osVersion() string {
	v, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return ""
	}
	return v
}

// inputLocale reads the locale from the process environment. GUI hosts
// that know the real input source can inject their own Capabilities
// instead of relying on this.
func inputLocale() string {
	return localeFromEnv(os.Getenv)
}
