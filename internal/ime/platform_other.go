//go:build !darwin && !linux

package ime

import "os"

func osVersion() string {
	return ""
}

func inputLocale() string {
	return localeFromEnv(os.Getenv)
}
