// Package key defines the normalized key event model shared by the
// listener and its consumers: canonical web key names, the modifier
// bitmask, platform-neutral physical key codes, and the static tables
// that map between characters, codes, and names.
package key
