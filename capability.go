package cloak

import "strings"

// Mode selects how the keystream for a value is derived.
type Mode string

const (
	// ModeHash derives each position's keystream value from SHA-256 over the
	// decimal position followed by the full original value. Output is
	// bit-exact across independent implementations.
	ModeHash Mode = "hash"

	// ModeSeeded draws keystream values from a generator seeded once per call
	// with the original value. Repeatable within a build only.
	ModeSeeded Mode = "seeded"
)

// validModes contains all valid modes for lookup validation.
var validModes = map[Mode]bool{
	ModeHash:   true,
	ModeSeeded: true,
}

// IsValidMode returns true if the mode is a known masking mode.
func IsValidMode(m Mode) bool {
	return validModes[m]
}

// ParseMode converts a user-supplied name to a Mode.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !IsValidMode(m) {
		return "", newConfigError(ErrInvalidMode, s)
	}
	return m, nil
}

// Modes returns the known modes, hash first.
func Modes() []Mode {
	return []Mode{ModeHash, ModeSeeded}
}
