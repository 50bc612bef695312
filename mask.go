package cloak

import "unicode/utf8"

// Masker applies format-preserving masking to a string.
type Masker interface {
	// Mask returns a value of the same shape as value.
	Mask(value string) string
}

// hashMasker masks with the portable SHA-256 keystream.
type hashMasker struct{}

// HashMasker returns a masker using the hash keystream.
// Output is identical across processes, platforms and conforming
// implementations in other languages.
func HashMasker() Masker {
	return hashMasker{}
}

func (hashMasker) Mask(value string) string {
	return apply(value, func() keystream { return newHashStream(value) })
}

// seededMasker masks with a per-call seeded generator.
type seededMasker struct{}

// SeededMasker returns a masker using the seeded keystream.
// Output is repeatable within the same build, but is not guaranteed to match
// other generator implementations or other versions of this module.
func SeededMasker() Masker {
	return seededMasker{}
}

func (seededMasker) Mask(value string) string {
	return apply(value, func() keystream { return newSeededStream(value) })
}

// apply walks value left to right, substituting ASCII alphanumerics and
// copying everything else verbatim. Positions count code points; each byte of
// an invalid UTF-8 sequence counts as one position. The keystream is built
// lazily so values with nothing to substitute never touch it.
func apply(value string, stream func() keystream) string {
	var out []byte
	var ks keystream
	pos := 0
	for i := 0; i < len(value); {
		r, size := utf8.DecodeRuneInString(value[i:])
		if c := Classify(r); c != ClassOther {
			if ks == nil {
				ks = stream()
				out = []byte(value)
			}
			out[i] = ks.Next(c, pos)
		}
		i += size
		pos++
	}
	if out == nil {
		return value
	}
	return string(out)
}

// builtinMaskers returns the default masker table.
func builtinMaskers() map[Mode]Masker {
	return map[Mode]Masker{
		ModeHash:   HashMasker(),
		ModeSeeded: SeededMasker(),
	}
}

// maskers is read-only after init.
var maskers = builtinMaskers()

// MaskerFor returns the masker for mode.
func MaskerFor(mode Mode) (Masker, error) {
	m, ok := maskers[mode]
	if !ok {
		return nil, newConfigError(ErrInvalidMode, string(mode))
	}
	return m, nil
}

// MaskStringHash masks s with the hash keystream.
func MaskStringHash(s string) string {
	return HashMasker().Mask(s)
}

// MaskString masks s with the seeded keystream.
func MaskString(s string) string {
	return SeededMasker().Mask(s)
}
