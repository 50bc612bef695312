package cloak

// Class is the substitution class of a single character.
type Class uint8

const (
	// ClassOther covers everything outside the ASCII alphanumerics, including
	// all non-ASCII code points. Other characters are never substituted.
	ClassOther Class = iota

	// ClassDigit is '0'..'9'.
	ClassDigit

	// ClassUpper is 'A'..'Z'.
	ClassUpper

	// ClassLower is 'a'..'z'.
	ClassLower
)

// String returns the lowercase class name.
func (c Class) String() string {
	switch c {
	case ClassDigit:
		return "digit"
	case ClassUpper:
		return "upper"
	case ClassLower:
		return "lower"
	default:
		return "other"
	}
}

// Classify returns the class of r using ASCII range comparisons only.
func Classify(r rune) Class {
	switch {
	case r >= '0' && r <= '9':
		return ClassDigit
	case r >= 'A' && r <= 'Z':
		return ClassUpper
	case r >= 'a' && r <= 'z':
		return ClassLower
	default:
		return ClassOther
	}
}

// classSize returns the number of characters in the class range.
func classSize(c Class) uint32 {
	switch c {
	case ClassDigit:
		return 10
	case ClassUpper, ClassLower:
		return 26
	default:
		return 0
	}
}

// classBase returns the first character of the class range.
func classBase(c Class) byte {
	switch c {
	case ClassDigit:
		return '0'
	case ClassUpper:
		return 'A'
	case ClassLower:
		return 'a'
	default:
		return 0
	}
}
