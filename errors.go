package cloak

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrEncoding indicates a masked value could not be converted back to
	// the input's type.
	ErrEncoding = errors.New("encoding failed")

	// ErrUnsupportedType indicates the input is neither a string nor an integer.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidMode indicates an unknown masking mode was requested.
	ErrInvalidMode = errors.New("invalid mode")
)

// EncodingError reports a value that could not be masked.
// It never carries the unmasked input; Masked holds the masked text when one
// was produced.
type EncodingError struct {
	Err    error  // Underlying sentinel error (ErrEncoding, ErrUnsupportedType)
	Mode   Mode   // Mode used for the attempt
	Type   string // Go type of the input
	Masked string // Masked text that failed to convert back
	Cause  error  // Original error from the conversion
}

func (e *EncodingError) Error() string {
	msg := fmt.Sprintf("%s: %s (mode %s)", e.Err.Error(), e.Type, e.Mode)
	if e.Masked != "" {
		msg += fmt.Sprintf(" masked to %q", e.Masked)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// ConfigError represents a masking configuration error.
type ConfigError struct {
	Err  error  // Underlying sentinel error (ErrInvalidMode)
	Mode string // Mode name as requested
}

func (e *ConfigError) Error() string {
	if e.Mode != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Mode)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newEncodingError creates an EncodingError for a failed mask.
func newEncodingError(sentinel error, mode Mode, typ, masked string, cause error) error {
	return &EncodingError{
		Err:    sentinel,
		Mode:   mode,
		Type:   typ,
		Masked: masked,
		Cause:  cause,
	}
}

// newConfigError creates a ConfigError for an unknown mode.
func newConfigError(sentinel error, mode string) error {
	return &ConfigError{
		Err:  sentinel,
		Mode: mode,
	}
}
