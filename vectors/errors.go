package vectors

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrUnknownFormat indicates no codec is registered for a format.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrUnmarshal indicates the codec failed to read a vector set.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to write a vector set.
	ErrMarshal = errors.New("marshal failed")

	// ErrInvalidVector indicates a vector set is structurally invalid.
	ErrInvalidVector = errors.New("invalid vector")
)

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	ContentType string // Content type of the codec
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.ContentType)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}
