package cloak

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for masking events.
var (
	SignalMaskFailed = capitan.NewSignal("cloak.mask.failed", "Value could not be masked")
)

// Keys for typed event data.
var (
	KeyMode  = capitan.NewStringKey("mode")
	KeyType  = capitan.NewStringKey("type")
	KeyError = capitan.NewErrorKey("error")
)

// emitMaskFailed emits an error event when a value cannot be masked.
func emitMaskFailed(ctx context.Context, mode Mode, typ string, err error) {
	capitan.Error(ctx, SignalMaskFailed,
		KeyMode.Field(string(mode)),
		KeyType.Field(typ),
		KeyError.Field(err),
	)
}
