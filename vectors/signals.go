package vectors

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/cloak"
)

// Signals for verification events.
var (
	SignalVerifyStart    = capitan.NewSignal("cloak.verify.start", "Vector verification beginning")
	SignalVerifyComplete = capitan.NewSignal("cloak.verify.complete", "Vector verification finished")
	SignalVectorMismatch = capitan.NewSignal("cloak.verify.mismatch", "Vector did not reproduce")
)

// Keys for typed event data.
var (
	KeyTotal    = capitan.NewIntKey("total")
	KeyFailed   = capitan.NewIntKey("failed")
	KeyIndex    = capitan.NewIntKey("index")
	KeyKind     = capitan.NewStringKey("kind")
	KeyDuration = capitan.NewDurationKey("duration")
)

func emitVerifyStart(ctx context.Context, total int) {
	capitan.Emit(ctx, SignalVerifyStart,
		KeyTotal.Field(total),
	)
}

// emitVerifyComplete emits an error event when verification was cut short.
func emitVerifyComplete(ctx context.Context, total, failed int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTotal.Field(total),
		KeyFailed.Field(failed),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, cloak.KeyError.Field(err))
		capitan.Error(ctx, SignalVerifyComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalVerifyComplete, fields...)
	}
}

// emitVectorMismatch carries mode and kind only; inputs stay out of events.
func emitVectorMismatch(ctx context.Context, index int, v Vector) {
	capitan.Emit(ctx, SignalVectorMismatch,
		KeyIndex.Field(index),
		cloak.KeyMode.Field(string(v.Mode)),
		KeyKind.Field(string(v.Kind)),
	)
}
