package valueptr

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for pointer lifecycle events.
var (
	SignalCloneComplete      = capitan.NewSignal("valueptr.clone.complete", "Clone operation finished")
	SignalDelete             = capitan.NewSignal("valueptr.delete", "Owned value handed to the deleter")
	SignalRelease            = capitan.NewSignal("valueptr.release", "Ownership released to the caller")
	SignalDeleteFailed       = capitan.NewSignal("valueptr.delete.failed", "Deleter could not release a resource")
	SignalCodecClonerCreated = capitan.NewSignal("valueptr.codec.cloner.created", "Codec cloner instantiated")
)

// Keys for typed event data.
var (
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyContentType = capitan.NewStringKey("content_type")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitCloneComplete emits an event when a clone finishes.
func emitCloneComplete(ctx context.Context, typeName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalCloneComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalCloneComplete, fields...)
	}
}

// emitDelete emits an event when an owned value is destroyed.
func emitDelete(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalDelete,
		KeyTypeName.Field(typeName),
	)
}

// emitRelease emits an event when ownership is given up without deleting.
func emitRelease(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalRelease,
		KeyTypeName.Field(typeName),
	)
}

// emitDeleteFailed emits an error event when a deleter swallows a failure.
func emitDeleteFailed(ctx context.Context, typeName string, err error) {
	capitan.Error(ctx, SignalDeleteFailed,
		KeyTypeName.Field(typeName),
		KeyError.Field(err),
	)
}

// emitCodecClonerCreated emits an event when a codec cloner is built.
func emitCodecClonerCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalCodecClonerCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}
