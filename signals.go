package jason

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for export events.
var (
	SignalExporterCreated = capitan.NewSignal("jason.exporter.created", "Exporter instantiated")
	SignalExportStart     = capitan.NewSignal("jason.export.start", "Export operation beginning")
	SignalExportComplete  = capitan.NewSignal("jason.export.complete", "Export operation finished")
)

// Keys for typed event data.
var (
	KeySourceType = capitan.NewStringKey("source_type")
	KeyTargetType = capitan.NewStringKey("target_type")
	KeyInputSize  = capitan.NewIntKey("input_size")
	KeyOutputSize = capitan.NewIntKey("output_size")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyError      = capitan.NewErrorKey("error")
)

// emitExporterCreated emits an event when an exporter is created.
func emitExporterCreated(ctx context.Context, sourceType, targetType string) {
	capitan.Emit(ctx, SignalExporterCreated,
		KeySourceType.Field(sourceType),
		KeyTargetType.Field(targetType),
	)
}

// emitExportStart emits an event when an export begins.
func emitExportStart(ctx context.Context, sourceType, targetType string, inputSize int) {
	capitan.Emit(ctx, SignalExportStart,
		KeySourceType.Field(sourceType),
		KeyTargetType.Field(targetType),
		KeyInputSize.Field(inputSize),
	)
}

// emitExportComplete emits an event when an export finishes.
func emitExportComplete(ctx context.Context, sourceType, targetType string, inputSize, outputSize int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeySourceType.Field(sourceType),
		KeyTargetType.Field(targetType),
		KeyInputSize.Field(inputSize),
		KeyOutputSize.Field(outputSize),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalExportComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalExportComplete, fields...)
	}
}
