package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Services enrich the context on entry so stores, the materializer and the
// queue producer log template/run/instance ids without passing them around.
type LogFields struct {
	TemplateID *int64  // Survey template ID
	RunID      *int64  // Survey run ID
	InstanceID *int64  // Survey instance ID
	Actor      *string // User performing the operation
	Component  string  // Component name, e.g. "surveys.service.reconcile"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.TemplateID != nil {
		result.TemplateID = new.TemplateID
	}
	if new.RunID != nil {
		result.RunID = new.RunID
	}
	if new.InstanceID != nil {
		result.InstanceID = new.InstanceID
	}
	if new.Actor != nil {
		result.Actor = new.Actor
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{RunID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
