package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Span attribute keys.
const (
	// AttrOutcome holds the outcome name of a package span.
	AttrOutcome = "vat.outcome"
	// AttrChannels holds the number of enabled channels of a package span.
	AttrChannels = "vat.channels"
	// AttrVersion holds the resolved version of a channel span.
	AttrVersion = "vat.version"
)

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span as a child of the span in ctx, if any.
	Start(ctx context.Context, name string) (context.Context, Span)
	// EmitPlan signals the packages about to be fetched.
	EmitPlan(ctx context.Context, packages []string)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
