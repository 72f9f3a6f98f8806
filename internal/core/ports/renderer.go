package ports

import (
	"context"
	"time"
)

// Renderer presents the progress of a run from its span stream.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer.
	Start(ctx context.Context) error

	// Stop flushes any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnPlanEmit is called once with the names of all packages of the run.
	OnPlanEmit(packages []string)

	// OnFetchStart is called when a span begins.
	// parentID is empty for package spans and set for channel spans.
	OnFetchStart(spanID, parentID, name string, startTime time.Time)

	// OnFetchComplete is called when a span ends.
	// outcome is the package outcome ("fetched", "skipped", "failed") or empty for channel spans.
	OnFetchComplete(spanID string, endTime time.Time, outcome string, err error)
}
