// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/vat/internal/core/domain"
)

// CommandExecutor runs a single subprocess to completion.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandExecutor interface {
	// Execute runs cmd and returns its trimmed stdout.
	//
	// Output on stderr, blank stdout, a nonzero exit status and an expired timeout are all failures;
	// the returned error wraps the matching domain sentinel.
	Execute(ctx context.Context, cmd domain.Command) (string, error)
}
