package domain

import "time"

// Command is a single subprocess invocation.
type Command struct {
	// Args is the argv; Args[0] is resolved through PATH.
	Args []string

	// Env is overlaid on the current process environment.
	Env map[string]string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Timeout bounds the wall-clock time of the invocation. Zero means no bound.
	Timeout time.Duration
}
