// Package detector selects the output mode from the terminal and CI environment.
package detector

import (
	"os"

	"go.trai.ch/vat/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode is the rendering mode of a run.
type OutputMode int

const (
	// ModeAuto picks a mode from the environment.
	ModeAuto OutputMode = iota
	// ModeProgress draws a progress bar.
	ModeProgress
	// ModeLinear prints one line per event.
	ModeLinear
	// ModeTUI runs the interactive terminal interface. It is never detected, only requested.
	ModeTUI
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeProgress:
		return "progress"
	case ModeLinear:
		return "linear"
	case ModeTUI:
		return "tui"
	default:
		return "auto"
	}
}

// ParseMode parses an --output-mode value. "ci" is accepted as an alias of linear.
func ParseMode(s string) (OutputMode, error) {
	switch s {
	case "", "auto":
		return ModeAuto, nil
	case "progress":
		return ModeProgress, nil
	case "linear", "ci":
		return ModeLinear, nil
	case "tui":
		return ModeTUI, nil
	default:
		return ModeAuto, zerr.With(zerr.Wrap(domain.ErrInvalidOutputMode, "cannot select renderer"), "mode", s)
	}
}

// DetectEnvironment returns ModeLinear when stderr is not a terminal or CI is set, ModeProgress otherwise.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeProgress
}

// ResolveMode applies the user's choice on top of the detected mode.
func ResolveMode(detected, requested OutputMode) OutputMode {
	if requested == ModeAuto {
		return detected
	}
	return requested
}
