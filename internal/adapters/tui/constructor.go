// Package tui provides an interactive terminal interface for fetch runs.
package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/vat/internal/ui/output"
)

// NewModel creates a new TUI model that follows running packages.
func NewModel(w io.Writer) Model {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		Packages:     make([]*PackageNode, 0),
		PackageMap:   make(map[string]*PackageNode),
		SpanMap:      make(map[string]*PackageNode),
		ChannelSpans: make(map[string]*ChannelNode),
		FollowMode:   true,
	}
}
