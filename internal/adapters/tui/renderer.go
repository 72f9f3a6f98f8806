package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Renderer wraps the TUI Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnPlanEmit forwards the package list to the TUI.
func (r *Renderer) OnPlanEmit(packages []string) {
	r.program.Send(MsgPlan{Packages: packages})
}

// OnFetchStart forwards span starts to the TUI.
func (r *Renderer) OnFetchStart(spanID, parentID, name string, startTime time.Time) {
	r.program.Send(MsgFetchStart{
		SpanID:    spanID,
		ParentID:  parentID,
		Name:      name,
		StartTime: startTime,
	})
}

// OnFetchComplete forwards span ends to the TUI.
func (r *Renderer) OnFetchComplete(spanID string, endTime time.Time, outcome string, err error) {
	r.program.Send(MsgFetchComplete{
		SpanID:  spanID,
		EndTime: endTime,
		Outcome: outcome,
		Err:     err,
	})
}
