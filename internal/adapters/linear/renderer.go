// Package linear provides a line-oriented renderer for CI logs and other non-terminal outputs.
package linear

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/vat/internal/ui/output"
	"go.trai.ch/vat/internal/ui/style"
)

// Renderer implements ports.Renderer by printing one line per package event,
// prefixed with the package name.
type Renderer struct {
	out *termenv.Output

	mu    sync.Mutex
	spans map[string]spanState
}

type spanState struct {
	name      string
	parentID  string
	startTime time.Time
}

// NewRenderer creates a Renderer writing to w. A nil writer means stderr.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		out:   output.NewWithProfile(w, output.ColorProfileANSI),
		spans: make(map[string]spanState),
	}
}

// Start does nothing; the renderer writes synchronously.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop does nothing.
func (r *Renderer) Stop() error {
	return nil
}

// Wait does nothing.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit prints the number of packages to fetch.
func (r *Renderer) OnPlanEmit(packages []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.out, "Fetching %d package(s)\n", len(packages))
}

// OnFetchStart records the span and announces package fetches.
func (r *Renderer) OnFetchStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.spans[spanID] = spanState{name: name, parentID: parentID, startTime: startTime}
	if parentID != "" {
		return
	}
	_, _ = fmt.Fprintf(r.out, "%s fetching\n", r.prefix(name))
}

// OnFetchComplete prints the package outcome, or the error of a failed channel.
func (r *Renderer) OnFetchComplete(spanID string, endTime time.Time, outcome string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	span, ok := r.spans[spanID]
	if !ok {
		return
	}
	delete(r.spans, spanID)

	if span.parentID != "" {
		if err == nil {
			return
		}
		name := span.name
		if parent, ok := r.spans[span.parentID]; ok {
			name = parent.name + ":" + span.name
		}
		_, _ = fmt.Fprintf(r.out, "%s %s %v\n", r.prefix(name), r.icon(style.Cross, style.Red), err)
		return
	}

	elapsed := endTime.Sub(span.startTime).Round(time.Millisecond)
	icon, color := style.OutcomeIcon(outcome)

	var msg string
	switch outcome {
	case "fetched":
		msg = fmt.Sprintf("fetched in %v", elapsed)
	case "skipped":
		msg = "skipped, kept previous versions"
	case "failed":
		msg = fmt.Sprintf("failed after %v, kept previous versions", elapsed)
	default:
		msg = fmt.Sprintf("aborted after %v", elapsed)
		if err != nil {
			msg += ": " + err.Error()
		}
	}
	_, _ = fmt.Fprintf(r.out, "%s %s %s\n", r.prefix(span.name), r.icon(icon, color), msg)
}

func (r *Renderer) prefix(name string) string {
	return r.out.String("[" + name + "]").Faint().String()
}

func (r *Renderer) icon(icon string, color lipgloss.Color) string {
	return r.out.String(icon).Foreground(r.out.Color(string(color))).String()
}
