// Package progress renders a run as a single progress bar on an interactive terminal.
package progress

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"github.com/schollz/progressbar/v3"
	"go.trai.ch/vat/internal/ui/output"
	"go.trai.ch/vat/internal/ui/style"
)

// RefreshInterval bounds how often the bar is redrawn.
const RefreshInterval = 100 * time.Millisecond

// Renderer implements ports.Renderer with a bar counting finished packages.
// Failed packages are listed once the bar is finished.
type Renderer struct {
	w        io.Writer
	out      *termenv.Output
	throttle time.Duration

	mu       sync.Mutex
	bar      *progressbar.ProgressBar
	packages map[string]string
	failures []failure
	done     chan struct{}
	stopped  bool
}

type failure struct {
	name    string
	outcome string
	err     error
}

// NewRenderer creates a Renderer drawing on w. A nil writer means stderr.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}
	return &Renderer{
		w:        w,
		out:      output.New(w),
		throttle: RefreshInterval,
		packages: make(map[string]string),
		done:     make(chan struct{}),
	}
}

// WithThrottle overrides the refresh interval.
func (r *Renderer) WithThrottle(d time.Duration) *Renderer {
	r.throttle = d
	return r
}

// Start does nothing; the bar is created once the plan is known.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop finishes the bar and prints the packages that did not fetch.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return nil
	}
	r.stopped = true
	defer close(r.done)

	if r.bar != nil {
		if err := r.bar.Finish(); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(r.w)
	}

	slices.SortFunc(r.failures, func(a, b failure) int {
		return cmp.Compare(a.name, b.name)
	})
	for _, f := range r.failures {
		icon, color := style.OutcomeIcon(f.outcome)
		line := fmt.Sprintf("%s %s", icon, f.name)
		if f.err != nil {
			line += ": " + f.err.Error()
		}
		_, _ = fmt.Fprintln(r.w, r.out.String(line).Foreground(r.out.Color(string(color))).String())
	}
	return nil
}

// Wait blocks until Stop has been called.
func (r *Renderer) Wait() error {
	<-r.done
	return nil
}

// OnPlanEmit creates the bar sized to the number of packages.
func (r *Renderer) OnPlanEmit(packages []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bar = progressbar.NewOptions(len(packages),
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription("fetching"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(r.throttle),
	)
}

// OnFetchStart shows the package being fetched.
func (r *Renderer) OnFetchStart(spanID, parentID, name string, _ time.Time) {
	if parentID != "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.packages[spanID] = name
	if r.bar != nil {
		r.bar.Describe(name)
	}
}

// OnFetchComplete advances the bar by one package.
func (r *Renderer) OnFetchComplete(spanID string, _ time.Time, outcome string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, ok := r.packages[spanID]
	if !ok {
		return
	}
	delete(r.packages, spanID)

	if outcome != "fetched" && outcome != "skipped" {
		r.failures = append(r.failures, failure{name: name, outcome: outcome, err: err})
	}
	if r.bar != nil {
		_ = r.bar.Add(1)
	}
}
