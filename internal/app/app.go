// Package app implements the application layer for vat.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/vat/internal/adapters/detector"
	"go.trai.ch/vat/internal/adapters/linear"
	"go.trai.ch/vat/internal/adapters/progress"
	"go.trai.ch/vat/internal/adapters/telemetry"
	"go.trai.ch/vat/internal/adapters/tui"
	"go.trai.ch/vat/internal/core/domain"
	"go.trai.ch/vat/internal/core/ports"
	"go.trai.ch/vat/internal/engine/policy"
	"go.trai.ch/vat/internal/engine/resolver"
	"go.trai.ch/vat/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	settingsLoader ports.SettingsLoader
	packageLoader  ports.PackageLoader
	cache          ports.CacheManager
	executor       ports.CommandExecutor
	normalizer     ports.VersionNormalizer
	store          ports.VersionStore
	sampler        ports.Sampler
	logger         ports.Logger

	stdout     io.Writer
	stderr     io.Writer
	now        func() time.Time
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	settingsLoader ports.SettingsLoader,
	packageLoader ports.PackageLoader,
	cache ports.CacheManager,
	executor ports.CommandExecutor,
	normalizer ports.VersionNormalizer,
	store ports.VersionStore,
	sampler ports.Sampler,
	log ports.Logger,
) *App {
	return &App{
		settingsLoader: settingsLoader,
		packageLoader:  packageLoader,
		cache:          cache,
		executor:       executor,
		normalizer:     normalizer,
		store:          store,
		sampler:        sampler,
		logger:         log,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
		now:            time.Now,
	}
}

// WithOutput redirects the renderers. Linear output goes to stdout, the progress bar to stderr.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithTeaOptions adds bubbletea program options used by the tui output mode.
// This is primarily used for testing to disable input and output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Root is the vat tree. Relative paths are resolved against the working directory.
	Root string

	Guarantee bool
	NoCache   bool
	Pretend   bool
	Verbose   bool

	// Jobs overrides the configured worker count when positive.
	Jobs int

	OutputMode string
}

func (o RunOptions) apply(s domain.Settings) domain.Settings {
	s.Guarantee = s.Guarantee || o.Guarantee
	s.NoCache = s.NoCache || o.NoCache
	s.Pretend = s.Pretend || o.Pretend
	if o.Jobs > 0 {
		s.Jobs = o.Jobs
	}
	return s
}

type verboseSetter interface {
	SetVerbose(enable bool)
}

// Run fetches the named packages, or every package of the tree when names is empty,
// and publishes their versions.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Run(ctx context.Context, names []string, opts RunOptions) error {
	start := a.now()

	if opts.Verbose {
		if v, ok := a.logger.(verboseSetter); ok {
			v.SetVerbose(true)
		}
	}

	requested, err := detector.ParseMode(opts.OutputMode)
	if err != nil {
		return err
	}

	// 1. Load settings
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve root"), "root", opts.Root)
	}
	settings, err := a.settingsLoader.Load(root)
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}
	settings = opts.apply(settings)
	if err := settings.Validate(); err != nil {
		return err
	}

	// 2. Prepare the cache shared by fetch scripts
	recreated, err := a.cache.Prepare(settings.CacheDir(), settings.CacheTimeout)
	if err != nil {
		return zerr.Wrap(err, "failed to prepare cache")
	}
	if recreated {
		a.logger.Debug("created cache at " + settings.CacheDir())
	}

	// 3. Load packages
	if len(names) == 0 {
		names, err = a.packageLoader.Discover(root)
		if err != nil {
			return zerr.Wrap(err, "failed to discover packages")
		}
	}
	packages, err := a.packageLoader.Load(root, names)
	if err != nil {
		return zerr.Wrap(err, "failed to load packages")
	}

	// 4. Initialize Renderer
	renderer := a.newRenderer(ctx, detector.ResolveMode(detector.DetectEnvironment(), requested))

	// 5. Initialize Telemetry
	tp := setupOTel(telemetry.NewBridge(renderer))
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()
	tracer := telemetry.NewOTelTracerWithProvider(tp, "vat").WithRenderer(renderer)

	// 6. Initialize engine
	res := resolver.NewResolver(settings, a.executor, a.normalizer, tracer)
	pol := policy.NewPolicy(settings, res, a.store, a.sampler, a.logger)
	sched := scheduler.NewScheduler(settings, pol, a.store, tracer, a.logger)

	// 7. Run Renderer and Scheduler concurrently
	var (
		results  *domain.ResultSet
		counters domain.RunCounters
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = zerr.With(zerr.Wrap(domain.ErrFetchRunFailed, "scheduler panicked"), "panic", fmt.Sprint(r))
			}
			_ = renderer.Stop()
		}()

		results, counters, err = sched.FetchAll(gctx, packages)
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	// 8. Publish
	if err := sched.Publish(results, counters); err != nil {
		return zerr.Wrap(err, "failed to publish versions")
	}

	elapsed := a.now().Sub(start)
	if !settings.Pretend {
		if _, err := a.store.IncrementRunCount(settings.Root); err != nil {
			return zerr.Wrap(err, "failed to update run count")
		}
		if err := a.store.WriteElapsed(settings.CacheDir(), elapsed); err != nil {
			return zerr.Wrap(err, "failed to record elapsed time")
		}
	}

	a.logger.Info(fmt.Sprintf(
		"checked %d of %d packages (%d skipped, %d failed) in %s",
		counters.Checked(), counters.Total, counters.Skipped, counters.Failed, elapsed.Round(time.Millisecond),
	))
	return nil
}

func (a *App) newRenderer(ctx context.Context, mode detector.OutputMode) ports.Renderer {
	switch mode {
	case detector.ModeTUI:
		model := tui.NewModel(a.stderr)
		opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(a.stderr)}, a.teaOptions...)
		return tui.NewRenderer(&model, opts...)
	case detector.ModeProgress:
		return progress.NewRenderer(a.stderr)
	case detector.ModeLinear, detector.ModeAuto:
	}
	return linear.NewRenderer(a.stdout)
}

// setupOTel configures the OpenTelemetry SDK with the renderer bridge.
func setupOTel(bridge *telemetry.Bridge) *sdktrace.TracerProvider {
	// Every started span is reported to the renderer.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
	return tp
}
