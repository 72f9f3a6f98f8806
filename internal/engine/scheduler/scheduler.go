// Package scheduler fetches many packages concurrently and publishes the merged results.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.trai.ch/vat/internal/core/domain"
	"go.trai.ch/vat/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Scheduler runs the fetch policy over a set of packages on a bounded worker pool.
type Scheduler struct {
	settings domain.Settings
	policy   ports.FetchPolicy
	store    ports.VersionStore
	tracer   ports.Tracer
	logger   ports.Logger
}

// NewScheduler creates a Scheduler for one run.
func NewScheduler(
	settings domain.Settings,
	policy ports.FetchPolicy,
	store ports.VersionStore,
	tracer ports.Tracer,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		settings: settings,
		policy:   policy,
		store:    store,
		tracer:   tracer,
		logger:   logger,
	}
}

type result struct {
	pkg     *domain.Package
	outcome domain.FetchOutcome
	err     error
}

// FetchAll fetches every package and returns one result entry per package, sorted by name.
//
// Packages that fail to fetch keep their recorded versions. The run fails as a whole, returning
// no result set, when a package needs recorded versions that cannot be read or when ctx is canceled.
func (s *Scheduler) FetchAll(ctx context.Context, packages []domain.Package) (*domain.ResultSet, domain.RunCounters, error) {
	unique, err := s.dedupe(packages)
	if err != nil {
		return nil, domain.RunCounters{}, err
	}

	names := make([]string, len(unique))
	for i := range unique {
		names[i] = unique[i].Name
	}
	s.tracer.EmitPlan(ctx, names)

	results := make(chan result)
	var (
		counters domain.RunCounters
		entries  = make([]domain.ResultEntry, 0, len(unique))
		errs     error
	)
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for r := range results {
			if r.err != nil {
				counters.Record(domain.OutcomeFailed)
				errs = errors.Join(errs, r.err)
				continue
			}
			counters.Record(r.outcome.Kind)
			entries = append(entries, domain.ResultEntry{Package: *r.pkg, Versions: r.outcome.Versions})
		}
	}()

	g := new(errgroup.Group)
	g.SetLimit(s.settings.Jobs)
	for i := range unique {
		pkg := &unique[i]
		g.Go(func() error {
			results <- s.fetchOne(ctx, pkg)
			return nil
		})
	}
	_ = g.Wait()
	close(results)
	<-collected

	if errs != nil {
		return nil, counters, zerr.Wrap(errors.Join(domain.ErrFetchRunFailed, errs), "cannot complete fetch run")
	}
	if err := ctx.Err(); err != nil {
		return nil, counters, zerr.Wrap(errors.Join(domain.ErrFetchRunFailed, err), "fetch run interrupted")
	}
	return domain.NewResultSet(entries), counters, nil
}

// fetchOne applies the policy to pkg inside a span, turning a panic into a failed outcome.
func (s *Scheduler) fetchOne(ctx context.Context, pkg *domain.Package) (res result) {
	ctx, span := s.tracer.Start(ctx, pkg.Name)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			cause := zerr.With(zerr.Wrap(domain.ErrPackagePanicked, fmt.Sprint(r)), "package", pkg.Name)
			s.logger.Error(cause)
			res = s.recovered(pkg, cause)
		}

		if res.err != nil {
			span.RecordError(res.err)
			return
		}
		span.SetAttribute(ports.AttrOutcome, res.outcome.Kind.String())
		if res.outcome.Cause != nil {
			span.RecordError(res.outcome.Cause)
		}
	}()

	span.SetAttribute(ports.AttrChannels, len(pkg.EnabledChannels()))
	outcome, err := s.policy.Fetch(ctx, pkg)
	return result{pkg: pkg, outcome: outcome, err: err}
}

func (s *Scheduler) recovered(pkg *domain.Package, cause error) result {
	versions, err := s.store.ReadVersions(s.settings.Root, pkg)
	if err != nil {
		err = zerr.Wrap(errors.Join(domain.ErrMissingFallback, cause, err), "cannot fall back to recorded versions")
		return result{pkg: pkg, err: zerr.With(err, "package", pkg.Name)}
	}
	return result{pkg: pkg, outcome: domain.Failed(versions, cause)}
}

// dedupe drops repeated packages. Two different packages with the same name are an error.
func (s *Scheduler) dedupe(packages []domain.Package) ([]domain.Package, error) {
	seen := make(map[string]uint64, len(packages))
	unique := make([]domain.Package, 0, len(packages))

	for _, pkg := range packages {
		fp := pkg.Fingerprint()
		if prev, ok := seen[pkg.Name]; ok {
			if prev != fp {
				return nil, zerr.With(zerr.Wrap(domain.ErrDuplicatePackage, "cannot schedule packages"), "package", pkg.Name)
			}
			s.logger.Debug("ignoring repeated package " + pkg.Name)
			continue
		}
		seen[pkg.Name] = fp
		unique = append(unique, pkg)
	}

	slices.SortFunc(unique, domain.ComparePackages)
	return unique, nil
}

// Publish writes the counters and, unless pretending, the per-package files and merged listings.
// Write failures of single packages do not stop the others.
func (s *Scheduler) Publish(results *domain.ResultSet, counters domain.RunCounters) error {
	if err := s.store.WriteCounters(s.settings.CacheDir(), counters); err != nil {
		return zerr.Wrap(err, "cannot publish counters")
	}
	if s.settings.Pretend {
		s.logger.Debug("pretend run, not writing versions")
		return nil
	}

	var errs error
	for _, e := range results.Entries() {
		if err := s.store.WriteVersions(s.settings.Root, &e.Package, e.Versions); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if err := s.store.WriteAll(s.settings.Root, results); err != nil {
		errs = errors.Join(errs, err)
	}
	if errs != nil {
		return zerr.Wrap(errs, "cannot publish versions")
	}
	return nil
}
