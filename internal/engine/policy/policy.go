// Package policy decides per package whether to fetch, skip or fall back to recorded versions.
package policy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/vat/internal/core/domain"
	"go.trai.ch/vat/internal/core/ports"
	"go.trai.ch/zerr"
)

// Policy implements ports.FetchPolicy.
//
// A package with a chance below 1 is fetched only when a uniform sample does not exceed its
// chance, unless a fetch is guaranteed by settings or by missing fallback versions.
// Channels are fetched all-or-nothing: the first failing channel makes the whole package
// fall back to its recorded versions.
type Policy struct {
	settings domain.Settings
	resolver ports.ChannelResolver
	store    ports.VersionStore
	sampler  ports.Sampler
	logger   ports.Logger
}

// NewPolicy creates a Policy for one run.
func NewPolicy(
	settings domain.Settings,
	resolver ports.ChannelResolver,
	store ports.VersionStore,
	sampler ports.Sampler,
	logger ports.Logger,
) *Policy {
	return &Policy{
		settings: settings,
		resolver: resolver,
		store:    store,
		sampler:  sampler,
		logger:   logger,
	}
}

// Fetch returns the outcome for pkg. It fails only when fallback versions are needed and unreadable.
func (p *Policy) Fetch(ctx context.Context, pkg *domain.Package) (domain.FetchOutcome, error) {
	guarantee := p.settings.Guarantee || !p.store.HasFallback(p.settings.Root, pkg)

	if pkg.Config.Chance < 1 && !guarantee {
		if sample := p.sampler.Sample(); sample > pkg.Config.Chance {
			fallback, err := p.fallback(pkg)
			if err != nil {
				return domain.FetchOutcome{}, err
			}
			p.logger.Debug(fmt.Sprintf("skipped %s (drew %.2f over chance %.2f)", pkg.Name, sample, pkg.Config.Chance))
			return domain.Skipped(fallback), nil
		}
	}

	channels := pkg.EnabledChannels()
	versions := make([]domain.VersionChannel, 0, len(channels))
	for i := range channels {
		v, err := p.resolver.Resolve(ctx, pkg, &channels[i])
		if err != nil {
			p.logger.Error(err)

			fallback, ferr := p.fallback(pkg)
			if ferr != nil {
				return domain.FetchOutcome{}, ferr
			}
			return domain.Failed(fallback, err), nil
		}
		versions = append(versions, domain.VersionChannel{Channel: channels[i].Name, Version: v})
	}

	p.logger.Info(fmt.Sprintf("%s: %s", pkg.Name, describe(versions)))
	return domain.Fetched(versions), nil
}

func (p *Policy) fallback(pkg *domain.Package) ([]domain.VersionChannel, error) {
	versions, err := p.store.ReadVersions(p.settings.Root, pkg)
	if err != nil {
		err = zerr.Wrap(errors.Join(domain.ErrMissingFallback, err), "cannot fall back to recorded versions")
		return nil, zerr.With(err, "package", pkg.Name)
	}
	return versions, nil
}

func describe(versions []domain.VersionChannel) string {
	if len(versions) == 0 {
		return "no enabled channels"
	}
	parts := make([]string, 0, len(versions))
	for _, v := range versions {
		parts = append(parts, v.Channel+"="+v.Version)
	}
	return strings.Join(parts, " ")
}
