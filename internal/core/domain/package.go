package domain

import (
	"cmp"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Package is a single tracked piece of software.
// Name may contain path-like segments for nested namespaces (e.g. "py/build").
type Package struct {
	Name   string
	Config PackageConfig
}

// PackageConfig describes where a package comes from and how its channels are fetched.
type PackageConfig struct {
	// Upstream is the base reference handed to fetch scripts.
	Upstream string

	// Chance is the probability in [0, 1] that a real fetch is attempted on a given run.
	Chance float64

	// Channels are resolved in declaration order.
	Channels []PackageChannel
}

// PackageChannel is a named update stream of a package.
type PackageChannel struct {
	Name     string
	Enabled  bool
	Upstream *string
	Fetch    string
	Expected *string
}

// DefaultChance is the chance used when a package config does not declare one.
const DefaultChance = 1.0

// Basename returns the last path segment of the package name.
func (p *Package) Basename() string {
	return path.Base(p.Name)
}

// Channel returns the channel with the given name, if configured.
func (p *Package) Channel(name string) (*PackageChannel, bool) {
	for i := range p.Config.Channels {
		if p.Config.Channels[i].Name == name {
			return &p.Config.Channels[i], true
		}
	}
	return nil, false
}

// EnabledChannels returns the enabled channels in declaration order.
func (p *Package) EnabledChannels() []PackageChannel {
	enabled := make([]PackageChannel, 0, len(p.Config.Channels))
	for _, ch := range p.Config.Channels {
		if ch.Enabled {
			enabled = append(enabled, ch)
		}
	}
	return enabled
}

// EffectiveUpstream returns the channel's upstream override, or the package upstream.
func (p *Package) EffectiveUpstream(ch *PackageChannel) string {
	if ch.Upstream != nil {
		return *ch.Upstream
	}
	return p.Config.Upstream
}

// Fingerprint hashes the package name and config content.
// Two packages with equal fingerprints are interchangeable.
// Chance is compared at a precision of 0.01.
func (p *Package) Fingerprint() uint64 {
	d := xxhash.New()
	write := func(s string) {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	writeOpt := func(s *string) {
		if s == nil {
			write("\x01")
			return
		}
		write(*s)
	}

	write(p.Name)
	write(p.Config.Upstream)
	write(strconv.FormatInt(int64(math.Round(p.Config.Chance*100)), 10))
	for _, ch := range p.Config.Channels {
		write(ch.Name)
		write(strconv.FormatBool(ch.Enabled))
		writeOpt(ch.Upstream)
		write(ch.Fetch)
		writeOpt(ch.Expected)
	}
	return d.Sum64()
}

// ValidatePackageName checks that name is a relative slash-separated path below the packages
// directory, such as "zlib" or "py/build".
func ValidatePackageName(name string) error {
	if name == "" || strings.HasPrefix(name, "/") || strings.ContainsAny(name, "\\\x00") {
		return zerr.With(zerr.Wrap(ErrInvalidPackageName, "invalid package"), "package", name)
	}
	for segment := range strings.SplitSeq(name, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return zerr.With(zerr.Wrap(ErrInvalidPackageName, "invalid package"), "package", name)
		}
	}
	return nil
}

func validateChannelName(name string) bool {
	return name != "." && name != ".." && !strings.ContainsAny(name, "/\\\x00")
}

// Validate checks the invariants that do not depend on defaults.
func (p *Package) Validate() error {
	if err := ValidatePackageName(p.Name); err != nil {
		return err
	}
	if math.IsNaN(p.Config.Chance) || p.Config.Chance < 0 || p.Config.Chance > 1 {
		err := zerr.With(zerr.Wrap(ErrInvalidChance, "invalid package config"), "package", p.Name)
		return zerr.With(err, "chance", p.Config.Chance)
	}

	seen := make(map[string]struct{}, len(p.Config.Channels))
	for _, ch := range p.Config.Channels {
		if ch.Name == "" {
			return zerr.With(zerr.Wrap(ErrMissingChannelName, "invalid package config"), "package", p.Name)
		}
		if !validateChannelName(ch.Name) {
			err := zerr.With(zerr.Wrap(ErrInvalidChannelName, "invalid package config"), "package", p.Name)
			return zerr.With(err, "channel", ch.Name)
		}
		if _, dup := seen[ch.Name]; dup {
			err := zerr.With(zerr.Wrap(ErrDuplicateChannel, "invalid package config"), "package", p.Name)
			return zerr.With(err, "channel", ch.Name)
		}
		seen[ch.Name] = struct{}{}
	}
	return nil
}

// ApplyDefaults fills the upstream, fetch and expected fields left empty in the config.
// It is called once, right after the package is constructed.
func (p *Package) ApplyDefaults() error {
	if p.Config.Upstream == "" {
		p.Config.Upstream = "gh:" + p.Basename() + "/" + p.Basename()
	}

	for i := range p.Config.Channels {
		ch := &p.Config.Channels[i]

		if ch.Fetch == "" {
			kind := ClassifyUpstream(p.EffectiveUpstream(ch))
			fetch, ok := DefaultFetch(kind, ch.Name)
			if !ok {
				err := zerr.With(zerr.Wrap(ErrMissingFetch, "invalid package config"), "package", p.Name)
				return zerr.With(err, "channel", ch.Name)
			}
			ch.Fetch = fetch
		}

		if ch.Expected == nil {
			expected, ok := DefaultExpected(ch.Name)
			if !ok {
				err := zerr.With(zerr.Wrap(ErrMissingExpected, "invalid package config"), "package", p.Name)
				return zerr.With(err, "channel", ch.Name)
			}
			ch.Expected = &expected
		}
	}
	return nil
}

// ComparePackages orders packages by name.
func ComparePackages(a, b Package) int {
	return cmp.Compare(a.Name, b.Name)
}
