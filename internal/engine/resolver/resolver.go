// Package resolver runs the fetch script of a channel and validates the version it prints.
package resolver

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"sync"
	"unicode/utf8"

	"go.trai.ch/vat/internal/core/domain"
	"go.trai.ch/vat/internal/core/ports"
	"go.trai.ch/zerr"
)

// sourceLib loads the shell library through the exported variable. Root paths may contain spaces.
const sourceLib = `. "$SHLIB_PATH" && `

// Resolver implements ports.ChannelResolver.
type Resolver struct {
	settings   domain.Settings
	executor   ports.CommandExecutor
	normalizer ports.VersionNormalizer
	tracer     ports.Tracer

	patterns sync.Map // string -> *regexp.Regexp
}

// NewResolver creates a Resolver for one run.
func NewResolver(
	settings domain.Settings,
	executor ports.CommandExecutor,
	normalizer ports.VersionNormalizer,
	tracer ports.Tracer,
) *Resolver {
	return &Resolver{
		settings:   settings,
		executor:   executor,
		normalizer: normalizer,
		tracer:     tracer,
	}
}

// Resolve runs the channel's fetch script inside a span named after the channel.
func (r *Resolver) Resolve(ctx context.Context, pkg *domain.Package, ch *domain.PackageChannel) (string, error) {
	ctx, span := r.tracer.Start(ctx, ch.Name)
	defer span.End()

	version, err := r.resolve(ctx, pkg, ch)
	if err != nil {
		span.RecordError(err)
		return "", zerr.With(zerr.With(err, "package", pkg.Name), "channel", ch.Name)
	}

	span.SetAttribute(ports.AttrVersion, version)
	return version, nil
}

func (r *Resolver) resolve(ctx context.Context, pkg *domain.Package, ch *domain.PackageChannel) (string, error) {
	env, err := r.environment(pkg, ch)
	if err != nil {
		return "", err
	}

	out, err := r.executor.Execute(ctx, domain.Command{
		Args:    []string{r.settings.Interpreter, "-c", sourceLib + ch.Fetch},
		Env:     env,
		Dir:     env["PACKAGE_ROOT"],
		Timeout: r.settings.FetchTimeout,
	})
	if err != nil {
		return "", zerr.Wrap(errors.Join(domain.ErrFetchCommand, err), "cannot resolve channel")
	}

	version := r.normalizer.Normalize(pkg, out)

	if ch.Expected == nil {
		return version, nil
	}
	re, err := r.pattern(*ch.Expected)
	if err != nil {
		return "", err
	}
	if !re.MatchString(version) {
		err := zerr.With(zerr.Wrap(domain.ErrExpectedMismatch, "cannot resolve channel"), "version", version)
		return "", zerr.With(err, "expected", *ch.Expected)
	}
	return version, nil
}

// environment builds the variables exported to fetch scripts.
func (r *Resolver) environment(pkg *domain.Package, ch *domain.PackageChannel) (map[string]string, error) {
	paths := map[string]string{
		"PACKAGE_ROOT": r.settings.PackageDir(pkg.Name),
		"VAT_ROOT":     r.settings.Root,
		"VAT_CACHE":    r.settings.CacheDir(),
		"SHLIB_PATH":   r.settings.ShellLib(),
	}
	for key, path := range paths {
		if !utf8.ValidString(path) {
			err := zerr.With(zerr.Wrap(domain.ErrInvalidPath, "cannot build fetch environment"), "variable", key)
			return nil, zerr.With(err, "path", path)
		}
	}

	env := map[string]string{
		"GIT_TERMINAL_PROMPT": "false",
		"NO_CACHE":            strconv.FormatBool(r.settings.NoCache),
		"channel":             ch.Name,
		"name":                pkg.Basename(),
		"upstream":            pkg.EffectiveUpstream(ch),
	}
	for key, path := range paths {
		env[key] = path
	}
	return env, nil
}

// pattern compiles expected as a full-string match, caching the result.
func (r *Resolver) pattern(expected string) (*regexp.Regexp, error) {
	if re, ok := r.patterns.Load(expected); ok {
		return re.(*regexp.Regexp), nil
	}

	re, err := Compile(expected)
	if err != nil {
		return nil, err
	}
	r.patterns.Store(expected, re)
	return re, nil
}

// Compile compiles an expected pattern so that it must match the whole version.
func Compile(expected string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + expected + `)$`)
	if err != nil {
		err = zerr.Wrap(errors.Join(domain.ErrInvalidPattern, err), "cannot compile expected pattern")
		return nil, zerr.With(err, "expected", expected)
	}
	return re, nil
}
