package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/BurntSushi/toml"
	fsadapter "go.trai.ch/vat/internal/adapters/fs"
	"go.trai.ch/vat/internal/core/domain"
	"go.trai.ch/vat/internal/core/ports"
	"go.trai.ch/zerr"
)

// PackageLoader implements ports.PackageLoader using TOML config files below p/.
type PackageLoader struct {
	Logger ports.Logger
	walker *fsadapter.Walker
}

// NewPackageLoader creates a new PackageLoader.
func NewPackageLoader(logger ports.Logger, walker *fsadapter.Walker) *PackageLoader {
	return &PackageLoader{Logger: logger, walker: walker}
}

// Discover returns the name of every directory below p/ that contains a config file.
// Nested names such as "py/build" use forward slashes.
func (l *PackageLoader) Discover(root string) ([]string, error) {
	packagesDir := filepath.Join(root, domain.PackagesDirName)

	var names []string
	for path, err := range l.walker.WalkFiles(packagesDir, domain.ConfigFileName, nil) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrDiscoveryFailed, err), "cannot list packages"), "dir", packagesDir)
		}

		rel, err := filepath.Rel(packagesDir, filepath.Dir(path))
		if err != nil || rel == "." {
			continue
		}
		names = append(names, filepath.ToSlash(rel))
	}

	slices.Sort(names)
	return names, nil
}

// Load reads the config of each named package, fills defaults and validates it.
// The first invalid package aborts the load.
func (l *PackageLoader) Load(root string, names []string) ([]domain.Package, error) {
	packages := make([]domain.Package, 0, len(names))
	for _, name := range names {
		pkg, err := l.loadPackage(root, name)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}

	slices.SortFunc(packages, domain.ComparePackages)
	return packages, nil
}

func (l *PackageLoader) loadPackage(root, name string) (domain.Package, error) {
	if err := domain.ValidatePackageName(name); err != nil {
		return domain.Package{}, err
	}
	path := filepath.Join(domain.PackageDir(root, name), domain.ConfigFileName)

	// #nosec G304 -- path is built from the vat root and a package name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Package{}, zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "cannot load package"), "package", name)
		}
		err = zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "cannot load package")
		return domain.Package{}, zerr.With(err, "package", name)
	}

	var dto PackageDTO
	if err := toml.Unmarshal(data, &dto); err != nil {
		err = zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "cannot load package")
		return domain.Package{}, zerr.With(err, "package", name)
	}

	pkg := buildPackage(name, &dto)
	if err := pkg.Validate(); err != nil {
		return domain.Package{}, err
	}
	if err := pkg.ApplyDefaults(); err != nil {
		return domain.Package{}, err
	}
	if err := validatePatterns(&pkg); err != nil {
		return domain.Package{}, err
	}

	l.Logger.Debug(fmt.Sprintf("loaded package %s with %d channel(s)", name, len(pkg.Config.Channels)))
	return pkg, nil
}

func buildPackage(name string, dto *PackageDTO) domain.Package {
	chance := domain.DefaultChance
	if dto.Chance != nil {
		chance = *dto.Chance
	}

	channels := make([]domain.PackageChannel, 0, len(dto.Channels))
	for _, ch := range dto.Channels {
		enabled := true
		if ch.Enabled != nil {
			enabled = *ch.Enabled
		}
		channels = append(channels, domain.PackageChannel{
			Name:     ch.Name,
			Enabled:  enabled,
			Upstream: ch.Upstream,
			Fetch:    ch.Fetch,
			Expected: ch.Expected,
		})
	}

	return domain.Package{
		Name: name,
		Config: domain.PackageConfig{
			Upstream: dto.Upstream,
			Chance:   chance,
			Channels: channels,
		},
	}
}

// validatePatterns rejects expected patterns that do not compile, so bad configs fail at load time
// rather than on every fetch.
func validatePatterns(pkg *domain.Package) error {
	for _, ch := range pkg.Config.Channels {
		if ch.Expected == nil {
			continue
		}
		if _, err := regexp.Compile(*ch.Expected); err != nil {
			wrapped := zerr.Wrap(errors.Join(domain.ErrInvalidPattern, err), "invalid package config")
			wrapped = zerr.With(wrapped, "package", pkg.Name)
			return zerr.With(wrapped, "channel", ch.Name)
		}
	}
	return nil
}
