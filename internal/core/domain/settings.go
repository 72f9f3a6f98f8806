package domain

import (
	"path/filepath"
	"runtime"
	"time"

	"go.trai.ch/zerr"
)

// Default run settings.
const (
	DefaultInterpreter  = "bash"
	DefaultFetchTimeout = 30 * time.Second
	DefaultCacheTimeout = time.Hour
)

// Settings is the immutable configuration of one run.
// It is built once at startup and passed to every component that needs it.
type Settings struct {
	// Root is the absolute path of the vat tree.
	Root string

	// Interpreter runs fetch commands as `<Interpreter> -c <script>`.
	Interpreter string

	// FetchTimeout bounds every fetch script.
	FetchTimeout time.Duration

	// CacheTimeout is the age after which the cache directory is recreated.
	CacheTimeout time.Duration

	// Jobs is the number of packages fetched concurrently.
	Jobs int

	// NoCache asks fetch scripts to bypass the cache directory.
	NoCache bool

	// Guarantee forces a real fetch for every package regardless of chance.
	Guarantee bool

	// Pretend suppresses writing per-package and merged artifacts.
	Pretend bool
}

// DefaultJobs returns the worker count used when none is configured.
func DefaultJobs() int {
	return 2 * runtime.NumCPU()
}

// NewSettings returns the default settings rooted at root.
func NewSettings(root string) Settings {
	return Settings{
		Root:         root,
		Interpreter:  DefaultInterpreter,
		FetchTimeout: DefaultFetchTimeout,
		CacheTimeout: DefaultCacheTimeout,
		Jobs:         DefaultJobs(),
	}
}

// Validate checks that the settings can drive a run.
func (s Settings) Validate() error {
	invalid := func(field string, value any) error {
		err := zerr.With(zerr.Wrap(ErrInvalidSettings, "cannot run"), "field", field)
		return zerr.With(err, "value", value)
	}

	switch {
	case s.Root == "":
		return invalid("root", s.Root)
	case s.Interpreter == "":
		return invalid("interpreter", s.Interpreter)
	case s.FetchTimeout <= 0:
		return invalid("fetch_timeout", s.FetchTimeout)
	case s.CacheTimeout < 0:
		return invalid("cache_timeout", s.CacheTimeout)
	case s.Jobs < 1:
		return invalid("jobs", s.Jobs)
	}
	return nil
}

// CacheDir is the scratch directory exported to fetch scripts as VAT_CACHE.
func (s Settings) CacheDir() string {
	return filepath.Join(s.Root, CacheDirName)
}

// ShellLib is the shell library exported to fetch scripts as SHLIB_PATH.
func (s Settings) ShellLib() string {
	return filepath.Join(s.Root, ShellLibPath)
}

// PackagesDir is the directory holding the package trees.
func (s Settings) PackagesDir() string {
	return filepath.Join(s.Root, PackagesDirName)
}

// PackageDir is the directory of one package, exported as PACKAGE_ROOT.
func (s Settings) PackageDir(name string) string {
	return PackageDir(s.Root, name)
}
