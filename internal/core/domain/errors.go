package domain

import "go.trai.ch/zerr"

// Command execution failures.
var (
	// ErrEmptyCommand is returned when a command has no argv.
	ErrEmptyCommand = zerr.New("command is empty")

	// ErrTimeout is returned when a command exceeds its wall-clock timeout and is killed.
	ErrTimeout = zerr.New("command timed out")

	// ErrOutputInStderr is returned when a command writes anything to stderr.
	// Fetch scripts must be silent on success, so this is a failure regardless of the exit code.
	ErrOutputInStderr = zerr.New("output in stderr")

	// ErrEmptyStdout is returned when a command prints nothing but whitespace on stdout.
	ErrEmptyStdout = zerr.New("no output in stdout")

	// ErrNonzeroStatus is returned when a command exits with a non-zero status.
	ErrNonzeroStatus = zerr.New("exited with nonzero status")

	// ErrCommandIO is returned when a command cannot be spawned or its output cannot be read.
	ErrCommandIO = zerr.New("command i/o failed")
)

// Channel resolution failures.
var (
	// ErrFetchCommand is returned when the fetch script of a channel fails.
	ErrFetchCommand = zerr.New("failed to fetch version")

	// ErrExpectedMismatch is returned when a fetched version does not match the channel's expected pattern.
	ErrExpectedMismatch = zerr.New("version does not match expected")

	// ErrInvalidPattern is returned when a channel's expected pattern is not a valid regular expression.
	ErrInvalidPattern = zerr.New("invalid expected pattern")

	// ErrInvalidPath is returned when a directory path cannot be passed to a fetch script.
	ErrInvalidPath = zerr.New("invalid path")
)

// Fetch policy and scheduling failures.
var (
	// ErrMissingFallback is returned when fallback versions are required but cannot be read.
	ErrMissingFallback = zerr.New("failed to read fallback versions")

	// ErrPackagePanicked is recorded as the cause of a failed outcome when a package fetch panics.
	ErrPackagePanicked = zerr.New("package fetch panicked")

	// ErrDuplicatePackage is returned when two different packages share a name.
	ErrDuplicatePackage = zerr.New("duplicate package name")

	// ErrFetchRunFailed is returned when a bulk fetch cannot produce a complete result set.
	ErrFetchRunFailed = zerr.New("bulk fetch failed")
)

// Configuration failures.
var (
	// ErrConfigReadFailed is returned when a config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrPackageNotFound is returned when a requested package has no config file.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrInvalidChance is returned when a package chance is outside [0, 1].
	ErrInvalidChance = zerr.New("chance must be between 0 and 1")

	// ErrDuplicateChannel is returned when a package declares the same channel twice.
	ErrDuplicateChannel = zerr.New("duplicate channel name")

	// ErrInvalidPackageName is returned when a package name does not stay below the packages directory.
	ErrInvalidPackageName = zerr.New("invalid package name")

	// ErrInvalidChannelName is returned when a channel name cannot be used as a file name.
	ErrInvalidChannelName = zerr.New("invalid channel name")

	// ErrMissingChannelName is returned when a channel has no name.
	ErrMissingChannelName = zerr.New("channel is missing a name")

	// ErrMissingFetch is returned when no fetch can be defaulted for a channel.
	ErrMissingFetch = zerr.New("missing fetch for channel")

	// ErrMissingExpected is returned when no expected pattern can be defaulted for a channel.
	ErrMissingExpected = zerr.New("missing expected for channel")

	// ErrInvalidSettings is returned when the run settings are out of range.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrInvalidOutputMode is returned for an unknown --output-mode value.
	ErrInvalidOutputMode = zerr.New("invalid output mode")
)

// Storage failures.
var (
	// ErrStoreReadFailed is returned when persisted versions cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read versions")

	// ErrStoreUnmarshalFailed is returned when persisted versions cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal versions")

	// ErrStoreMarshalFailed is returned when versions cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal versions")

	// ErrStoreWriteFailed is returned when versions cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write versions")

	// ErrStoreCreateFailed is returned when an output directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create output directory")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache")

	// ErrCacheRemoveFailed is returned when an expired cache directory cannot be removed.
	ErrCacheRemoveFailed = zerr.New("failed to remove cache")

	// ErrDiscoveryFailed is returned when walking the packages directory fails.
	ErrDiscoveryFailed = zerr.New("failed to discover packages")
)
