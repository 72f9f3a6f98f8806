package domain

import "path/filepath"

const (
	// CacheDirName is the name of the scratch directory shared by fetch scripts.
	CacheDirName = ".vat-cache"

	// PackagesDirName is the name of the directory holding one subdirectory per package.
	PackagesDirName = "p"

	// ShellLibPath is the shell library sourced before every fetch, relative to the root.
	ShellLibPath = "sh/lib.env"

	// SettingsFileName is the name of the optional run configuration file.
	SettingsFileName = "vat.yaml"

	// LegacySettingsFileName is the TOML settings file of older trees. It is not read.
	LegacySettingsFileName = "config.toml"

	// ConfigFileName is the name of a package configuration file.
	ConfigFileName = "config"

	// VersionsJSONFile is the per-package versions list.
	VersionsJSONFile = "versions.json"

	// VersionsTextFile is the per-package tab-separated versions list.
	VersionsTextFile = "versions.txt"

	// ChannelsDirName holds one file per channel containing the bare version.
	ChannelsDirName = "channels"

	// AllJSONFile is the merged listing of every package.
	AllJSONFile = "ALL.json"

	// AllTextFile is the merged tab-separated listing of every package.
	AllTextFile = "ALL.txt"

	// RunCountFile counts non-pretend runs.
	RunCountFile = "runcount"

	// ElapsedFile records the wall-clock duration of the last run.
	ElapsedFile = "elapsed"

	// Counter file names written to the cache directory.
	TotalFile   = "total"
	FailedFile  = "failed"
	SkippedFile = "skipped"
	CheckedFile = "checked"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// PackageDir returns the directory of a package below the root.
func PackageDir(root, name string) string {
	return filepath.Join(root, PackagesDirName, filepath.FromSlash(name))
}
