// Package config loads the run settings and the package configurations of a vat tree.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/vat/internal/core/domain"
	"go.trai.ch/vat/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// JobsEnvVar overrides the number of concurrent fetches.
const JobsEnvVar = "VAT_JOBS"

// SettingsLoader implements ports.SettingsLoader using a YAML file.
type SettingsLoader struct {
	Logger ports.Logger
}

// warnMissing reports the defaults in use, naming a legacy config.toml whose timeouts are ignored.
func (l *SettingsLoader) warnMissing(root string) {
	legacy := filepath.Join(root, domain.LegacySettingsFileName)
	if _, err := os.Stat(legacy); err == nil {
		l.Logger.Warn(fmt.Sprintf(
			"%s not found in %s, ignoring %s and using built-in defaults; move fetch_timeout and cache_timeout to %s",
			domain.SettingsFileName, root, domain.LegacySettingsFileName, domain.SettingsFileName,
		))
		return
	}
	l.Logger.Warn(fmt.Sprintf("%s not found in %s, using built-in defaults", domain.SettingsFileName, root))
}

// NewSettingsLoader creates a new SettingsLoader with the given logger.
func NewSettingsLoader(logger ports.Logger) *SettingsLoader {
	return &SettingsLoader{Logger: logger}
}

// Load reads vat.yaml from root. Missing files yield the defaults.
// The VAT_JOBS environment variable takes precedence over the file.
func (l *SettingsLoader) Load(root string) (domain.Settings, error) {
	settings := domain.NewSettings(root)

	path := filepath.Join(root, domain.SettingsFileName)
	var file Settingsfile
	err := readAndUnmarshalYAML(path, &file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.warnMissing(root)
	case err != nil:
		return domain.Settings{}, err
	default:
		applySettingsfile(&settings, &file)
	}

	if raw := os.Getenv(JobsEnvVar); raw != "" {
		jobs, convErr := strconv.Atoi(raw)
		if convErr != nil {
			err := zerr.With(zerr.Wrap(errors.Join(domain.ErrInvalidSettings, convErr), "invalid environment"), "variable", JobsEnvVar)
			return domain.Settings{}, err
		}
		settings.Jobs = jobs
	}

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, zerr.With(err, "file", path)
	}
	return settings, nil
}

func applySettingsfile(settings *domain.Settings, file *Settingsfile) {
	if file.FetchTimeout != nil {
		settings.FetchTimeout = time.Duration(*file.FetchTimeout) * time.Second
	}
	if file.CacheTimeout != nil {
		settings.CacheTimeout = time.Duration(*file.CacheTimeout) * time.Second
	}
	if file.Jobs != nil {
		settings.Jobs = *file.Jobs
	}
	if file.Interpreter != "" {
		settings.Interpreter = file.Interpreter
	}
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is built from the vat root
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "cannot load settings"), "file", configPath)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, parseErr), "cannot load settings"), "file", configPath)
	}

	return nil
}
