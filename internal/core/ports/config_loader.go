package ports

import "go.trai.ch/vat/internal/core/domain"

//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks

// SettingsLoader reads the run configuration of a vat root.
type SettingsLoader interface {
	// Load returns the settings stored in the root, or defaults when there is no settings file.
	Load(root string) (domain.Settings, error)
}

// PackageLoader builds packages from their configuration files.
type PackageLoader interface {
	// Discover returns the names of every package below the packages directory, sorted.
	Discover(root string) ([]string, error)

	// Load reads, defaults and validates the named packages.
	Load(root string, names []string) ([]domain.Package, error)
}
