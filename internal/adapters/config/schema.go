package config

// Settingsfile represents the structure of the vat.yaml configuration file.
type Settingsfile struct {
	// FetchTimeout is the maximum lifespan of a fetch, in seconds.
	FetchTimeout *int `yaml:"fetch_timeout"`
	// CacheTimeout is the maximum age of the cache directory, in seconds.
	CacheTimeout *int   `yaml:"cache_timeout"`
	Jobs         *int   `yaml:"jobs"`
	Interpreter  string `yaml:"interpreter"`
}

// PackageDTO represents a package config file.
type PackageDTO struct {
	Upstream string       `toml:"upstream"`
	Chance   *float64     `toml:"chance"`
	Channels []ChannelDTO `toml:"channels"`
}

// ChannelDTO represents one [[channels]] table of a package config file.
type ChannelDTO struct {
	Name     string  `toml:"name"`
	Enabled  *bool   `toml:"enabled"`
	Upstream *string `toml:"upstream"`
	Fetch    string  `toml:"fetch"`
	Expected *string `toml:"expected"`
}
