package domain

import (
	"cmp"
	"slices"
)

// VersionChannel is the resolved version of one channel.
type VersionChannel struct {
	Channel string `json:"channel"`
	Version string `json:"version"`
}

// PackageVersions is the merged listing entry of one package.
type PackageVersions struct {
	Package  string           `json:"package"`
	Versions []VersionChannel `json:"versions"`
}

// OutcomeKind classifies what happened to a package during a run.
type OutcomeKind int

const (
	// OutcomeFetched means every enabled channel was resolved.
	OutcomeFetched OutcomeKind = iota
	// OutcomeSkipped means the chance draw skipped the fetch and fallback versions were reused.
	OutcomeSkipped
	// OutcomeFailed means a real fetch was attempted, errored, and fallback versions were reused.
	OutcomeFailed
)

// String returns the lowercase name of the outcome.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFetched:
		return "fetched"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchOutcome is the result of applying the fetch policy to one package.
type FetchOutcome struct {
	Kind     OutcomeKind
	Versions []VersionChannel

	// Cause is the channel error that made a fetch fail. It is nil unless Kind is OutcomeFailed.
	Cause error
}

// Fetched builds a fetched outcome.
func Fetched(versions []VersionChannel) FetchOutcome {
	return FetchOutcome{Kind: OutcomeFetched, Versions: versions}
}

// Skipped builds a skipped outcome carrying fallback versions.
func Skipped(fallback []VersionChannel) FetchOutcome {
	return FetchOutcome{Kind: OutcomeSkipped, Versions: fallback}
}

// Failed builds a failed outcome carrying fallback versions and the error that caused it.
func Failed(fallback []VersionChannel, cause error) FetchOutcome {
	return FetchOutcome{Kind: OutcomeFailed, Versions: fallback, Cause: cause}
}

// RunCounters are the package counts of one run.
type RunCounters struct {
	Total   int
	Failed  int
	Skipped int
}

// Checked is the number of packages that were fetched successfully.
func (c RunCounters) Checked() int {
	return c.Total - c.Failed - c.Skipped
}

// Record adds one outcome to the counters.
func (c *RunCounters) Record(kind OutcomeKind) {
	c.Total++
	switch kind {
	case OutcomeSkipped:
		c.Skipped++
	case OutcomeFailed:
		c.Failed++
	case OutcomeFetched:
	}
}

// ResultSet maps each package of a run to its versions, ordered by package name.
type ResultSet struct {
	entries []ResultEntry
}

// ResultEntry is one package of a ResultSet.
type ResultEntry struct {
	Package  Package
	Versions []VersionChannel
}

// NewResultSet builds a ResultSet from entries with unique package names, sorting them by name.
func NewResultSet(entries []ResultEntry) *ResultSet {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b ResultEntry) int {
		return ComparePackages(a.Package, b.Package)
	})
	return &ResultSet{entries: sorted}
}

// Len returns the number of packages.
func (r *ResultSet) Len() int {
	return len(r.entries)
}

// Entries returns the entries in name order.
func (r *ResultSet) Entries() []ResultEntry {
	return r.entries
}

// Versions returns the versions recorded for a package name.
func (r *ResultSet) Versions(name string) ([]VersionChannel, bool) {
	i, found := slices.BinarySearchFunc(r.entries, name, func(e ResultEntry, target string) int {
		return cmp.Compare(e.Package.Name, target)
	})
	if !found {
		return nil, false
	}
	return r.entries[i].Versions, true
}

// Listing converts the set to the merged listing written to ALL.json.
func (r *ResultSet) Listing() []PackageVersions {
	listing := make([]PackageVersions, 0, len(r.entries))
	for _, e := range r.entries {
		versions := e.Versions
		if versions == nil {
			versions = []VersionChannel{}
		}
		listing = append(listing, PackageVersions{Package: e.Package.Name, Versions: versions})
	}
	return listing
}
