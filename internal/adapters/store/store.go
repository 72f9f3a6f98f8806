// Package store persists fetched versions, merged listings and run counters.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/vat/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.VersionStore with one directory per package below p/.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// ReadVersions returns the versions recorded in p/<name>/versions.json.
func (s *Store) ReadVersions(root string, pkg *domain.Package) ([]domain.VersionChannel, error) {
	path := filepath.Join(domain.PackageDir(root, pkg.Name), domain.VersionsJSONFile)

	//nolint:gosec // Path is constructed from the vat root and a package name
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreReadFailed, err), "cannot read versions"), "package", pkg.Name)
	}

	var versions []domain.VersionChannel
	if err := json.Unmarshal(data, &versions); err != nil {
		err = zerr.Wrap(errors.Join(domain.ErrStoreUnmarshalFailed, err), "cannot read versions")
		return nil, zerr.With(err, "package", pkg.Name)
	}
	if versions == nil {
		versions = []domain.VersionChannel{}
	}
	return versions, nil
}

// HasFallback reports whether the recorded versions cover every enabled channel and
// name no channel the package does not configure.
// Disabled channels are exempt from coverage since they are never fetched.
// A recorded disabled channel is configured, not unknown.
func (s *Store) HasFallback(root string, pkg *domain.Package) bool {
	versions, err := s.ReadVersions(root, pkg)
	if err != nil {
		return false
	}

	recorded := make(map[string]struct{}, len(versions))
	for _, v := range versions {
		if _, ok := pkg.Channel(v.Channel); !ok {
			return false
		}
		recorded[v.Channel] = struct{}{}
	}

	for _, ch := range pkg.EnabledChannels() {
		if _, ok := recorded[ch.Name]; !ok {
			return false
		}
	}
	return true
}

// WriteVersions replaces versions.json and versions.txt and writes one file per channel.
func (s *Store) WriteVersions(root string, pkg *domain.Package, versions []domain.VersionChannel) error {
	dir := domain.PackageDir(root, pkg.Name)
	channelsDir := filepath.Join(dir, domain.ChannelsDirName)
	if err := os.MkdirAll(channelsDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreCreateFailed, err), "cannot write versions"), "package", pkg.Name)
	}

	if versions == nil {
		versions = []domain.VersionChannel{}
	}
	data, err := marshalPretty(versions)
	if err != nil {
		return zerr.With(err, "package", pkg.Name)
	}
	if err := writeFile(filepath.Join(dir, domain.VersionsJSONFile), data); err != nil {
		return zerr.With(err, "package", pkg.Name)
	}

	var txt strings.Builder
	for _, v := range versions {
		if err := writeFile(filepath.Join(channelsDir, v.Channel), []byte(v.Version)); err != nil {
			return zerr.With(err, "package", pkg.Name)
		}
		fmt.Fprintf(&txt, "%s\t%s\n", v.Channel, v.Version)
	}

	if err := writeFile(filepath.Join(dir, domain.VersionsTextFile), []byte(txt.String())); err != nil {
		return zerr.With(err, "package", pkg.Name)
	}
	return nil
}

// WriteAll writes p/ALL.json and p/ALL.txt from the result set.
func (s *Store) WriteAll(root string, results *domain.ResultSet) error {
	dir := filepath.Join(root, domain.PackagesDirName)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(errors.Join(domain.ErrStoreCreateFailed, err), "cannot write listing")
	}

	listing := results.Listing()
	data, err := marshalPretty(listing)
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, domain.AllJSONFile), data); err != nil {
		return err
	}

	var txt strings.Builder
	for _, p := range listing {
		for _, v := range p.Versions {
			fmt.Fprintf(&txt, "%s\t%s\t%s\n", p.Package, v.Channel, v.Version)
		}
	}
	return writeFile(filepath.Join(dir, domain.AllTextFile), []byte(txt.String()))
}

// WriteCounters writes total, failed, skipped and checked as decimal integers.
func (s *Store) WriteCounters(cacheDir string, counters domain.RunCounters) error {
	if err := os.MkdirAll(cacheDir, domain.DirPerm); err != nil {
		return zerr.Wrap(errors.Join(domain.ErrStoreCreateFailed, err), "cannot write counters")
	}

	files := []struct {
		name  string
		value int
	}{
		{domain.TotalFile, counters.Total},
		{domain.FailedFile, counters.Failed},
		{domain.SkippedFile, counters.Skipped},
		{domain.CheckedFile, counters.Checked()},
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(cacheDir, f.name), []byte(strconv.Itoa(f.value))); err != nil {
			return err
		}
	}
	return nil
}

// WriteElapsed records the run duration, rounded to milliseconds.
func (s *Store) WriteElapsed(cacheDir string, elapsed time.Duration) error {
	if err := os.MkdirAll(cacheDir, domain.DirPerm); err != nil {
		return zerr.Wrap(errors.Join(domain.ErrStoreCreateFailed, err), "cannot write elapsed")
	}
	return writeFile(filepath.Join(cacheDir, domain.ElapsedFile), []byte(elapsed.Round(time.Millisecond).String()))
}

// IncrementRunCount bumps the runcount file at root. A missing or unreadable count starts at zero.
func (s *Store) IncrementRunCount(root string) (int, error) {
	path := filepath.Join(root, domain.RunCountFile)

	count := 0
	//nolint:gosec // Path is constructed from the vat root
	if data, err := os.ReadFile(path); err == nil {
		if n, convErr := strconv.Atoi(strings.TrimSpace(string(data))); convErr == nil && n > 0 {
			count = n
		}
	}
	count++

	if err := writeFile(path, []byte(strconv.Itoa(count))); err != nil {
		return 0, err
	}
	return count, nil
}

// marshalPretty encodes v as two-space indented JSON without HTML escaping or a trailing newline.
func marshalPretty(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrStoreMarshalFailed, err), "cannot encode versions")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// writeFile replaces path through a temporary file in the same directory,
// so readers never observe a partially written file.
func writeFile(path string, data []byte) error {
	fail := func(err error) error {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreWriteFailed, err), "cannot write file"), "file", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fail(err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fail(err)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fail(err)
	}
	return nil
}
