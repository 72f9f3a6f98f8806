package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vat/internal/core/domain"
)

func TestRunCounters(t *testing.T) {
	var c domain.RunCounters
	for _, k := range []domain.OutcomeKind{
		domain.OutcomeFetched,
		domain.OutcomeFetched,
		domain.OutcomeFailed,
		domain.OutcomeSkipped,
		domain.OutcomeSkipped,
	} {
		c.Record(k)
	}

	assert.Equal(t, domain.RunCounters{Total: 5, Failed: 1, Skipped: 2}, c)
	assert.Equal(t, 2, c.Checked())
}

func TestFetchOutcome_Constructors(t *testing.T) {
	v := []domain.VersionChannel{{Channel: "release", Version: "1.0"}}
	cause := errors.New("boom")

	assert.Equal(t, domain.OutcomeFetched, domain.Fetched(v).Kind)
	assert.Equal(t, domain.OutcomeSkipped, domain.Skipped(v).Kind)

	failed := domain.Failed(v, cause)
	assert.Equal(t, domain.OutcomeFailed, failed.Kind)
	assert.Equal(t, cause, failed.Cause)
	assert.Equal(t, v, failed.Versions)
	assert.Equal(t, "failed", failed.Kind.String())
}

func TestResultSet_SortedByName(t *testing.T) {
	rs := domain.NewResultSet([]domain.ResultEntry{
		{Package: domain.Package{Name: "zlib"}, Versions: []domain.VersionChannel{{Channel: "release", Version: "1.3"}}},
		{Package: domain.Package{Name: "py/build"}},
		{Package: domain.Package{Name: "curl"}},
	})

	require.Equal(t, 3, rs.Len())
	names := make([]string, 0, rs.Len())
	for _, e := range rs.Entries() {
		names = append(names, e.Package.Name)
	}
	assert.Equal(t, []string{"curl", "py/build", "zlib"}, names)

	v, ok := rs.Versions("zlib")
	require.True(t, ok)
	assert.Equal(t, "1.3", v[0].Version)

	_, ok = rs.Versions("missing")
	assert.False(t, ok)

	listing := rs.Listing()
	assert.Equal(t, "curl", listing[0].Package)
	assert.Equal(t, "zlib", listing[2].Package)
}
