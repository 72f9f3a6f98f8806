package policy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vat/internal/adapters/random"
	"go.trai.ch/vat/internal/core/domain"
	"go.trai.ch/vat/internal/core/ports/mocks"
	"go.trai.ch/vat/internal/engine/policy"
	"go.uber.org/mock/gomock"
)

const root = "/srv/vat"

type policyMocks struct {
	resolver *mocks.MockChannelResolver
	store    *mocks.MockVersionStore
	sampler  *mocks.MockSampler
	logger   *mocks.MockLogger
}

func setupPolicy(t *testing.T, settings domain.Settings) (*policy.Policy, *policyMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &policyMocks{
		resolver: mocks.NewMockChannelResolver(ctrl),
		store:    mocks.NewMockVersionStore(ctrl),
		sampler:  mocks.NewMockSampler(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return policy.NewPolicy(settings, m.resolver, m.store, m.sampler, m.logger), m
}

func newPackage(chance float64, channels ...string) *domain.Package {
	pkg := &domain.Package{Name: "zlib", Config: domain.PackageConfig{Chance: chance}}
	for _, ch := range channels {
		pkg.Config.Channels = append(pkg.Config.Channels, domain.PackageChannel{Name: ch, Enabled: true})
	}
	return pkg
}

var fallback = []domain.VersionChannel{
	{Channel: "release", Version: "1.0.0"},
	{Channel: "commit", Version: "0123456789abcdef0123456789abcdef01234567"},
}

func TestPolicy_FetchesAllChannelsInOrder(t *testing.T) {
	p, m := setupPolicy(t, domain.NewSettings(root))
	pkg := newPackage(1, "release", "commit")

	m.store.EXPECT().HasFallback(root, pkg).Return(true)
	gomock.InOrder(
		m.resolver.EXPECT().Resolve(gomock.Any(), pkg, gomock.Any()).Return("1.1.0", nil),
		m.resolver.EXPECT().Resolve(gomock.Any(), pkg, gomock.Any()).Return("fedcba9876543210fedcba9876543210fedcba98", nil),
	)

	out, err := p.Fetch(t.Context(), pkg)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFetched, out.Kind)
	assert.Equal(t, []domain.VersionChannel{
		{Channel: "release", Version: "1.1.0"},
		{Channel: "commit", Version: "fedcba9876543210fedcba9876543210fedcba98"},
	}, out.Versions)
	assert.NoError(t, out.Cause)
}

func TestPolicy_SkipsDisabledChannels(t *testing.T) {
	p, m := setupPolicy(t, domain.NewSettings(root))
	pkg := newPackage(1, "release", "commit")
	pkg.Config.Channels[1].Enabled = false

	m.store.EXPECT().HasFallback(root, pkg).Return(false)
	m.resolver.EXPECT().Resolve(gomock.Any(), pkg, gomock.Any()).Return("1.1.0", nil).Times(1)

	out, err := p.Fetch(t.Context(), pkg)
	require.NoError(t, err)
	assert.Equal(t, []domain.VersionChannel{{Channel: "release", Version: "1.1.0"}}, out.Versions)
}

func TestPolicy_FirstFailureFallsBack(t *testing.T) {
	p, m := setupPolicy(t, domain.NewSettings(root))
	pkg := newPackage(1, "release", "commit", "unstable")
	cause := errors.New("no output in stdout")

	m.store.EXPECT().HasFallback(root, pkg).Return(true)
	gomock.InOrder(
		m.resolver.EXPECT().Resolve(gomock.Any(), pkg, gomock.Any()).Return("1.1.0", nil),
		m.resolver.EXPECT().Resolve(gomock.Any(), pkg, gomock.Any()).Return("", cause),
	)
	m.store.EXPECT().ReadVersions(root, pkg).Return(fallback, nil)

	out, err := p.Fetch(t.Context(), pkg)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFailed, out.Kind)
	assert.Equal(t, fallback, out.Versions)
	assert.ErrorIs(t, out.Cause, cause)
}

func TestPolicy_FailureWithoutFallback(t *testing.T) {
	p, m := setupPolicy(t, domain.NewSettings(root))
	pkg := newPackage(1, "release")

	m.store.EXPECT().HasFallback(root, pkg).Return(false)
	m.resolver.EXPECT().Resolve(gomock.Any(), pkg, gomock.Any()).Return("", errors.New("command timed out"))
	m.store.EXPECT().ReadVersions(root, pkg).Return(nil, domain.ErrStoreReadFailed)

	_, err := p.Fetch(t.Context(), pkg)
	require.ErrorIs(t, err, domain.ErrMissingFallback)
	require.ErrorIs(t, err, domain.ErrStoreReadFailed)
}

func TestPolicy_Chance(t *testing.T) {
	tests := []struct {
		name        string
		chance      float64
		guarantee   bool
		hasFallback bool
		sample      *float64
		want        domain.OutcomeKind
	}{
		{
			name:        "sample above chance skips",
			chance:      0.3,
			hasFallback: true,
			sample:      ptr(0.5),
			want:        domain.OutcomeSkipped,
		},
		{
			name:        "sample equal to chance fetches",
			chance:      0.5,
			hasFallback: true,
			sample:      ptr(0.5),
			want:        domain.OutcomeFetched,
		},
		{
			name:        "sample below chance fetches",
			chance:      0.5,
			hasFallback: true,
			sample:      ptr(0.1),
			want:        domain.OutcomeFetched,
		},
		{
			name:        "guarantee flag never samples",
			chance:      0,
			guarantee:   true,
			hasFallback: true,
			want:        domain.OutcomeFetched,
		},
		{
			name:   "missing fallback never samples",
			chance: 0,
			want:   domain.OutcomeFetched,
		},
		{
			name:        "full chance never samples",
			chance:      1,
			hasFallback: true,
			want:        domain.OutcomeFetched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := domain.NewSettings(root)
			settings.Guarantee = tt.guarantee
			p, m := setupPolicy(t, settings)
			pkg := newPackage(tt.chance, "release")

			m.store.EXPECT().HasFallback(root, pkg).Return(tt.hasFallback).MaxTimes(1)
			if tt.sample != nil {
				m.sampler.EXPECT().Sample().Return(*tt.sample)
			}
			if tt.want == domain.OutcomeSkipped {
				m.store.EXPECT().ReadVersions(root, pkg).Return(fallback, nil)
			} else {
				m.resolver.EXPECT().Resolve(gomock.Any(), pkg, gomock.Any()).Return("2.0.0", nil)
			}

			out, err := p.Fetch(t.Context(), pkg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Kind)
			if tt.want == domain.OutcomeSkipped {
				assert.Equal(t, fallback, out.Versions)
			}
		})
	}
}

func TestPolicy_SkipWithUnreadableFallback(t *testing.T) {
	p, m := setupPolicy(t, domain.NewSettings(root))
	pkg := newPackage(0, "release")

	m.store.EXPECT().HasFallback(root, pkg).Return(true)
	m.sampler.EXPECT().Sample().Return(0.9)
	m.store.EXPECT().ReadVersions(root, pkg).Return(nil, domain.ErrStoreUnmarshalFailed)

	_, err := p.Fetch(t.Context(), pkg)
	require.ErrorIs(t, err, domain.ErrMissingFallback)
}

func TestPolicy_FullChanceIsNeverSkipped(t *testing.T) {
	p, m := setupPolicy(t, domain.NewSettings(root))
	pkg := newPackage(1, "release")

	m.store.EXPECT().HasFallback(root, pkg).Return(true).AnyTimes()
	m.resolver.EXPECT().Resolve(gomock.Any(), pkg, gomock.Any()).Return("2.0.0", nil).AnyTimes()

	for range 200 {
		out, err := p.Fetch(t.Context(), pkg)
		require.NoError(t, err)
		require.Equal(t, domain.OutcomeFetched, out.Kind)
	}
}

func TestPolicy_ZeroChanceWithFallbackIsAlwaysSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockVersionStore(ctrl)
	resolver := mocks.NewMockChannelResolver(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	p := policy.NewPolicy(domain.NewSettings(root), resolver, store, random.NewSeededSampler(1), logger)
	pkg := newPackage(0, "release")

	store.EXPECT().HasFallback(root, pkg).Return(true).AnyTimes()
	store.EXPECT().ReadVersions(root, pkg).Return(fallback, nil).AnyTimes()

	for range 200 {
		out, err := p.Fetch(t.Context(), pkg)
		require.NoError(t, err)
		require.Equal(t, domain.OutcomeSkipped, out.Kind)
	}
}

func ptr[T any](v T) *T {
	return &v
}
