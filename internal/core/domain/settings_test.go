package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vat/internal/core/domain"
)

func TestSettings_Defaults(t *testing.T) {
	s := domain.NewSettings("/srv/vat")

	require.NoError(t, s.Validate())
	assert.Equal(t, "bash", s.Interpreter)
	assert.Equal(t, domain.DefaultFetchTimeout, s.FetchTimeout)
	assert.Positive(t, s.Jobs)
	assert.Equal(t, filepath.Join("/srv/vat", ".vat-cache"), s.CacheDir())
	assert.Equal(t, filepath.Join("/srv/vat", "sh", "lib.env"), s.ShellLib())
	assert.Equal(t, filepath.Join("/srv/vat", "p", "py", "build"), s.PackageDir("py/build"))
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Settings)
	}{
		{"empty root", func(s *domain.Settings) { s.Root = "" }},
		{"empty interpreter", func(s *domain.Settings) { s.Interpreter = "" }},
		{"zero fetch timeout", func(s *domain.Settings) { s.FetchTimeout = 0 }},
		{"negative cache timeout", func(s *domain.Settings) { s.CacheTimeout = -1 }},
		{"no workers", func(s *domain.Settings) { s.Jobs = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.NewSettings("/srv/vat")
			tt.mutate(&s)
			require.ErrorIs(t, s.Validate(), domain.ErrInvalidSettings)
		})
	}
}
