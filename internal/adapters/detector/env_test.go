package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vat/internal/adapters/detector"
	"go.trai.ch/vat/internal/core/domain"
)

func TestDetectEnvironment_CI(t *testing.T) {
	for _, ci := range []string{"true", "1"} {
		t.Run(ci, func(t *testing.T) {
			t.Setenv("CI", ci)
			assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
		})
	}
}

func TestDetectEnvironment_NotATerminal(t *testing.T) {
	// go test never attaches stderr to a terminal.
	t.Setenv("CI", "")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want detector.OutputMode
	}{
		{"", detector.ModeAuto},
		{"auto", detector.ModeAuto},
		{"progress", detector.ModeProgress},
		{"linear", detector.ModeLinear},
		{"ci", detector.ModeLinear},
		{"tui", detector.ModeTUI},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := detector.ParseMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMode_Invalid(t *testing.T) {
	_, err := detector.ParseMode("fancy")
	require.ErrorIs(t, err, domain.ErrInvalidOutputMode)
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name      string
		detected  detector.OutputMode
		requested detector.OutputMode
		want      detector.OutputMode
	}{
		{"auto keeps detected linear", detector.ModeLinear, detector.ModeAuto, detector.ModeLinear},
		{"auto keeps detected progress", detector.ModeProgress, detector.ModeAuto, detector.ModeProgress},
		{"progress overrides", detector.ModeLinear, detector.ModeProgress, detector.ModeProgress},
		{"linear overrides", detector.ModeProgress, detector.ModeLinear, detector.ModeLinear},
		{"tui overrides", detector.ModeLinear, detector.ModeTUI, detector.ModeTUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveMode(tt.detected, tt.requested))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "progress", detector.ModeProgress.String())
	assert.Equal(t, "linear", detector.ModeLinear.String())
	assert.Equal(t, "tui", detector.ModeTUI.String())
}
