package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vat/internal/adapters/logger"
	"go.trai.ch/vat/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing plain text into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		log     func(lg *logger.Logger)
		want    string
	}{
		{
			name: "info",
			log:  func(lg *logger.Logger) { lg.Info("fetching 3 packages") },
			want: "fetching 3 packages\n",
		},
		{
			name: "warn",
			log:  func(lg *logger.Logger) { lg.Warn("no vat.yaml found") },
			want: "! no vat.yaml found\n",
		},
		{
			name: "debug hidden by default",
			log:  func(lg *logger.Logger) { lg.Debug("loaded py/build") },
			want: "",
		},
		{
			name:    "debug in verbose mode",
			verbose: true,
			log:     func(lg *logger.Logger) { lg.Debug("loaded py/build") },
			want:    "● loaded py/build\n",
		},
		{
			name: "multiline info",
			log:  func(lg *logger.Logger) { lg.Info("line1\nline2") },
			want: "line1\nline2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.SetVerbose(tt.verbose)
			tt.log(lg)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        errors.New("connection refused"),
			goldenName: "error_simple",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("exit status 1"), "fetch script failed"),
				"cannot resolve channel",
			),
			goldenName: "error_chain",
		},
		{
			name: "sentinel with metadata",
			err: func() error {
				err := zerr.Wrap(domain.ErrMissingFallback, "cannot publish results")
				err = zerr.With(err, "package", "py/build")
				return zerr.With(err, "channel", "release")
			}(),
			goldenName: "error_metadata",
		},
		{
			name:       "standard chain is not split",
			err:        fmt.Errorf("load settings: %w", errors.New("permission denied")),
			goldenName: "error_stdlib_chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	err := zerr.With(zerr.Wrap(errors.New("exit status 1"), "fetch script failed"), "package", "zlib")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"error"`)
	assert.Contains(t, out, "fetch script failed")
	assert.Contains(t, out, "zlib")
	assert.NotContains(t, out, "✗")
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("pretty"))
	pretty := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(errors.New("json"))
	jsonOut := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("pretty again"))
	back := buf.String()

	assert.Contains(t, pretty, "✗ Error: pretty")
	assert.Contains(t, jsonOut, `"level":"ERROR"`)
	assert.Contains(t, back, "✗ Error: pretty again")
}

func TestLogger_VerboseSurvivesOutputChange(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetVerbose(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Debug("still visible")

	assert.Equal(t, "● still visible\n", buf.String())
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, buf := newTestLogger(t)

	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() { lg.Info("info") })
		wg.Go(func() { lg.Warn("warn") })
		wg.Go(func() { lg.Error(errors.New("error")) })
	}
	wg.Go(func() { lg.SetJSON(false) })
	wg.Wait()

	assert.NotEmpty(t, buf.String())
}
