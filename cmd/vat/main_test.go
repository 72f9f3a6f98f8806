package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vat/internal/app"
	"go.trai.ch/vat/internal/core/domain"
	"go.trai.ch/vat/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestApp(ctrl *gomock.Controller, settings *mocks.MockSettingsLoader, log *mocks.MockLogger) *app.App {
	return app.New(
		settings,
		mocks.NewMockPackageLoader(ctrl),
		mocks.NewMockCacheManager(ctrl),
		mocks.NewMockCommandExecutor(ctrl),
		mocks.NewMockVersionNormalizer(ctrl),
		mocks.NewMockVersionStore(ctrl),
		mocks.NewMockSampler(ctrl),
		log,
	)
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	application := newTestApp(ctrl, mocks.NewMockSettingsLoader(ctrl), mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the fetch fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSettings := mocks.NewMockSettingsLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	mockSettings.EXPECT().Load(root).Return(domain.Settings{}, domain.ErrConfigParseFailed)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})

	application := newTestApp(ctrl, mockSettings, mockLogger)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"fetch", "-C", root, "-o", "linear"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Canceled verifies that an interrupted run is reported without logging.
func TestRun_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSettings := mocks.NewMockSettingsLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	mockSettings.EXPECT().Load(root).Return(domain.Settings{}, context.Canceled)

	application := newTestApp(ctrl, mockSettings, mockLogger)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"fetch", "-C", root}, stderr, provider)
	assert.Equal(t, 130, exitCode)
	assert.Contains(t, stderr.String(), "interrupted")
}
