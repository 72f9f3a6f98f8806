package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vat/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("simple"),
			wantMessages: []string{"simple"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root"), "middle"), "outer"),
			wantMessages: []string{"outer", "middle", "root"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "metadata accumulates on one level",
			err:          zerr.With(zerr.With(zerr.New("base"), "a", 1), "b", "two"),
			wantMessages: []string{"base"},
			wantMetadata: []map[string]any{{"a": 1, "b": "two"}},
		},
		{
			name:         "metadata on a standard error is folded into it",
			err:          zerr.With(errors.New("exit status 2"), "exit_code", 2),
			wantMessages: []string{"exit status 2"},
			wantMetadata: []map[string]any{{"exit_code": 2}},
		},
		{
			name: "joined sentinel and cause",
			err: zerr.Wrap(
				errors.Join(zerr.New("failed to read config file"), errors.New("permission denied")),
				"cannot load settings",
			),
			wantMessages: []string{"cannot load settings", "failed to read config file\npermission denied"},
			wantMetadata: []map[string]any{{}, nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			assert.Len(t, entries, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message, "message at %d", i)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata, "metadata at %d", i)
			}
		})
	}
}

func TestCollectErrorEntries_Nil(t *testing.T) {
	assert.Empty(t, logger.CollectErrorEntries(nil))
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "empty",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "single"}},
			want:    "Error: single",
		},
		{
			name:    "causes",
			entries: []logger.ErrorEntry{{Message: "a"}, {Message: "b"}, {Message: "c"}},
			want:    "Error: a\n\n  Caused by:\n    → b\n    → c",
		},
		{
			name: "sorted metadata",
			entries: []logger.ErrorEntry{
				{Message: "e", Metadata: map[string]any{"zebra": "z", "alpha": "a"}},
			},
			want: "Error: e\n       alpha: a\n       zebra: z",
		},
		{
			name: "multiline cause with metadata",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "one\ntwo", Metadata: map[string]any{"k": "v"}},
			},
			want: "Error: main\n\n  Caused by:\n    → one\n      two\n      k: v",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
