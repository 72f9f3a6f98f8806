package tui_test

import (
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/vat/internal/adapters/tui"
)

func TestModel_View(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("initializing", func(t *testing.T) {
		m := tui.NewModel(io.Discard)
		assert.Equal(t, "Initializing...", m.View())
	})

	t.Run("packages and details", func(t *testing.T) {
		m := tui.NewModel(io.Discard)
		model := update(t, &m,
			tea.WindowSizeMsg{Width: 120, Height: 20},
			tui.MsgPlan{Packages: []string{"curl", "zlib"}},
			tui.MsgFetchStart{SpanID: "p1", Name: "zlib", StartTime: start},
			tui.MsgFetchStart{SpanID: "c1", ParentID: "p1", Name: "release"},
			tui.MsgFetchStart{SpanID: "c2", ParentID: "p1", Name: "commit"},
			tui.MsgFetchComplete{SpanID: "c1"},
			tui.MsgFetchComplete{SpanID: "c2", Err: errors.New("exited with nonzero status")},
			tui.MsgFetchComplete{SpanID: "p1", EndTime: start.Add(1500 * time.Millisecond), Outcome: "failed"},
		)

		view := model.View()
		assert.Contains(t, view, "PACKAGES 1/2 (1 failed)")
		assert.Contains(t, view, "○ curl")
		assert.Contains(t, view, "! zlib")
		assert.Contains(t, view, "zlib (Following)")
		assert.Contains(t, view, "✓ release")
		assert.Contains(t, view, "✗ commit exited with nonzero status")
		assert.Contains(t, view, "failed after 1.5s, kept previous versions")
	})

	t.Run("skipped", func(t *testing.T) {
		m := tui.NewModel(io.Discard)
		model := update(t, &m,
			tea.WindowSizeMsg{Width: 120, Height: 20},
			tui.MsgPlan{Packages: []string{"attr"}},
			tui.MsgFetchStart{SpanID: "p1", Name: "attr"},
			tui.MsgFetchComplete{SpanID: "p1", Outcome: "skipped"},
		)

		view := model.View()
		assert.Contains(t, view, "PACKAGES 1/1")
		assert.Contains(t, view, "~ attr")
		assert.Contains(t, view, "skipped, kept previous versions")
	})
}
