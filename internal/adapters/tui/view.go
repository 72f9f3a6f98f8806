package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/vat/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.packageList(),
		m.detailPane(),
	)
}

func (m *Model) packageList() string {
	var s strings.Builder

	done, failed, total := m.Progress()
	title := fmt.Sprintf("PACKAGES %d/%d", done, total)
	if failed > 0 {
		title += fmt.Sprintf(" (%d failed)", failed)
	}
	s.WriteString(titleStyle.Render(title) + "\n\n")

	start := m.ListOffset
	end := min(m.ListOffset+m.ListHeight, len(m.Packages))
	start = min(start, end)

	for i := start; i < end; i++ {
		s.WriteString(m.renderRow(i, m.Packages[i]) + "\n")
	}

	return listStyle.Render(s.String())
}

func (m *Model) renderRow(index int, pkg *PackageNode) string {
	rowStyle := statusStyle(pkg.Status)

	cursor := "  "
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
		if !pkg.Done() {
			rowStyle = selectedStyle
		}
	}

	return cursor + rowStyle.Render(statusIcon(pkg.Status)+" "+pkg.Name)
}

func statusIcon(status PackageStatus) string {
	switch status {
	case StatusRunning:
		return style.Dot
	case StatusFetched:
		return style.Check
	case StatusSkipped:
		return style.Skip
	case StatusFailed:
		return style.Warning
	case StatusAborted:
		return style.Cross
	default:
		return "○"
	}
}

func statusStyle(status PackageStatus) lipgloss.Style {
	switch status {
	case StatusRunning:
		return runningStyle
	case StatusFetched:
		return fetchedStyle
	case StatusSkipped:
		return skippedStyle
	case StatusFailed:
		return failedStyle
	case StatusAborted:
		return abortedStyle
	default:
		return pendingStyle
	}
}

func (m *Model) detailPane() string {
	pkg := m.Selected()
	if pkg == nil {
		return detailStyle.Render(titleStyle.Render("WAITING"))
	}

	mode := " (Manual)"
	if m.FollowMode {
		mode = " (Following)"
	}

	lines := []string{titleStyle.Render(pkg.Name + mode), ""}
	for _, ch := range pkg.Channels {
		lines = append(lines, m.channelLine(ch))
	}

	switch pkg.Status {
	case StatusPending:
		lines = append(lines, pendingStyle.Render("waiting for a worker"))
	case StatusFetched:
		lines = append(lines, "", fetchedStyle.Render("fetched in "+elapsed(pkg)))
	case StatusSkipped:
		lines = append(lines, skippedStyle.Render("skipped, kept previous versions"))
	case StatusFailed:
		lines = append(lines, "", failedStyle.Render("failed after "+elapsed(pkg)+", kept previous versions"))
	case StatusAborted:
		msg := "aborted after " + elapsed(pkg)
		if pkg.Err != nil {
			msg += ": " + pkg.Err.Error()
		}
		lines = append(lines, "", abortedStyle.Render(msg))
	case StatusRunning:
	}

	return detailStyle.Width(max(m.DetailWidth, 0)).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) channelLine(ch *ChannelNode) string {
	switch {
	case ch.Running:
		return runningStyle.Render(style.Dot + " " + ch.Name)
	case ch.Err != nil:
		return abortedStyle.Render(style.Cross+" "+ch.Name) + " " + ch.Err.Error()
	default:
		return fetchedStyle.Render(style.Check + " " + ch.Name)
	}
}

func elapsed(pkg *PackageNode) string {
	return pkg.End.Sub(pkg.Start).Round(time.Millisecond).String()
}
