package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/vat/internal/ui/style"
)

var (
	pendingStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	runningStyle = lipgloss.NewStyle().
			Foreground(style.Accent).
			Bold(true)

	fetchedStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	skippedStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	failedStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	abortedStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Accent).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Accent).
			Foreground(style.White)

	listStyle = lipgloss.NewStyle().
			MarginRight(2)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, false, false, true).
			BorderForeground(style.Slate).
			PaddingLeft(1)
)
