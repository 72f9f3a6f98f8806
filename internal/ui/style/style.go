// Package style holds the colors and icons shared by the log handler and the renderers.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	White  = lipgloss.Color("#FFFFFF")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Skip    = "~"
	Arrow   = "→"
	Dot     = "●"
)

// OutcomeIcon returns the icon and color for a fetch outcome name.
func OutcomeIcon(outcome string) (string, lipgloss.Color) {
	switch outcome {
	case "fetched":
		return Check, Green
	case "skipped":
		return Skip, Slate
	case "failed":
		return Warning, Yellow
	default:
		return Cross, Red
	}
}
