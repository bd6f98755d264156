// Package styles holds the lipgloss styles and colors for sheet chrome,
// the grab handle, the refresh strip, and the scrollbar.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette colors. Chosen to read on both dark and light terminals.
var (
	Primary     = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	TextMuted   = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	TextSubtle  = lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4E4E4E"}
	BgSheet     = lipgloss.AdaptiveColor{Light: "#F4F4F5", Dark: "#1E1E2E"}
	BgSelection = lipgloss.AdaptiveColor{Light: "#E4E4FB", Dark: "#313244"}

	ScrollbarTrackColor = TextSubtle
	ScrollbarThumbColor = Primary
)

// Component styles.
var (
	SheetEdge = lipgloss.NewStyle().
			Foreground(Primary)

	GrabHandle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Bold(true)

	SelectedRow = lipgloss.NewStyle().
			Background(BgSelection)

	SectionHeader = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	RefreshSpinner = lipgloss.NewStyle().
			Foreground(Primary)

	RefreshLabel = lipgloss.NewStyle().
			Foreground(TextMuted)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)
)
