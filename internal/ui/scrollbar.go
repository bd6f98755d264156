// Package ui provides small pure rendering helpers shared by the sheet and
// its scrollables.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tessfold/bubblesheet/internal/styles"
)

// ScrollbarParams configures a vertical scrollbar rendering.
type ScrollbarParams struct {
	TotalRows    int // Total content rows
	ScrollOffset int // First visible row
	VisibleRows  int // Rows that fit in the viewport
	TrackHeight  int // Height of the scrollbar track in terminal rows
}

// RenderScrollbar returns a single-column string (newline-separated)
// representing a vertical scrollbar track. Returns a column of spaces when
// all content is visible so the width stays reserved and layout does not
// jitter. Output has exactly TrackHeight lines, each 1 character wide.
func RenderScrollbar(params ScrollbarParams) string {
	if params.TrackHeight < 1 {
		return ""
	}

	if params.TotalRows <= params.VisibleRows {
		return SpacerColumn(params.TrackHeight)
	}

	// Thumb size: proportional to visible fraction, minimum 1, clamped.
	thumbSize := (params.VisibleRows * params.TrackHeight) / params.TotalRows
	if thumbSize < 1 {
		thumbSize = 1
	}
	if thumbSize > params.TrackHeight {
		thumbSize = params.TrackHeight
	}

	// Thumb position: proportional to scroll offset within scrollable range.
	maxOffset := params.TotalRows - params.VisibleRows
	if maxOffset < 1 {
		maxOffset = 1
	}
	thumbPos := (params.ScrollOffset * (params.TrackHeight - thumbSize)) / maxOffset
	if thumbPos < 0 {
		thumbPos = 0
	}
	if thumbPos > params.TrackHeight-thumbSize {
		thumbPos = params.TrackHeight - thumbSize
	}

	trackChar := lipgloss.NewStyle().Foreground(styles.ScrollbarTrackColor).Render("│")
	thumbChar := lipgloss.NewStyle().Foreground(styles.ScrollbarThumbColor).Render("┃")

	lines := make([]string, params.TrackHeight)
	for i := range params.TrackHeight {
		if i >= thumbPos && i < thumbPos+thumbSize {
			lines[i] = thumbChar
		} else {
			lines[i] = trackChar
		}
	}

	return strings.Join(lines, "\n")
}

// SpacerColumn returns a one-cell-wide column of spaces, height lines tall.
// Used in place of the scrollbar when the indicator is hidden.
func SpacerColumn(height int) string {
	if height < 1 {
		return ""
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = " "
	}
	return strings.Join(lines, "\n")
}
