// Package position defines the narrow interface the sheet container
// consumes from a position/animation engine, plus a snap-point
// implementation driven by Bubble Tea ticks. The container never depends on
// the implementation; embedders with their own animation engine implement
// Engine and ignore SnapEngine.
package position

import tea "github.com/charmbracelet/bubbletea"

// Engine is the sheet-position collaborator consumed by the container.
type Engine interface {
	// Height is the sheet's current visible height in rows.
	Height() int
	// FullyExpanded reports whether the sheet is settled at its tallest
	// snap point. While mid-drag or animating it must report false.
	FullyExpanded() bool
	// FooterHeight is the current height of the sheet's floating footer in
	// rows. Continuously re-read by the container; may animate.
	FooterHeight() int
	// DragBy moves the sheet directly during a drag; positive rows grow
	// the sheet.
	DragBy(rows int)
	// Settle animates the sheet to the nearest snap point after a drag.
	Settle() tea.Cmd
	// RequestCollapse animates the sheet to its lowest snap point. Invoked
	// when a downward drag at content offset 0 is detected.
	RequestCollapse() tea.Cmd
}

// AnimatedValue is a continuously-readable numeric cell, written by its
// owning engine on the update goroutine and read every frame by derived
// style bindings.
type AnimatedValue struct {
	v float64
}

// Set writes the current value.
func (a *AnimatedValue) Set(v float64) { a.v = v }

// Value reads the current value.
func (a *AnimatedValue) Value() float64 { return a.v }

// Rows reads the current value rounded to whole rows, never negative.
func (a *AnimatedValue) Rows() int {
	if a.v <= 0 {
		return 0
	}
	return int(a.v + 0.5)
}
