// Package refresh implements the pull-to-refresh control composed into a
// sheet scrollable. The control tracks pull distance during a refresh
// gesture and fires the caller's refresh callback exactly once per resolved
// pull; whether it renders as a wrapping strip or inline with the list is
// decided by the scrollable's composition strategy.
package refresh

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessfold/bubblesheet/gesture"
	"github.com/tessfold/bubblesheet/internal/styles"
)

// DefaultThreshold is how many rows a pull must travel before releasing it
// triggers a refresh.
const DefaultThreshold = 3

// State is the caller-owned refresh contract. The control only reads it.
type State struct {
	// Refreshing indicates a refresh is in flight; the control shows its
	// spinner while true.
	Refreshing bool
	// ProgressViewOffset pushes the indicator strip down by that many rows.
	ProgressViewOffset int
	// OnRefresh runs when a pull resolves. Nil disables the control.
	OnRefresh func() tea.Cmd
}

// Enabled reports whether a refresh callback was supplied.
func (s State) Enabled() bool { return s.OnRefresh != nil }

// Renderer draws the indicator strip. width is the strip width in cells,
// progress is pull distance over threshold clamped to [0, 1], and spinner is
// the current spinner frame (empty unless refreshing).
type Renderer func(width int, progress float64, refreshing bool, spinner string) string

// Placement selects how the control composes with the scrollable. The
// strategy is chosen once at construction from the scrollable type and never
// changes; both placements satisfy the same behavioral contract (offset
// reporting, lock transitions, and callback firing are identical).
type Placement int

const (
	// PlacementWrap renders the control as a sibling strip above the
	// scrollable, owned by the sheet container.
	PlacementWrap Placement = iota
	// PlacementInline hands the control to the scrollable, which renders
	// it as part of its own content (list types manage their own header).
	PlacementInline
)

// Control renders pull progress and owns the refresh gesture's lifecycle.
// It must not be starved by the sheet's drag recognizer: once a pull claims
// a press, the control keeps the stream until it resolves or the pointer is
// released.
type Control struct {
	state     State
	spin      spinner.Model
	region    gesture.Rect
	render    Renderer
	threshold int
	placement Placement

	pulling bool
	pull    int
	fired   bool
}

// NewControl creates a control for the given caller-owned state.
func NewControl(state State) *Control {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.RefreshSpinner
	return &Control{
		state:     state,
		spin:      sp,
		threshold: DefaultThreshold,
	}
}

// SetState replaces the caller-owned state. Clearing Refreshing also clears
// the control's optimistic spinner.
func (c *Control) SetState(state State) {
	c.state = state
	if !state.Refreshing {
		c.fired = false
	}
}

// State returns the caller-owned state last supplied.
func (c *Control) State() State { return c.state }

// SetRenderer overrides the indicator strip renderer.
func (c *Control) SetRenderer(r Renderer) { c.render = r }

// SetThreshold overrides the pull distance required to trigger a refresh.
func (c *Control) SetThreshold(rows int) {
	if rows > 0 {
		c.threshold = rows
	}
}

// SetPlacement records the composition strategy chosen at construction.
func (c *Control) SetPlacement(p Placement) { c.placement = p }

// Placement returns the composition strategy.
func (c *Control) Placement() Placement { return c.placement }

// SetRegion records the hit region in which a press may start a refresh
// pull. Updated by the container on every layout pass.
func (c *Control) SetRegion(r gesture.Rect) { c.region = r }

// Region returns the current refresh hit region.
func (c *Control) Region() gesture.Rect { return c.region }

// BeginPull starts tracking a refresh gesture.
func (c *Control) BeginPull() {
	c.pulling = true
	c.pull = 0
}

// Pull accumulates downward travel. Upward movement reduces the pull but
// never below zero.
func (c *Control) Pull(dy int) {
	if !c.pulling {
		return
	}
	c.pull += dy
	if c.pull < 0 {
		c.pull = 0
	}
}

// Pulling reports whether a refresh gesture is in flight.
func (c *Control) Pulling() bool { return c.pulling }

// ResolvePull ends the gesture. If the pull traveled past the threshold and
// a refresh is not already in flight, the refresh callback fires exactly
// once and its command is returned.
func (c *Control) ResolvePull() tea.Cmd {
	if !c.pulling {
		return nil
	}
	c.pulling = false
	triggered := c.pull >= c.threshold
	c.pull = 0
	if !triggered || c.state.Refreshing || c.fired || c.state.OnRefresh == nil {
		return nil
	}
	c.fired = true
	return tea.Batch(c.state.OnRefresh(), c.spin.Tick)
}

// CancelPull discards the gesture without firing the callback.
func (c *Control) CancelPull() {
	c.pulling = false
	c.pull = 0
}

// Active reports whether the strip should occupy rows right now.
func (c *Control) Active() bool {
	return c.pulling && c.pull > 0 || c.state.Refreshing || c.fired
}

// Height returns the rows the strip occupies, including the progress view
// offset. 0 while idle so the content is not displaced.
func (c *Control) Height() int {
	if !c.Active() {
		return 0
	}
	return 1 + c.state.ProgressViewOffset
}

// Update advances the spinner while a refresh is in flight.
func (c *Control) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return nil
	}
	if !c.state.Refreshing && !c.fired {
		return nil
	}
	var cmd tea.Cmd
	c.spin, cmd = c.spin.Update(msg)
	return cmd
}

// View renders the indicator strip at the given width.
func (c *Control) View(width int) string {
	if !c.Active() || width <= 0 {
		return ""
	}
	progress := float64(c.pull) / float64(c.threshold)
	if progress > 1 {
		progress = 1
	}
	refreshing := c.state.Refreshing || c.fired
	var spin string
	if refreshing {
		spin = c.spin.View()
	}
	var strip string
	if c.render != nil {
		strip = c.render(width, progress, refreshing, spin)
	} else {
		strip = defaultStrip(width, progress, refreshing, spin)
	}
	if c.state.ProgressViewOffset > 0 {
		pad := strings.Repeat("\n", c.state.ProgressViewOffset)
		strip = pad + strip
	}
	return strip
}

// defaultStrip renders a centered pull arrow that fills in as the pull
// approaches the threshold, replaced by the spinner once refreshing.
func defaultStrip(width int, progress float64, refreshing bool, spin string) string {
	var label string
	switch {
	case refreshing:
		label = spin + " refreshing"
	case progress >= 1:
		label = "release to refresh"
	default:
		ticks := int(progress * 3)
		label = strings.Repeat("•", ticks) + "↓" + strings.Repeat("•", ticks)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, styles.RefreshLabel.Render(label))
}
