package position

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is the animation tick rate (~30fps is plenty for row-
// granular movement).
const frameInterval = 33 * time.Millisecond

// easing is the fraction of the remaining distance covered per tick.
const easing = 0.35

// TickMsg advances the snap animation. Delivered by the command returned
// from Settle, RequestCollapse, SnapTo, and Update.
type TickMsg time.Time

// SnapEngine animates a sheet height between fixed snap points. All methods
// run on the Bubble Tea update goroutine.
type SnapEngine struct {
	snaps  []int // ascending heights in rows
	height float64
	target float64
	moving bool

	footer AnimatedValue
}

// NewSnapEngine creates an engine with the given snap heights in rows. At
// least one snap point is required; they are kept in ascending order. The
// sheet starts settled at the lowest snap.
func NewSnapEngine(snaps ...int) *SnapEngine {
	if len(snaps) == 0 {
		snaps = []int{0}
	}
	sorted := append([]int(nil), snaps...)
	sort.Ints(sorted)
	e := &SnapEngine{snaps: sorted}
	e.height = float64(sorted[0])
	e.target = e.height
	return e
}

// Height returns the sheet's current visible height in rows.
func (e *SnapEngine) Height() int {
	if e.height <= 0 {
		return 0
	}
	return int(e.height + 0.5)
}

// TopSnap returns the tallest snap height.
func (e *SnapEngine) TopSnap() int { return e.snaps[len(e.snaps)-1] }

// BottomSnap returns the lowest snap height.
func (e *SnapEngine) BottomSnap() int { return e.snaps[0] }

// FullyExpanded reports whether the sheet is settled at the top snap.
func (e *SnapEngine) FullyExpanded() bool {
	return !e.moving && e.Height() == e.TopSnap()
}

// FooterHeight returns the current footer height in rows.
func (e *SnapEngine) FooterHeight() int { return e.footer.Rows() }

// Footer exposes the animated footer-height value for the embedder to
// drive.
func (e *SnapEngine) Footer() *AnimatedValue { return &e.footer }

// DragBy moves the sheet directly, clamped to the snap range. Any running
// animation is interrupted.
func (e *SnapEngine) DragBy(rows int) {
	e.moving = false
	e.height += float64(rows)
	if e.height < float64(e.BottomSnap()) {
		e.height = float64(e.BottomSnap())
	}
	if e.height > float64(e.TopSnap()) {
		e.height = float64(e.TopSnap())
	}
	e.target = e.height
}

// Settle animates to the nearest snap point.
func (e *SnapEngine) Settle() tea.Cmd {
	nearest := e.snaps[0]
	best := -1
	for _, s := range e.snaps {
		d := int(e.height) - s
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			best = d
			nearest = s
		}
	}
	return e.animateTo(nearest)
}

// SnapTo animates to the snap point at the given index (ascending order).
func (e *SnapEngine) SnapTo(i int) tea.Cmd {
	if i < 0 || i >= len(e.snaps) {
		return nil
	}
	return e.animateTo(e.snaps[i])
}

// Expand animates to the top snap.
func (e *SnapEngine) Expand() tea.Cmd {
	return e.animateTo(e.TopSnap())
}

// RequestCollapse animates to the lowest snap.
func (e *SnapEngine) RequestCollapse() tea.Cmd {
	return e.animateTo(e.BottomSnap())
}

func (e *SnapEngine) animateTo(rows int) tea.Cmd {
	e.target = float64(rows)
	if e.height == e.target {
		e.moving = false
		return nil
	}
	e.moving = true
	return tick()
}

// Update advances the animation on TickMsg, returning the next tick while
// movement continues.
func (e *SnapEngine) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(TickMsg); !ok || !e.moving {
		return nil
	}
	delta := e.target - e.height
	step := delta * easing
	// Snap the last sub-row so the animation terminates.
	if step > -0.5 && step < 0.5 {
		e.height = e.target
		e.moving = false
		return nil
	}
	e.height += step
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
