package sheet

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessfold/bubblesheet/gesture"
	"github.com/tessfold/bubblesheet/internal/styles"
	"github.com/tessfold/bubblesheet/position"
	"github.com/tessfold/bubblesheet/refresh"
	"github.com/tessfold/bubblesheet/scrollable"
)

// refreshRegionRows is how many rows at the top of the content count as the
// refresh control's grab region: a downward drag at offset 0 is a refresh
// pull only when it began inside this strip (and the scrollable has refresh
// capability). Anything else is a collapse drag.
const refreshRegionRows = 3

// Scroller is the embedded scrollable surface the container composes. The
// factory's wrapped scrollables implement it; the container never depends
// on a concrete scrollable.
type Scroller interface {
	// Mount registers the scrollable with the sheet's registry; Unmount
	// deregisters it. Both are idempotent.
	Mount(reg *scrollable.Registry)
	Unmount(reg *scrollable.Registry)

	// SetSize resizes the visible content area.
	SetSize(w, h int)

	// ScrollBy applies a wheel or drag delta in rows (positive scrolls the
	// content up, growing the offset) and reports the resulting offset.
	// Implementations must route the result through their scroll handler
	// so the shared offset cell updates before the caller re-derives lock
	// state.
	ScrollBy(rows int) int

	// Offset is the current content offset in rows.
	Offset() int

	// Tap delivers a pointer press at content-local coordinates. Delivered
	// even when the sheet's drag recognizer wins the stream, so selection
	// inside content keeps working while the sheet is locked.
	Tap(x, y int)

	// DragBegan tells the scrollable a sheet drag claimed the stream, so
	// an embedded input can dismiss its keyboard focus.
	DragBegan()

	// FooterMarginAdjustment reports whether the scrollable asked for its
	// bottom margin to track the sheet's footer height.
	FooterMarginAdjustment() bool

	// RefreshControl returns the composed pull-to-refresh control, or nil.
	RefreshControl() *refresh.Control

	// View renders the content at the given size under the given lock
	// state (which decides the effective scroll-indicator visibility).
	View(lock scrollable.LockState, width, height int) string
}

// Container is the draggable sheet surface. It owns the gesture arbiter and
// the scrollable registry for one sheet instance and wires them to the
// position engine. Per-event pipeline order is fixed: content offset update,
// then lock-state re-derivation, then the arbitration decision for the next
// event.
type Container struct {
	engine position.Engine
	reg    *scrollable.Registry
	arb    *gesture.Arbiter

	drag       *gesture.Recognizer
	content    *gesture.Recognizer
	refreshRec *gesture.Recognizer

	scroller Scroller

	width  int
	height int

	footerAdjust bool

	sheetRect   gesture.Rect
	contentRect gesture.Rect
	hits        *gesture.HitMap

	// cmds collects commands emitted by recognizer callbacks while an
	// event is being routed; drained at the end of each Update.
	cmds []tea.Cmd
}

// Option configures a Container.
type Option func(*Container)

// WithFooterMarginAdjustment keeps the content's bottom margin equal to the
// engine's footer height, re-derived on every render.
func WithFooterMarginAdjustment() Option {
	return func(c *Container) { c.footerAdjust = true }
}

// New creates a container over the given position engine.
func New(engine position.Engine, opts ...Option) *Container {
	c := &Container{
		engine: engine,
		reg:    scrollable.NewRegistry(),
		hits:   gesture.NewHitMap(),
	}

	c.drag = gesture.NewRecognizer(gesture.KindDrag, func(x, y int) bool {
		return c.sheetRect.Contains(x, y)
	})
	c.drag.OnBegin = func(x, y int) {
		if c.scroller != nil {
			c.scroller.DragBegan()
		}
	}
	c.drag.OnDelta = func(dx, dy int) { c.dragDelta(dy) }
	c.drag.OnEnd = func(x, y int) { c.emit(c.engine.Settle()) }

	c.content = gesture.NewRecognizer(gesture.KindContent, func(x, y int) bool {
		return c.contentRect.Contains(x, y)
	})
	c.content.OnDelta = func(dx, dy int) { c.contentDelta(dy) }
	c.content.OnWheel = func(delta int) bool { return c.contentWheel(delta) }

	c.refreshRec = gesture.NewRecognizer(gesture.KindRefresh, func(x, y int) bool {
		ctl := c.control()
		return ctl != nil && ctl.Region().Contains(x, y)
	})
	c.refreshRec.OnBegin = func(x, y int) {
		if ctl := c.control(); ctl != nil {
			ctl.BeginPull()
		}
	}
	c.refreshRec.OnDelta = func(dx, dy int) {
		if ctl := c.control(); ctl != nil {
			ctl.Pull(dy)
		}
	}
	c.refreshRec.OnEnd = func(x, y int) {
		if ctl := c.control(); ctl != nil {
			c.emit(ctl.ResolvePull())
		}
	}

	c.arb = gesture.New(c.drag, c.content, c.refreshRec)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the sheet instance's scrollable registry handle.
func (c *Container) Registry() *scrollable.Registry { return c.reg }

// Engine returns the position engine the container consumes.
func (c *Container) Engine() position.Engine { return c.engine }

// LockState returns the current scrollable lock state.
func (c *Container) LockState() scrollable.LockState { return c.reg.State() }

// SetScroller mounts a scrollable as the sheet's content. Replacing the
// content mid-gesture discards the in-flight gesture without firing its
// callbacks; the previous scrollable's offset cell is left intact.
func (c *Container) SetScroller(s Scroller) {
	c.arb.CancelActive()
	if c.scroller != nil {
		if ctl := c.scroller.RefreshControl(); ctl != nil {
			ctl.CancelPull()
		}
		c.scroller.Unmount(c.reg)
	}
	c.scroller = s
	if s != nil {
		s.Mount(c.reg)
	}
	c.layout()
}

// ClearScroller unmounts the current content.
func (c *Container) ClearScroller() { c.SetScroller(nil) }

// SetSize resizes the container to the full terminal size.
func (c *Container) SetSize(w, h int) {
	c.width, c.height = w, h
	c.layout()
}

// Update processes one message. Mouse events run the arbitration pipeline;
// spinner ticks feed the refresh control; everything else only triggers a
// lock re-derivation so the state is never stale by more than one event.
func (c *Container) Update(msg tea.Msg) tea.Cmd {
	c.cmds = c.cmds[:0]

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.SetSize(msg.Width, msg.Height)

	case tea.MouseMsg:
		c.routeMouse(msg)

	case spinner.TickMsg:
		if ctl := c.control(); ctl != nil {
			c.emit(ctl.Update(msg))
		}
	}

	// Re-derive with an empty drag sample so expansion changes (animation
	// settling, programmatic snaps) propagate without waiting for input.
	c.reg.Evaluate(c.engine.FullyExpanded(), scrollable.DragSample{})

	if len(c.cmds) == 0 {
		return nil
	}
	return tea.Batch(c.cmds...)
}

func (c *Container) routeMouse(msg tea.MouseMsg) {
	c.layout()

	pulling := false
	if ctl := c.control(); ctl != nil {
		pulling = ctl.Pulling()
	}
	priority := priorityFor(c.reg.State(), pulling)

	dec := c.arb.Route(msg, priority)
	if !dec.Claimed {
		return
	}

	// Concurrent recognition: a press that landed in content delivers a tap
	// there even when the drag recognizer won the stream. The hit map's
	// topmost region decides what the press actually touched.
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && c.scroller != nil {
		if hit := c.hits.Test(msg.X, msg.Y); hit != nil && hit.ID != "sheet" {
			c.scroller.Tap(msg.X-c.contentRect.X, msg.Y-c.contentRect.Y)
		}
	}
}

// priorityFor returns the press/wheel arbitration order for the current
// state. An unresolved refresh pull outranks everything so the control is
// never starved by the drag recognizer; otherwise the lock state decides
// whether content or sheet drag wins vertical input.
func priorityFor(lock scrollable.LockState, refreshPulling bool) []gesture.Kind {
	if refreshPulling {
		return []gesture.Kind{gesture.KindRefresh, gesture.KindContent, gesture.KindDrag}
	}
	if lock == scrollable.Unlocked {
		return []gesture.Kind{gesture.KindContent, gesture.KindDrag}
	}
	return []gesture.Kind{gesture.KindDrag, gesture.KindContent}
}

// dragDelta applies a sheet-drag pointer delta: pointer down shrinks the
// sheet. When the sheet tops out and the pointer keeps moving up, ownership
// hands over to the content so the stream continues as a scroll.
func (c *Container) dragDelta(dy int) {
	c.engine.DragBy(-dy)
	c.layout()

	sx, sy := c.drag.Start()
	lock, _ := c.reg.Evaluate(c.engine.FullyExpanded(), scrollable.DragSample{DY: dy, StartX: sx, StartY: sy})
	if lock == scrollable.Unlocked && dy < 0 {
		c.arb.Transfer(gesture.KindContent)
	}
}

// contentDelta applies a content-drag pointer delta: pointer up scrolls the
// content down. At offset 0 a downward delta either becomes a refresh pull
// or relocks the sheet and requests collapse.
func (c *Container) contentDelta(dy int) {
	if c.scroller == nil || dy == 0 {
		return
	}
	c.scroller.ScrollBy(-dy)

	sx, sy := c.content.Start()
	sample := scrollable.DragSample{DY: dy, StartX: sx, StartY: sy}
	_, collapse := c.reg.Evaluate(c.engine.FullyExpanded(), sample)
	if collapse {
		c.resolveDownward(sample)
	}
}

// contentWheel applies a wheel tick over the content. The step is a pure
// function of the lock state; a zero step leaves the event unconsumed. A
// wheel-up at offset 0 counts as a downward drag and collapses the sheet
// (a wheel tick has no press origin, so it can never be a refresh pull).
func (c *Container) contentWheel(delta int) bool {
	step := scrollable.DecelerationFor(c.reg.State())
	if step == 0 || c.scroller == nil {
		return false
	}
	if delta < 0 && c.scroller.Offset() == 0 {
		c.reg.Evaluate(c.engine.FullyExpanded(), scrollable.DragSample{DY: 1})
		c.emit(c.engine.RequestCollapse())
		return true
	}
	c.scroller.ScrollBy(delta * step)
	c.reg.Evaluate(c.engine.FullyExpanded(), scrollable.DragSample{})
	return true
}

// resolveDownward classifies a downward drag at offset 0 and either hands
// the stream to the refresh control or relocks and collapses the sheet.
func (c *Container) resolveDownward(sample scrollable.DragSample) {
	hasRefresh := false
	region := gesture.Rect{}
	if ctl := c.control(); ctl != nil {
		hasRefresh = ctl.State().Enabled()
		region = ctl.Region()
	}
	if scrollable.ClassifyDownwardDrag(sample, hasRefresh, region) == scrollable.DragRefresh {
		if c.arb.Transfer(gesture.KindRefresh) {
			return
		}
	}
	c.emit(c.engine.RequestCollapse())
	c.arb.Transfer(gesture.KindDrag)
}

func (c *Container) control() *refresh.Control {
	if c.scroller == nil {
		return nil
	}
	return c.scroller.RefreshControl()
}

func (c *Container) emit(cmd tea.Cmd) {
	if cmd != nil {
		c.cmds = append(c.cmds, cmd)
	}
}

// layout recomputes the sheet and content rectangles from the engine's
// current height and pushes them to the collaborators.
func (c *Container) layout() {
	sh := c.engine.Height()
	if sh > c.height {
		sh = c.height
	}
	c.sheetRect = gesture.Rect{X: 0, Y: c.height - sh, W: c.width, H: sh}

	inner := c.innerHeight(sh)
	c.contentRect = gesture.Rect{
		X: 0,
		Y: c.sheetRect.Y + 1,
		W: c.width,
		H: inner,
	}
	if ctl := c.control(); ctl != nil {
		grab := refreshRegionRows
		if grab > inner {
			grab = inner
		}
		ctl.SetRegion(gesture.Rect{X: c.contentRect.X, Y: c.contentRect.Y, W: c.contentRect.W, H: grab})
		if ctl.Placement() == refresh.PlacementWrap {
			inner -= ctl.Height()
		}
	}
	if c.scroller != nil {
		if inner < 0 {
			inner = 0
		}
		c.scroller.SetSize(c.contentRect.W, inner)
	}

	c.hits.Clear()
	c.hits.Add("sheet", c.sheetRect, nil)
	c.hits.Add("content", c.contentRect, nil)
	if ctl := c.control(); ctl != nil {
		c.hits.Add("refresh", ctl.Region(), nil)
	}
}

// innerHeight is the content rows inside the chrome: sheet height minus the
// handle/border row, minus the continuously-derived footer margin.
func (c *Container) innerHeight(sheetHeight int) int {
	inner := sheetHeight - 1
	if c.footerAdjust || (c.scroller != nil && c.scroller.FooterMarginAdjustment()) {
		inner -= c.engine.FooterHeight()
	}
	if inner < 0 {
		inner = 0
	}
	return inner
}

// View renders the sheet over the given backdrop, which must already be
// sized to the container's width and height. The footer margin and the
// content's indicator binding are derived from the current engine and lock
// state on every call.
func (c *Container) View(backdrop string) string {
	c.layout()
	sh := c.sheetRect.H
	if sh <= 0 || c.width <= 0 {
		return backdrop
	}

	lines := strings.Split(backdrop, "\n")
	for len(lines) < c.height {
		lines = append(lines, "")
	}
	lines = lines[:c.height]

	sheetLines := strings.Split(c.sheetView(sh), "\n")
	for i, l := range sheetLines {
		row := c.height - sh + i
		if row >= 0 && row < c.height {
			lines[row] = l
		}
	}
	return strings.Join(lines, "\n")
}

// sheetView renders the sheet chrome and content at the given height. The
// grab-handle row doubles as the sheet's top edge.
func (c *Container) sheetView(sheetHeight int) string {
	w := c.width

	handle := styles.GrabHandle.Render("━━━━━")
	top := styles.SheetEdge.Render(placeOnEdge(w, handle))

	var body strings.Builder
	rows := 0
	if ctl := c.control(); ctl != nil && ctl.Placement() == refresh.PlacementWrap && ctl.Height() > 0 {
		body.WriteString(ctl.View(w))
		body.WriteString("\n")
		rows += ctl.Height()
	}
	contentRows := c.innerHeight(sheetHeight) - rows
	if contentRows > 0 && c.scroller != nil {
		body.WriteString(c.scroller.View(c.reg.State(), w, contentRows))
	}

	return top + "\n" + padToHeight(body.String(), sheetHeight-1)
}

// placeOnEdge centers the handle in a rule spanning the full width.
func placeOnEdge(width int, handle string) string {
	hw := lipgloss.Width(handle)
	side := (width - hw) / 2
	if side < 0 {
		side = 0
	}
	left := strings.Repeat("─", side)
	right := strings.Repeat("─", max(0, width-hw-side))
	return left + handle + right
}

// padToHeight pads or truncates s to exactly h newline-separated lines.
func padToHeight(s string, h int) string {
	if h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
