// Package bubblesheet provides a draggable bottom-sheet component for
// Bubble Tea programs. A sheet overlays the host view, snaps between
// heights under mouse drags, and embeds a scrollable region (flat list,
// section list, or plain scroll view). While the sheet is not fully
// expanded, vertical gestures move the sheet; once fully expanded they
// scroll the content; pull-to-refresh composes with both. The factory in
// this package builds the wrapped scrollables; the arbitration machinery
// lives in the gesture, scrollable, and sheet packages.
package bubblesheet

import (
	"log"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tessfold/bubblesheet/internal/styles"
	"github.com/tessfold/bubblesheet/internal/ui"
	"github.com/tessfold/bubblesheet/refresh"
	"github.com/tessfold/bubblesheet/scrollable"
)

// Section is one titled group of rows in a section list.
type Section struct {
	Title string
	Rows  []string
}

// lineRef maps one rendered content line back to its source.
type lineRef struct {
	header  bool
	section int
	row     int
}

// scrollableID hands out stable identities, one per constructed scrollable.
var scrollableID atomic.Int64

// Scrollable is a wrapped scrollable built by the factory. It implements
// sheet.Scroller and renders through a bubbles viewport.
type Scrollable struct {
	typ scrollable.Type
	cfg config
	id  int

	vp      viewport.Model
	handler *scrollable.ScrollHandler
	ctl     *refresh.Control

	rows     []string
	sections []Section
	raw      string
	lines    []lineRef
	selected int

	width  int
	height int

	warned bool
}

// New builds a wrapped scrollable of the given type. The refresh
// composition strategy is selected here, once: list types render the
// control inline (they manage their own header row), plain scroll views get
// a wrapping sibling strip. Both satisfy the same behavioral contract.
func New(t scrollable.Type, opts ...Option) *Scrollable {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Scrollable{
		typ:      t,
		cfg:      cfg,
		id:       int(scrollableID.Add(1)),
		vp:       viewport.New(0, 0),
		selected: -1,
	}
	s.handler = scrollable.NewScrollHandler(cfg.scrollHook)

	if cfg.refreshState.Enabled() {
		s.ctl = refresh.NewControl(cfg.refreshState)
		s.ctl.SetPlacement(placementFor(t))
		if cfg.refreshRenderer != nil {
			s.ctl.SetRenderer(cfg.refreshRenderer)
		}
	}
	return s
}

// NewFlatList builds a row-list scrollable.
func NewFlatList(opts ...Option) *Scrollable {
	return New(scrollable.TypeFlatList, opts...)
}

// NewSectionList builds a section-list scrollable.
func NewSectionList(opts ...Option) *Scrollable {
	return New(scrollable.TypeSectionList, opts...)
}

// NewScrollView builds a plain scroll view over free-form content.
func NewScrollView(opts ...Option) *Scrollable {
	return New(scrollable.TypeView, opts...)
}

func placementFor(t scrollable.Type) refresh.Placement {
	switch t {
	case scrollable.TypeFlatList, scrollable.TypeSectionList:
		return refresh.PlacementInline
	default:
		return refresh.PlacementWrap
	}
}

// ID returns the scrollable's stable identity, used for registry
// back-reference only.
func (s *Scrollable) ID() int { return s.id }

// Type returns the scrollable's type tag.
func (s *Scrollable) Type() scrollable.Type { return s.typ }

// Viewport exposes the underlying viewport directly, for programmatic
// scroll-to operations. Not a wrapper.
func (s *Scrollable) Viewport() *viewport.Model { return &s.vp }

// SetRows replaces the content of a flat list.
func (s *Scrollable) SetRows(rows []string) {
	s.rows = rows
	s.clampSelection()
}

// SetSections replaces the content of a section list.
func (s *Scrollable) SetSections(sections []Section) {
	s.sections = sections
	s.clampSelection()
}

// SetContent replaces the content of a plain scroll view.
func (s *Scrollable) SetContent(content string) {
	s.raw = content
}

// Selected returns the index of the selected line reference, as
// (section, row) for section lists or (0, row) for flat lists, and whether
// a selection exists.
func (s *Scrollable) Selected() (section, row int, ok bool) {
	if s.selected < 0 || s.selected >= len(s.lines) {
		return 0, 0, false
	}
	ref := s.lines[s.selected]
	if ref.header {
		return 0, 0, false
	}
	return ref.section, ref.row, true
}

// SelectedRow returns the text of the selected row, if any.
func (s *Scrollable) SelectedRow() (string, bool) {
	section, row, ok := s.Selected()
	if !ok {
		return "", false
	}
	switch s.typ {
	case scrollable.TypeFlatList:
		if row < len(s.rows) {
			return s.rows[row], true
		}
	case scrollable.TypeSectionList:
		if section < len(s.sections) && row < len(s.sections[section].Rows) {
			return s.sections[section].Rows[row], true
		}
	}
	return "", false
}

// SetRefreshing updates the caller-owned refreshing flag at runtime.
func (s *Scrollable) SetRefreshing(v bool) {
	if s.ctl == nil {
		return
	}
	st := s.ctl.State()
	st.Refreshing = v
	s.ctl.SetState(st)
}

// Mount registers the scrollable with the sheet's registry, making it the
// active scrollable. Safe to call again after hook changes; the registry
// updates the record in place without dropping the offset cell binding.
func (s *Scrollable) Mount(reg *scrollable.Registry) {
	reg.Register(s.id, s.typ, s.handler.Cell(), s.ctl != nil, s.cfg.focusHook)
	if s.cfg.deprecatedElement && !s.warned {
		s.warned = true
		log.Printf("bubblesheet: the refreshControl element is deprecated on %s; use WithRefreshControl instead", s.typ)
	}
}

// Unmount deregisters the scrollable. A registry where this instance is no
// longer active is left untouched.
func (s *Scrollable) Unmount(reg *scrollable.Registry) {
	reg.Deregister(s.id)
	s.warned = false
}

// SetSize resizes the visible content area.
func (s *Scrollable) SetSize(w, h int) {
	s.width, s.height = w, h
	// One column stays reserved for the indicator so toggling it does not
	// reflow content.
	s.vp.Width = max(0, w-1)
	s.vp.Height = max(0, h)
	s.sync()
}

// Offset returns the current content offset in rows.
func (s *Scrollable) Offset() int { return s.vp.YOffset }

// ScrollBy applies a delta in rows and reports the resulting offset. The
// shared offset cell is updated and the external hook invoked before
// returning, so a caller re-deriving lock state right after never observes
// a stale offset.
func (s *Scrollable) ScrollBy(rows int) int {
	old := s.vp.YOffset
	limit := s.maxOffset()
	if s.cfg.overscroll == OverscrollAlways && limit > 0 {
		limit++
	}
	n := clamp(old+rows, 0, limit)
	s.vp.YOffset = n
	s.handler.OnScroll(scrollable.Event{OffsetY: n, Delta: n - old})
	return n
}

// Tap delivers a press at content-local coordinates, selecting the hit row
// in list types. The inline refresh strip is part of the content, so its
// rows resolve to header refs and never select.
func (s *Scrollable) Tap(x, y int) {
	if s.typ == scrollable.TypeView {
		return
	}
	line := s.vp.YOffset + y
	if line < 0 || line >= len(s.lines) || s.lines[line].header {
		return
	}
	s.selected = line
}

// DragBegan dismisses input focus under the interactive keyboard mode.
func (s *Scrollable) DragBegan() {
	if s.cfg.keyboardDismiss == KeyboardDismissInteractive && s.cfg.onDismiss != nil {
		s.cfg.onDismiss()
	}
}

// FooterMarginAdjustment reports the footer-margin option.
func (s *Scrollable) FooterMarginAdjustment() bool { return s.cfg.footerMargin }

// RefreshControl returns the composed pull-to-refresh control, or nil when
// no refresh callback was supplied.
func (s *Scrollable) RefreshControl() *refresh.Control { return s.ctl }

// Focused reports the focus hook's answer; a missing hook means focused.
func (s *Scrollable) Focused() bool {
	if s.cfg.focusHook == nil {
		return true
	}
	return s.cfg.focusHook()
}

// Update forwards keyboard scrolling to the viewport while the scrollable
// has focus, keeping the shared offset cell in sync.
func (s *Scrollable) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); !ok {
		return nil
	}
	if !s.Focused() {
		return nil
	}
	old := s.vp.YOffset
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	if s.vp.YOffset != old {
		s.handler.OnScroll(scrollable.Event{OffsetY: s.vp.YOffset, Delta: s.vp.YOffset - old})
	}
	return cmd
}

// View renders the content at the given size. The effective indicator
// visibility and wheel step are derived from the lock state here, on every
// call, so they are never stale by more than one frame.
func (s *Scrollable) View(lock scrollable.LockState, width, height int) string {
	if width != s.width || height != s.height {
		s.SetSize(width, height)
	} else {
		s.sync()
	}
	if s.vp.Width <= 0 || s.vp.Height <= 0 {
		return ""
	}

	body := s.vp.View()

	var column string
	if scrollable.IndicatorVisible(lock, s.cfg.showIndicator) {
		column = ui.RenderScrollbar(ui.ScrollbarParams{
			TotalRows:    s.vp.TotalLineCount(),
			ScrollOffset: s.vp.YOffset,
			VisibleRows:  s.vp.Height,
			TrackHeight:  s.vp.Height,
		})
	} else {
		column = ui.SpacerColumn(s.vp.Height)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, body, column)
}

// sync rebuilds the viewport content from the current rows, sections, or
// raw content at the current width.
func (s *Scrollable) sync() {
	w := s.vp.Width
	if w <= 0 {
		return
	}

	var out []string
	s.lines = s.lines[:0]

	if strip := s.inlineStrip(w); strip != "" {
		stripLines := strings.Split(strip, "\n")
		for range stripLines {
			s.lines = append(s.lines, lineRef{header: true})
		}
		out = append(out, stripLines...)
	}

	switch s.typ {
	case scrollable.TypeFlatList:
		for i, row := range s.rows {
			out = append(out, s.renderRow(row, w, len(s.lines) == s.selected))
			s.lines = append(s.lines, lineRef{row: i})
		}
	case scrollable.TypeSectionList:
		for si, sec := range s.sections {
			out = append(out, styles.SectionHeader.Render(runewidth.Truncate(sec.Title, w, "…")))
			s.lines = append(s.lines, lineRef{header: true, section: si})
			for ri, row := range sec.Rows {
				out = append(out, s.renderRow(row, w, len(s.lines) == s.selected))
				s.lines = append(s.lines, lineRef{section: si, row: ri})
			}
		}
	default:
		out = append(out, strings.Split(s.raw, "\n")...)
	}

	s.vp.SetContent(strings.Join(out, "\n"))
}

func (s *Scrollable) renderRow(row string, w int, selected bool) string {
	text := runewidth.Truncate(row, w, "…")
	if selected {
		return styles.SelectedRow.Width(w).Render(text)
	}
	return text
}

// inlineStrip returns the refresh strip rendered as content header rows
// under the inline placement, empty otherwise.
func (s *Scrollable) inlineStrip(width int) string {
	if s.ctl == nil || s.ctl.Placement() != refresh.PlacementInline || s.ctl.Height() == 0 {
		return ""
	}
	return s.ctl.View(width)
}

func (s *Scrollable) maxOffset() int {
	m := s.vp.TotalLineCount() - s.vp.Height
	if m < 0 {
		return 0
	}
	return m
}

func (s *Scrollable) clampSelection() {
	if s.selected >= len(s.lines) {
		s.selected = -1
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
