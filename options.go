package bubblesheet

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tessfold/bubblesheet/refresh"
	"github.com/tessfold/bubblesheet/scrollable"
)

// OverscrollMode controls behavior when scrolling past the content edge.
type OverscrollMode int

const (
	// OverscrollNever clamps the offset to the content range.
	OverscrollNever OverscrollMode = iota
	// OverscrollAlways permits one row of travel past the end before the
	// offset clamps, making the edge visible.
	OverscrollAlways
)

// KeyboardDismissMode controls what happens to an embedded input's focus
// when a sheet drag begins.
type KeyboardDismissMode int

const (
	// KeyboardDismissInteractive dismisses input focus as soon as a sheet
	// drag claims the stream.
	KeyboardDismissInteractive KeyboardDismissMode = iota
	// KeyboardDismissNone leaves input focus alone.
	KeyboardDismissNone
)

type config struct {
	focusHook       scrollable.FocusPredicate
	scrollHook      scrollable.Hook
	footerMargin    bool
	overscroll      OverscrollMode
	keyboardDismiss KeyboardDismissMode
	onDismiss       func()
	showIndicator   bool

	refreshState    refresh.State
	refreshRenderer refresh.Renderer

	deprecatedElement bool
}

func defaultConfig() config {
	return config{
		overscroll:      OverscrollNever,
		keyboardDismiss: KeyboardDismissInteractive,
		showIndicator:   true,
	}
}

// Option configures a wrapped scrollable at construction.
type Option func(*config)

// WithFocusHook supplies the predicate answering whether this scrollable
// currently has input focus, used to disambiguate nested scrollables.
// Defaults to always focused.
func WithFocusHook(p scrollable.FocusPredicate) Option {
	return func(c *config) { c.focusHook = p }
}

// WithScrollEventsHook supplies an external hook invoked synchronously on
// each scroll callback, within the same frame as the offset update.
func WithScrollEventsHook(h scrollable.Hook) Option {
	return func(c *config) { c.scrollHook = h }
}

// WithFooterMarginAdjustment keeps the content's bottom margin equal to the
// sheet's footer height, re-derived on every render.
func WithFooterMarginAdjustment() Option {
	return func(c *config) { c.footerMargin = true }
}

// WithOverscrollMode sets the edge behavior. Default OverscrollNever.
func WithOverscrollMode(m OverscrollMode) Option {
	return func(c *config) { c.overscroll = m }
}

// WithKeyboardDismissMode sets how input focus reacts to a sheet drag.
// Default KeyboardDismissInteractive.
func WithKeyboardDismissMode(m KeyboardDismissMode) Option {
	return func(c *config) { c.keyboardDismiss = m }
}

// WithOnKeyboardDismiss supplies the callback that actually drops input
// focus (for example textinput.Blur). Only invoked under
// KeyboardDismissInteractive.
func WithOnKeyboardDismiss(fn func()) Option {
	return func(c *config) { c.onDismiss = fn }
}

// WithShowsScrollIndicator sets the caller's indicator preference. The
// effective visibility is still a pure function of the lock state. Default
// true.
func WithShowsScrollIndicator(v bool) Option {
	return func(c *config) { c.showIndicator = v }
}

// WithOnRefresh enables pull-to-refresh with the given callback.
func WithOnRefresh(fn func() tea.Cmd) Option {
	return func(c *config) { c.refreshState.OnRefresh = fn }
}

// WithRefreshing sets the initial refreshing flag. Use SetRefreshing for
// runtime changes.
func WithRefreshing(v bool) Option {
	return func(c *config) { c.refreshState.Refreshing = v }
}

// WithProgressViewOffset pushes the refresh indicator down by that many
// rows.
func WithProgressViewOffset(rows int) Option {
	return func(c *config) { c.refreshState.ProgressViewOffset = rows }
}

// WithRefreshControl overrides the refresh indicator renderer.
func WithRefreshControl(r refresh.Renderer) Option {
	return func(c *config) { c.refreshRenderer = r }
}

// WithRefreshControlElement is the deprecated direct-element escape hatch.
//
// Deprecated: it logs a one-time warning per mount and is otherwise
// ignored; use WithRefreshControl.
func WithRefreshControlElement(_ string) Option {
	return func(c *config) { c.deprecatedElement = true }
}
