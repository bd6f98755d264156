package scrollable

import (
	"github.com/tessfold/bubblesheet/gesture"
)

// FocusPredicate answers whether a scrollable currently has input focus.
// Used to disambiguate nested scrollables; supplied by the caller.
type FocusPredicate func() bool

// Descriptor represents one mounted scrollable instance.
type Descriptor struct {
	ID         int
	Type       Type
	HasRefresh bool
	Focused    FocusPredicate

	cell *OffsetCell
}

// Offset reads the descriptor's current content offset.
func (d *Descriptor) Offset() int {
	if d.cell == nil {
		return 0
	}
	return d.cell.Load()
}

// DragSample is one observation of an in-flight vertical gesture.
type DragSample struct {
	// DY is the vertical pointer delta; positive moves down the screen.
	DY int
	// StartX, StartY are where the gesture's press landed.
	StartX int
	StartY int
}

// Downward reports whether the sample moves down the screen.
func (s DragSample) Downward() bool { return s.DY > 0 }

// DragClass is the outcome of classifying a downward drag at offset 0.
type DragClass int

const (
	// DragCollapse relocks the scrollable and asks the sheet to collapse.
	DragCollapse DragClass = iota
	// DragRefresh hands the gesture to the pull-to-refresh control.
	DragRefresh
)

// ClassifyDownwardDrag decides whether a downward drag at offset 0 is a
// refresh pull or a collapse drag: it is a refresh pull iff the gesture
// began inside the refresh control's region and the active scrollable has
// refresh capability. Everything else collapses the sheet, so pull-down-to-
// collapse is always available at offset 0.
func ClassifyDownwardDrag(s DragSample, hasRefresh bool, refreshRegion gesture.Rect) DragClass {
	if hasRefresh && !refreshRegion.Empty() && refreshRegion.Contains(s.StartX, s.StartY) {
		return DragRefresh
	}
	return DragCollapse
}

// Registry is the single source of truth for which scrollable is active
// within one sheet instance and for the shared lock state. It is explicit
// per-sheet state: create one with NewRegistry and pass the handle to each
// mounted scrollable. All lock-state transitions go through Evaluate; scroll
// handlers never write the state directly.
type Registry struct {
	active *Descriptor
	state  LockState
}

// NewRegistry creates an empty registry in the Undetermined state.
func NewRegistry() *Registry {
	return &Registry{state: Undetermined}
}

// Register announces a mounted scrollable and makes it the active one.
// Last registration wins: a concurrent claim simply replaces the previous
// active descriptor, whose offset cell is left intact but unread until it
// re-registers. Re-registering the currently active id updates the record
// in place without dropping the existing offset cell binding, so re-renders
// with changed refresh capability or focus predicate are cheap and safe.
func (r *Registry) Register(id int, t Type, cell *OffsetCell, hasRefresh bool, focused FocusPredicate) {
	if r.active != nil && r.active.ID == id {
		r.active.Type = t
		r.active.HasRefresh = hasRefresh
		r.active.Focused = focused
		if cell != nil && r.active.cell == nil {
			r.active.cell = cell
		}
		return
	}
	r.active = &Descriptor{
		ID:         id,
		Type:       t,
		HasRefresh: hasRefresh,
		Focused:    focused,
		cell:       cell,
	}
	// A newly selected scrollable's offset must be read before it is
	// trusted, so evaluation restarts rather than inheriting the previous
	// scrollable's lock.
	r.state = Undetermined
}

// Deregister removes the binding if id is still the active scrollable.
// Deregistering a superseded id is a no-op.
func (r *Registry) Deregister(id int) {
	if r.active == nil || r.active.ID != id {
		return
	}
	r.active = nil
	r.state = Undetermined
}

// Active returns the active descriptor, or nil when none is mounted.
func (r *Registry) Active() *Descriptor {
	return r.active
}

// State returns the current lock state.
func (r *Registry) State() LockState {
	return r.state
}

// Evaluate re-derives the lock state from the sheet's expansion and the
// current gesture, returning the new state and whether a sheet collapse
// should be requested. Must run after the frame's offset update and before
// the next arbitration decision.
//
// Derivation: while the sheet is not fully expanded the scrollable is
// Locked regardless of offset, because the sheet still needs vertical room
// to finish expanding. Once fully expanded it is Unlocked while the offset
// is above 0; at offset 0 a downward drag relocks it and requests collapse.
// That asymmetry is intentional: pull-down-to-collapse stays available at
// the top of the content.
func (r *Registry) Evaluate(fullyExpanded bool, drag DragSample) (LockState, bool) {
	if r.active == nil {
		r.state = Undetermined
		return r.state, false
	}
	if !fullyExpanded {
		r.state = Locked
		return r.state, false
	}
	if r.active.Offset() > 0 {
		r.state = Unlocked
		return r.state, false
	}
	if drag.Downward() {
		r.state = Locked
		return r.state, true
	}
	r.state = Unlocked
	return r.state, false
}

// Focused reports whether the active scrollable has input focus. A missing
// predicate defaults to focused.
func (r *Registry) Focused() bool {
	if r.active == nil {
		return false
	}
	if r.active.Focused == nil {
		return true
	}
	return r.active.Focused()
}
