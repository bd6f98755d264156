package scrollable

// OffsetCell is a shared cell holding a scrollable's current vertical
// content offset in rows, 0 meaning scrolled to top. Each cell has exactly
// one writer (its scrollable's ScrollHandler) and any number of readers,
// all on the single Bubble Tea update goroutine, so no locking is needed.
// An embedding in a multi-threaded runtime must confine the cell to one
// goroutine.
type OffsetCell struct {
	y int
}

// Store records the current offset.
func (c *OffsetCell) Store(y int) {
	c.y = y
}

// Load returns the most recently recorded offset.
func (c *OffsetCell) Load() int {
	return c.y
}

// Event is one scroll frame reported by the underlying scroll view.
type Event struct {
	// OffsetY is the vertical content offset after the scroll, in rows.
	OffsetY int
	// Delta is the change applied this frame; positive scrolls content up
	// (offset grows).
	Delta int
}

// Hook observes raw scroll events. Hooks are invoked synchronously within
// the same frame as the offset update so downstream arbitration never sees
// a stale offset.
type Hook func(Event)

// ScrollHandler adapts native scroll callbacks for one scrollable instance:
// it owns the shared offset cell and forwards each raw event to an optional
// external hook.
type ScrollHandler struct {
	cell OffsetCell
	hook Hook
}

// NewScrollHandler creates a handler with its offset cell initialized to 0.
func NewScrollHandler(hook Hook) *ScrollHandler {
	return &ScrollHandler{hook: hook}
}

// Cell returns the handler's offset cell. The returned pointer stays valid
// for the handler's lifetime; readers keep it across re-registrations.
func (h *ScrollHandler) Cell() *OffsetCell {
	return &h.cell
}

// OnScroll records the reported offset and then invokes the external hook,
// in that order, on the caller's stack.
func (h *ScrollHandler) OnScroll(ev Event) {
	h.cell.Store(ev.OffsetY)
	if h.hook != nil {
		h.hook(ev)
	}
}
