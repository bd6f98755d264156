package gesture

// Kind identifies which role a recognizer plays in the sheet's gesture
// arbitration.
type Kind int

const (
	// KindDrag is the sheet's own pan recognizer. Vertical deltas routed
	// here move the sheet position.
	KindDrag Kind = iota
	// KindContent is the embedded scrollable's recognizer. Vertical deltas
	// and wheel ticks routed here move the content offset; taps routed here
	// select content.
	KindContent
	// KindRefresh is the pull-to-refresh recognizer. It owns a pull gesture
	// from the moment it claims a press until the pull resolves or the
	// pointer is released.
	KindRefresh
)

// String returns a short name for debugging.
func (k Kind) String() string {
	switch k {
	case KindDrag:
		return "drag"
	case KindContent:
		return "content"
	case KindRefresh:
		return "refresh"
	}
	return "unknown"
}

// Capability is the narrow surface the arbiter requires from a recognizer.
// The only semantics assumed are: it can be hit-tested, it can be disabled
// reactively, it observes a press/move/release stream while it owns one,
// and a cancelled stream must not fire its callbacks.
type Capability interface {
	Kind() Kind
	Enabled() bool
	SetEnabled(bool)
	Hits(x, y int) bool

	// Begin claims a press at (x, y). Move reports pointer motion while the
	// stream is owned; End resolves it. Cancel discards the stream without
	// firing end callbacks.
	Begin(x, y int)
	Move(x, y int)
	End(x, y int)
	Cancel()

	// Wheel offers a wheel tick at (x, y); delta is positive for wheel
	// down. Returns true if consumed.
	Wheel(x, y, delta int) bool
}

// Recognizer is the standard Capability implementation. Behavior is supplied
// through callbacks so the same type serves the drag, content, and refresh
// roles.
type Recognizer struct {
	kind    Kind
	enabled bool

	// CancelOutside discards an owned stream when the pointer leaves the
	// hit rect, instead of continuing to report deltas.
	CancelOutside bool

	hit func(x, y int) bool

	// Stream callbacks. All optional.
	OnBegin func(x, y int)
	OnDelta func(dx, dy int)
	OnEnd   func(x, y int)
	OnWheel func(delta int) bool

	active bool
	startX int
	startY int
	lastX  int
	lastY  int
}

// NewRecognizer creates an enabled recognizer of the given kind. hit decides
// whether a point belongs to this recognizer; a nil hit matches everywhere.
func NewRecognizer(kind Kind, hit func(x, y int) bool) *Recognizer {
	return &Recognizer{
		kind:    kind,
		enabled: true,
		hit:     hit,
	}
}

// Kind returns the recognizer's arbitration role.
func (r *Recognizer) Kind() Kind { return r.kind }

// Enabled reports whether the recognizer may claim new streams.
func (r *Recognizer) Enabled() bool { return r.enabled }

// SetEnabled enables or disables the recognizer. Disabling does not cancel
// an owned stream; the arbiter decides that.
func (r *Recognizer) SetEnabled(v bool) { r.enabled = v }

// Hits reports whether the point belongs to this recognizer's region.
func (r *Recognizer) Hits(x, y int) bool {
	if r.hit == nil {
		return true
	}
	return r.hit(x, y)
}

// Active reports whether the recognizer currently owns a stream.
func (r *Recognizer) Active() bool { return r.active }

// Start returns the press origin of the owned stream.
func (r *Recognizer) Start() (x, y int) { return r.startX, r.startY }

// Begin claims a press at (x, y).
func (r *Recognizer) Begin(x, y int) {
	r.active = true
	r.startX, r.startY = x, y
	r.lastX, r.lastY = x, y
	if r.OnBegin != nil {
		r.OnBegin(x, y)
	}
}

// Move reports pointer motion, delivering the delta since the last event.
func (r *Recognizer) Move(x, y int) {
	if !r.active {
		return
	}
	if r.CancelOutside && !r.Hits(x, y) {
		r.Cancel()
		return
	}
	dx, dy := x-r.lastX, y-r.lastY
	r.lastX, r.lastY = x, y
	if r.OnDelta != nil && (dx != 0 || dy != 0) {
		r.OnDelta(dx, dy)
	}
}

// End resolves the owned stream.
func (r *Recognizer) End(x, y int) {
	if !r.active {
		return
	}
	r.active = false
	if r.OnEnd != nil {
		r.OnEnd(x, y)
	}
}

// Cancel discards the owned stream. No end callback fires.
func (r *Recognizer) Cancel() {
	r.active = false
}

// Wheel offers a wheel tick. Consumed only when enabled, hit, and handled.
func (r *Recognizer) Wheel(x, y, delta int) bool {
	if !r.enabled || !r.Hits(x, y) || r.OnWheel == nil {
		return false
	}
	return r.OnWheel(delta)
}
