package gesture

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Decision reports how an event was routed.
type Decision struct {
	// Winner is the recognizer that owns or consumed the event.
	Winner Kind
	// Claimed is true when Winner is meaningful; false when nothing
	// matched the event.
	Claimed bool
	// AlsoHit lists other enabled recognizers whose regions contained a
	// press. They did not win the stream but may still observe the touch
	// (taps inside content keep working while the sheet owns the drag).
	AlsoHit []Kind
}

// Arbiter routes a pointer-event stream to exactly one recognizer at a time,
// following an explicit priority order supplied with each event. The order is
// re-evaluated on every event rather than relying on any recognizer's
// internal tie-breaking, so ownership decisions stay inspectable.
type Arbiter struct {
	recognizers []Capability
	active      Capability
	pressed     bool
	lastX       int
	lastY       int
}

// New creates an arbiter over the given recognizers.
func New(recs ...Capability) *Arbiter {
	return &Arbiter{recognizers: recs}
}

// Recognizer returns the registered recognizer of the given kind, or nil.
func (a *Arbiter) Recognizer(k Kind) Capability {
	for _, r := range a.recognizers {
		if r.Kind() == k {
			return r
		}
	}
	return nil
}

// Active returns the kind currently owning a stream.
func (a *Arbiter) Active() (Kind, bool) {
	if a.active == nil {
		return 0, false
	}
	return a.active.Kind(), true
}

// Route processes one mouse event under the given priority order (highest
// priority first). Kinds absent from the order cannot claim the event.
func (a *Arbiter) Route(msg tea.MouseMsg, priority []Kind) Decision {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return a.press(msg.X, msg.Y, priority)
		case tea.MouseButtonWheelUp:
			return a.wheel(msg.X, msg.Y, -1, priority)
		case tea.MouseButtonWheelDown:
			return a.wheel(msg.X, msg.Y, 1, priority)
		}

	case tea.MouseActionMotion:
		if a.pressed && a.active != nil {
			a.lastX, a.lastY = msg.X, msg.Y
			k := a.active.Kind()
			a.active.Move(msg.X, msg.Y)
			return Decision{Winner: k, Claimed: true}
		}

	case tea.MouseActionRelease:
		a.pressed = false
		if a.active != nil {
			k := a.active.Kind()
			a.active.End(msg.X, msg.Y)
			a.active = nil
			return Decision{Winner: k, Claimed: true}
		}
	}
	return Decision{}
}

func (a *Arbiter) press(x, y int, priority []Kind) Decision {
	a.pressed = true
	a.lastX, a.lastY = x, y

	var dec Decision
	for _, k := range priority {
		r := a.Recognizer(k)
		if r == nil || !r.Enabled() || !r.Hits(x, y) {
			continue
		}
		if !dec.Claimed {
			dec.Winner = k
			dec.Claimed = true
			a.active = r
			r.Begin(x, y)
			continue
		}
		dec.AlsoHit = append(dec.AlsoHit, k)
	}
	return dec
}

func (a *Arbiter) wheel(x, y, delta int, priority []Kind) Decision {
	for _, k := range priority {
		r := a.Recognizer(k)
		if r == nil {
			continue
		}
		if r.Wheel(x, y, delta) {
			return Decision{Winner: k, Claimed: true}
		}
	}
	return Decision{}
}

// Transfer hands the in-flight stream to the recognizer of the given kind,
// beginning it at the pointer's last known position. The previous owner is
// cancelled, not ended, so its end callbacks do not fire. No-op when no
// stream is in flight or the target is missing or disabled.
func (a *Arbiter) Transfer(to Kind) bool {
	if !a.pressed {
		return false
	}
	target := a.Recognizer(to)
	if target == nil || !target.Enabled() {
		return false
	}
	if a.active == target {
		return true
	}
	if a.active != nil {
		a.active.Cancel()
	}
	a.active = target
	target.Begin(a.lastX, a.lastY)
	return true
}

// CancelActive discards the in-flight stream without firing end callbacks.
// Used when the owning component unmounts mid-gesture.
func (a *Arbiter) CancelActive() {
	if a.active != nil {
		a.active.Cancel()
		a.active = nil
	}
}
