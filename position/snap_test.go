package position

import (
	"testing"
	"time"
)

func drain(t *testing.T, e *SnapEngine) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if e.Update(TickMsg(time.Now())) == nil {
			return
		}
	}
	t.Fatal("animation did not terminate")
}

func TestNewSnapEngineSortsAndStartsAtBottom(t *testing.T) {
	e := NewSnapEngine(24, 3, 12)
	if e.BottomSnap() != 3 || e.TopSnap() != 24 {
		t.Fatalf("snaps = [%d..%d], want [3..24]", e.BottomSnap(), e.TopSnap())
	}
	if e.Height() != 3 {
		t.Fatalf("initial height = %d, want bottom snap", e.Height())
	}
	if e.FullyExpanded() {
		t.Error("fully expanded at bottom snap")
	}
}

func TestNewSnapEngineWithoutSnaps(t *testing.T) {
	e := NewSnapEngine()
	if e.Height() != 0 || e.TopSnap() != 0 {
		t.Errorf("height = %d, top = %d, want 0/0", e.Height(), e.TopSnap())
	}
}

func TestExpandReachesTopAndSettles(t *testing.T) {
	e := NewSnapEngine(3, 24)
	cmd := e.Expand()
	if cmd == nil {
		t.Fatal("Expand returned no command")
	}
	if e.FullyExpanded() {
		t.Fatal("fully expanded while animation is still running")
	}
	drain(t, e)
	if e.Height() != 24 || !e.FullyExpanded() {
		t.Errorf("height = %d fullyExpanded = %v, want 24/true", e.Height(), e.FullyExpanded())
	}
}

func TestExpandAtTopIsNoop(t *testing.T) {
	e := NewSnapEngine(3, 24)
	e.Expand()
	drain(t, e)
	if e.Expand() != nil {
		t.Error("Expand at top snap returned a command")
	}
}

func TestDragByClampsToSnapRange(t *testing.T) {
	e := NewSnapEngine(3, 24)
	e.DragBy(100)
	if e.Height() != 24 {
		t.Errorf("height after overshoot up = %d, want 24", e.Height())
	}
	e.DragBy(-100)
	if e.Height() != 3 {
		t.Errorf("height after overshoot down = %d, want 3", e.Height())
	}
}

func TestDragAtTopIsNotFullyExpandedUntilSettled(t *testing.T) {
	e := NewSnapEngine(3, 24)
	e.Expand()
	drain(t, e)

	// Dragging interrupts the settled state even if the height returns to
	// the top snap within the same gesture.
	e.DragBy(-2)
	if e.FullyExpanded() {
		t.Fatal("fully expanded while dragged below the top snap")
	}
	e.DragBy(2)
	if !e.FullyExpanded() {
		t.Fatal("returned to top snap by drag, should read as expanded")
	}
}

func TestSettleAnimatesToNearestSnap(t *testing.T) {
	tests := []struct {
		name   string
		height int
		want   int
	}{
		{"near bottom", 5, 3},
		{"near middle", 11, 12},
		{"near top", 20, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewSnapEngine(3, 12, 24)
			e.DragBy(tt.height - e.Height())
			if cmd := e.Settle(); cmd == nil {
				t.Fatal("Settle returned no command")
			}
			drain(t, e)
			if e.Height() != tt.want {
				t.Errorf("settled at %d, want %d", e.Height(), tt.want)
			}
		})
	}
}

func TestRequestCollapseFromTop(t *testing.T) {
	e := NewSnapEngine(3, 24)
	e.Expand()
	drain(t, e)

	cmd := e.RequestCollapse()
	if cmd == nil {
		t.Fatal("RequestCollapse returned no command")
	}
	// Collapse is in flight: the sheet must stop reporting expansion
	// immediately so the lock state flips on the very next evaluation.
	if e.FullyExpanded() {
		t.Fatal("fully expanded while collapsing")
	}
	drain(t, e)
	if e.Height() != 3 {
		t.Errorf("height = %d, want bottom snap", e.Height())
	}
}

func TestSnapToBounds(t *testing.T) {
	e := NewSnapEngine(3, 12, 24)
	if e.SnapTo(-1) != nil || e.SnapTo(3) != nil {
		t.Error("out-of-range SnapTo returned a command")
	}
	e.SnapTo(1)
	drain(t, e)
	if e.Height() != 12 {
		t.Errorf("height = %d, want 12", e.Height())
	}
}

func TestDragInterruptsAnimation(t *testing.T) {
	e := NewSnapEngine(3, 24)
	e.Expand()
	e.Update(TickMsg(time.Now()))
	e.DragBy(1)
	// The interrupted animation must not keep advancing.
	if cmd := e.Update(TickMsg(time.Now())); cmd != nil {
		t.Error("animation continued after a drag interrupt")
	}
}

func TestAnimatedFooter(t *testing.T) {
	e := NewSnapEngine(3, 24)
	if e.FooterHeight() != 0 {
		t.Fatalf("initial footer = %d, want 0", e.FooterHeight())
	}
	e.Footer().Set(4)
	if e.FooterHeight() != 4 {
		t.Errorf("footer = %d, want 4", e.FooterHeight())
	}
}
