package gesture

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// recorder wraps a Recognizer and counts its callbacks.
type recorder struct {
	*Recognizer
	begins  int
	deltas  []int
	ends    int
	wheels  []int
	consume bool
}

func newRecorder(kind Kind, rect Rect) *recorder {
	rec := &recorder{consume: true}
	rec.Recognizer = NewRecognizer(kind, rect.Contains)
	rec.OnBegin = func(x, y int) { rec.begins++ }
	rec.OnDelta = func(dx, dy int) { rec.deltas = append(rec.deltas, dy) }
	rec.OnEnd = func(x, y int) { rec.ends++ }
	rec.OnWheel = func(delta int) bool {
		if rec.consume {
			rec.wheels = append(rec.wheels, delta)
		}
		return rec.consume
	}
	return rec
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease}
}

func wheelDown(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
}

func TestPressFollowsPriorityOrder(t *testing.T) {
	whole := Rect{X: 0, Y: 0, W: 20, H: 20}
	drag := newRecorder(KindDrag, whole)
	content := newRecorder(KindContent, whole)
	a := New(drag.Recognizer, content.Recognizer)

	dec := a.Route(press(5, 5), []Kind{KindContent, KindDrag})
	if !dec.Claimed || dec.Winner != KindContent {
		t.Fatalf("winner = %v (claimed %v), want content", dec.Winner, dec.Claimed)
	}
	if content.begins != 1 || drag.begins != 0 {
		t.Errorf("begins: content=%d drag=%d, want 1/0", content.begins, drag.begins)
	}
	if len(dec.AlsoHit) != 1 || dec.AlsoHit[0] != KindDrag {
		t.Errorf("AlsoHit = %v, want [drag]", dec.AlsoHit)
	}
}

func TestDisabledRecognizerCannotClaim(t *testing.T) {
	whole := Rect{X: 0, Y: 0, W: 20, H: 20}
	drag := newRecorder(KindDrag, whole)
	content := newRecorder(KindContent, whole)
	content.SetEnabled(false)
	a := New(drag.Recognizer, content.Recognizer)

	dec := a.Route(press(5, 5), []Kind{KindContent, KindDrag})
	if dec.Winner != KindDrag {
		t.Fatalf("winner = %v, want drag", dec.Winner)
	}
}

func TestStreamOwnership(t *testing.T) {
	whole := Rect{X: 0, Y: 0, W: 20, H: 20}
	drag := newRecorder(KindDrag, whole)
	content := newRecorder(KindContent, whole)
	a := New(drag.Recognizer, content.Recognizer)

	a.Route(press(5, 5), []Kind{KindDrag, KindContent})
	a.Route(motion(5, 7), []Kind{KindDrag, KindContent})
	a.Route(motion(5, 8), []Kind{KindContent, KindDrag}) // priority flip must not steal the stream
	a.Route(release(5, 8), []Kind{KindContent, KindDrag})

	if got := drag.deltas; len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Errorf("drag deltas = %v, want [2 1]", got)
	}
	if len(content.deltas) != 0 {
		t.Errorf("content deltas = %v, want none", content.deltas)
	}
	if drag.ends != 1 {
		t.Errorf("drag ends = %d, want 1", drag.ends)
	}
	if _, ok := a.Active(); ok {
		t.Error("stream still active after release")
	}
}

func TestWheelFallsThroughUnconsumed(t *testing.T) {
	whole := Rect{X: 0, Y: 0, W: 20, H: 20}
	drag := newRecorder(KindDrag, whole)
	content := newRecorder(KindContent, whole)
	content.consume = false
	drag.consume = true
	a := New(drag.Recognizer, content.Recognizer)

	dec := a.Route(wheelDown(5, 5), []Kind{KindContent, KindDrag})
	if dec.Winner != KindDrag {
		t.Fatalf("winner = %v, want drag after content declined", dec.Winner)
	}
	if len(drag.wheels) != 1 || drag.wheels[0] != 1 {
		t.Errorf("drag wheels = %v, want [1]", drag.wheels)
	}
}

func TestTransferHandsOverMidStream(t *testing.T) {
	whole := Rect{X: 0, Y: 0, W: 20, H: 20}
	drag := newRecorder(KindDrag, whole)
	content := newRecorder(KindContent, whole)
	a := New(drag.Recognizer, content.Recognizer)

	a.Route(press(5, 10), []Kind{KindDrag, KindContent})
	a.Route(motion(5, 8), []Kind{KindDrag, KindContent})

	if !a.Transfer(KindContent) {
		t.Fatal("Transfer refused")
	}
	// The old owner is cancelled, not ended.
	if drag.ends != 0 {
		t.Errorf("drag ends = %d, want 0 after cancel", drag.ends)
	}
	if content.begins != 1 {
		t.Errorf("content begins = %d, want 1", content.begins)
	}

	a.Route(motion(5, 6), []Kind{KindContent, KindDrag})
	a.Route(release(5, 6), []Kind{KindContent, KindDrag})
	if len(content.deltas) != 1 || content.deltas[0] != -2 {
		t.Errorf("content deltas = %v, want [-2]", content.deltas)
	}
	if content.ends != 1 {
		t.Errorf("content ends = %d, want 1", content.ends)
	}
}

func TestTransferWithoutStreamIsNoop(t *testing.T) {
	drag := newRecorder(KindDrag, Rect{W: 10, H: 10})
	a := New(drag.Recognizer)
	if a.Transfer(KindDrag) {
		t.Error("Transfer succeeded with no stream in flight")
	}
}

func TestCancelActiveSuppressesCallbacks(t *testing.T) {
	whole := Rect{X: 0, Y: 0, W: 20, H: 20}
	content := newRecorder(KindContent, whole)
	a := New(content.Recognizer)

	a.Route(press(5, 5), []Kind{KindContent})
	a.CancelActive()

	// The in-flight gesture is discarded: no deltas, no end.
	a.Route(motion(5, 9), []Kind{KindContent})
	a.Route(release(5, 9), []Kind{KindContent})
	if len(content.deltas) != 0 || content.ends != 0 {
		t.Errorf("callbacks after cancel: deltas=%v ends=%d", content.deltas, content.ends)
	}
}

func TestCancelOutsideDiscardsStream(t *testing.T) {
	content := newRecorder(KindContent, Rect{X: 0, Y: 0, W: 10, H: 10})
	content.CancelOutside = true
	a := New(content.Recognizer)

	a.Route(press(5, 5), []Kind{KindContent})
	a.Route(motion(5, 7), []Kind{KindContent})
	if got := content.deltas; len(got) != 1 || got[0] != 2 {
		t.Fatalf("deltas inside rect = %v, want [2]", got)
	}

	// Leaving the rect discards the stream without an end callback, and
	// later motion back inside stays ignored.
	a.Route(motion(5, 15), []Kind{KindContent})
	a.Route(motion(5, 6), []Kind{KindContent})
	a.Route(release(5, 6), []Kind{KindContent})
	if len(content.deltas) != 1 {
		t.Errorf("deltas after leaving rect = %v, want [2]", content.deltas)
	}
	if content.ends != 0 {
		t.Errorf("ends = %d, want 0 for a cancelled stream", content.ends)
	}
	if content.Active() {
		t.Error("recognizer still owns a cancelled stream")
	}
}

func TestPressOutsideAllRegions(t *testing.T) {
	content := newRecorder(KindContent, Rect{X: 0, Y: 0, W: 5, H: 5})
	a := New(content.Recognizer)
	dec := a.Route(press(10, 10), []Kind{KindContent})
	if dec.Claimed {
		t.Errorf("claimed press outside all regions: %+v", dec)
	}
}
