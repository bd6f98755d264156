package gesture

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 3, false}, // past right edge
		{2, 5, false}, // past bottom edge
		{1, 3, false},
		{2, 2, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{}).Empty() {
		t.Error("zero rect must be empty")
	}
	if (Rect{W: 1, H: 1}).Empty() {
		t.Error("1x1 rect must not be empty")
	}
}

func TestHitMapTopmostWins(t *testing.T) {
	h := NewHitMap()
	h.AddRect("below", 0, 0, 10, 10, nil)
	h.AddRect("above", 2, 2, 4, 4, "data")

	if got := h.Test(3, 3); got == nil || got.ID != "above" {
		t.Fatalf("Test(3,3) = %v, want region %q", got, "above")
	}
	if got := h.Test(0, 0); got == nil || got.ID != "below" {
		t.Fatalf("Test(0,0) = %v, want region %q", got, "below")
	}
	if got := h.Test(20, 20); got != nil {
		t.Fatalf("Test(20,20) = %v, want nil", got)
	}
}

func TestHitMapClear(t *testing.T) {
	h := NewHitMap()
	h.AddRect("a", 0, 0, 5, 5, nil)
	h.Clear()
	if got := h.Test(1, 1); got != nil {
		t.Fatalf("Test after Clear = %v, want nil", got)
	}
	if len(h.Regions()) != 0 {
		t.Error("regions not cleared")
	}
}
