package scrollable

import "testing"

func TestDecelerationFor(t *testing.T) {
	tests := []struct {
		state LockState
		want  int
	}{
		{Undetermined, 0},
		{Locked, 0},
		{Unlocked, 3},
	}
	for _, tt := range tests {
		if got := DecelerationFor(tt.state); got != tt.want {
			t.Errorf("DecelerationFor(%s) = %d, want %d", tt.state, got, tt.want)
		}
	}
}

func TestIndicatorVisible(t *testing.T) {
	tests := []struct {
		state LockState
		pref  bool
		want  bool
	}{
		{Undetermined, true, false},
		{Undetermined, false, false},
		{Locked, true, false},
		{Locked, false, false},
		{Unlocked, true, true},
		{Unlocked, false, false},
	}
	for _, tt := range tests {
		if got := IndicatorVisible(tt.state, tt.pref); got != tt.want {
			t.Errorf("IndicatorVisible(%s, %v) = %v, want %v", tt.state, tt.pref, got, tt.want)
		}
	}
}

func TestLockStateString(t *testing.T) {
	tests := []struct {
		state LockState
		want  string
	}{
		{Undetermined, "undetermined"},
		{Locked, "locked"},
		{Unlocked, "unlocked"},
		{LockState(99), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeView, "ScrollView"},
		{TypeFlatList, "FlatList"},
		{TypeSectionList, "SectionList"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
