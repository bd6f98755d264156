package scrollable

// LockState describes who currently owns vertical input: the sheet's drag
// animation or the embedded scrollable's offset.
type LockState int

const (
	// Undetermined is the state before the active scrollable's offset has
	// been read and trusted. The scrollable is treated as inert.
	Undetermined LockState = iota
	// Locked means the sheet owns vertical gestures; the scrollable must
	// not consume vertical movement.
	Locked
	// Unlocked means the scrollable owns vertical gestures; its offset may
	// move.
	Unlocked
)

// String returns a short name for debugging.
func (s LockState) String() string {
	switch s {
	case Undetermined:
		return "undetermined"
	case Locked:
		return "locked"
	case Unlocked:
		return "unlocked"
	}
	return "invalid"
}

// Type selects the scroll semantics of an embedded scrollable.
type Type int

const (
	// TypeView is a plain scroll view over free-form content.
	TypeView Type = iota
	// TypeFlatList is a row list.
	TypeFlatList
	// TypeSectionList is a row list with section headers.
	TypeSectionList
)

// String returns the user-facing name of the scrollable type.
func (t Type) String() string {
	switch t {
	case TypeView:
		return "ScrollView"
	case TypeFlatList:
		return "FlatList"
	case TypeSectionList:
		return "SectionList"
	}
	return "invalid"
}

// unlockedWheelStep is how many rows one wheel tick scrolls while the
// scrollable owns vertical input.
const unlockedWheelStep = 3

// DecelerationFor maps a lock state to the wheel step applied to the
// content offset. A step of 0 leaves the scrollable inert. Pure function of
// the state.
func DecelerationFor(s LockState) int {
	switch s {
	case Unlocked:
		return unlockedWheelStep
	default:
		// Undetermined and Locked: the sheet still owns vertical input.
		return 0
	}
}

// IndicatorVisible maps a lock state and the caller's preference to the
// effective scrollbar visibility. The indicator only shows while the
// scrollable actually owns scrolling. Pure function of its inputs.
func IndicatorVisible(s LockState, userPref bool) bool {
	return userPref && s == Unlocked
}
