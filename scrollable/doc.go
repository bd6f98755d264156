// Package scrollable holds the shared scroll state of a sheet instance: the
// lock-state enum with its deceleration and indicator policies, the
// single-writer content-offset cell with its per-instance scroll handler,
// and the registry that tracks the active scrollable and derives the lock
// state each frame. Everything here is pure state and policy; event routing
// lives in the gesture package and composition in the sheet package.
package scrollable
