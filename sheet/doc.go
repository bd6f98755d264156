// Package sheet implements the draggable container: the surface that owns a
// sheet instance's gesture arbiter and scrollable registry, consumes a
// position engine through a narrow interface, and decides event by event
// whether pointer input moves the sheet or the embedded content. The fixed
// per-event pipeline is offset update, then lock-state re-derivation, then
// the arbitration decision for the next event.
package sheet
