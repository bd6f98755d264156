// Package gesture provides hit-region tracking, pointer-stream recognizers,
// and an arbiter that routes each mouse event to exactly one recognizer
// under an explicit, per-event priority order. It is the mechanism layer of
// the sheet's drag-versus-scroll arbitration; the policy (which recognizer
// should win under the current scrollable lock state) lives with the sheet
// container.
package gesture
