// Package toggle implements the optimistic toggle controller behind the
// follow, vote and bookmark controls.
//
// A controller owns one externally visible state (a boolean for
// follow/bookmark, a vote direction plus score for voting), applies a pure
// transition to it synchronously on user intent, issues the corresponding
// remote call, and reconciles when the call settles. The visible state is
// always the last confirmed state with the surviving in-flight transitions
// replayed on top, so a failed call reverts exactly its own effect and
// never erases a later toggle (last-click-wins).
//
// Guards are structural, not cosmetic: a controller built for the acting
// identity itself is inert, and Toggle is ignored while the initial state
// read is unresolved. The presentation layer is expected to hide or
// disable the control in those states, but correctness never depends on
// it doing so.
package toggle
