// Package reactive provides the reactive state substrate for the Solvr UI
// core: typed signals with explicit subscription, batched notification,
// and owner scopes that release everything they hold when a view unmounts.
//
// Unlike a full rendering framework there is no implicit dependency
// tracking here. Callers subscribe listeners explicitly (or use
// Signal.Watch) and the owning event loop serializes all mutations, so
// signal updates observed by the presentation layer are always ordered by
// the sequence of user actions.
package reactive
