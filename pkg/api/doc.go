// Package api is the typed Solvr REST client used by the UI core.
//
// It covers the social surface the optimistic controllers depend on:
// follow/unfollow, voting, and bookmarks, plus the idempotent status reads
// the controllers perform on mount. Mutation calls return success or
// failure only; the controllers never treat a response payload as the new
// toggle state, so none of the mutation methods decode one.
//
// Requests retry transient failures with exponential backoff, carry a
// bearer token and a generated X-Request-ID, and are traced and counted.
package api
