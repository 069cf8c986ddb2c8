// Package bookmarks keeps the per-user bookmark set consistent across
// every view that renders a bookmark control.
//
// Follow and vote controllers are per-instance: two views of the same
// target resolve independently. Bookmarks are different because the
// bookmarks page renders the whole set at once, so a single shared store
// backs every bookmark signal. Controllers built through the store write
// their visible state into it, and Sync replaces the store's contents
// with the authoritative server list.
package bookmarks
