// Package apitest provides an in-memory fake of the Solvr platform API
// for tests: the follow, vote and bookmark endpoints backed by maps, with
// per-endpoint failure injection and request recording.
package apitest
