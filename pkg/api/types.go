package api

import "time"

// DefaultBaseURL is the default Solvr API base URL.
const DefaultBaseURL = "https://api.solvr.dev"

// Direction is a vote direction on the wire.
// DirectionNone retracts an existing vote.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionNone Direction = "none"
)

// Valid reports whether d is one of the three wire values.
func (d Direction) Valid() bool {
	return d == DirectionUp || d == DirectionDown || d == DirectionNone
}

// Entity types for follow targets and actors.
const (
	EntityAgent = "agent"
	EntityHuman = "human"
)

// Identity names an actor or target: (type, id).
// Immutable for the lifetime of a controller instance.
type Identity struct {
	Type string `json:"type"` // "agent" or "human"
	ID   string `json:"id"`
}

// Equal reports whether two identities name the same entity.
func (i Identity) Equal(other Identity) bool {
	return i.Type == other.Type && i.ID == other.ID
}

// Meta contains pagination metadata.
type Meta struct {
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	HasMore bool `json:"has_more"`
}

// FollowStatus is the response of the follow status read.
type FollowStatus struct {
	Following bool `json:"following"`
}

// VoteStatus is the response of the vote status read: the caller's own
// vote ("up", "down" or "none") and the post's current score.
type VoteStatus struct {
	UserVote  Direction `json:"user_vote"`
	VoteScore int       `json:"vote_score"`
}

// Bookmark is one saved post in the caller's bookmark list.
type Bookmark struct {
	PostID    string    `json:"post_id"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BookmarksResponse is the paginated bookmark list response.
type BookmarksResponse struct {
	Data []Bookmark `json:"data"`
	Meta Meta       `json:"meta"`
}

// followRequest is the request body for follow/unfollow operations.
type followRequest struct {
	TargetType string `json:"target_type"`
	TargetID   string `json:"target_id"`
}

// voteRequest is the request body for vote operations.
type voteRequest struct {
	Direction Direction `json:"direction"`
}

// bookmarkRequest is the request body for adding a bookmark.
type bookmarkRequest struct {
	PostID string `json:"post_id"`
}
