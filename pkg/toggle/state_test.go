package toggle

import (
	"testing"

	"github.com/fcavalcantirj/solvr-ui/pkg/api"
)

func TestVoteTransitionMatrix(t *testing.T) {
	tests := []struct {
		name   string
		from   Vote
		intent api.Direction
		want   Vote
	}{
		{"fresh upvote", Vote{api.DirectionNone, 10}, api.DirectionUp, Vote{api.DirectionUp, 11}},
		{"fresh downvote", Vote{api.DirectionNone, 10}, api.DirectionDown, Vote{api.DirectionDown, 9}},
		{"retract upvote", Vote{api.DirectionUp, 10}, api.DirectionUp, Vote{api.DirectionNone, 9}},
		{"retract downvote", Vote{api.DirectionDown, 10}, api.DirectionDown, Vote{api.DirectionNone, 11}},
		{"flip up to down", Vote{api.DirectionUp, 10}, api.DirectionDown, Vote{api.DirectionDown, 8}},
		{"flip down to up", Vote{api.DirectionDown, 10}, api.DirectionUp, Vote{api.DirectionUp, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VoteTransition(tt.from, tt.intent); got != tt.want {
				t.Errorf("VoteTransition(%+v, %q) = %+v, want %+v", tt.from, tt.intent, got, tt.want)
			}
		})
	}
}

func TestVoteTransitionRoundTrip(t *testing.T) {
	// Retracting a vote restores the starting score exactly.
	start := Vote{Direction: api.DirectionNone, Score: 42}
	up := VoteTransition(start, api.DirectionUp)
	back := VoteTransition(up, api.DirectionUp)
	if back != start {
		t.Errorf("up then retract = %+v, want %+v", back, start)
	}
}

func TestWireDirection(t *testing.T) {
	tests := []struct {
		from   api.Direction
		intent api.Direction
		want   api.Direction
	}{
		{api.DirectionNone, api.DirectionUp, api.DirectionUp},
		{api.DirectionNone, api.DirectionDown, api.DirectionDown},
		{api.DirectionUp, api.DirectionUp, api.DirectionNone},
		{api.DirectionDown, api.DirectionDown, api.DirectionNone},
		{api.DirectionUp, api.DirectionDown, api.DirectionDown},
		{api.DirectionDown, api.DirectionUp, api.DirectionUp},
	}

	for _, tt := range tests {
		v := Vote{Direction: tt.from}
		if got := v.WireDirection(tt.intent); got != tt.want {
			t.Errorf("Vote{%q}.WireDirection(%q) = %q, want %q", tt.from, tt.intent, got, tt.want)
		}
	}
}

func TestBinaryTransition(t *testing.T) {
	if !binaryTransition(false, flip{}) {
		t.Error("binaryTransition(false) = false, want true")
	}
	if binaryTransition(true, flip{}) {
		t.Error("binaryTransition(true) = true, want false")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInert, "inert"},
		{KindReady, "ready"},
		{Kind(99), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
