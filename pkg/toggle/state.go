package toggle

import "github.com/fcavalcantirj/solvr-ui/pkg/api"

// Kind tags the externally observable controller state.
type Kind int

const (
	// KindUnknown means the initial authoritative read has not resolved.
	// The presentation layer renders nothing; a wrong default would be
	// worse than no control at all.
	KindUnknown Kind = iota

	// KindInert marks a controller whose target is the acting identity.
	// Toggle is a no-op; the control should not be rendered.
	KindInert

	// KindReady means the value is live and Toggle is accepted.
	KindReady
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindInert:
		return "inert"
	case KindReady:
		return "ready"
	default:
		return "invalid"
	}
}

// State is the presentation contract: a kind plus the value, which is
// meaningful only when Kind is KindReady.
type State[V any] struct {
	Kind  Kind
	Value V
}

// Vote is the tri-state vote value: the caller's own direction and the
// post's displayed score. The pair always changes together (batched), so
// the presentation layer never observes a partial update.
type Vote struct {
	Direction api.Direction
	Score     int
}

// VoteTransition is the 3×2 transition matrix over
// {current direction} × {requested direction ∈ up,down}.
// Re-clicking the current direction retracts it.
func VoteTransition(v Vote, intent api.Direction) Vote {
	switch {
	case v.Direction == intent && intent == api.DirectionUp:
		return Vote{Direction: api.DirectionNone, Score: v.Score - 1}
	case v.Direction == intent && intent == api.DirectionDown:
		return Vote{Direction: api.DirectionNone, Score: v.Score + 1}
	case intent == api.DirectionUp && v.Direction == api.DirectionDown:
		return Vote{Direction: api.DirectionUp, Score: v.Score + 2}
	case intent == api.DirectionDown && v.Direction == api.DirectionUp:
		return Vote{Direction: api.DirectionDown, Score: v.Score - 2}
	case intent == api.DirectionUp:
		return Vote{Direction: api.DirectionUp, Score: v.Score + 1}
	default:
		return Vote{Direction: api.DirectionDown, Score: v.Score - 1}
	}
}

// WireDirection is the single direction sent to the server for a
// transition from v under intent: the net new direction, or none when the
// intent retracts the current vote. A direction flip is one call, not two.
func (v Vote) WireDirection(intent api.Direction) api.Direction {
	if v.Direction == intent {
		return api.DirectionNone
	}
	return intent
}

// flip is the intent type for binary toggles; the transition ignores it.
type flip struct{}

// binaryTransition flips the active flag.
func binaryTransition(active bool, _ flip) bool {
	return !active
}
