package toggle

import (
	"context"

	"github.com/fcavalcantirj/solvr-ui/pkg/api"
)

// Binary is a two-state controller (following / bookmarked).
type Binary struct {
	*Controller[bool, flip]
}

// Toggle flips the binary state.
func (b *Binary) Toggle() {
	b.Controller.Toggle(flip{})
}

// NewBinary builds a two-state controller from a state-keyed remote call:
// the remote receives the value the transition started from and issues
// its inverse operation.
func NewBinary(ctx Ctx, feature string, remote func(ctx context.Context, from bool) error, read Read[bool], opts Options) *Binary {
	r := func(ctx context.Context, from bool, _ flip) error {
		return remote(ctx, from)
	}
	return &Binary{New(ctx, feature, binaryTransition, r, read, opts)}
}

// VoteController is the tri-state controller for post voting.
type VoteController struct {
	*Controller[Vote, api.Direction]
}

// Upvote requests the up direction (or retracts an existing upvote).
func (v *VoteController) Upvote() {
	v.Controller.Toggle(api.DirectionUp)
}

// Downvote requests the down direction (or retracts an existing downvote).
func (v *VoteController) Downvote() {
	v.Controller.Toggle(api.DirectionDown)
}

// NewFollow builds the follow/unfollow controller for one (actor, target)
// pair. When the target is the actor itself the controller is inert:
// self-follow is structurally disallowed, not merely hidden.
func NewFollow(ctx Ctx, client *api.Client, actor, target api.Identity, opts Options) *Binary {
	// An empty actor id means the acting identity is unknown; the guard
	// only fires on a definite match.
	opts.Inert = opts.Inert || (actor.ID != "" && actor.Equal(target))
	if opts.FailureNotice == "" {
		opts.FailureNotice = "Could not update follow, please try again"
	}

	remote := func(ctx context.Context, following bool) error {
		if following {
			return client.Unfollow(ctx, target)
		}
		return client.Follow(ctx, target)
	}

	read := func(ctx context.Context) (bool, error) {
		return client.IsFollowing(ctx, target)
	}

	return NewBinary(ctx, "follow", remote, read, opts)
}

// NewBookmark builds the bookmark controller for one post.
func NewBookmark(ctx Ctx, client *api.Client, postID string, opts Options) *Binary {
	if opts.FailureNotice == "" {
		opts.FailureNotice = "Could not update bookmark, please try again"
	}

	remote := func(ctx context.Context, bookmarked bool) error {
		if bookmarked {
			return client.RemoveBookmark(ctx, postID)
		}
		return client.AddBookmark(ctx, postID)
	}

	read := func(ctx context.Context) (bool, error) {
		return client.IsBookmarked(ctx, postID)
	}

	return NewBinary(ctx, "bookmark", remote, read, opts)
}

// NewVote builds the vote controller for one post. The author identity is
// compared against the actor once: voting on your own content is inert.
func NewVote(ctx Ctx, client *api.Client, postID string, actor, author api.Identity, opts Options) *VoteController {
	opts.Inert = opts.Inert || (actor.ID != "" && actor.Equal(author))
	if opts.FailureNotice == "" {
		opts.FailureNotice = "Could not record vote, please try again"
	}

	remote := func(ctx context.Context, from Vote, intent api.Direction) error {
		return client.Vote(ctx, postID, from.WireDirection(intent))
	}

	read := func(ctx context.Context) (Vote, error) {
		status, err := client.UserVote(ctx, postID)
		if err != nil {
			return Vote{}, err
		}
		return Vote{Direction: status.UserVote, Score: status.VoteScore}, nil
	}

	return &VoteController{New(ctx, "vote", VoteTransition, remote, read, opts)}
}
