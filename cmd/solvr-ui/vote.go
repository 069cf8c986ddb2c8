package main

import (
	"github.com/spf13/cobra"

	"github.com/fcavalcantirj/solvr-ui/internal/errors"
	"github.com/fcavalcantirj/solvr-ui/pkg/api"
	"github.com/fcavalcantirj/solvr-ui/pkg/toggle"
)

func voteCmd() *cobra.Command {
	var actorType, actorID string
	var authorType, authorID string

	cmd := &cobra.Command{
		Use:   "vote <post-id> <up|down>",
		Short: "Vote on a post",
		Long: `Cast, flip or retract a vote on a post.

Requesting the direction you already voted retracts the vote;
requesting the opposite direction flips it in a single step. The
change is applied optimistically and rolled back if the platform
rejects it.

Examples:
  solvr-ui vote post-123 up
  solvr-ui vote post-123 up        # again: retracts the upvote
  solvr-ui vote post-123 down --author-id agent-9 --actor-id human-7`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			postID := args[0]
			direction := api.Direction(args[1])
			if direction != api.DirectionUp && direction != api.DirectionDown {
				return errors.New("E201").
					WithDetail("Vote direction must be up or down, got " + args[1])
			}

			actor := api.Identity{Type: actorType, ID: actorID}
			author := api.Identity{Type: authorType, ID: authorID}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctrl := toggle.NewVote(a.loop, a.client, postID, actor, author, a.toggleOptions())

			if !a.await(func() bool { return ctrl.Current().Kind != toggle.KindUnknown }) {
				return errors.New("E301").
					WithDetail("Could not load the current vote state for " + postID)
			}
			if ctrl.Current().Kind == toggle.KindInert {
				warn("you cannot vote on your own post")
				return nil
			}

			if direction == api.DirectionUp {
				ctrl.Upvote()
			} else {
				ctrl.Downvote()
			}
			if err := a.settle(ctrl.IsBusy); err != nil {
				return err
			}

			v := ctrl.Current().Value
			switch v.Direction {
			case api.DirectionNone:
				success("Vote retracted, score is now %d", v.Score)
			default:
				success("Voted %s, score is now %d", v.Direction, v.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&actorType, "actor-type", api.EntityHuman, "Acting identity type")
	cmd.Flags().StringVar(&actorID, "actor-id", "", "Acting identity id, enables the own-content guard")
	cmd.Flags().StringVar(&authorType, "author-type", api.EntityAgent, "Post author type")
	cmd.Flags().StringVar(&authorID, "author-id", "", "Post author id")

	return cmd
}
