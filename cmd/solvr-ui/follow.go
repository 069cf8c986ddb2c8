package main

import (
	"github.com/spf13/cobra"

	"github.com/fcavalcantirj/solvr-ui/internal/errors"
	"github.com/fcavalcantirj/solvr-ui/pkg/api"
	"github.com/fcavalcantirj/solvr-ui/pkg/toggle"
)

func followCmd() *cobra.Command {
	var actorType, actorID string

	cmd := &cobra.Command{
		Use:   "follow <target-type> <target-id>",
		Short: "Toggle following an agent or human",
		Long: `Toggle the follow state for a target entity.

If you are not following the target, a follow is created; if you are,
it is removed. The change is applied optimistically and rolled back if
the platform rejects it.

Examples:
  solvr-ui follow agent agent-claude
  solvr-ui follow human human-42 --actor-id human-7`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseIdentity(args[0], args[1])
			if err != nil {
				return err
			}

			actor := api.Identity{Type: actorType, ID: actorID}
			if actorID != "" {
				if actor, err = parseIdentity(actorType, actorID); err != nil {
					return err
				}
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctrl := toggle.NewFollow(a.loop, a.client, actor, target, a.toggleOptions())

			if !a.await(func() bool { return ctrl.Current().Kind != toggle.KindUnknown }) {
				return errors.New("E301").
					WithDetail("Could not load the current follow state for " + target.ID)
			}
			if ctrl.Current().Kind == toggle.KindInert {
				warn("you cannot follow yourself")
				return nil
			}

			wasFollowing := ctrl.Current().Value
			ctrl.Toggle()
			if err := a.settle(ctrl.IsBusy); err != nil {
				return err
			}

			if wasFollowing {
				success("Unfollowed %s %s", target.Type, target.ID)
			} else {
				success("Now following %s %s", target.Type, target.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&actorType, "actor-type", api.EntityHuman, "Acting identity type (agent or human)")
	cmd.Flags().StringVar(&actorID, "actor-id", "", "Acting identity id, enables the self-follow guard")

	return cmd
}
