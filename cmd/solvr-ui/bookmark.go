package main

import (
	"github.com/spf13/cobra"

	"github.com/fcavalcantirj/solvr-ui/internal/errors"
	"github.com/fcavalcantirj/solvr-ui/pkg/bookmarks"
	"github.com/fcavalcantirj/solvr-ui/pkg/toggle"
)

func bookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark <post-id>",
		Short: "Toggle a bookmark on a post",
		Long: `Toggle whether a post is in your bookmarks.

Examples:
  solvr-ui bookmark post-123
  solvr-ui bookmark list`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			postID := args[0]

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			store := bookmarks.NewStore(a.client, bookmarks.WithLogger(a.logger))
			ctrl := store.Controller(a.loop, postID, a.toggleOptions())

			if !a.await(func() bool { return ctrl.Current().Kind == toggle.KindReady }) {
				return errors.New("E301").
					WithDetail("Could not load the current bookmark state for " + postID)
			}

			wasBookmarked := ctrl.Current().Value
			ctrl.Toggle()
			if err := a.settle(ctrl.IsBusy); err != nil {
				return err
			}

			if wasBookmarked {
				success("Removed bookmark for %s", postID)
			} else {
				success("Bookmarked %s", postID)
			}
			return nil
		},
	}

	cmd.AddCommand(bookmarkListCmd())
	return cmd
}

func bookmarkListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx := a.loop.StdContext()
			page := 1
			count := 0
			for {
				resp, err := a.client.ListBookmarks(ctx, page, 100)
				if err != nil {
					return errors.FromError(err, "E301")
				}
				for _, b := range resp.Data {
					if b.Title != "" {
						info("%s  %s", b.PostID, b.Title)
					} else {
						info("%s", b.PostID)
					}
					count++
				}
				if !resp.Meta.HasMore {
					break
				}
				page++
			}

			if count == 0 {
				info("no bookmarks")
			}
			return nil
		},
	}
}
