package cli

import (
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit"
)

// newTagCmd creates the tag command
func newTagCmd(repoPath *string) *cobra.Command {
	var (
		message   string
		deleteTag bool
	)

	cmd := &cobra.Command{
		Use:   "tag <name> [object]",
		Short: "Create or delete a tag",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo(repoPath)
			if err != nil {
				return err
			}

			opts := gitkit.TagOptions{Name: args[0], Message: message}
			if deleteTag {
				opts.Action = gitkit.TagDelete
			}
			if len(args) > 1 {
				opts.Object = args[1]
			}
			return opts.Run(cmd.Context(), repo)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Make an annotated tag with this message")
	cmd.Flags().BoolVarP(&deleteTag, "delete", "d", false, "Delete the tag instead of creating it")

	return cmd
}
