package cli

import (
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit"
)

// newAddCmd creates the add command
func newAddCmd(repoPath *string) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "add [pathspec...]",
		Short: "Stage file contents for the next commit",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo(repoPath)
			if err != nil {
				return err
			}

			opts := gitkit.AddOptions{Pathspecs: args}
			if all || len(args) == 0 {
				opts.All = gitkit.Bool(true)
			}
			return opts.Run(cmd.Context(), repo)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "A", false, "Stage all changes, including deletions")

	return cmd
}
