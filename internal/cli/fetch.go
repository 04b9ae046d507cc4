package cli

import (
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit"
)

// newFetchCmd creates the fetch command
func newFetchCmd(repoPath *string) *cobra.Command {
	var (
		all   bool
		prune bool
		tags  bool
	)

	cmd := &cobra.Command{
		Use:   "fetch [remote]",
		Short: "Download objects and refs from a remote",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo(repoPath)
			if err != nil {
				return err
			}

			opts := gitkit.FetchOptions{All: all, Prune: prune, Tags: tags}
			if len(args) > 0 {
				opts.Remote = args[0]
			}
			return opts.Run(cmd.Context(), repo)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Fetch all remotes")
	cmd.Flags().BoolVarP(&prune, "prune", "p", false, "Remove remote-tracking refs that no longer exist on the remote")
	cmd.Flags().BoolVarP(&tags, "tags", "t", false, "Fetch all tags")

	return cmd
}
