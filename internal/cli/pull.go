package cli

import (
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit"
)

// newPullCmd creates the pull command
func newPullCmd(repoPath *string) *cobra.Command {
	var allowUnrelated bool

	cmd := &cobra.Command{
		Use:   "pull [remote [refspec...]]",
		Short: "Fetch from a remote and integrate into the current branch",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo(repoPath)
			if err != nil {
				return err
			}

			opts := gitkit.PullOptions{AllowUnrelated: allowUnrelated}
			if len(args) > 0 {
				opts.Remote = args[0]
				opts.Refspecs = args[1:]
			}
			return opts.Run(cmd.Context(), repo)
		},
	}

	cmd.Flags().BoolVar(&allowUnrelated, "allow-unrelated-histories", false, "Allow merging histories that do not share a common ancestor")

	return cmd
}
