package cli

import (
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit"
	"gitkit.dev/gitkit/internal/output"
)

// newCloneCmd creates the clone command
func newCloneCmd() *cobra.Command {
	var (
		branch string
		origin string
	)

	cmd := &cobra.Command{
		Use:   "clone <url> [directory]",
		Short: "Clone a repository into a new directory",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := gitkit.CloneOptions{Branch: branch, Origin: origin}
			if len(args) > 1 {
				opts.Directory = args[1]
			}

			repo, err := opts.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rep := output.NewReporter(cmd.OutOrStdout(), output.IsInteractive())
			rep.Successf("Cloned into %s", repo.Path())
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Check out this branch instead of the remote HEAD")
	cmd.Flags().StringVarP(&origin, "origin", "o", "", "Name for the remote instead of origin")

	return cmd
}
