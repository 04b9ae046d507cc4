package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitkit.dev/gitkit"
	"gitkit.dev/gitkit/internal/output"
)

// newInitCmd creates the init command
func newInitCmd(repoPath *string) *cobra.Command {
	var (
		bare          bool
		initialBranch string
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := *repoPath
			if len(args) > 0 {
				target = args[0]
			}

			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", target, err)
			}
			repo, err := gitkit.At(target)
			if err != nil {
				return err
			}

			opts := gitkit.InitOptions{Bare: bare, InitialBranch: initialBranch}
			if err := opts.Run(cmd.Context(), repo); err != nil {
				return err
			}
			rep := output.NewReporter(cmd.OutOrStdout(), output.IsInteractive())
			rep.Successf("Initialized repository in %s", repo.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&bare, "bare", false, "Create a bare repository")
	cmd.Flags().StringVarP(&initialBranch, "initial-branch", "b", "", "Name for the initial branch")

	return cmd
}
