package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitkit.dev/gitkit"
	"gitkit.dev/gitkit/internal/output"
)

// newStatusCmd creates the status command
func newStatusCmd(repoPath *string) *cobra.Command {
	var (
		ignored   bool
		untracked string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the working tree status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo(repoPath)
			if err != nil {
				return err
			}

			opts := gitkit.StatusOptions{Ignored: ignored}
			switch untracked {
			case "", "normal":
			case "no":
				opts.Untracked = gitkit.UntrackedNone
			case "all":
				opts.Untracked = gitkit.UntrackedAll
			default:
				return fmt.Errorf("invalid --untracked-files value %q, expected no, normal or all", untracked)
			}

			status, err := opts.Run(cmd.Context(), repo)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), output.FormatStatus(status, output.IsInteractive()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&ignored, "ignored", false, "Show ignored files as well")
	cmd.Flags().StringVarP(&untracked, "untracked-files", "u", "", "How to report untracked files: no, normal or all")

	return cmd
}
