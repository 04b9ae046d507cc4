package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"gitkit.dev/gitkit"
	"gitkit.dev/gitkit/internal/output"
)

// newStashCmd creates the stash command and its subcommands
func newStashCmd(repoPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stash",
		Short: "Stash away changes in the working tree",
	}

	var (
		message          string
		includeUntracked bool
	)
	pushCmd := &cobra.Command{
		Use:   "push",
		Short: "Save working tree changes to a new stash entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo(repoPath)
			if err != nil {
				return err
			}
			opts := gitkit.StashOptions{
				Message:          message,
				IncludeUntracked: includeUntracked,
			}
			return opts.Run(cmd.Context(), repo)
		},
	}
	pushCmd.Flags().StringVarP(&message, "message", "m", "", "Description for the stash entry")
	pushCmd.Flags().BoolVarP(&includeUntracked, "include-untracked", "u", false, "Stash untracked files as well")

	simple := func(use, short string, action gitkit.StashAction) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				repo, err := openRepo(repoPath)
				if err != nil {
					return err
				}
				return gitkit.StashOptions{Action: action}.Run(cmd.Context(), repo)
			},
		}
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stash entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo(repoPath)
			if err != nil {
				return err
			}
			out, err := repo.RunCommand(cmd.Context(), gitkit.StashOptions{Action: gitkit.StashList})
			if err != nil {
				return err
			}
			if out != "" {
				rep := output.NewReporter(cmd.OutOrStdout(), output.IsInteractive())
				rep.Infof("%s", strings.TrimRight(out, "\n"))
			}
			return nil
		},
	}

	cmd.AddCommand(
		pushCmd,
		simple("pop", "Apply the latest stash entry and drop it", gitkit.StashPop),
		simple("apply", "Apply the latest stash entry and keep it", gitkit.StashApply),
		simple("drop", "Remove the latest stash entry", gitkit.StashDrop),
		listCmd,
	)
	return cmd
}
