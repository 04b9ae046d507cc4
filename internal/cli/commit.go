package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit"
	"gitkit.dev/gitkit/internal/output"
)

// newCommitCmd creates the commit command
func newCommitCmd(repoPath *string) *cobra.Command {
	var (
		message    string
		all        bool
		allowEmpty bool
		amend      bool
	)

	cmd := &cobra.Command{
		Use:   "commit [file...]",
		Short: "Record changes to the repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo(repoPath)
			if err != nil {
				return err
			}

			if message == "" {
				if !output.IsInteractive() {
					return fmt.Errorf("a commit message is required, pass one with -m")
				}
				prompt := &survey.Input{Message: "Commit message:"}
				if err := survey.AskOne(prompt, &message, survey.WithValidator(survey.Required)); err != nil {
					return err
				}
			}

			opts := gitkit.CommitOptions{
				Message:    message,
				All:        all,
				AllowEmpty: allowEmpty,
				Amend:      amend,
				Files:      args,
			}
			return opts.Run(cmd.Context(), repo)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Stage modified and deleted files before committing")
	cmd.Flags().BoolVar(&allowEmpty, "allow-empty", false, "Allow a commit with no changes")
	cmd.Flags().BoolVar(&amend, "amend", false, "Replace the tip of the current branch")

	return cmd
}
