package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit"
	"gitkit.dev/gitkit/internal/output"
)

// newPushCmd creates the push command
func newPushCmd(repoPath *string) *cobra.Command {
	var (
		all         bool
		tags        bool
		force       bool
		setUpstream bool
	)

	cmd := &cobra.Command{
		Use:   "push [remote [refspec...]]",
		Short: "Update remote refs along with associated objects",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo(repoPath)
			if err != nil {
				return err
			}

			if force && output.IsInteractive() {
				confirmed := false
				prompt := &survey.Confirm{
					Message: "Force push rewrites remote history. Continue?",
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					return fmt.Errorf("push aborted")
				}
			}

			opts := gitkit.PushOptions{
				All:         all,
				Tags:        tags,
				Force:       force,
				SetUpstream: setUpstream,
			}
			if len(args) > 0 {
				opts.Remote = args[0]
				opts.Refspecs = args[1:]
			}
			return opts.Run(cmd.Context(), repo)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Push all branches")
	cmd.Flags().BoolVar(&tags, "tags", false, "Push tags as well")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Force the update even when not fast-forward")
	cmd.Flags().BoolVarP(&setUpstream, "set-upstream", "u", false, "Set upstream tracking for pushed branches")

	return cmd
}
