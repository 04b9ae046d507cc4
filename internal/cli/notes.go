package cli

import (
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit"
)

// newNotesCmd creates the notes command and its subcommands
func newNotesCmd(repoPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Add, append or remove object notes",
	}

	withMessage := func(use, short string, action gitkit.NotesAction) *cobra.Command {
		var message string
		sub := &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				repo, err := openRepo(repoPath)
				if err != nil {
					return err
				}
				opts := gitkit.NotesOptions{Action: action, Message: message}
				if len(args) > 0 {
					opts.Object = args[0]
				}
				return opts.Run(cmd.Context(), repo)
			},
		}
		sub.Flags().StringVarP(&message, "message", "m", "", "Note contents")
		return sub
	}

	removeCmd := &cobra.Command{
		Use:   "remove [object]",
		Short: "Remove the note for an object",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo(repoPath)
			if err != nil {
				return err
			}
			opts := gitkit.NotesOptions{Action: gitkit.NotesRemove}
			if len(args) > 0 {
				opts.Object = args[0]
			}
			return opts.Run(cmd.Context(), repo)
		},
	}

	cmd.AddCommand(
		withMessage("add [object]", "Add a note to an object", gitkit.NotesAdd),
		withMessage("append [object]", "Append to an object's note", gitkit.NotesAppend),
		removeCmd,
	)
	return cmd
}
