package cli

import (
	"github.com/spf13/cobra"

	"gitkit.dev/gitkit"
)

// newRemoteCmd creates the remote command and its subcommands
func newRemoteCmd(repoPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Manage the set of tracked remotes",
	}

	var (
		master string
		noTags bool
	)
	addCmd := &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add a remote",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo(repoPath)
			if err != nil {
				return err
			}
			opts := gitkit.RemoteOptions{
				Name:   args[0],
				URL:    args[1],
				Master: master,
			}
			if noTags {
				opts.Tags = gitkit.Bool(false)
			}
			return opts.Run(cmd.Context(), repo)
		},
	}
	addCmd.Flags().StringVarP(&master, "master", "m", "", "Set the remote's default branch")
	addCmd.Flags().BoolVar(&noTags, "no-tags", false, "Do not import tags from the remote")

	removeCmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a remote and its tracking branches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo(repoPath)
			if err != nil {
				return err
			}
			opts := gitkit.RemoteOptions{Action: gitkit.RemoteRemove, Name: args[0]}
			return opts.Run(cmd.Context(), repo)
		},
	}

	renameCmd := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a remote",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo(repoPath)
			if err != nil {
				return err
			}
			opts := gitkit.RemoteOptions{
				Action:  gitkit.RemoteRename,
				Name:    args[0],
				NewName: args[1],
			}
			return opts.Run(cmd.Context(), repo)
		},
	}

	cmd.AddCommand(addCmd, removeCmd, renameCmd)
	return cmd
}
