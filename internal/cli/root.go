// Package cli wires the gitkit library into a cobra command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitkit.dev/gitkit"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var repoPath string

	rootCmd := &cobra.Command{
		Use:           "gitkit",
		Short:         "Gitkit is a thin, typed front end over the git command line",
		Long:          "Gitkit is a thin, typed front end over the git command line.\n\nEvery command shells out to the real git binary and reports its results.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&repoPath, "repo", "C", ".", "Path to the repository to operate on")

	// Add subcommands
	rootCmd.AddCommand(newInitCmd(&repoPath))
	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newAddCmd(&repoPath))
	rootCmd.AddCommand(newCommitCmd(&repoPath))
	rootCmd.AddCommand(newStatusCmd(&repoPath))
	rootCmd.AddCommand(newPushCmd(&repoPath))
	rootCmd.AddCommand(newPullCmd(&repoPath))
	rootCmd.AddCommand(newFetchCmd(&repoPath))
	rootCmd.AddCommand(newRemoteCmd(&repoPath))
	rootCmd.AddCommand(newStashCmd(&repoPath))
	rootCmd.AddCommand(newTagCmd(&repoPath))
	rootCmd.AddCommand(newNotesCmd(&repoPath))

	return rootCmd
}

// openRepo binds a repository handle to the --repo flag value, walking up
// to the enclosing repository root.
func openRepo(repoPath *string) (*gitkit.Repository, error) {
	repo, err := gitkit.Discover(*repoPath)
	if err != nil {
		return nil, fmt.Errorf("no repository at %s: %w", *repoPath, err)
	}
	return repo, nil
}
