package gitkit

import (
	"context"
	"fmt"
	"os"
)

// InitOptions contains options for git init.
type InitOptions struct {
	// Bare creates a repository without a working tree.
	Bare bool

	// InitialBranch names the first branch instead of git's configured
	// default.
	InitialBranch string
}

// Args renders the git init argument vector.
func (o InitOptions) Args() ([]string, error) {
	args := []string{"init", "-q"}
	if o.Bare {
		args = append(args, "--bare")
	}
	if o.InitialBranch != "" {
		args = append(args, "-b", o.InitialBranch)
	}
	return args, nil
}

// Run initializes a repository at the handle's path, creating the
// directory first if it does not exist.
func (o InitOptions) Run(ctx context.Context, repo *Repository) error {
	if repo.path != "" {
		if err := os.MkdirAll(repo.path, 0o755); err != nil {
			return fmt.Errorf("failed to create repository directory: %w", err)
		}
	}
	_, err := repo.RunCommand(ctx, o)
	return err
}
