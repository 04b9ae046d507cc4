package gitkit

import "context"

// CommitOptions contains options for git commit.
type CommitOptions struct {
	// Message is the commit message. When empty no -m flag is passed and
	// git falls back to its own behavior, which in batch mode means the
	// commit fails; most callers want a message.
	Message string

	// All commits modified and deleted tracked files without staging.
	All bool

	// AllowEmpty permits a commit that records no changes.
	AllowEmpty bool

	// Amend replaces the tip of the current branch.
	Amend bool

	// Files limits the commit to the given paths.
	Files []string
}

// Args renders the git commit argument vector.
func (o CommitOptions) Args() ([]string, error) {
	args := []string{"commit", "-q"}
	if o.Message != "" {
		args = append(args, "-m", o.Message)
	}
	if o.All {
		args = append(args, "--all")
	}
	if o.AllowEmpty {
		args = append(args, "--allow-empty")
	}
	if o.Amend {
		args = append(args, "--amend")
	}
	for _, f := range o.Files {
		if f == "" {
			return nil, &OptionsError{Command: "commit", Field: "files", Reason: "empty path"}
		}
		args = append(args, f)
	}
	return args, nil
}

// Run executes git commit in the given repository.
func (o CommitOptions) Run(ctx context.Context, repo *Repository) error {
	_, err := repo.RunCommand(ctx, o)
	return err
}
