package gitkit

import "context"

// AddOptions contains options for git add.
type AddOptions struct {
	// All selects --all (true) or --no-all (false); nil omits the flag.
	All *bool

	// Chmod selects --chmod=+x (true) or --chmod=-x (false); nil omits
	// the flag.
	Chmod *bool

	// Pathspecs limits the add to the given paths.
	Pathspecs []string
}

// Args renders the git add argument vector.
func (o AddOptions) Args() ([]string, error) {
	args := []string{"add"}
	if o.All != nil {
		if *o.All {
			args = append(args, "--all")
		} else {
			args = append(args, "--no-all")
		}
	}
	if o.Chmod != nil {
		if *o.Chmod {
			args = append(args, "--chmod=+x")
		} else {
			args = append(args, "--chmod=-x")
		}
	}
	for _, p := range o.Pathspecs {
		if p == "" {
			return nil, &OptionsError{Command: "add", Field: "pathspecs", Reason: "empty pathspec"}
		}
		args = append(args, p)
	}
	return args, nil
}

// Run executes git add in the given repository.
func (o AddOptions) Run(ctx context.Context, repo *Repository) error {
	_, err := repo.RunCommand(ctx, o)
	return err
}
