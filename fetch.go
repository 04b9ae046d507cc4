package gitkit

import "context"

// FetchOptions contains options for git fetch.
type FetchOptions struct {
	// All fetches from all remotes. Mutually exclusive with Remote.
	All bool

	// Prune removes remote-tracking refs that no longer exist upstream.
	Prune bool

	// Tags fetches all tags.
	Tags bool

	// Remote is the single remote to fetch from.
	Remote string
}

// Args renders the git fetch argument vector.
func (o FetchOptions) Args() ([]string, error) {
	if o.All && o.Remote != "" {
		return nil, &OptionsError{Command: "fetch", Field: "all", Reason: "mutually exclusive with remote"}
	}
	args := []string{"fetch", "-q"}
	if o.All {
		args = append(args, "--all")
	}
	if o.Prune {
		args = append(args, "--prune")
	}
	if o.Tags {
		args = append(args, "--tags")
	}
	if o.Remote != "" {
		args = append(args, o.Remote)
	}
	return args, nil
}

// Run executes git fetch in the given repository.
func (o FetchOptions) Run(ctx context.Context, repo *Repository) error {
	_, err := repo.RunCommand(ctx, o)
	return err
}
