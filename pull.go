package gitkit

import "context"

// PullOptions contains options for git pull.
type PullOptions struct {
	// AllowUnrelated permits merging histories with no common ancestor.
	AllowUnrelated bool

	// Remote is the repository to pull from. Required when Refspecs are
	// given.
	Remote string

	// Refspecs are the refs to fetch and merge.
	Refspecs []string
}

// Args renders the git pull argument vector.
func (o PullOptions) Args() ([]string, error) {
	if len(o.Refspecs) > 0 && o.Remote == "" {
		return nil, missingField("pull", "remote")
	}
	args := []string{"pull", "-q"}
	if o.AllowUnrelated {
		args = append(args, "--allow-unrelated-histories")
	}
	if o.Remote != "" {
		args = append(args, o.Remote)
	}
	for _, rs := range o.Refspecs {
		if rs == "" {
			return nil, &OptionsError{Command: "pull", Field: "refspecs", Reason: "empty refspec"}
		}
		args = append(args, rs)
	}
	return args, nil
}

// Run executes git pull in the given repository.
func (o PullOptions) Run(ctx context.Context, repo *Repository) error {
	_, err := repo.RunCommand(ctx, o)
	return err
}
