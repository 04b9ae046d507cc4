package gitkit

import "context"

// PushOptions contains options for git push.
type PushOptions struct {
	// All pushes all branches. Mutually exclusive with Refspecs.
	All bool

	// Tags pushes tags in addition to the pushed refs.
	Tags bool

	// Force overwrites the remote ref even when it is not an ancestor.
	Force bool

	// SetUpstream records the pushed branch as upstream.
	SetUpstream bool

	// Remote is the repository to push to. Required when Refspecs are
	// given.
	Remote string

	// Refspecs are the refs to push.
	Refspecs []string
}

// Args renders the git push argument vector.
func (o PushOptions) Args() ([]string, error) {
	if o.All && len(o.Refspecs) > 0 {
		return nil, &OptionsError{Command: "push", Field: "all", Reason: "mutually exclusive with refspecs"}
	}
	if len(o.Refspecs) > 0 && o.Remote == "" {
		return nil, missingField("push", "remote")
	}
	args := []string{"push", "-q"}
	if o.All {
		args = append(args, "--all")
	}
	if o.Tags {
		args = append(args, "--tags")
	}
	if o.Force {
		args = append(args, "--force")
	}
	if o.SetUpstream {
		args = append(args, "--set-upstream")
	}
	if o.Remote != "" {
		args = append(args, o.Remote)
	}
	for _, rs := range o.Refspecs {
		if rs == "" {
			return nil, &OptionsError{Command: "push", Field: "refspecs", Reason: "empty refspec"}
		}
		args = append(args, rs)
	}
	return args, nil
}

// Run executes git push in the given repository.
func (o PushOptions) Run(ctx context.Context, repo *Repository) error {
	_, err := repo.RunCommand(ctx, o)
	return err
}
