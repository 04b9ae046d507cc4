package gitkit

import "context"

// RemoteAction selects the git remote sub-action. The closed set keeps
// invalid combinations, such as add and remove at once, unrepresentable.
type RemoteAction int

const (
	// RemoteAdd adds a new remote.
	RemoteAdd RemoteAction = iota
	// RemoteRemove removes a remote and its tracking branches.
	RemoteRemove
	// RemoteRename renames a remote.
	RemoteRename
)

func (a RemoteAction) String() string {
	switch a {
	case RemoteAdd:
		return "add"
	case RemoteRemove:
		return "remove"
	case RemoteRename:
		return "rename"
	}
	return "unknown"
}

// RemoteOptions contains options for git remote.
type RemoteOptions struct {
	Action RemoteAction

	// Name is the remote name. Required for every action.
	Name string

	// URL is the remote URL. Required for RemoteAdd, not valid otherwise.
	URL string

	// NewName is the new remote name. Required for RemoteRename, not
	// valid otherwise.
	NewName string

	// Master sets the remote's default branch (-m). RemoteAdd only.
	Master string

	// Tags selects --tags (true) or --no-tags (false); nil omits the
	// flag. RemoteAdd only.
	Tags *bool
}

// Args renders the git remote argument vector.
func (o RemoteOptions) Args() ([]string, error) {
	if o.Name == "" {
		return nil, missingField("remote "+o.Action.String(), "name")
	}

	switch o.Action {
	case RemoteAdd:
		if o.URL == "" {
			return nil, missingField("remote add", "url")
		}
		if o.NewName != "" {
			return nil, &OptionsError{Command: "remote add", Field: "newname", Reason: "only valid for rename"}
		}
		args := []string{"remote", "add"}
		if o.Master != "" {
			args = append(args, "-m", o.Master)
		}
		if o.Tags != nil {
			if *o.Tags {
				args = append(args, "--tags")
			} else {
				args = append(args, "--no-tags")
			}
		}
		return append(args, o.Name, o.URL), nil

	case RemoteRemove:
		if o.URL != "" || o.NewName != "" || o.Master != "" || o.Tags != nil {
			return nil, &OptionsError{Command: "remote remove", Reason: "only name is valid for remove"}
		}
		return []string{"remote", "remove", o.Name}, nil

	case RemoteRename:
		if o.NewName == "" {
			return nil, missingField("remote rename", "newname")
		}
		if o.URL != "" || o.Master != "" || o.Tags != nil {
			return nil, &OptionsError{Command: "remote rename", Reason: "only name and newname are valid for rename"}
		}
		return []string{"remote", "rename", o.Name, o.NewName}, nil
	}
	return nil, &OptionsError{Command: "remote", Field: "action", Reason: "unknown action"}
}

// Run executes git remote in the given repository.
func (o RemoteOptions) Run(ctx context.Context, repo *Repository) error {
	_, err := repo.RunCommand(ctx, o)
	return err
}
