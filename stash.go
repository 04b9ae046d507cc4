package gitkit

import "context"

// StashAction selects the git stash sub-action.
type StashAction int

const (
	// StashPush saves working tree changes to a new stash entry.
	StashPush StashAction = iota
	// StashPop applies the latest stash entry and drops it.
	StashPop
	// StashApply applies the latest stash entry and keeps it.
	StashApply
	// StashDrop removes the latest stash entry.
	StashDrop
	// StashList lists stash entries.
	StashList
)

func (a StashAction) String() string {
	switch a {
	case StashPush:
		return "push"
	case StashPop:
		return "pop"
	case StashApply:
		return "apply"
	case StashDrop:
		return "drop"
	case StashList:
		return "list"
	}
	return "unknown"
}

// StashOptions contains options for git stash.
type StashOptions struct {
	Action StashAction

	// Message labels the stash entry. StashPush only.
	Message string

	// IncludeUntracked stashes untracked files too. StashPush only.
	IncludeUntracked bool
}

// Args renders the git stash argument vector.
func (o StashOptions) Args() ([]string, error) {
	if o.Action != StashPush {
		if o.Message != "" {
			return nil, &OptionsError{Command: "stash " + o.Action.String(), Field: "message", Reason: "only valid for push"}
		}
		if o.IncludeUntracked {
			return nil, &OptionsError{Command: "stash " + o.Action.String(), Field: "includeuntracked", Reason: "only valid for push"}
		}
	}

	switch o.Action {
	case StashPush:
		args := []string{"stash", "push", "-q"}
		if o.IncludeUntracked {
			args = append(args, "-u")
		}
		if o.Message != "" {
			args = append(args, "-m", o.Message)
		}
		return args, nil
	case StashPop, StashApply, StashDrop:
		return []string{"stash", o.Action.String(), "-q"}, nil
	case StashList:
		return []string{"stash", "list"}, nil
	}
	return nil, &OptionsError{Command: "stash", Field: "action", Reason: "unknown action"}
}

// Run executes git stash in the given repository.
func (o StashOptions) Run(ctx context.Context, repo *Repository) error {
	_, err := repo.RunCommand(ctx, o)
	return err
}
