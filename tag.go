package gitkit

import "context"

// TagAction selects the git tag sub-action.
type TagAction int

const (
	// TagCreate creates a tag.
	TagCreate TagAction = iota
	// TagDelete deletes a tag.
	TagDelete
)

// TagOptions contains options for git tag.
type TagOptions struct {
	Action TagAction

	// Name is the tag name. Required.
	Name string

	// Message makes the tag annotated. TagCreate only.
	Message string

	// Object is the commit or object the tag points at; HEAD when empty.
	// TagCreate only.
	Object string
}

// Args renders the git tag argument vector.
func (o TagOptions) Args() ([]string, error) {
	if o.Name == "" {
		return nil, missingField("tag", "name")
	}

	switch o.Action {
	case TagCreate:
		args := []string{"tag"}
		if o.Message != "" {
			args = append(args, "-m", o.Message)
		}
		args = append(args, o.Name)
		if o.Object != "" {
			args = append(args, o.Object)
		}
		return args, nil
	case TagDelete:
		if o.Message != "" || o.Object != "" {
			return nil, &OptionsError{Command: "tag", Reason: "message and object are not valid for delete"}
		}
		return []string{"tag", "-d", o.Name}, nil
	}
	return nil, &OptionsError{Command: "tag", Field: "action", Reason: "unknown action"}
}

// Run executes git tag in the given repository.
func (o TagOptions) Run(ctx context.Context, repo *Repository) error {
	_, err := repo.RunCommand(ctx, o)
	return err
}
