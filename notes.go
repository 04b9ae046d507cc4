package gitkit

import "context"

// NotesAction selects the git notes sub-action. The closed set keeps
// invalid combinations unrepresentable.
type NotesAction int

const (
	// NotesAdd adds a new note to an object.
	NotesAdd NotesAction = iota
	// NotesAppend appends to an existing note.
	NotesAppend
	// NotesRemove removes the note of an object.
	NotesRemove
)

func (a NotesAction) String() string {
	switch a {
	case NotesAdd:
		return "add"
	case NotesAppend:
		return "append"
	case NotesRemove:
		return "remove"
	}
	return "unknown"
}

// NotesOptions contains options for git notes.
type NotesOptions struct {
	Action NotesAction

	// Message is the note text. Required for NotesAdd and NotesAppend,
	// not valid for NotesRemove.
	Message string

	// Object is the object the note is attached to; HEAD when empty.
	Object string
}

// Args renders the git notes argument vector.
func (o NotesOptions) Args() ([]string, error) {
	switch o.Action {
	case NotesAdd, NotesAppend:
		if o.Message == "" {
			return nil, missingField("notes "+o.Action.String(), "message")
		}
	case NotesRemove:
		if o.Message != "" {
			return nil, &OptionsError{Command: "notes remove", Field: "message", Reason: "not valid for remove"}
		}
	default:
		return nil, &OptionsError{Command: "notes", Field: "action", Reason: "unknown action"}
	}

	args := []string{"notes", o.Action.String()}
	if o.Message != "" {
		args = append(args, "-m", o.Message)
	}
	if o.Object != "" {
		args = append(args, o.Object)
	}
	return args, nil
}

// Run executes git notes in the given repository.
func (o NotesOptions) Run(ctx context.Context, repo *Repository) error {
	_, err := repo.RunCommand(ctx, o)
	return err
}
