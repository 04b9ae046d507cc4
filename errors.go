package gitkit

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions. Use errors.Is() to check for them
// and errors.As() to get at the structured types below.
var (
	// ErrGitNotFound indicates the git binary could not be located or spawned.
	ErrGitNotFound = errors.New("git executable not found")

	// ErrRepositoryNotFound indicates the bound path does not exist.
	ErrRepositoryNotFound = errors.New("repository path not found")

	// ErrNotARepository indicates the bound path is not a git repository.
	ErrNotARepository = errors.New("not a git repository")

	// ErrRepositoryLocked indicates git could not take the repository lock,
	// usually because another git process is running against the same path.
	ErrRepositoryLocked = errors.New("repository is locked")

	// ErrInvalidOptions indicates an options struct was missing a required
	// field or carried an empty value where git expects a token.
	ErrInvalidOptions = errors.New("invalid command options")

	// ErrBadStatusFormat indicates git status output did not match the
	// porcelain v2 format.
	ErrBadStatusFormat = errors.New("unexpected status format")
)

// RepositoryNotFoundError is returned when the directory a Repository is
// bound to does not exist. No git process is spawned in that case.
type RepositoryNotFoundError struct {
	Path string
	Err  error
}

func (e *RepositoryNotFoundError) Error() string {
	return fmt.Sprintf("repository path %s does not exist", e.Path)
}

// Is returns true if the target error is ErrRepositoryNotFound
func (e *RepositoryNotFoundError) Is(target error) bool {
	return target == ErrRepositoryNotFound
}

func (e *RepositoryNotFoundError) Unwrap() error {
	return e.Err
}

// NotARepositoryError is returned when git reports that the bound path is
// not inside a git repository.
type NotARepositoryError struct {
	Path   string
	Stderr string
}

func (e *NotARepositoryError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s is not a git repository", e.Path)
	}
	return "not a git repository"
}

// Is returns true if the target error is ErrNotARepository
func (e *NotARepositoryError) Is(target error) bool {
	return target == ErrNotARepository
}

// RepositoryLockedError is returned when git cannot acquire a repository
// lock, typically index.lock held by a concurrent git process.
type RepositoryLockedError struct {
	Path   string
	Stderr string
}

func (e *RepositoryLockedError) Error() string {
	return fmt.Sprintf("repository %s is locked by another process", e.Path)
}

// Is returns true if the target error is ErrRepositoryLocked
func (e *RepositoryLockedError) Is(target error) bool {
	return target == ErrRepositoryLocked
}

// OptionsError is returned when an options struct cannot be rendered into
// a valid argument vector. It is produced before any process is spawned.
type OptionsError struct {
	Command string
	Field   string
	Reason  string
}

func (e *OptionsError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("git %s: invalid options: %s: %s", e.Command, e.Field, e.Reason)
	}
	return fmt.Sprintf("git %s: invalid options: %s", e.Command, e.Reason)
}

// Is returns true if the target error is ErrInvalidOptions
func (e *OptionsError) Is(target error) bool {
	return target == ErrInvalidOptions
}

func missingField(command, field string) *OptionsError {
	return &OptionsError{Command: command, Field: field, Reason: "required field is empty"}
}

// CommandError represents a git invocation that exited non-zero. The exit
// code and captured output streams are preserved verbatim.
type CommandError struct {
	Command  string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s exited with code %d", e.Command, e.ExitCode)
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", strings.TrimRight(e.Stderr, "\n"))
	}
	return msg
}

// StatusParseError is returned when git status output cannot be parsed.
type StatusParseError struct {
	Line   string
	Reason string
}

func (e *StatusParseError) Error() string {
	return fmt.Sprintf("cannot parse status line %q: %s", e.Line, e.Reason)
}

// Is returns true if the target error is ErrBadStatusFormat
func (e *StatusParseError) Is(target error) bool {
	return target == ErrBadStatusFormat
}
