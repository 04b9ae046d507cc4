package gitkit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// Repository is a handle to a git repository on disk. It holds no state
// beyond the bound path: every operation re-reads disk state fresh, so two
// handles pointing at the same path never disagree. Handles are safe to
// copy; the zero value is not usable, construct with New, At, Discover or
// Clone.
type Repository struct {
	path   string
	runner Runner
}

// New returns a handle bound to the current working directory.
func New() *Repository {
	return &Repository{runner: defaultRunner}
}

// At returns a handle bound to the given directory. The directory must
// already exist; a RepositoryNotFoundError is returned otherwise. The path
// does not need to contain a repository yet, Init may create one.
func At(path string) (*Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, &RepositoryNotFoundError{Path: path, Err: err}
	}
	return &Repository{path: abs, runner: defaultRunner}, nil
}

// Discover walks up from path looking for an enclosing git repository and
// returns a handle bound to its root, like running git from a
// subdirectory would.
func Discover(path string) (*Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, &NotARepositoryError{Path: path}
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	return At(worktree.Filesystem.Root())
}

// WithRunner returns a copy of the handle that executes commands through
// the given Runner. Intended for tests and instrumentation.
func (r *Repository) WithRunner(runner Runner) *Repository {
	clone := *r
	clone.runner = runner
	return &clone
}

// Path returns the bound directory, or "" for a handle on the current
// working directory.
func (r *Repository) Path() string {
	return r.path
}

// IsInit reports whether the bound directory contains a .git directory.
func (r *Repository) IsInit() bool {
	dir := r.path
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

// Run executes git with the given arguments in the repository directory
// and returns the captured stdout. This is the low-level escape hatch for
// subcommands and flags the typed surface does not cover.
func (r *Repository) Run(ctx context.Context, args ...string) (string, error) {
	if len(args) == 0 {
		return "", &OptionsError{Command: "run", Reason: "no arguments given"}
	}
	return r.run(ctx, args...)
}

// RunCommand renders the given options to arguments and executes them,
// returning the captured stdout.
func (r *Repository) RunCommand(ctx context.Context, c Command) (string, error) {
	args, err := c.Args()
	if err != nil {
		return "", err
	}
	return r.run(ctx, args...)
}

// run checks preconditions, delegates to the runner and translates the
// raw result. The existence check happens before spawning so a vanished
// path is a precondition error, not a confusing git diagnostic.
func (r *Repository) run(ctx context.Context, args ...string) (string, error) {
	if r.path != "" {
		info, err := os.Stat(r.path)
		if err != nil || !info.IsDir() {
			return "", &RepositoryNotFoundError{Path: r.path, Err: err}
		}
	}
	runner := r.runner
	if runner == nil {
		runner = defaultRunner
	}
	out, err := runner.Run(ctx, r.path, args...)
	if err != nil {
		return "", err
	}
	return translate(r.path, args, out)
}

// Init initializes a repository at the bound path, creating the directory
// if needed. Running init on an existing repository is harmless; git
// reinitializes it.
func (r *Repository) Init(ctx context.Context) (*Repository, error) {
	if r.path != "" {
		if err := os.MkdirAll(r.path, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create repository directory: %w", err)
		}
	}
	if _, err := r.run(ctx, "init", "-q"); err != nil {
		return nil, err
	}
	return r, nil
}

// Add runs git add with the --all option. Use AddOptions for anything
// more specific.
func (r *Repository) Add(ctx context.Context) (*Repository, error) {
	if _, err := r.run(ctx, "add", "--all"); err != nil {
		return nil, err
	}
	return r, nil
}

// Commit records a commit with the given message. --allow-empty is passed
// so committing with nothing staged is not an error. Use CommitOptions
// for different behavior.
func (r *Repository) Commit(ctx context.Context, message string) (*Repository, error) {
	if _, err := r.run(ctx, "commit", "-m", message, "-q", "--allow-empty"); err != nil {
		return nil, err
	}
	return r, nil
}

// Fetch runs git fetch --all. Use FetchOptions for a specific remote.
func (r *Repository) Fetch(ctx context.Context) (*Repository, error) {
	if _, err := r.run(ctx, "fetch", "--all", "-q"); err != nil {
		return nil, err
	}
	return r, nil
}

// Pull runs git pull without specifying remote or refs.
func (r *Repository) Pull(ctx context.Context) (*Repository, error) {
	if _, err := r.run(ctx, "pull", "-q"); err != nil {
		return nil, err
	}
	return r, nil
}

// Push runs git push without specifying remote or refs.
func (r *Repository) Push(ctx context.Context) (*Repository, error) {
	if _, err := r.run(ctx, "push", "-q"); err != nil {
		return nil, err
	}
	return r, nil
}

// Notes attaches a note to HEAD. Use NotesOptions to append, remove or
// target another object.
func (r *Repository) Notes(ctx context.Context, message string) (*Repository, error) {
	if message == "" {
		return nil, missingField("notes", "message")
	}
	if _, err := r.run(ctx, "notes", "add", "-m", message); err != nil {
		return nil, err
	}
	return r, nil
}

// Remote adds a single remote to the repository. Use RemoteOptions for
// removal, renaming or tag configuration.
func (r *Repository) Remote(ctx context.Context, name, url string) (*Repository, error) {
	if name == "" {
		return nil, missingField("remote", "name")
	}
	if url == "" {
		return nil, missingField("remote", "url")
	}
	if _, err := r.run(ctx, "remote", "add", name, url); err != nil {
		return nil, err
	}
	return r, nil
}

// Stash stashes the working tree changes.
func (r *Repository) Stash(ctx context.Context) (*Repository, error) {
	if _, err := r.run(ctx, "stash", "-q"); err != nil {
		return nil, err
	}
	return r, nil
}

// Tag creates a lightweight tag pointing at HEAD. Use TagOptions for
// annotated tags, deletion or a different target.
func (r *Repository) Tag(ctx context.Context, name string) (*Repository, error) {
	if name == "" {
		return nil, missingField("tag", "name")
	}
	if _, err := r.run(ctx, "tag", name); err != nil {
		return nil, err
	}
	return r, nil
}

// Status runs git status and parses the porcelain v2 output, including
// branch information and ignored files.
func (r *Repository) Status(ctx context.Context) (*Status, error) {
	return StatusOptions{Ignored: true}.Run(ctx, r)
}
