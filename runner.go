package gitkit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Output is the raw result of one git invocation: both output streams and
// the numeric exit code, untouched.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner abstracts execution of the git binary so it can be replaced in
// tests or wrapped for instrumentation. Run spawns exactly one child
// process, blocks until it exits, and returns the raw Output. The error
// is non-nil only for spawn-level failures (binary missing, context
// canceled); a non-zero exit code is reported through Output, not the
// error.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (Output, error)
}

// NewRunner returns the default Runner backed by the git binary on PATH.
func NewRunner() Runner {
	return execRunner{}
}

// defaultRunner is used by package-level operations such as Clone that
// run outside any Repository handle.
var defaultRunner = NewRunner()

type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, args ...string) (Output, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	// Batch mode: no stdin and no terminal prompts, so a credential
	// prompt fails instead of hanging the caller.
	cmd.Stdin = nil
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		if errors.Is(err, exec.ErrNotFound) {
			return Output{}, fmt.Errorf("%w: %v", ErrGitNotFound, err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Output{}, fmt.Errorf("git %s: %w", args[0], ctxErr)
		}
		return Output{}, fmt.Errorf("failed to spawn git: %w", err)
	}
	return out, nil
}

// translate applies exit-code semantics to a raw invocation result:
// exit 0 yields stdout, anything else a typed error carrying the captured
// stderr text verbatim. Output-format knowledge for specific failures
// (missing repository, lock contention) is concentrated here so callers
// can match with errors.Is instead of grepping diagnostic text.
func translate(dir string, args []string, out Output) (string, error) {
	if out.ExitCode == 0 {
		return out.Stdout, nil
	}
	switch {
	case strings.Contains(out.Stderr, "not a git repository"):
		return "", &NotARepositoryError{Path: dir, Stderr: out.Stderr}
	case strings.Contains(out.Stderr, "index.lock") ||
		strings.Contains(out.Stderr, "Another git process seems to be running"):
		return "", &RepositoryLockedError{Path: dir, Stderr: out.Stderr}
	}
	return "", &CommandError{
		Command:  args[0],
		Args:     args,
		Stdout:   out.Stdout,
		Stderr:   out.Stderr,
		ExitCode: out.ExitCode,
	}
}
