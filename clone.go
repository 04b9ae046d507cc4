package gitkit

import (
	"context"
	"path"
	"strings"
)

// CloneOptions contains options for git clone.
type CloneOptions struct {
	// Branch points HEAD at the named branch instead of the remote's
	// default.
	Branch string

	// Origin names the tracking remote instead of "origin".
	Origin string

	// Directory is the destination to clone into. When empty, git derives
	// it from the repository URL.
	Directory string

	// Runner overrides the process runner for this clone. Intended for
	// tests and instrumentation; nil uses the default.
	Runner Runner
}

func (o CloneOptions) args(url string) ([]string, error) {
	if url == "" {
		return nil, missingField("clone", "url")
	}
	args := []string{"clone", "-q"}
	if o.Branch != "" {
		args = append(args, "--branch", o.Branch)
	}
	if o.Origin != "" {
		args = append(args, "--origin", o.Origin)
	}
	args = append(args, url)
	if o.Directory != "" {
		args = append(args, o.Directory)
	}
	return args, nil
}

// Run clones the repository at url and returns a handle bound to the
// destination directory.
func (o CloneOptions) Run(ctx context.Context, url string) (*Repository, error) {
	args, err := o.args(url)
	if err != nil {
		return nil, err
	}
	runner := o.Runner
	if runner == nil {
		runner = defaultRunner
	}
	out, err := runner.Run(ctx, "", args...)
	if err != nil {
		return nil, err
	}
	if _, err := translate("", args, out); err != nil {
		return nil, err
	}
	dir := o.Directory
	if dir == "" {
		dir = humanishName(url)
	}
	return At(dir)
}

// Clone clones the repository at url with default options.
func Clone(ctx context.Context, url string) (*Repository, error) {
	return CloneOptions{}.Run(ctx, url)
}

// humanishName derives the destination directory git uses when none is
// given: the last path segment with any .git suffix stripped.
func humanishName(url string) string {
	name := strings.TrimRight(url, "/")
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.TrimSuffix(name, ".git")
	if i := strings.LastIndex(name, ":"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
