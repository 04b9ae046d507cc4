package gitkit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gitkit.dev/gitkit"
)

func TestAddOptionsArgs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		args, err := gitkit.AddOptions{}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"add"}, args)
	})

	t.Run("all flags and pathspecs", func(t *testing.T) {
		args, err := gitkit.AddOptions{
			All:       gitkit.Bool(true),
			Chmod:     gitkit.Bool(true),
			Pathspecs: []string{"src/", "README.md"},
		}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"add", "--all", "--chmod=+x", "src/", "README.md"}, args)
	})

	t.Run("negated tri-states", func(t *testing.T) {
		args, err := gitkit.AddOptions{
			All:   gitkit.Bool(false),
			Chmod: gitkit.Bool(false),
		}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"add", "--no-all", "--chmod=-x"}, args)
	})

	t.Run("rejects empty pathspec", func(t *testing.T) {
		_, err := gitkit.AddOptions{Pathspecs: []string{"src/", ""}}.Args()
		require.Error(t, err)
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})
}

func TestCommitOptionsArgs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		args, err := gitkit.CommitOptions{}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"commit", "-q"}, args)
	})

	t.Run("full", func(t *testing.T) {
		args, err := gitkit.CommitOptions{
			Message:    "feat: everything",
			All:        true,
			AllowEmpty: true,
			Amend:      true,
			Files:      []string{"a.txt", "b.txt"},
		}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{
			"commit", "-q", "-m", "feat: everything",
			"--all", "--allow-empty", "--amend", "a.txt", "b.txt",
		}, args)
	})

	t.Run("rejects empty file", func(t *testing.T) {
		_, err := gitkit.CommitOptions{Files: []string{""}}.Args()
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})
}

func TestInitOptionsArgs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		args, err := gitkit.InitOptions{}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"init", "-q"}, args)
	})

	t.Run("bare with initial branch", func(t *testing.T) {
		args, err := gitkit.InitOptions{Bare: true, InitialBranch: "trunk"}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"init", "-q", "--bare", "-b", "trunk"}, args)
	})
}

func TestPushOptionsArgs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		args, err := gitkit.PushOptions{}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"push", "-q"}, args)
	})

	t.Run("all flags", func(t *testing.T) {
		args, err := gitkit.PushOptions{
			All:         true,
			Tags:        true,
			Force:       true,
			SetUpstream: true,
			Remote:      "origin",
		}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{
			"push", "-q", "--all", "--tags", "--force", "--set-upstream", "origin",
		}, args)
	})

	t.Run("remote with refspecs", func(t *testing.T) {
		args, err := gitkit.PushOptions{
			Remote:   "origin",
			Refspecs: []string{"main", "v1.0"},
		}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"push", "-q", "origin", "main", "v1.0"}, args)
	})

	t.Run("refspecs require a remote", func(t *testing.T) {
		_, err := gitkit.PushOptions{Refspecs: []string{"main"}}.Args()
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})

	t.Run("all excludes refspecs", func(t *testing.T) {
		_, err := gitkit.PushOptions{
			All:      true,
			Remote:   "origin",
			Refspecs: []string{"main"},
		}.Args()
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})
}

func TestPullOptionsArgs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		args, err := gitkit.PullOptions{}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"pull", "-q"}, args)
	})

	t.Run("full", func(t *testing.T) {
		args, err := gitkit.PullOptions{
			AllowUnrelated: true,
			Remote:         "origin",
			Refspecs:       []string{"main"},
		}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{
			"pull", "-q", "--allow-unrelated-histories", "origin", "main",
		}, args)
	})

	t.Run("refspecs require a remote", func(t *testing.T) {
		_, err := gitkit.PullOptions{Refspecs: []string{"main"}}.Args()
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})
}

func TestFetchOptionsArgs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		args, err := gitkit.FetchOptions{}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"fetch", "-q"}, args)
	})

	t.Run("prune tags from remote", func(t *testing.T) {
		args, err := gitkit.FetchOptions{Prune: true, Tags: true, Remote: "origin"}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"fetch", "-q", "--prune", "--tags", "origin"}, args)
	})

	t.Run("all excludes remote", func(t *testing.T) {
		_, err := gitkit.FetchOptions{All: true, Remote: "origin"}.Args()
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})
}

func TestNotesOptionsArgs(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		args, err := gitkit.NotesOptions{Message: "reviewed"}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"notes", "add", "-m", "reviewed"}, args)
	})

	t.Run("append to object", func(t *testing.T) {
		args, err := gitkit.NotesOptions{
			Action:  gitkit.NotesAppend,
			Message: "more",
			Object:  "HEAD~1",
		}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"notes", "append", "-m", "more", "HEAD~1"}, args)
	})

	t.Run("remove", func(t *testing.T) {
		args, err := gitkit.NotesOptions{Action: gitkit.NotesRemove, Object: "HEAD"}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"notes", "remove", "HEAD"}, args)
	})

	t.Run("add requires a message", func(t *testing.T) {
		_, err := gitkit.NotesOptions{}.Args()
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})

	t.Run("remove rejects a message", func(t *testing.T) {
		_, err := gitkit.NotesOptions{Action: gitkit.NotesRemove, Message: "nope"}.Args()
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})
}

func TestRemoteOptionsArgs(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		args, err := gitkit.RemoteOptions{
			Name: "origin",
			URL:  "https://example.com/repo.git",
		}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"remote", "add", "origin", "https://example.com/repo.git"}, args)
	})

	t.Run("add with master and tags", func(t *testing.T) {
		args, err := gitkit.RemoteOptions{
			Name:   "origin",
			URL:    "https://example.com/repo.git",
			Master: "main",
			Tags:   gitkit.Bool(false),
		}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{
			"remote", "add", "-m", "main", "--no-tags",
			"origin", "https://example.com/repo.git",
		}, args)
	})

	t.Run("add requires a url", func(t *testing.T) {
		_, err := gitkit.RemoteOptions{Name: "origin"}.Args()
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})

	t.Run("remove", func(t *testing.T) {
		args, err := gitkit.RemoteOptions{Action: gitkit.RemoteRemove, Name: "origin"}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"remote", "remove", "origin"}, args)
	})

	t.Run("remove rejects a url", func(t *testing.T) {
		_, err := gitkit.RemoteOptions{
			Action: gitkit.RemoteRemove,
			Name:   "origin",
			URL:    "https://example.com/repo.git",
		}.Args()
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})

	t.Run("rename", func(t *testing.T) {
		args, err := gitkit.RemoteOptions{
			Action:  gitkit.RemoteRename,
			Name:    "origin",
			NewName: "upstream",
		}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"remote", "rename", "origin", "upstream"}, args)
	})

	t.Run("rename requires a new name", func(t *testing.T) {
		_, err := gitkit.RemoteOptions{Action: gitkit.RemoteRename, Name: "origin"}.Args()
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})
}

func TestStashOptionsArgs(t *testing.T) {
	t.Run("push", func(t *testing.T) {
		args, err := gitkit.StashOptions{}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"stash", "push", "-q"}, args)
	})

	t.Run("push with message and untracked", func(t *testing.T) {
		args, err := gitkit.StashOptions{
			Message:          "wip",
			IncludeUntracked: true,
		}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"stash", "push", "-q", "-u", "-m", "wip"}, args)
	})

	t.Run("pop", func(t *testing.T) {
		args, err := gitkit.StashOptions{Action: gitkit.StashPop}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"stash", "pop", "-q"}, args)
	})

	t.Run("list", func(t *testing.T) {
		args, err := gitkit.StashOptions{Action: gitkit.StashList}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"stash", "list"}, args)
	})

	t.Run("pop rejects a message", func(t *testing.T) {
		_, err := gitkit.StashOptions{Action: gitkit.StashPop, Message: "wip"}.Args()
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})
}

func TestTagOptionsArgs(t *testing.T) {
	t.Run("lightweight", func(t *testing.T) {
		args, err := gitkit.TagOptions{Name: "v1.0"}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"tag", "v1.0"}, args)
	})

	t.Run("annotated on object", func(t *testing.T) {
		args, err := gitkit.TagOptions{
			Name:    "v1.0",
			Message: "release",
			Object:  "abc123",
		}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"tag", "-m", "release", "v1.0", "abc123"}, args)
	})

	t.Run("delete", func(t *testing.T) {
		args, err := gitkit.TagOptions{Action: gitkit.TagDelete, Name: "v1.0"}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"tag", "-d", "v1.0"}, args)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := gitkit.TagOptions{}.Args()
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})

	t.Run("delete rejects a message", func(t *testing.T) {
		_, err := gitkit.TagOptions{Action: gitkit.TagDelete, Name: "v1.0", Message: "bye"}.Args()
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})
}

func TestStatusOptionsArgs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		args, err := gitkit.StatusOptions{}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"status", "--porcelain=v2", "--branch"}, args)
	})

	t.Run("status with ignored", func(t *testing.T) {
		args, err := gitkit.StatusOptions{Ignored: true}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"status", "--porcelain=v2", "--branch", "--ignored"}, args)
	})

	t.Run("untracked modes", func(t *testing.T) {
		args, err := gitkit.StatusOptions{Untracked: gitkit.UntrackedNone}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"status", "--porcelain=v2", "--branch", "--untracked-files=no"}, args)

		args, err = gitkit.StatusOptions{Untracked: gitkit.UntrackedAll, Ignored: true}.Args()
		require.NoError(t, err)
		require.Equal(t, []string{"status", "--porcelain=v2", "--branch", "--untracked-files=all", "--ignored"}, args)
	})

	t.Run("rejects unknown untracked mode", func(t *testing.T) {
		_, err := gitkit.StatusOptions{Untracked: gitkit.UntrackedMode(42)}.Args()
		require.ErrorIs(t, err, gitkit.ErrInvalidOptions)
	})
}

func TestOptionsErrorDetail(t *testing.T) {
	_, err := gitkit.TagOptions{}.Args()
	require.Error(t, err)

	var optErr *gitkit.OptionsError
	require.True(t, errors.As(err, &optErr))
	require.Equal(t, "tag", optErr.Command)
	require.Equal(t, "name", optErr.Field)
	require.NotEmpty(t, optErr.Reason)
}
