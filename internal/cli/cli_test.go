package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitkit.dev/gitkit/internal/cli"
	"gitkit.dev/gitkit/testhelpers"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd("test", "none", "unknown")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "repo")

	out, err := runCLI(t, "init", dir)
	require.NoError(t, err)
	require.Contains(t, out, "Initialized repository in")
}

func TestStatusCommand(t *testing.T) {
	t.Run("clean repository", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		out, err := runCLI(t, "--repo", scene.Dir, "status")
		require.NoError(t, err)
		require.Contains(t, out, "On branch main")
		require.Contains(t, out, "working tree clean")
	})

	t.Run("dirty repository", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("changed", "1", true))

		out, err := runCLI(t, "--repo", scene.Dir, "status")
		require.NoError(t, err)
		require.Contains(t, out, "modified:   1_test.txt")
	})

	t.Run("untracked files hidden on request", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("new", "2", true))

		out, err := runCLI(t, "--repo", scene.Dir, "status")
		require.NoError(t, err)
		require.Contains(t, out, "2_test.txt")

		out, err = runCLI(t, "--repo", scene.Dir, "status", "--untracked-files", "no")
		require.NoError(t, err)
		require.NotContains(t, out, "2_test.txt")
	})

	t.Run("outside a repository", func(t *testing.T) {
		_, err := runCLI(t, "--repo", t.TempDir(), "status")
		require.Error(t, err)
	})
}

func TestCommitCommand(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.CreateChange("changed", "1", false))

	_, err := runCLI(t, "--repo", scene.Dir, "commit", "-m", "update")
	require.NoError(t, err)

	unstaged, err := scene.Repo.HasUnstagedChanges()
	require.NoError(t, err)
	require.False(t, unstaged)
}

func TestTagCommand(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	_, err := runCLI(t, "--repo", scene.Dir, "tag", "v1.0", "-m", "release")
	require.NoError(t, err)

	tags, err := scene.Repo.ListTags()
	require.NoError(t, err)
	require.Equal(t, []string{"v1.0"}, tags)

	_, err = runCLI(t, "--repo", scene.Dir, "tag", "-d", "v1.0")
	require.NoError(t, err)

	tags, err = scene.Repo.ListTags()
	require.NoError(t, err)
	require.Empty(t, tags)
}

func TestStashCommands(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.CreateChange("dirty", "1", true))

	_, err := runCLI(t, "--repo", scene.Dir, "stash", "push", "-m", "wip")
	require.NoError(t, err)

	out, err := runCLI(t, "--repo", scene.Dir, "stash", "list")
	require.NoError(t, err)
	require.Contains(t, out, "wip")

	_, err = runCLI(t, "--repo", scene.Dir, "stash", "pop")
	require.NoError(t, err)

	unstaged, err := scene.Repo.HasUnstagedChanges()
	require.NoError(t, err)
	require.True(t, unstaged)
}

func TestRemoteCommands(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	_, err := runCLI(t, "--repo", scene.Dir, "remote", "add", "origin", "https://example.com/repo.git")
	require.NoError(t, err)

	_, err = runCLI(t, "--repo", scene.Dir, "remote", "rename", "origin", "upstream")
	require.NoError(t, err)

	remotes, err := scene.Repo.ListRemotes()
	require.NoError(t, err)
	require.Equal(t, []string{"upstream"}, remotes)

	_, err = runCLI(t, "--repo", scene.Dir, "remote", "remove", "upstream")
	require.NoError(t, err)
}
