// Package gitkit provides a typed interface over the git command line tool.
//
// Interaction happens through a Repository handle bound to a directory on
// disk. Simple operations are available as repository methods; for more
// control each subcommand has an options struct that renders itself to the
// exact argument vector git expects:
//
//	repo, err := gitkit.At("/home/mh/awesomeness")
//	if err != nil {
//		return err
//	}
//	if _, err := repo.Init(ctx); err != nil {
//		return err
//	}
//	if _, err := repo.Add(ctx); err != nil {
//		return err
//	}
//	if _, err := repo.Commit(ctx, "Initial commit"); err != nil {
//		return err
//	}
//
// Power users build options directly:
//
//	err := gitkit.PushOptions{
//		Remote:      "origin",
//		Refspecs:    []string{"main"},
//		SetUpstream: true,
//	}.Run(ctx, repo)
//
// The package does not reimplement git. Every operation spawns the git
// binary, synchronously, in the repository directory, and structures the
// result. Failures keep git's own diagnostic text verbatim so callers can
// display or match on it.
package gitkit
