// Package gitrepo initializes a git repository in a freshly scaffolded
// project.
package gitrepo

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DefaultBranch is the initial branch of new repositories.
const DefaultBranch = "main"

// Init creates a repository in dir on DefaultBranch. It reports false
// without error when dir is already a repository.
func Init(dir string) (bool, error) {
	_, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(DefaultBranch),
		},
	})
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("initializing git repository in %s: %w", dir, err)
	}
	return true, nil
}
