package gitutils

import (
	"errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var gitPlainOpen = git.PlainOpen

// GetBranch returns the checked out branch of the repository containing dir.
// A detached HEAD is reported as a short commit hash. Outside a repository it returns "".
func GetBranch(dir string) (string, error) {
	root := GetRepositoryRoot(dir)
	if root == "" {
		return "", nil
	}
	repo, err := gitPlainOpen(root)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		if !errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", err
		}
		// No commits yet: HEAD still points at the unborn branch.
		ref, refErr := repo.Reference(plumbing.HEAD, false)
		if refErr != nil {
			return "", refErr
		}
		return ref.Target().Short(), nil
	}
	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}
	return head.Hash().String()[:7], nil
}

// BranchLabel formats the branch for a tview status line.
func BranchLabel(branch string) string {
	if branch == "" {
		return ""
	}
	return "[gray]🌿" + branch + "[-]"
}
