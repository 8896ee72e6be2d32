package lint

import (
	"os/exec"
)

// emptyTree is git's canonical empty tree object. It is the diff target
// for the very first commit in a repository, where HEAD does not exist yet.
const emptyTree = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// DiffTarget returns the object staged changes should be diffed against:
// HEAD when the repository has at least one commit, otherwise the
// canonical empty tree.
func DiffTarget(dir string) string {
	cmd := exec.Command("git", "rev-parse", "--verify", "HEAD")
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		return emptyTree
	}
	return "HEAD"
}
