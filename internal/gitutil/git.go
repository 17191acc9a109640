package gitutil

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrDetachedHead is returned when HEAD does not point at a branch.
var ErrDetachedHead = errors.New("HEAD is detached")

// GetCurrentBranch returns the name of the branch checked out in the repository
// containing dir.
//
// Returns an error if:
//   - Git command fails to execute
//   - dir is not inside a Git repository
//   - HEAD is detached (git reports "HEAD")
//
// Example usage:
//
//	branch, err := gitutil.GetCurrentBranch(scriptDir)
//	if err != nil {
//	    return fmt.Errorf("failed to get git branch: %w", err)
//	}
func GetCurrentBranch(dir string) (string, error) {
	cmd := exec.Command("git", "-C", dir, "rev-parse", "--abbrev-ref", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("git rev-parse in %q: %w: %s", dir, err, strings.TrimSpace(string(exitErr.Stderr)))
		}

		return "", fmt.Errorf("git rev-parse in %q: %w", dir, err)
	}

	branch := strings.TrimSpace(string(output))
	switch branch {
	case "":
		return "", fmt.Errorf("empty git branch name")
	case "HEAD":
		return "", ErrDetachedHead
	}

	return branch, nil
}
