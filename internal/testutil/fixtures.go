// Package testutil provides fixtures shared by ofx tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// AddonTree is an openFrameworks checkout holding one addon with an ofx script directory:
//
//	<OfRoot>/addons/<AddonName>/scripts/ci
type AddonTree struct {
	OfRoot    string
	AddonDir  string
	ScriptDir string
}

// NewAddonTree creates an AddonTree for addonName under a fresh temporary directory.
func NewAddonTree(t *testing.T, addonName string) AddonTree {
	t.Helper()

	ofRoot := filepath.Join(t.TempDir(), "openFrameworks")
	addonDir := filepath.Join(ofRoot, "addons", addonName)
	scriptDir := filepath.Join(addonDir, "scripts", "ci")

	if err := os.MkdirAll(scriptDir, 0o755); err != nil {
		t.Fatalf("Failed to create addon tree: %v", err)
	}

	return AddonTree{OfRoot: ofRoot, AddonDir: addonDir, ScriptDir: scriptDir}
}

// RequireGit skips the test when no git binary is available.
func RequireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// RunGit runs git with args in dir and fails the test on error.
func RunGit(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=ofx", "GIT_AUTHOR_EMAIL=ofx@example.com",
		"GIT_COMMITTER_NAME=ofx", "GIT_COMMITTER_EMAIL=ofx@example.com",
	)

	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// InitRepo makes dir a git repository with one empty commit on branch.
func InitRepo(t *testing.T, dir, branch string) {
	t.Helper()

	RequireGit(t)
	RunGit(t, dir, "init", "--quiet")
	RunGit(t, dir, "checkout", "--quiet", "-b", branch)
	RunGit(t, dir, "commit", "--quiet", "--allow-empty", "-m", "init")
}
