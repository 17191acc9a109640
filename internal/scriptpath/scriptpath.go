// Package scriptpath locates the directory the ofx script lives in.
//
// ofx is expected to live in <OF_ROOT>/addons/<addon>/scripts/<dir>, and the
// local configuration is derived from that location.
package scriptpath

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvVar overrides the detected script directory. It is useful with `go run`,
// where the executable lives in a temporary build directory.
const EnvVar = "OFX_SCRIPT_DIR"

// executable is replaced in tests.
var executable = os.Executable

// Locate returns the absolute directory holding the ofx script.
// It checks in the following order:
// 1. OFX_SCRIPT_DIR in the environment snapshot
// 2. The directory of os.Executable(), with symlinks resolved
func Locate(snapshot map[string]string) (string, error) {
	// Method 1: Check OFX_SCRIPT_DIR
	if envPath := snapshot[EnvVar]; envPath != "" {
		absPath, err := filepath.Abs(envPath)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", EnvVar, err)
		}

		return absPath, nil
	}

	// Method 2: Directory of the running executable
	execPath, err := executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}

	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return filepath.Dir(execPath), nil
}
