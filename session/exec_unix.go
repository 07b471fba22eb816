//go:build unix

package session

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// replaceProcess swaps the current process image for the user's shell
// running command. It does not return on success; conversation state and
// open resources are discarded by the image replacement.
func replaceProcess(command string) error {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	path, err := exec.LookPath(shell)
	if err != nil {
		return fmt.Errorf("shell not found: %w", err)
	}

	return syscall.Exec(path, []string{shell, "-c", command}, os.Environ())
}
