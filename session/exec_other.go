//go:build !unix

package session

import (
	"errors"
	"os"
	"os/exec"
)

// replaceProcess approximates process-image replacement on platforms
// without an exec primitive: spawn the shell, then exit with the child's
// exit code.
func replaceProcess(command string) error {
	shell := os.Getenv("COMSPEC")
	if shell == "" {
		shell = "cmd"
	}

	cmd := exec.Command(shell, "/C", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return err
	}

	os.Exit(0)
	return nil
}
