package session

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// editQuery writes content to a fresh temp file, opens the user's editor
// on it, and returns the edited text as the next query. The temp file is
// removed on every path, including editor and read failures.
func editQuery(content string) (string, error) {
	editor, err := resolveEditor()
	if err != nil {
		return "", err
	}
	return editQueryWith(content, editor)
}

// resolveEditor picks $EDITOR, falling back to common editors.
func resolveEditor() (string, error) {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor, nil
	}
	for _, candidate := range []string{"vim", "nano", "code"} {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no editor found, set the EDITOR environment variable")
}

func editQueryWith(content, editor string) (string, error) {
	tmp, err := os.CreateTemp("", "qq-edit-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor failed: %w", err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}

	return strings.TrimSpace(string(edited)), nil
}
