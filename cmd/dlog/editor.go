package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/yzke/dlog/internal/config"
)

// resolveEditor picks the editor to spawn: config file, then $EDITOR,
// then vi.
func resolveEditor(cfg *config.Config) string {
	if cfg != nil && cfg.Editor != "" {
		return cfg.Editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

// editContent runs the user's editor over a temp file seeded with
// initial and returns whatever the file holds afterwards. A non-zero
// editor exit aborts the enclosing command; nothing is persisted.
func editContent(cfg *config.Config, initial string) (string, error) {
	path := filepath.Join(os.TempDir(), "dlog-"+uuid.NewString()+".md")
	if err := os.WriteFile(path, []byte(initial), 0600); err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(path)

	c := exec.Command(resolveEditor(cfg), path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		return "", fmt.Errorf("editor: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read edited file: %w", err)
	}
	return string(content), nil
}
