package actions

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"ldot.dev/ldot/internal/stack"
)

// stackFilePath expands ~ in path and falls back to the default file name
func stackFilePath(path string) (string, error) {
	if path == "" {
		path = stack.DefaultFileName
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("invalid stack file path %s: %w", path, err)
	}
	return expanded, nil
}

// generateTarget returns where generate should write. A directory gets the
// default file name appended.
func generateTarget(path string) (string, error) {
	expanded, err := stackFilePath(path)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(expanded); err == nil && info.IsDir() {
		expanded = filepath.Join(expanded, stack.DefaultFileName)
	}
	return filepath.Abs(expanded)
}
