package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	binaryOnce    sync.Once
	binaryPath    string
	binaryCleanup func()
	binaryErr     error
)

// BinaryPath returns the path to an ldot binary built from this module.
// The binary is built once per test process.
func BinaryPath(t *testing.T) string {
	t.Helper()
	binaryOnce.Do(func() {
		binaryPath, binaryCleanup, binaryErr = buildBinary()
	})
	if binaryErr != nil {
		t.Fatalf("failed to build ldot binary: %v", binaryErr)
	}
	return binaryPath
}

// TestMain runs the package tests and removes the shared binary afterwards.
func TestMain(m *testing.M) {
	code := m.Run()
	if binaryCleanup != nil {
		binaryCleanup()
	}
	os.Exit(code)
}

func buildBinary() (string, func(), error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", nil, fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "ldot-test-binary-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}

	path := filepath.Join(tmpDir, "ldot")
	cmd := exec.Command("go", "build", "-o", path, "./cmd/ldot")
	cmd.Dir = moduleRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to build: %s: %w", string(output), err)
	}

	return path, cleanup, nil
}

// findModuleRoot walks up from startDir to the directory holding go.mod
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
