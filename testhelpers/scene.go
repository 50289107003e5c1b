package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"ldot.dev/ldot/internal/stack"
)

// Scene is a temporary workspace holding stack files and a registry path.
type Scene struct {
	Dir          string
	RegistryPath string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a scene rooted in a fresh temporary directory.
// The directory is resolved through symlinks so that paths match the
// canonical form the registry stores.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	scene := &Scene{
		Dir:          dir,
		RegistryPath: filepath.Join(dir, "data", "config.json"),
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// Path returns the absolute path of name inside the scene
func (s *Scene) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// WriteFile writes raw content to name inside the scene and returns its path
func (s *Scene) WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := s.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// WriteStack writes doc as a stack file named name inside the scene and returns its path
func (s *Scene) WriteStack(t *testing.T, name string, doc *stack.Document) string {
	t.Helper()
	data, err := stack.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal stack %s: %v", name, err)
	}
	return s.WriteFile(t, name, string(data))
}

// Isolate points the LDOT_* environment at the scene so that commands read
// and write only inside it. Tests that call Isolate cannot run in parallel.
func (s *Scene) Isolate(t *testing.T) {
	t.Helper()
	t.Setenv("LDOT_REGISTRY", s.RegistryPath)
	t.Setenv("LDOT_LOG_FILE", filepath.Join(s.Dir, "logs", "ldot.log"))
	t.Setenv("LDOT_NON_INTERACTIVE", "true")
	t.Setenv("LDOT_SHELL_WORDS", "false")
	t.Setenv("LDOT_DEBUG", "false")
}
