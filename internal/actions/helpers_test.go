package actions

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"ldot.dev/ldot/internal/config"
	"ldot.dev/ldot/internal/runtime"
	"ldot.dev/ldot/internal/stack"
	"ldot.dev/ldot/testhelpers"
)

// newTestContext opens a runtime context whose registry, log file and
// console output all live inside the scene
func newTestContext(t *testing.T, scene *testhelpers.Scene) (*runtime.Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ctx, err := runtime.GetContext(runtime.Options{
		Settings: &config.Settings{
			RegistryPath:   scene.RegistryPath,
			LogFile:        scene.Path("logs/ldot.log"),
			LogMaxSize:     1,
			LogMaxBackups:  1,
			LogMaxAge:      1,
			NonInteractive: true,
		},
		Stdout: &out,
		Stderr: &out,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx, &out
}

// loadStack writes doc into the scene and registers it through LoadAction
func loadStack(t *testing.T, ctx *runtime.Context, scene *testhelpers.Scene, name string, doc *stack.Document) string {
	t.Helper()
	path := scene.WriteStack(t, name, doc)
	require.NoError(t, LoadAction(ctx, LoadOptions{File: path}))
	return path
}
