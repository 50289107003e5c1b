package actions

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	ldoterrors "ldot.dev/ldot/internal/errors"
	"ldot.dev/ldot/testhelpers"
)

func TestConfigListAction(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*testhelpers.Scene, string, string) {
		t.Helper()
		scene := testhelpers.NewScene(t, nil)
		ctx, _ := newTestContext(t, scene)
		good := loadStack(t, ctx, scene, "a/ldot_stack.json", testhelpers.SimpleStack("web", "api", "build", "echo hi"))
		broken := loadStack(t, ctx, scene, "b/ldot_stack.json", testhelpers.SimpleStack("db", "api", "build", "echo hi"))
		require.NoError(t, ConfigDefaultAction(ctx, ConfigDefaultOptions{Name: "web"}))
		scene.WriteFile(t, "b/ldot_stack.json", "{")
		return scene, good, broken
	}

	t.Run("text", func(t *testing.T) {
		t.Parallel()
		scene, good, broken := setup(t)
		ctx, out := newTestContext(t, scene)

		require.NoError(t, ConfigListAction(ctx, ConfigListOptions{}))

		require.Contains(t, out.String(), "Default stack: web")
		require.Contains(t, out.String(), good+" [web]")
		require.Contains(t, out.String(), broken+" [invalid: ")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		scene, good, broken := setup(t)
		ctx, out := newTestContext(t, scene)

		require.NoError(t, ConfigListAction(ctx, ConfigListOptions{Format: FormatJSON}))

		var listing RegistryListing
		require.NoError(t, json.Unmarshal(out.Bytes(), &listing))
		require.Equal(t, "web", listing.DefaultStack)
		require.Equal(t, scene.RegistryPath, listing.RegistryPath)
		require.Len(t, listing.StackFiles, 2)
		require.Equal(t, StackFileRow{Path: good, StackName: "web", Valid: true}, listing.StackFiles[0])
		require.Equal(t, broken, listing.StackFiles[1].Path)
		require.False(t, listing.StackFiles[1].Valid)
		require.NotEmpty(t, listing.StackFiles[1].Error)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		scene, good, _ := setup(t)
		ctx, out := newTestContext(t, scene)

		require.NoError(t, ConfigListAction(ctx, ConfigListOptions{Format: FormatYAML}))

		var listing RegistryListing
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &listing))
		require.Equal(t, "web", listing.DefaultStack)
		require.Equal(t, good, listing.StackFiles[0].Path)
		require.Equal(t, "web", listing.StackFiles[0].StackName)
	})

	t.Run("empty registry", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		ctx, out := newTestContext(t, scene)

		require.NoError(t, ConfigListAction(ctx, ConfigListOptions{Format: FormatText}))
		require.Contains(t, out.String(), "Default stack: (none)")
		require.Contains(t, out.String(), "No stack files registered")
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		ctx, _ := newTestContext(t, scene)

		err := ConfigListAction(ctx, ConfigListOptions{Format: "xml"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "xml")
	})
}

func TestConfigDefaultAction(t *testing.T) {
	t.Parallel()

	t.Run("sets only registered valid stacks", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		ctx, out := newTestContext(t, scene)

		err := ConfigDefaultAction(ctx, ConfigDefaultOptions{Name: "web"})
		require.ErrorIs(t, err, ldoterrors.ErrUnknownStackName)

		loadStack(t, ctx, scene, "a/ldot_stack.json", testhelpers.SimpleStack("web", "api", "build", "echo hi"))
		require.NoError(t, ConfigDefaultAction(ctx, ConfigDefaultOptions{Name: "web"}))
		testhelpers.ExpectDefaultStack(t, scene.RegistryPath, "web")
		require.Contains(t, out.String(), "Default stack set to web")

		err = ConfigDefaultAction(ctx, ConfigDefaultOptions{Name: "ghost"})
		require.ErrorIs(t, err, ldoterrors.ErrUnknownStackName)
		testhelpers.ExpectDefaultStack(t, scene.RegistryPath, "web")
	})

	t.Run("shows and clears the default", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		ctx, out := newTestContext(t, scene)
		loadStack(t, ctx, scene, "a/ldot_stack.json", testhelpers.SimpleStack("web", "api", "build", "echo hi"))
		require.NoError(t, ConfigDefaultAction(ctx, ConfigDefaultOptions{Name: "web"}))
		out.Reset()

		require.NoError(t, ConfigDefaultAction(ctx, ConfigDefaultOptions{}))
		require.Equal(t, "web\n", out.String())

		require.NoError(t, ConfigDefaultAction(ctx, ConfigDefaultOptions{Clear: true}))
		testhelpers.ExpectDefaultStack(t, scene.RegistryPath, "")

		out.Reset()
		require.NoError(t, ConfigDefaultAction(ctx, ConfigDefaultOptions{}))
		require.Contains(t, out.String(), "No default stack is set")
	})
}

func TestConfigEditAndRegen(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, nil)
	ctx, out := newTestContext(t, scene)
	loadStack(t, ctx, scene, "a/ldot_stack.json", testhelpers.SimpleStack("web", "api", "build", "echo hi"))
	require.NoError(t, ConfigDefaultAction(ctx, ConfigDefaultOptions{Name: "web"}))
	out.Reset()

	require.NoError(t, ConfigEditAction(ctx))
	require.Equal(t, scene.RegistryPath+"\n", out.String())

	require.NoError(t, ConfigRegenAction(ctx))
	testhelpers.ExpectRegistered(t, scene.RegistryPath)
	testhelpers.ExpectDefaultStack(t, scene.RegistryPath, "")
}
