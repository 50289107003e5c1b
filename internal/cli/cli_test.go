package cli_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	ldoterrors "ldot.dev/ldot/internal/errors"
	"ldot.dev/ldot/testhelpers"
)

func TestVersionCommand(t *testing.T) {
	out, err := runLdot(t, "version")
	require.NoError(t, err)
	require.Equal(t, "ldot test (commit abc123, built today)\n", out)
}

func TestStackFileWorkflow(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	scene.Isolate(t)
	stackFile := scene.Path("web/ldot_stack.json")

	t.Run("generate writes a template", func(t *testing.T) {
		out, err := runLdot(t, "generate", stackFile, "--name", "web", "--no-interactive")
		require.NoError(t, err, out)
		require.FileExists(t, stackFile)
	})

	t.Run("validate accepts it", func(t *testing.T) {
		out, err := runLdot(t, "validate", stackFile)
		require.NoError(t, err, out)
		require.Contains(t, out, "Stack web is valid")
	})

	t.Run("load registers it", func(t *testing.T) {
		out, err := runLdot(t, "load", stackFile)
		require.NoError(t, err, out)
		testhelpers.ExpectRegistered(t, scene.RegistryPath, stackFile)
	})

	t.Run("register alias rejects a second load", func(t *testing.T) {
		_, err := runLdot(t, "register", stackFile)
		require.ErrorIs(t, err, ldoterrors.ErrDuplicateRegistration)
	})

	t.Run("config default sets the default stack", func(t *testing.T) {
		out, err := runLdot(t, "configure", "default", "web")
		require.NoError(t, err, out)
		testhelpers.ExpectDefaultStack(t, scene.RegistryPath, "web")
	})

	t.Run("execute runs a stage of the default stack", func(t *testing.T) {
		out, err := runLdot(t, "x", "some_project", "stage_name")
		require.NoError(t, err, out)
		require.Contains(t, out, "Executing 1 commands")
		require.Contains(t, out, "> echo hello world")
		require.Contains(t, out, `"echo hello world" exit code: 0`)
	})

	t.Run("script runs a script by stack name", func(t *testing.T) {
		out, err := runLdot(t, "script", "web", "script_name")
		require.NoError(t, err, out)
		require.Contains(t, out, "hello world")
	})

	t.Run("config list reports json", func(t *testing.T) {
		out, err := runLdot(t, "config", "list", "--format", "json")
		require.NoError(t, err)

		var listing struct {
			DefaultStack string `json:"default_stack"`
			StackFiles   []struct {
				Path      string `json:"path"`
				StackName string `json:"stack_name"`
			} `json:"registered_stack_files"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &listing), out)
		require.Equal(t, "web", listing.DefaultStack)
		require.Equal(t, stackFile, listing.StackFiles[0].Path)
	})

	t.Run("unload removes it and clears the default", func(t *testing.T) {
		out, err := runLdot(t, "unregister", stackFile)
		require.NoError(t, err, out)
		testhelpers.ExpectRegistered(t, scene.RegistryPath)
		testhelpers.ExpectDefaultStack(t, scene.RegistryPath, "")
	})
}

func TestRegistryFlagOverridesEnvironment(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	scene.Isolate(t)
	other := scene.Path("elsewhere/config.json")
	stackFile := scene.WriteStack(t, "ldot_stack.json", testhelpers.SimpleStack("web", "api", "build", "echo hi"))

	out, err := runLdot(t, "--registry", other, "load", stackFile)
	require.NoError(t, err, out)

	testhelpers.ExpectRegistered(t, other, stackFile)
	require.NoFileExists(t, scene.RegistryPath)
}

func TestCorruptRegistryIsRegenerated(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	scene.Isolate(t)
	scene.WriteFile(t, "data/config.json", "not json")

	out, err := runLdot(t, "config", "list")
	require.NoError(t, err, out)
	require.Contains(t, out, "Regenerated an empty registry")
	testhelpers.ExpectRegistered(t, scene.RegistryPath)
}

func TestShellWordsFlag(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	scene.Isolate(t)
	stackFile := scene.WriteStack(t, "ldot_stack.json", testhelpers.SimpleStack("web", "api", "build", `sh -c "exit 0"`))
	_, err := runLdot(t, "load", stackFile)
	require.NoError(t, err)

	// plain whitespace splitting hands sh a broken quoted script
	out, err := runLdot(t, "execute", "web", "api", "build")
	require.ErrorIs(t, err, ldoterrors.ErrCommandsFailed, out)

	out, err = runLdot(t, "--shell-words", "execute", "web", "api", "build")
	require.NoError(t, err, out)
}

func TestArgumentErrors(t *testing.T) {
	_, err := runLdot(t, "execute", "only-one")
	require.Error(t, err)

	_, err = runLdot(t, "script", "a", "b", "c")
	require.Error(t, err)
}

func TestBinaryExitCodes(t *testing.T) {
	binary := testhelpers.BinaryPath(t)
	scene := testhelpers.NewScene(t, nil)

	run := func(args ...string) (string, string, int) {
		cmd := exec.Command(binary, args...)
		cmd.Dir = scene.Dir
		cmd.Env = append(os.Environ(),
			"LDOT_REGISTRY="+scene.RegistryPath,
			"LDOT_LOG_FILE="+scene.Path("logs/ldot.log"),
			"LDOT_NON_INTERACTIVE=true",
			"LDOT_SHELL_WORDS=false",
			"LDOT_DEBUG=false",
		)
		var stdout, stderr strings.Builder
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		err := cmd.Run()
		code := 0
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		} else {
			require.NoError(t, err)
		}
		return stdout.String(), stderr.String(), code
	}

	stackFile := scene.WriteStack(t, "ldot_stack.json",
		testhelpers.WithScript(testhelpers.SimpleStack("web", "api", "build", "echo ok"), "broken", "false", "echo still-ran"))

	_, stderr, code := run("load")
	require.Equal(t, 0, code, stderr)
	testhelpers.ExpectRegistered(t, scene.RegistryPath, stackFile)

	stdout, _, code := run("execute", "web", "api", "build")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "ok")

	stdout, stderr, code = run("script", "web", "broken")
	require.Equal(t, 1, code)
	require.Contains(t, stdout, "still-ran")
	require.Contains(t, stdout, `"false" exit code: 1`)
	require.Equal(t, "Error: one or more commands failed\n", stderr)

	_, stderr, code = run("execute", "ghost", "api", "build")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "Error: could not find any stack files that have a stack name of: ghost")

	scene.WriteFile(t, "bad.json", `{"stack_name": "has space", "projects": [], "scripts": []}`)
	_, stderr, code = run("validate", "bad.json")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "has space")
}
