package actions

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	ldoterrors "ldot.dev/ldot/internal/errors"
	"ldot.dev/ldot/internal/stack"
	"ldot.dev/ldot/internal/tui"
	"ldot.dev/ldot/testhelpers"
)

func TestGenerateAction(t *testing.T) {
	t.Parallel()

	t.Run("writes a template with defaults", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		ctx, out := newTestContext(t, scene)
		path := scene.Path("ldot_stack.json")

		require.NoError(t, GenerateAction(ctx, GenerateOptions{File: path}))

		doc, err := stack.Load(path)
		require.NoError(t, err)
		require.Equal(t, "stack", doc.StackName)
		require.Equal(t, "1.0.0", doc.Version)
		require.Equal(t, "Stack Description", doc.Description)
		require.Equal(t, "some_project", doc.Projects[0].Name)
		require.Equal(t, "stage_name", doc.Projects[0].Stages[0].Name)
		require.Equal(t, []string{"echo hello world"}, doc.Scripts[0].Commands)
		require.Contains(t, out.String(), "ldot load "+path)
	})

	t.Run("appends the default file name to a directory", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		ctx, _ := newTestContext(t, scene)
		require.NoError(t, os.MkdirAll(scene.Path("svc"), 0750))

		require.NoError(t, GenerateAction(ctx, GenerateOptions{File: scene.Path("svc"), StackName: "svc"}))

		doc, err := stack.Load(scene.Path("svc/ldot_stack.json"))
		require.NoError(t, err)
		require.Equal(t, "svc", doc.StackName)
	})

	t.Run("leaves an existing file untouched", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		ctx, out := newTestContext(t, scene)
		path := scene.WriteFile(t, "ldot_stack.json", "keep me")

		require.NoError(t, GenerateAction(ctx, GenerateOptions{File: path}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "keep me", string(content))
		require.Contains(t, out.String(), "already exists")
		require.Contains(t, out.String(), "ldot load "+path)
	})

	t.Run("rejects a stack name with a space", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		ctx, _ := newTestContext(t, scene)
		path := scene.Path("ldot_stack.json")

		err := GenerateAction(ctx, GenerateOptions{File: path, StackName: "my stack"})
		require.ErrorIs(t, err, ldoterrors.ErrNameHasSpace)
		require.NoFileExists(t, path)
	})
}

func TestGenerateActionInteractive(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	ctx, _ := newTestContext(t, scene)
	target := scene.Path("generated/ldot_stack.json")

	var asked []string
	answers := map[string]string{
		"Stack file path":   target,
		"Stack name":        "web",
		"Stack version":     "2.0.0",
		"Stack description": "Web services",
	}
	original := promptText
	t.Cleanup(func() { promptText = original })
	promptText = func(message, defaultValue string, validate func(string) error) (string, error) {
		asked = append(asked, message+"="+defaultValue)
		answer := answers[message]
		if validate != nil {
			if err := validate(answer); err != nil {
				return "", err
			}
		}
		return answer, nil
	}

	require.NoError(t, GenerateAction(ctx, GenerateOptions{File: "custom.json", Interactive: true}))

	require.Equal(t, []string{
		"Stack file path=custom.json",
		"Stack name=stack",
		"Stack version=1.0.0",
		"Stack description=Stack Description",
	}, asked)

	doc, err := stack.Load(target)
	require.NoError(t, err)
	require.Equal(t, "web", doc.StackName)
	require.Equal(t, "2.0.0", doc.Version)
	require.Equal(t, "Web services", doc.Description)
}

func TestGenerateActionCanceled(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	ctx, _ := newTestContext(t, scene)

	original := promptText
	t.Cleanup(func() { promptText = original })
	promptText = func(string, string, func(string) error) (string, error) {
		return "", tui.ErrCanceled
	}

	err := GenerateAction(ctx, GenerateOptions{File: scene.Path("x.json"), Interactive: true})
	require.ErrorIs(t, err, tui.ErrCanceled)
	require.NoFileExists(t, scene.Path("x.json"))
}
