// Package testhelpers provides testing utilities for ldot,
// including a scene system, stack fixtures, and custom assertions.
package testhelpers

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"ldot.dev/ldot/internal/stack"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// SimpleStack returns a valid stack with one project holding one stage
func SimpleStack(stackName, project, stage string, commands ...string) *stack.Document {
	return &stack.Document{
		Version:   "1.0.0",
		StackName: stackName,
		Projects: []stack.Project{
			{
				Name:   project,
				Stages: []stack.Stage{{Name: stage, Commands: commands}},
			},
		},
		Scripts: []stack.Script{},
	}
}

// WithScript appends a script to doc and returns doc
func WithScript(doc *stack.Document, name string, commands ...string) *stack.Document {
	doc.Scripts = append(doc.Scripts, stack.Script{Name: name, Commands: commands})
	return doc
}

type registryFile struct {
	DefaultStack         string   `json:"default_stack"`
	RegisteredStackFiles []string `json:"registered_stack_files"`
}

// ReadRegistry decodes the registry file at path without going through the store
func ReadRegistry(t *testing.T, path string) (string, []string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read registry")
	var reg registryFile
	require.NoError(t, json.Unmarshal(data, &reg), "Failed to decode registry")
	return reg.DefaultStack, reg.RegisteredStackFiles
}

// ExpectRegistered asserts the registry lists exactly the given files, in order
func ExpectRegistered(t *testing.T, registryPath string, expected ...string) {
	t.Helper()
	_, files := ReadRegistry(t, registryPath)
	if expected == nil {
		expected = []string{}
	}
	require.Equal(t, expected, files, "Registered stack files do not match")
}

// ExpectDefaultStack asserts the registry's default stack
func ExpectDefaultStack(t *testing.T, registryPath string, expected string) {
	t.Helper()
	def, _ := ReadRegistry(t, registryPath)
	require.Equal(t, expected, def, "Default stack does not match")
}
