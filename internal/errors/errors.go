// Package errors provides sentinel errors and custom error types for the ldot application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrMalformedDocument indicates a stack document is not valid JSON or lacks required fields
	ErrMalformedDocument = errors.New("malformed stack document")

	// ErrEmptyName indicates a stack, project or script name is empty
	ErrEmptyName = errors.New("name is empty")

	// ErrNameHasSpace indicates a stack, project or script name contains whitespace
	ErrNameHasSpace = errors.New("name contains a space")

	// ErrDuplicateName indicates a project or script name is declared twice in one document
	ErrDuplicateName = errors.New("name not unique")

	// ErrCorruptRegistry indicates the registry file exists but cannot be parsed
	ErrCorruptRegistry = errors.New("corrupt registry")

	// ErrPathUnresolvable indicates a stack file path does not exist or cannot be canonicalized
	ErrPathUnresolvable = errors.New("path cannot be resolved")

	// ErrDuplicateRegistration indicates a stack file is already registered
	ErrDuplicateRegistration = errors.New("stack file already registered")

	// ErrNotRegistered indicates a stack file is not present in the registry
	ErrNotRegistered = errors.New("stack file not registered")

	// ErrUnknownStackName indicates no registered, valid stack declares the given name
	ErrUnknownStackName = errors.New("unknown stack name")

	// ErrStackNotFound indicates resolution found no registered stack with the given name
	ErrStackNotFound = errors.New("stack not found")

	// ErrNoStackSelected indicates no stack was given and no default stack is configured
	ErrNoStackSelected = errors.New("no stack selected")

	// ErrStageNotFound indicates no project/stage pair matched
	ErrStageNotFound = errors.New("stage not found")

	// ErrScriptNotFound indicates no script matched
	ErrScriptNotFound = errors.New("script not found")

	// ErrSpawnFailure indicates a command could not be launched at all
	ErrSpawnFailure = errors.New("command could not be started")

	// ErrCommandsFailed indicates a stage or script ran but not every command exited 0
	ErrCommandsFailed = errors.New("one or more commands failed")
)

// MalformedDocumentError represents a stack document that failed to parse
type MalformedDocumentError struct {
	Path string
	Err  error
}

func (e *MalformedDocumentError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("could not parse stack file %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("could not parse stack document: %v", e.Err)
}

// Is returns true if the target error is ErrMalformedDocument
func (e *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// NewMalformedDocumentError creates a new MalformedDocumentError
func NewMalformedDocumentError(path string, err error) *MalformedDocumentError {
	return &MalformedDocumentError{Path: path, Err: err}
}

// NameError represents a validation failure on a stack, project or script name.
// Kind is one of ErrEmptyName, ErrNameHasSpace or ErrDuplicateName.
type NameError struct {
	Field string // "Stack", "Project" or "Script"
	Name  string
	Kind  error
}

func (e *NameError) Error() string {
	switch e.Kind {
	case ErrEmptyName:
		return fmt.Sprintf("%s name is empty", e.Field)
	case ErrNameHasSpace:
		return fmt.Sprintf("%s name contains a space: %q", e.Field, e.Name)
	case ErrDuplicateName:
		return fmt.Sprintf("%s name not unique: %s", e.Field, e.Name)
	}
	return fmt.Sprintf("%s name %q is invalid", e.Field, e.Name)
}

// Is returns true if the target error matches the kind of violation
func (e *NameError) Is(target error) bool {
	return target == e.Kind
}

// NewNameError creates a new NameError
func NewNameError(field, name string, kind error) *NameError {
	return &NameError{Field: field, Name: name, Kind: kind}
}

// CorruptRegistryError represents a registry file that could not be parsed
type CorruptRegistryError struct {
	Path string
	Err  error
}

func (e *CorruptRegistryError) Error() string {
	return fmt.Sprintf("registry %s is corrupt: %v", e.Path, e.Err)
}

// Is returns true if the target error is ErrCorruptRegistry
func (e *CorruptRegistryError) Is(target error) bool {
	return target == ErrCorruptRegistry
}

func (e *CorruptRegistryError) Unwrap() error {
	return e.Err
}

// NewCorruptRegistryError creates a new CorruptRegistryError
func NewCorruptRegistryError(path string, err error) *CorruptRegistryError {
	return &CorruptRegistryError{Path: path, Err: err}
}

// PathError represents a registry operation on a stack file path.
// Kind is one of ErrPathUnresolvable, ErrDuplicateRegistration or ErrNotRegistered.
type PathError struct {
	Path string
	Kind error
	Err  error
}

func (e *PathError) Error() string {
	switch e.Kind {
	case ErrPathUnresolvable:
		if e.Err != nil {
			return fmt.Sprintf("could not convert %s to a canonical path: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("could not convert %s to a canonical path", e.Path)
	case ErrDuplicateRegistration:
		return fmt.Sprintf("stack file already registered: %s", e.Path)
	case ErrNotRegistered:
		return fmt.Sprintf("could not find stack file in registry: %s", e.Path)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Path)
}

// Is returns true if the target error matches the kind of failure
func (e *PathError) Is(target error) bool {
	return target == e.Kind
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// NewPathError creates a new PathError
func NewPathError(path string, kind error, err error) *PathError {
	return &PathError{Path: path, Kind: kind, Err: err}
}

// StackNameError represents a lookup of a stack by name that found nothing.
// Kind is ErrUnknownStackName or ErrStackNotFound.
type StackNameError struct {
	Name string
	Kind error
}

func (e *StackNameError) Error() string {
	if e.Kind == ErrUnknownStackName {
		return fmt.Sprintf("could not find stack name in registered stack files: %s", e.Name)
	}
	return fmt.Sprintf("could not find any stack files that have a stack name of: %s", e.Name)
}

// Is returns true if the target error matches the kind of failure
func (e *StackNameError) Is(target error) bool {
	return target == e.Kind
}

// NewUnknownStackNameError creates a StackNameError for SetDefault
func NewUnknownStackNameError(name string) *StackNameError {
	return &StackNameError{Name: name, Kind: ErrUnknownStackName}
}

// NewStackNotFoundError creates a StackNameError for resolution
func NewStackNotFoundError(name string) *StackNameError {
	return &StackNameError{Name: name, Kind: ErrStackNotFound}
}

// TargetNotFoundError represents a stage or script lookup that failed in a resolved stack.
// Kind is ErrStageNotFound or ErrScriptNotFound.
type TargetNotFoundError struct {
	Stack   string
	Project string // empty for scripts
	Name    string
	Kind    error
}

func (e *TargetNotFoundError) Error() string {
	if e.Kind == ErrScriptNotFound {
		return fmt.Sprintf("script %s not found in stack %s", e.Name, e.Stack)
	}
	return fmt.Sprintf("stage %s/%s not found in stack %s", e.Project, e.Name, e.Stack)
}

// Is returns true if the target error matches the kind of failure
func (e *TargetNotFoundError) Is(target error) bool {
	return target == e.Kind
}

// NewStageNotFoundError creates a new TargetNotFoundError for a project stage
func NewStageNotFoundError(stack, project, stage string) *TargetNotFoundError {
	return &TargetNotFoundError{Stack: stack, Project: project, Name: stage, Kind: ErrStageNotFound}
}

// NewScriptNotFoundError creates a new TargetNotFoundError for a script
func NewScriptNotFoundError(stack, script string) *TargetNotFoundError {
	return &TargetNotFoundError{Stack: stack, Name: script, Kind: ErrScriptNotFound}
}

// SpawnError represents a command that could not be launched
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%q: %v", e.Command, ErrSpawnFailure)
	}
	return fmt.Sprintf("%q: %v", e.Command, e.Err)
}

// Is returns true if the target error is ErrSpawnFailure
func (e *SpawnError) Is(target error) bool {
	return target == ErrSpawnFailure
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// NewSpawnError creates a new SpawnError
func NewSpawnError(command string, err error) *SpawnError {
	return &SpawnError{Command: command, Err: err}
}
