package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/mitchellh/go-homedir"

	ldoterrors "ldot.dev/ldot/internal/errors"
	"ldot.dev/ldot/internal/stack"
)

// Registry is the persisted list of stack files and the selected default stack
type Registry struct {
	DefaultStack         string   `json:"default_stack" yaml:"default_stack"`
	RegisteredStackFiles []string `json:"registered_stack_files" yaml:"registered_stack_files"`
}

type wireRegistry struct {
	DefaultStack         *string   `json:"default_stack"`
	RegisteredStackFiles *[]string `json:"registered_stack_files"`
}

// Candidate is the outcome of loading one registered stack file
type Candidate struct {
	Path string
	Doc  *stack.Document
	Err  error
}

// Valid reports whether the candidate parsed and validated
func (c Candidate) Valid() bool {
	return c.Err == nil
}

// Store reads and writes the registry file. It holds no cached state; every
// operation reads the file again and persists its change in full.
type Store struct {
	path string
}

// NewStore creates a store backed by the registry file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the registry file location
func (s *Store) Path() string {
	return s.path
}

// Read loads the registry. A missing file is replaced by an empty registry,
// which is persisted before being returned.
func (s *Store) Read() (*Registry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		reg := &Registry{RegisteredStackFiles: []string{}}
		if err := s.Write(reg); err != nil {
			return nil, err
		}
		return reg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read registry %s: %w", s.path, err)
	}

	var w wireRegistry
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, ldoterrors.NewCorruptRegistryError(s.path, err)
	}
	if w.DefaultStack == nil {
		return nil, ldoterrors.NewCorruptRegistryError(s.path, fmt.Errorf("missing field `default_stack`"))
	}
	if w.RegisteredStackFiles == nil {
		return nil, ldoterrors.NewCorruptRegistryError(s.path, fmt.Errorf("missing field `registered_stack_files`"))
	}

	return &Registry{
		DefaultStack:         *w.DefaultStack,
		RegisteredStackFiles: *w.RegisteredStackFiles,
	}, nil
}

// Write replaces the registry file with reg. It is not atomic.
func (s *Store) Write(reg *Registry) error {
	out := *reg
	if out.RegisteredStackFiles == nil {
		out.RegisteredStackFiles = []string{}
	}

	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create registry directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write registry %s: %w", s.path, err)
	}
	return nil
}

// Regenerate overwrites the registry with an empty one
func (s *Store) Regenerate() (*Registry, error) {
	reg := &Registry{RegisteredStackFiles: []string{}}
	if err := s.Write(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Canonicalize expands ~ and returns the absolute path with symlinks resolved.
// The file must exist.
func Canonicalize(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", ldoterrors.NewPathError(path, ldoterrors.ErrPathUnresolvable, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", ldoterrors.NewPathError(path, ldoterrors.ErrPathUnresolvable, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", ldoterrors.NewPathError(path, ldoterrors.ErrPathUnresolvable, err)
	}
	return resolved, nil
}

// Register appends the canonical form of path to the registry and returns it
func (s *Store) Register(path string) (string, error) {
	canonical, err := Canonicalize(path)
	if err != nil {
		return "", err
	}

	reg, err := s.Read()
	if err != nil {
		return "", err
	}

	if slices.Contains(reg.RegisteredStackFiles, canonical) {
		return "", ldoterrors.NewPathError(canonical, ldoterrors.ErrDuplicateRegistration, nil)
	}

	reg.RegisteredStackFiles = append(reg.RegisteredStackFiles, canonical)
	if err := s.Write(reg); err != nil {
		return "", err
	}
	return canonical, nil
}

// Unregister removes the canonical form of path from the registry and returns it.
// The stack file itself is left untouched.
func (s *Store) Unregister(path string) (string, error) {
	canonical, err := Canonicalize(path)
	if err != nil {
		return "", err
	}

	reg, err := s.Read()
	if err != nil {
		return "", err
	}

	idx := slices.Index(reg.RegisteredStackFiles, canonical)
	if idx < 0 {
		return "", ldoterrors.NewPathError(canonical, ldoterrors.ErrNotRegistered, nil)
	}

	reg.RegisteredStackFiles = slices.Delete(reg.RegisteredStackFiles, idx, idx+1)
	if err := s.Write(reg); err != nil {
		return "", err
	}
	return canonical, nil
}

// Candidates loads every registered stack file in registry order. Files that
// cannot be read, parsed or validated are reported in Candidate.Err rather
// than failing the scan.
func (s *Store) Candidates() ([]Candidate, error) {
	reg, err := s.Read()
	if err != nil {
		return nil, err
	}
	return LoadCandidates(reg.RegisteredStackFiles), nil
}

// LoadCandidates loads each path with stack.Load
func LoadCandidates(paths []string) []Candidate {
	candidates := make([]Candidate, 0, len(paths))
	for _, path := range paths {
		doc, err := stack.Load(path)
		candidates = append(candidates, Candidate{Path: path, Doc: doc, Err: err})
	}
	return candidates
}

func hasValidStack(candidates []Candidate, name string) bool {
	for _, c := range candidates {
		if c.Valid() && c.Doc.StackName == name {
			return true
		}
	}
	return false
}

// SetDefault selects the default stack. An empty name clears the selection;
// any other name must belong to a registered stack that currently validates.
func (s *Store) SetDefault(name string) error {
	reg, err := s.Read()
	if err != nil {
		return err
	}

	if name != "" && !hasValidStack(LoadCandidates(reg.RegisteredStackFiles), name) {
		return ldoterrors.NewUnknownStackNameError(name)
	}

	reg.DefaultStack = name
	return s.Write(reg)
}

// Reconcile clears default_stack when it no longer names a registered, valid
// stack. It reports whether the registry was changed.
func (s *Store) Reconcile() (bool, error) {
	reg, err := s.Read()
	if err != nil {
		return false, err
	}
	if reg.DefaultStack == "" {
		return false, nil
	}
	if hasValidStack(LoadCandidates(reg.RegisteredStackFiles), reg.DefaultStack) {
		return false, nil
	}

	reg.DefaultStack = ""
	if err := s.Write(reg); err != nil {
		return false, err
	}
	return true, nil
}
