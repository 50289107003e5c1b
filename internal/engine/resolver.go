package engine

import (
	ldoterrors "ldot.dev/ldot/internal/errors"
	"ldot.dev/ldot/internal/tui"
)

// Resolver maps a stack name to the registered file that declares it
type Resolver struct {
	registry Registry
	splog    *tui.Splog
}

// NewResolver creates a resolver over the given registry
func NewResolver(registry Registry, splog *tui.Splog) *Resolver {
	return &Resolver{registry: registry, splog: splog}
}

// Resolve scans registered files in registration order and returns the first
// one that loads, validates and declares name. Files that fail to load or
// validate are skipped with a warning.
func (r *Resolver) Resolve(name string) (*Resolution, error) {
	candidates, err := r.registry.Candidates()
	if err != nil {
		return nil, err
	}

	for _, c := range candidates {
		if !c.Valid() {
			r.splog.Warn("Skipping %s: %v", c.Path, c.Err)
			continue
		}
		if c.Doc.StackName == name {
			r.splog.Debug("Resolved stack %s to %s", name, c.Path)
			return &Resolution{Path: c.Path, Document: c.Doc}, nil
		}
	}

	return nil, ldoterrors.NewStackNotFoundError(name)
}
