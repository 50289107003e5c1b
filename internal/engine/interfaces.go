package engine

import (
	"context"

	"ldot.dev/ldot/internal/config"
	"ldot.dev/ldot/internal/shell"
)

// Registry is the part of the registry store the engine reads.
// *config.Store implements it.
type Registry interface {
	Read() (*config.Registry, error)
	Candidates() ([]config.Candidate, error)
}

// CommandRunner runs an ordered command list. *shell.Runner implements it.
type CommandRunner interface {
	Run(ctx context.Context, commands []string) *shell.Report
}
