package actions

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"ldot.dev/ldot/internal/config"
	"ldot.dev/ldot/internal/runtime"
	"ldot.dev/ldot/internal/tui"
)

// Output formats for config list
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// RegistryListing is the config list view of the registry
type RegistryListing struct {
	RegistryPath string         `json:"registry_path" yaml:"registry_path"`
	DefaultStack string         `json:"default_stack" yaml:"default_stack"`
	StackFiles   []StackFileRow `json:"registered_stack_files" yaml:"registered_stack_files"`
}

// StackFileRow describes one registered stack file
type StackFileRow struct {
	Path      string `json:"path" yaml:"path"`
	StackName string `json:"stack_name,omitempty" yaml:"stack_name,omitempty"`
	Valid     bool   `json:"valid" yaml:"valid"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ConfigListOptions contains options for the config list command
type ConfigListOptions struct {
	Format string
}

// ConfigListAction prints the default stack and every registered file with its status
func ConfigListAction(ctx *runtime.Context, opts ConfigListOptions) error {
	listing, err := buildListing(ctx.Store)
	if err != nil {
		return err
	}

	out := ctx.Splog.Writer()
	switch opts.Format {
	case "", FormatText:
		printListing(ctx, listing)
		return nil
	case FormatJSON:
		data, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode registry: %w", err)
		}
		return writeLine(out, data)
	case FormatYAML:
		data, err := yaml.Marshal(listing)
		if err != nil {
			return fmt.Errorf("failed to encode registry: %w", err)
		}
		_, err = out.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q (expected %s, %s or %s)", opts.Format, FormatText, FormatJSON, FormatYAML)
	}
}

func buildListing(store *config.Store) (*RegistryListing, error) {
	reg, err := store.Read()
	if err != nil {
		return nil, err
	}

	listing := &RegistryListing{
		RegistryPath: store.Path(),
		DefaultStack: reg.DefaultStack,
		StackFiles:   []StackFileRow{},
	}
	for _, c := range config.LoadCandidates(reg.RegisteredStackFiles) {
		row := StackFileRow{Path: c.Path, Valid: c.Valid()}
		if c.Valid() {
			row.StackName = c.Doc.StackName
		} else {
			row.Error = c.Err.Error()
		}
		listing.StackFiles = append(listing.StackFiles, row)
	}
	return listing, nil
}

func printListing(ctx *runtime.Context, listing *RegistryListing) {
	splog := ctx.Splog
	if listing.DefaultStack == "" {
		splog.Info("Default stack: %s", tui.ColorDim("(none)"))
	} else {
		splog.Info("Default stack: %s", tui.ColorCyan(listing.DefaultStack))
	}

	if len(listing.StackFiles) == 0 {
		splog.Info("No stack files registered")
		splog.Tip("Run 'ldot load <file>' to register one")
		return
	}

	splog.Info("Registered stack files:")
	for _, row := range listing.StackFiles {
		if row.Valid {
			splog.Info("  %s %s", row.Path, tui.ColorGreen("["+row.StackName+"]"))
		} else {
			splog.Info("  %s %s", row.Path, tui.ColorRed("[invalid: "+row.Error+"]"))
		}
	}
}

func writeLine(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// ConfigDefaultOptions contains options for the config default command
type ConfigDefaultOptions struct {
	Name  string
	Clear bool
}

// ConfigDefaultAction shows the default stack, or sets it when a name is
// given. Clear unsets it.
func ConfigDefaultAction(ctx *runtime.Context, opts ConfigDefaultOptions) error {
	if opts.Clear {
		if err := ctx.Store.SetDefault(""); err != nil {
			return err
		}
		ctx.Splog.Info("Cleared the default stack")
		return nil
	}

	if opts.Name == "" {
		reg, err := ctx.Store.Read()
		if err != nil {
			return err
		}
		if reg.DefaultStack == "" {
			ctx.Splog.Info("No default stack is set")
			ctx.Splog.Tip("Run 'ldot config default <name>' to choose one")
			return nil
		}
		ctx.Splog.Info("%s", reg.DefaultStack)
		return nil
	}

	if err := ctx.Store.SetDefault(opts.Name); err != nil {
		return err
	}
	ctx.Splog.Info("Default stack set to %s", tui.ColorCyan(opts.Name))
	return nil
}

// ConfigEditAction prints where the registry file lives so it can be edited by hand
func ConfigEditAction(ctx *runtime.Context) error {
	ctx.Splog.Info("%s", ctx.Store.Path())
	return nil
}

// ConfigRegenAction replaces the registry with an empty one
func ConfigRegenAction(ctx *runtime.Context) error {
	if _, err := ctx.Store.Regenerate(); err != nil {
		return err
	}
	ctx.Splog.Info("Regenerated an empty registry at %s", ctx.Store.Path())
	return nil
}
