// Package runtime provides a context type that holds the registry store,
// engine and logger for use throughout the application. This avoids passing
// multiple parameters.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"ldot.dev/ldot/internal/config"
	"ldot.dev/ldot/internal/engine"
	ldoterrors "ldot.dev/ldot/internal/errors"
	"ldot.dev/ldot/internal/shell"
	"ldot.dev/ldot/internal/tui"
)

// Context provides access to settings, the registry and output for commands
type Context struct {
	context.Context
	Settings *config.Settings
	Store    *config.Store
	Runner   *shell.Runner
	Engine   *engine.Engine
	Splog    *tui.Splog
}

// Options adjusts how a Context is built. Zero values fall back to the
// environment settings and the process's standard streams.
type Options struct {
	Settings *config.Settings

	// RegistryPath overrides LDOT_REGISTRY when set
	RegistryPath string
	// Debug and ShellWords switch the features on when set; they never switch
	// on a setting off
	Debug      bool
	ShellWords bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewContext builds a context without touching the registry file
func NewContext(opts Options) (*Context, error) {
	settings := opts.Settings
	if settings == nil {
		var err error
		settings, err = config.LoadSettings()
		if err != nil {
			return nil, err
		}
	}
	if opts.RegistryPath != "" {
		settings.RegistryPath = opts.RegistryPath
	}
	settings.Debug = settings.Debug || opts.Debug
	settings.ShellWords = settings.ShellWords || opts.ShellWords

	stdin, stdout, stderr := opts.Stdin, opts.Stdout, opts.Stderr
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	splog := newSplog(settings, stdout)

	registryPath, err := settings.ResolvedRegistryPath()
	if err != nil {
		_ = splog.Close()
		return nil, err
	}
	store := config.NewStore(registryPath)

	runner := &shell.Runner{
		Executor:  &shell.ProcessExecutor{Stdin: stdin, Stdout: stdout, Stderr: stderr},
		Tokenizer: shell.NewTokenizer(settings.ShellWords),
	}

	return &Context{
		Context:  context.Background(),
		Settings: settings,
		Store:    store,
		Runner:   runner,
		Engine:   engine.New(engine.Options{Registry: store, Runner: runner, Splog: splog}),
		Splog:    splog,
	}, nil
}

// newSplog logs to the console and, when the log directory can be created,
// to the rotating log file
func newSplog(settings *config.Settings, stdout io.Writer) *tui.Splog {
	splog, err := tui.NewSplogWithOptions(tui.LogOptions{
		Writer:     stdout,
		Debug:      settings.Debug,
		FilePath:   settings.LogFilePath(),
		MaxSize:    settings.LogMaxSize,
		MaxBackups: settings.LogMaxBackups,
		MaxAge:     settings.LogMaxAge,
	})
	if err != nil {
		splog = tui.NewSplogWithWriter(stdout, settings.Debug)
		splog.Debug("File logging disabled: %v", err)
	}
	return splog
}

// OpenRegistry reads the registry once at the start of an invocation.
// A corrupt registry is replaced by an empty one and the reset is reported.
// A default stack that no longer names a registered, valid stack is cleared
// without a console message.
func (c *Context) OpenRegistry() error {
	reg, err := c.Store.Read()
	if errors.Is(err, ldoterrors.ErrCorruptRegistry) {
		c.Splog.Warn("%v", err)
		if reg, err = c.Store.Regenerate(); err != nil {
			return fmt.Errorf("failed to regenerate registry: %w", err)
		}
		c.Splog.Warn("Regenerated an empty registry at %s. Stack files must be loaded again.", c.Store.Path())
	}
	if err != nil {
		return err
	}

	previous := reg.DefaultStack
	changed, err := c.Store.Reconcile()
	if err != nil {
		return err
	}
	if changed {
		c.Splog.Debug("Default stack %s is no longer registered or valid and has been cleared", previous)
	}
	return nil
}

// GetContext builds a context and opens the registry
func GetContext(opts Options) (*Context, error) {
	ctx, err := NewContext(opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.OpenRegistry(); err != nil {
		_ = ctx.Close()
		return nil, err
	}
	return ctx, nil
}

// Close releases the log file
func (c *Context) Close() error {
	return c.Splog.Close()
}
