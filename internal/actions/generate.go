package actions

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ldot.dev/ldot/internal/runtime"
	"ldot.dev/ldot/internal/stack"
	"ldot.dev/ldot/internal/tui"
)

// GenerateOptions contains options for the generate command
type GenerateOptions struct {
	File        string
	StackName   string
	Version     string
	Description string
	// Interactive asks for each value, offering the options above as defaults
	Interactive bool
}

// promptText is replaced in tests
var promptText = tui.PromptTextInput

// GenerateAction writes a template stack file. An existing file is left untouched.
func GenerateAction(ctx *runtime.Context, opts GenerateOptions) error {
	file := opts.File
	if opts.Interactive {
		defaultFile := file
		if defaultFile == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			defaultFile = filepath.Join(cwd, stack.DefaultFileName)
		}
		answer, err := promptText("Stack file path", defaultFile, nil)
		if err != nil {
			return err
		}
		file = answer
	}

	target, err := generateTarget(file)
	if err != nil {
		return err
	}

	if _, err := os.Stat(target); err == nil {
		ctx.Splog.Info("Stack file %s already exists and was left untouched", target)
		ctx.Splog.Tip("Run 'ldot load %s' to register it", target)
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", target, err)
	}

	name, version, description, err := templateValues(opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}
	if err := stack.WriteFile(target, stack.NewTemplate(name, version, description)); err != nil {
		return err
	}

	ctx.Splog.Info("Created stack file %s for stack %s", target, tui.ColorCyan(name))
	ctx.Splog.Tip("Run 'ldot load %s' to register it", target)
	return nil
}

// templateValues fills in defaults and, when interactive, asks for each value
func templateValues(opts GenerateOptions) (name, version, description string, err error) {
	name = valueOr(opts.StackName, stack.DefaultStackName)
	version = valueOr(opts.Version, stack.DefaultStackVersion)
	description = valueOr(opts.Description, stack.DefaultStackDescription)

	if opts.Interactive {
		if name, err = promptText("Stack name", name, stack.CheckStackName); err != nil {
			return "", "", "", err
		}
		if version, err = promptText("Stack version", version, nil); err != nil {
			return "", "", "", err
		}
		if description, err = promptText("Stack description", description, nil); err != nil {
			return "", "", "", err
		}
	}

	if err := stack.CheckStackName(name); err != nil {
		return "", "", "", err
	}
	return name, version, description, nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
