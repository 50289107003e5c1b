// Package shell runs stack commands as child processes.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Executor runs one program to completion
type Executor interface {
	// Execute runs argv and returns its exit code. A non-nil error means the
	// process could not be started at all.
	Execute(ctx context.Context, argv []string) (int, error)
}

// ProcessExecutor runs programs with os/exec, wiring their standard streams
// to the given reader and writers
type ProcessExecutor struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewProcessExecutor creates an executor that inherits the current process's stdio
func NewProcessExecutor() *ProcessExecutor {
	return &ProcessExecutor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// errEmptyCommand is returned for a command with no program
var errEmptyCommand = errors.New("empty command")

// Execute runs argv and waits for it to exit. There is no timeout.
func (e *ProcessExecutor) Execute(ctx context.Context, argv []string) (int, error) {
	if len(argv) == 0 || argv[0] == "" {
		return -1, errEmptyCommand
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = e.Dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Start(); err != nil {
		return -1, err
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// -1 when terminated by a signal
		return exitErr.ExitCode(), nil
	}
	if cmd.ProcessState != nil {
		// the process ran; the error came from copying its output
		return cmd.ProcessState.ExitCode(), nil
	}
	return -1, err
}
