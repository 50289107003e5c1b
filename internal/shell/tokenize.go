package shell

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Tokenizer splits a command line into program and arguments
type Tokenizer interface {
	Split(command string) ([]string, error)
}

// WhitespaceTokenizer splits on runs of whitespace with no quoting support.
// `echo "a b"` becomes ["echo", `"a`, `b"`]. This is the default.
type WhitespaceTokenizer struct{}

// Split implements Tokenizer
func (WhitespaceTokenizer) Split(command string) ([]string, error) {
	return strings.Fields(command), nil
}

// ShellWordsTokenizer applies POSIX shell quoting and escaping rules.
// Opting into it changes how existing stack commands are split.
type ShellWordsTokenizer struct{}

// Split implements Tokenizer
func (ShellWordsTokenizer) Split(command string) ([]string, error) {
	args, err := shellwords.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse command: %w", err)
	}
	return args, nil
}

// NewTokenizer returns the shell-aware tokenizer when shellWords is set,
// otherwise the whitespace tokenizer
func NewTokenizer(shellWords bool) Tokenizer {
	if shellWords {
		return ShellWordsTokenizer{}
	}
	return WhitespaceTokenizer{}
}
