package tui

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInteractiveDisabled is returned when a prompt is needed but prompting is off
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (LDOT_NON_INTERACTIVE is set or no terminal is attached)")

// ErrCanceled is returned when the user interrupts a prompt
var ErrCanceled = errors.New("canceled")

// InteractiveAllowed reports whether prompts may be shown
func InteractiveAllowed(nonInteractive bool) bool {
	return !nonInteractive && IsTTY()
}

// PromptTextInput asks for a line of text. The prompt repeats until validate
// accepts the answer; a nil validate accepts anything.
func PromptTextInput(message, defaultValue string, validate func(string) error) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}

	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, ok := ans.(string)
			if !ok {
				return fmt.Errorf("expected text, got %T", ans)
			}
			return validate(s)
		}))
	}

	if err := survey.AskOne(prompt, &answer, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrCanceled
		}
		return "", err
	}
	return answer, nil
}
