package prompt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every InputError via errors.Is.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAborted is returned when input ends or the user interrupts a prompt.
	ErrAborted = errors.New("prompt aborted")
)

// InputError reports an answer that could not be interpreted.
type InputError struct {
	Prompt string
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }
