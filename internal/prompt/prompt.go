// Package prompt handles the two interactive selections the seeder
// runs on: generation mode and action.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"meterseed/internal/app"
	"meterseed/internal/simulator"
)

// ErrInvalidInput marks answers outside the accepted {1, 2} domain,
// including non-numeric input. Callers check it with errors.Is and
// abort without touching storage.
var ErrInvalidInput = errors.New("invalid input")

// Prompter reads selections line-wise from in and writes the prompt
// labels to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// AskMode prompts for the generation mode (1 = normal, 2 = greater).
func (p *Prompter) AskMode() (simulator.Mode, error) {
	choice, err := p.askChoice("Select mode (1 = normal, 2 = greater energy): ")
	if err != nil {
		return 0, err
	}

	mode, err := simulator.ParseMode(choice)
	if err != nil {
		return 0, fmt.Errorf("%w: mode must be 1 or 2, got %d", ErrInvalidInput, choice)
	}
	return mode, nil
}

// AskAction prompts for the action (1 = insert data, 2 = delete all).
func (p *Prompter) AskAction() (app.Action, error) {
	choice, err := p.askChoice("Select action (1 = insert data, 2 = delete all data): ")
	if err != nil {
		return 0, err
	}

	action, err := app.ParseAction(choice)
	if err != nil {
		return 0, fmt.Errorf("%w: action must be 1 or 2, got %d", ErrInvalidInput, choice)
	}
	return action, nil
}

func (p *Prompter) askChoice(label string) (int, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimSpace(line)
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, line)
	}
	return n, nil
}
