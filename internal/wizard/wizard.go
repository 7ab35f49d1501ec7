package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"gsetup/internal/config"
	"gsetup/internal/credentials"
	"gsetup/pkg/logging"
)

const subsystem = "Wizard"

// ErrSetupIncomplete is returned by Run when the operator has not finished
// one of the console steps. It is not a failure: the command exits quietly.
var ErrSetupIncomplete = errors.New("setup incomplete")

const separator = "-----------------------------------"

// Wizard walks the operator through the console steps and collects the
// OAuth client credentials.
type Wizard struct {
	cfg      config.Config
	steps    []Step
	prompter Prompter
	out      io.Writer
}

// New creates a wizard writing instructions to out. Without steps,
// DefaultSteps(cfg) is used.
func New(cfg config.Config, prompter Prompter, out io.Writer, steps ...Step) *Wizard {
	if len(steps) == 0 {
		steps = DefaultSteps(cfg)
	}
	return &Wizard{cfg: cfg, steps: steps, prompter: prompter, out: out}
}

// Run performs the steps in order. A "no" answer or an interrupted prompt
// returns ErrSetupIncomplete; no later step is shown.
func (w *Wizard) Run(ctx context.Context) (credentials.Client, error) {
	for i, step := range w.steps {
		if err := ctx.Err(); err != nil {
			return credentials.Client{}, err
		}

		instructions, err := step.Render(w.cfg)
		if err != nil {
			return credentials.Client{}, err
		}
		w.printStep(i+1, step.Title, instructions)

		ok, err := w.prompter.Confirm(step.Question)
		if err != nil {
			return credentials.Client{}, w.promptError(step.Title, err)
		}
		if !ok {
			logging.Info(subsystem, "Setup stopped at step %q", step.Title)
			return credentials.Client{}, ErrSetupIncomplete
		}
		logging.Debug(subsystem, "Step %q done", step.Title)
	}

	fmt.Fprintln(w.out)
	id, err := w.prompter.Ask("What is your client ID?", false)
	if err != nil {
		return credentials.Client{}, w.promptError("client ID", err)
	}
	secret, err := w.prompter.Ask("What is your client secret?", true)
	if err != nil {
		return credentials.Client{}, w.promptError("client secret", err)
	}

	return credentials.Client{ID: id, Secret: secret}, nil
}

func (w *Wizard) promptError(where string, err error) error {
	if errors.Is(err, ErrAborted) {
		logging.Info(subsystem, "Setup aborted at %q", where)
		return ErrSetupIncomplete
	}
	return fmt.Errorf("failed to read answer for %q: %w", where, err)
}

func (w *Wizard) printStep(n int, title, instructions string) {
	heading := text.Colors{text.Bold, text.FgCyan}.Sprintf("Step %d/%d: %s", n, len(w.steps), title)
	fmt.Fprintf(w.out, "\n%s\n\n%s\n\n%s\n\n", separator, heading, strings.TrimRight(instructions, "\n"))
}
