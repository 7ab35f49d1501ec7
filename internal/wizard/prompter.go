package wizard

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ErrAborted is returned by a Prompter when the operator interrupts input
// (Ctrl+C or Ctrl+D).
var ErrAborted = errors.New("input aborted")

// Prompter asks the operator questions on a terminal.
type Prompter interface {
	// Confirm asks a yes/no question until a valid answer is given.
	Confirm(question string) (bool, error)
	// Ask asks for a required value until a non-empty answer is given.
	// If secret is true the input is not echoed.
	Ask(question string, secret bool) (string, error)
}

// lineReader is the subset of *readline.Instance the prompter uses.
type lineReader interface {
	Readline() (string, error)
	ReadPassword(prompt string) ([]byte, error)
	SetPrompt(prompt string)
	Close() error
}

// ReadlinePrompter is a Prompter backed by github.com/chzyer/readline.
type ReadlinePrompter struct {
	rl  lineReader
	out io.Writer
}

// NewReadlinePrompter creates a prompter reading from the terminal. Call
// Close when done.
func NewReadlinePrompter() (*ReadlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		// Answers may contain credentials.
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	return &ReadlinePrompter{rl: rl, out: rl.Stdout()}, nil
}

// Close releases the terminal.
func (p *ReadlinePrompter) Close() error {
	return p.rl.Close()
}

// Confirm implements Prompter. It accepts y, yes, n and no in any case.
func (p *ReadlinePrompter) Confirm(question string) (bool, error) {
	p.rl.SetPrompt(question + " (y/n) ")
	for {
		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// Ask implements Prompter.
func (p *ReadlinePrompter) Ask(question string, secret bool) (string, error) {
	prompt := question + " "
	p.rl.SetPrompt(prompt)
	for {
		var (
			line string
			err  error
		)
		if secret {
			var b []byte
			b, err = p.rl.ReadPassword(prompt)
			line = string(b)
			err = mapReadError(err)
		} else {
			line, err = p.readLine()
		}
		if err != nil {
			return "", err
		}

		if answer := strings.TrimSpace(line); answer != "" {
			return answer, nil
		}
		fmt.Fprintln(p.out, "A value is required.")
	}
}

func (p *ReadlinePrompter) readLine() (string, error) {
	line, err := p.rl.Readline()
	return line, mapReadError(err)
}

func mapReadError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return ErrAborted
	default:
		return fmt.Errorf("readline error: %w", err)
	}
}
