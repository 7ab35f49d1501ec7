package wizard

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader replays lines and passwords in order.
type fakeReader struct {
	lines     []string
	passwords []string
	err       error

	prompts         []string
	passwordPrompts []string
	closed          bool
}

func (f *fakeReader) Readline() (string, error) {
	if len(f.lines) == 0 {
		if f.err != nil {
			return "", f.err
		}
		return "", io.EOF
	}
	l := f.lines[0]
	f.lines = f.lines[1:]
	return l, nil
}

func (f *fakeReader) ReadPassword(prompt string) ([]byte, error) {
	f.passwordPrompts = append(f.passwordPrompts, prompt)
	if len(f.passwords) == 0 {
		return nil, io.EOF
	}
	p := f.passwords[0]
	f.passwords = f.passwords[1:]
	return []byte(p), nil
}

func (f *fakeReader) SetPrompt(prompt string) { f.prompts = append(f.prompts, prompt) }

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

func newTestPrompter(r *fakeReader) (*ReadlinePrompter, *bytes.Buffer) {
	var out bytes.Buffer
	return &ReadlinePrompter{rl: r, out: &out}, &out
}

func TestReadlinePrompter_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y", true},
		{"Y", true},
		{"yes", true},
		{" YES ", true},
		{"n", false},
		{"No", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, _ := newTestPrompter(&fakeReader{lines: []string{tt.input}})
			got, err := p.Confirm("Is the project created?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadlinePrompter_Confirm_ReasksOnInvalid(t *testing.T) {
	r := &fakeReader{lines: []string{"maybe", "", "y"}}
	p, out := newTestPrompter(r)

	got, err := p.Confirm("Is the project created?")
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("Please answer y or n.")))
	assert.Equal(t, []string{"Is the project created? (y/n) "}, r.prompts)
}

func TestReadlinePrompter_Confirm_Interrupted(t *testing.T) {
	p, _ := newTestPrompter(&fakeReader{err: readline.ErrInterrupt})
	_, err := p.Confirm("?")
	assert.ErrorIs(t, err, ErrAborted)

	p, _ = newTestPrompter(&fakeReader{})
	_, err = p.Confirm("?")
	assert.ErrorIs(t, err, ErrAborted, "EOF aborts")
}

func TestReadlinePrompter_Confirm_ReadError(t *testing.T) {
	boom := errors.New("tty closed")
	p, _ := newTestPrompter(&fakeReader{err: boom})

	_, err := p.Confirm("?")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrAborted)
}

func TestReadlinePrompter_Ask_Required(t *testing.T) {
	r := &fakeReader{lines: []string{"", "   ", " abc "}}
	p, out := newTestPrompter(r)

	got, err := p.Ask("What is your client ID?", false)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("A value is required.")))
	assert.Empty(t, r.passwordPrompts)
}

func TestReadlinePrompter_Ask_SecretIsMasked(t *testing.T) {
	r := &fakeReader{passwords: []string{"", "xyz"}}
	p, _ := newTestPrompter(r)

	got, err := p.Ask("What is your client secret?", true)
	require.NoError(t, err)
	assert.Equal(t, "xyz", got)
	assert.Equal(t, []string{"What is your client secret? ", "What is your client secret? "}, r.passwordPrompts)
}

func TestReadlinePrompter_Ask_SecretAborted(t *testing.T) {
	p, _ := newTestPrompter(&fakeReader{})
	_, err := p.Ask("What is your client secret?", true)
	assert.ErrorIs(t, err, ErrAborted)
}

func TestReadlinePrompter_Close(t *testing.T) {
	r := &fakeReader{}
	p, _ := newTestPrompter(r)
	require.NoError(t, p.Close())
	assert.True(t, r.closed)
}
