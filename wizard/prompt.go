package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
)

// ErrInputClosed is returned when the input stream ends before a prompt is answered.
var ErrInputClosed = errors.New("input closed before an answer was given")

// Option is one entry of a Select prompt.
type Option struct {
	Label string
	Value string
}

// Prompter asks closed-choice questions. Implementations only return values
// from the offered choice set.
type Prompter interface {
	Confirm(message string, def bool) (bool, error)
	Select(message string, options []Option) (string, error)
}

// FormPrompter asks each question as a single-field huh form.
//
// In accessible mode huh reads plain lines, so the prompter can be driven
// from any io.Reader. Otherwise the interactive terminal UI is used and in
// must be the terminal.
type FormPrompter struct {
	in         io.Reader
	out        io.Writer
	accessible bool
	answers    *answerReader
}

// NewFormPrompter returns a FormPrompter reading from in and writing to out.
func NewFormPrompter(in io.Reader, out io.Writer, accessible bool) *FormPrompter {
	p := &FormPrompter{in: in, out: out, accessible: accessible}
	if accessible {
		p.answers = &answerReader{r: bufio.NewReader(in)}
	}
	return p
}

// Confirm asks a yes/no question. An empty answer selects def.
func (p *FormPrompter) Confirm(message string, def bool) (bool, error) {
	value := def
	field := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := p.run(message, field); err != nil {
		return false, err
	}
	return value, nil
}

// Select asks the user to pick one option. The first option is preselected.
func (p *FormPrompter) Select(message string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("%q: no options to choose from", message)
	}

	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Label, o.Value)
	}

	value := options[0].Value
	field := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&value)

	if err := p.run(message, field); err != nil {
		return "", err
	}
	return value, nil
}

func (p *FormPrompter) run(message string, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(p.accessible).
		WithOutput(p.out).
		WithShowHelp(!p.accessible)

	if p.accessible {
		p.answers.begin()
		form = form.WithInput(p.answers)
	} else {
		form = form.WithInput(p.in)
	}

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("%q: %w", message, ErrInputClosed)
		}
		return fmt.Errorf("%q: %w", message, err)
	}

	// Accessible prompts fall back to the default at end of input.
	if p.accessible && p.answers.closedWithoutAnswer() {
		return fmt.Errorf("%q: %w", message, ErrInputClosed)
	}
	return nil
}

// answerReader hands out at most one line per Read so that a line scanner
// created for one prompt cannot swallow the answers to later prompts. It also
// records whether the input ended before the current prompt got an answer.
type answerReader struct {
	r       *bufio.Reader
	pending []byte
	partial bool
	eof     bool
}

func (a *answerReader) begin() {
	a.partial = false
	a.eof = false
}

func (a *answerReader) Read(b []byte) (int, error) {
	if len(a.pending) == 0 {
		line, err := a.r.ReadBytes('\n')
		if len(line) == 0 {
			if errors.Is(err, io.EOF) {
				a.eof = true
			}
			if err == nil {
				err = io.EOF
			}
			return 0, err
		}
		a.pending = line
		a.partial = line[len(line)-1] != '\n'
	}

	n := copy(b, a.pending)
	a.pending = a.pending[n:]
	return n, nil
}

// closedWithoutAnswer reports whether input ended during the current prompt
// with no unterminated final line left to serve as the answer.
func (a *answerReader) closedWithoutAnswer() bool {
	return a.eof && !a.partial
}
