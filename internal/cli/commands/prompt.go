package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errAborted is returned when the user interrupts a prompt.
var errAborted = errors.New("aborted")

// prompter asks the user for one line at a time.
type prompter interface {
	Ask(prompt string) (string, error)
	Close() error
}

// newPrompter uses readline when stdin is a terminal and a plain line
// reader otherwise, so piped input and tests work the same way.
func newPrompter(cmd *cobra.Command) (prompter, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // G115: file descriptors fit in int
		rl, err := readline.NewEx(&readline.Config{
			Stdout:          cmd.OutOrStdout(),
			Stderr:          cmd.ErrOrStderr(),
			InterruptPrompt: "^C",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize prompt: %w", err)
		}
		return &readlinePrompter{rl: rl}, nil
	}
	return &linePrompter{in: bufio.NewReader(in), out: cmd.OutOrStdout()}, nil
}

type readlinePrompter struct {
	rl *readline.Instance
}

func (p *readlinePrompter) Ask(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", errAborted
	}
	return line, err
}

func (p *readlinePrompter) Close() error {
	return p.rl.Close()
}

type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *linePrompter) Ask(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", errAborted
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *linePrompter) Close() error {
	return nil
}

// confirm asks a yes/no question. Anything but y or yes is a no.
func confirm(p prompter, question string) (bool, error) {
	answer, err := p.Ask(question + " [y/N]: ")
	if errors.Is(err, errAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
