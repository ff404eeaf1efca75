package host

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kennyg/cppkit/internal/ui"
)

// Severity selects how a notice is styled.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Terminal is the Host used by the command line.
type Terminal struct {
	// File is the header the command was invoked on.
	File string
	// Root is the workspace root; empty means there is none.
	Root string
	// Editor is the command used to open documents when Open is set.
	Editor string
	Open   bool
	// AssumeYes answers every prompt with its first choice.
	AssumeYes bool
	// Interactive enables the bubbletea prompt; otherwise a line is read from In.
	Interactive bool

	In  io.Reader
	Out io.Writer
	Err io.Writer

	reader *bufio.Reader
}

// NewTerminal returns a Terminal wired to the process's standard streams.
func NewTerminal() *Terminal {
	return &Terminal{
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
		Interactive: ui.IsTTY,
	}
}

func (t *Terminal) ActiveFilePath() (string, bool) {
	if t.File == "" {
		return "", false
	}
	abs, err := filepath.Abs(t.File)
	if err != nil {
		return t.File, true
	}
	return abs, true
}

func (t *Terminal) WorkspaceRoot() (string, bool) {
	if t.Root == "" {
		return "", false
	}
	return t.Root, true
}

func (t *Terminal) OpenDocument(path string) error {
	args := strings.Fields(t.Editor)
	if !t.Open || len(args) == 0 {
		fmt.Fprintln(t.Out, ui.RenderDim("  "+path))
		return nil
	}

	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("opening %s with %s: %w", path, args[0], err)
	}
	return nil
}

func (t *Terminal) ShowInfo(msg string, choices ...string) (string, error) {
	return t.notify(SeverityInfo, msg, choices)
}

func (t *Terminal) ShowWarning(msg string, choices ...string) (string, error) {
	return t.notify(SeverityWarning, msg, choices)
}

func (t *Terminal) ShowError(msg string, choices ...string) (string, error) {
	return t.notify(SeverityError, msg, choices)
}

func (t *Terminal) notify(sev Severity, msg string, choices []string) (string, error) {
	switch sev {
	case SeverityError:
		fmt.Fprintln(t.Err, ui.ErrorLine(msg))
	case SeverityWarning:
		fmt.Fprintln(t.Out, ui.WarningLine(msg))
	default:
		fmt.Fprintln(t.Out, ui.InfoLine(msg))
	}

	if len(choices) == 0 {
		return "", nil
	}
	if t.AssumeYes {
		return choices[0], nil
	}
	if t.Interactive {
		return ui.Choose(choices)
	}
	return t.readChoice(choices)
}

// readChoice prompts on Out and matches the typed answer against choices,
// ignoring case. A full label or its first letter is accepted; anything else
// counts as dismissing the prompt.
func (t *Terminal) readChoice(choices []string) (string, error) {
	if t.reader == nil {
		t.reader = bufio.NewReader(t.In)
	}

	fmt.Fprint(t.Out, ui.RenderMuted("    ["+strings.Join(choices, "/")+"] "))
	line, err := t.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", nil
	}

	for _, c := range choices {
		if strings.EqualFold(answer, c) {
			return c, nil
		}
	}
	if len(answer) == 1 {
		for _, c := range choices {
			if c != "" && strings.EqualFold(answer, c[:1]) {
				return c, nil
			}
		}
	}
	return "", nil
}
