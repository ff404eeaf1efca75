package action_test

import (
	"errors"

	"github.com/kennyg/cppkit/internal/host"
)

type notice struct {
	Severity string
	Message  string
	Choices  []string
}

// fakeHost records every interaction and answers prompts from a script.
type fakeHost struct {
	file    string
	root    string
	answers []string
	openErr error

	notices []notice
	opened  []string
}

var _ host.Host = (*fakeHost)(nil)

func (f *fakeHost) ActiveFilePath() (string, bool) { return f.file, f.file != "" }
func (f *fakeHost) WorkspaceRoot() (string, bool) { return f.root, f.root != "" }

func (f *fakeHost) OpenDocument(path string) error {
	if f.openErr != nil {
		return f.openErr
	}
	f.opened = append(f.opened, path)
	return nil
}

func (f *fakeHost) ShowInfo(msg string, choices ...string) (string, error) {
	return f.record("info", msg, choices)
}

func (f *fakeHost) ShowWarning(msg string, choices ...string) (string, error) {
	return f.record("warning", msg, choices)
}

func (f *fakeHost) ShowError(msg string, choices ...string) (string, error) {
	return f.record("error", msg, choices)
}

var errNoScriptedAnswer = errors.New("no scripted answer left")

func (f *fakeHost) record(sev, msg string, choices []string) (string, error) {
	f.notices = append(f.notices, notice{Severity: sev, Message: msg, Choices: choices})
	if len(choices) == 0 {
		return "", nil
	}
	if len(f.answers) == 0 {
		return "", errNoScriptedAnswer
	}
	answer := f.answers[0]
	f.answers = f.answers[1:]
	return answer, nil
}

func (f *fakeHost) noticesOf(sev string) []notice {
	var out []notice
	for _, n := range f.notices {
		if n.Severity == sev {
			out = append(out, n)
		}
	}
	return out
}
