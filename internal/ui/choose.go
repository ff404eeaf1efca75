package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type chooseKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

var chooseKeys = chooseKeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h", "shift+tab"),
		key.WithHelp("←/h", "previous"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l", "tab"),
		key.WithHelp("→/l", "next"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc", "dismiss"),
	),
}

// chooseModel is a single-line button row: one choice is highlighted and
// enter picks it. Typing the first letter of a choice picks it directly.
type chooseModel struct {
	choices []string
	cursor  int
	chosen  string
	done    bool
}

func newChooseModel(choices []string) chooseModel {
	return chooseModel{choices: choices}
}

func (m chooseModel) Init() tea.Cmd {
	return nil
}

func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, chooseKeys.Cancel):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, chooseKeys.Confirm):
		m.chosen = m.choices[m.cursor]
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, chooseKeys.Left):
		m.cursor = (m.cursor - 1 + len(m.choices)) % len(m.choices)
	case key.Matches(keyMsg, chooseKeys.Right):
		m.cursor = (m.cursor + 1) % len(m.choices)
	default:
		typed := keyMsg.String()
		for i, c := range m.choices {
			if c != "" && strings.EqualFold(typed, c[:1]) {
				m.cursor = i
				m.chosen = c
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

var (
	buttonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(Gray)

	activeButtonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(White).
		Background(Steel)
)

func (m chooseModel) View() string {
	if m.done {
		return ""
	}

	buttons := make([]string, len(m.choices))
	for i, c := range m.choices {
		if i == m.cursor {
			buttons[i] = activeButtonStyle.Render(c)
		} else {
			buttons[i] = buttonStyle.Render(c)
		}
	}

	help := Dim.Render(fmt.Sprintf("%s • %s • %s • %s",
		helpEntry(chooseKeys.Left),
		helpEntry(chooseKeys.Right),
		helpEntry(chooseKeys.Confirm),
		helpEntry(chooseKeys.Cancel)))

	return "    " + lipgloss.JoinHorizontal(lipgloss.Top, buttons...) + "\n    " + help + "\n"
}

// helpEntry renders a binding as "key desc" for the help line.
func helpEntry(b key.Binding) string {
	return b.Help().Key + " " + b.Help().Desc
}

// Choose shows choices as a button row and blocks until one is picked.
// A dismissed prompt returns "".
func Choose(choices []string) (string, error) {
	if len(choices) == 0 {
		return "", nil
	}

	final, err := tea.NewProgram(newChooseModel(choices)).Run()
	if err != nil {
		return "", fmt.Errorf("running prompt: %w", err)
	}
	return final.(chooseModel).chosen, nil
}
