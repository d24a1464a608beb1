package selector

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8bc34a")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b6b4f"))
)

type listModel struct {
	title   string
	choices []string
	cursor  int
	chosen  int
	done    bool
}

func newListModel(title string, choices []string) listModel {
	return listModel{
		title:   title,
		choices: choices,
		chosen:  -1,
	}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.chosen = -1
		m.done = true

		return m, tea.Quit

	case "enter":
		m.chosen = m.cursor
		m.done = true

		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}

	case "home", "g":
		m.cursor = 0

	case "end", "G":
		m.cursor = len(m.choices) - 1
	}

	return m, nil
}

func (m listModel) View() string {
	if m.done {
		if m.chosen >= 0 {
			return fmt.Sprintf("%s %s\n", titleStyle.Render("? "+m.title+":"), m.choices[m.chosen])
		}

		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("? " + m.title))
	b.WriteString("\n")

	for i, choice := range m.choices {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + choice))
		} else {
			b.WriteString("  " + choice)
		}
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render("↑/↓ move • enter select • esc cancel"))
	b.WriteString("\n")

	return b.String()
}

// TerminalPrompt runs an interactive list on the terminal. Nil in or out fall
// back to stdin and stdout. opts are passed on to the tea.Program.
func TerminalPrompt(in io.Reader, out io.Writer, opts ...tea.ProgramOption) Prompt {
	return func(title string, choices []string) (int, bool, error) {
		programOpts := append([]tea.ProgramOption{}, opts...)
		if in != nil {
			programOpts = append(programOpts, tea.WithInput(in))
		}
		if out != nil {
			programOpts = append(programOpts, tea.WithOutput(out))
		}

		final, err := tea.NewProgram(newListModel(title, choices), programOpts...).Run()
		if err != nil {
			if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
				return -1, false, nil
			}

			return -1, false, err
		}

		m, ok := final.(listModel)
		if !ok || m.chosen < 0 {
			return -1, false, nil
		}

		return m.chosen, true, nil
	}
}
