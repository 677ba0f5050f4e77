package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/flicks/internal/menu"
	"github.com/mmcdole/flicks/internal/tui/components"
	"github.com/mmcdole/flicks/internal/tui/styles"
)

// Model is the bubbletea model for the movie menu.
// Catalog calls run synchronously inside Update.
type Model struct {
	runner *menu.Runner
	keys   KeyMap
	help   help.Model
	input  components.PromptInput

	// Option being answered; nil while choosing from the menu
	option  *menu.Option
	answers []string

	result   *menu.Outcome
	width    int
	quitting bool
}

// NewModel creates the menu model
func NewModel(runner *menu.Runner) Model {
	m := Model{
		runner: runner,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  components.NewPromptInput(),
	}
	m.input.Ask(m.currentPrompt())
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			if m.option == nil {
				m.quitting = true
				return m, tea.Quit
			}
			m.backToMenu()
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit consumes the typed value as a menu choice or a prompt answer
func (m Model) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()

	if m.option == nil {
		opt, ok := menu.Lookup(value)
		if !ok {
			out := menu.InvalidOption()
			m.result = &out
			m.input.Ask(m.currentPrompt())
			return m, nil
		}
		m.result = nil
		m.option = &opt
		m.answers = nil
	} else {
		m.answers = append(m.answers, value)
	}

	if len(m.answers) < len(m.option.Prompts) {
		m.input.Ask(m.currentPrompt())
		return m, nil
	}

	out := m.runner.Execute(*m.option, m.answers)
	m.result = &out
	m.backToMenu()
	if out.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) backToMenu() {
	m.option = nil
	m.answers = nil
	m.input.Ask(m.currentPrompt())
}

// currentPrompt returns the label for the value being typed
func (m Model) currentPrompt() string {
	if m.option == nil {
		return "Choose an option"
	}
	return "Enter " + m.option.Prompts[len(m.answers)]
}

func (m Model) View() string {
	if m.quitting {
		if m.result != nil && m.result.Exit {
			return styles.AccentStyle.Render(strings.TrimRight(m.result.String(), "\n")) + "\n"
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(menu.Title))
	b.WriteString("\n\n")

	if m.option == nil {
		for _, line := range menu.Lines() {
			b.WriteString(styles.SubtitleStyle.Render(line))
			b.WriteByte('\n')
		}
	} else {
		step := fmt.Sprintf("(%d/%d)", len(m.answers)+1, len(m.option.Prompts))
		b.WriteString(styles.AccentStyle.Render(m.option.Label))
		b.WriteString(" ")
		b.WriteString(styles.DimStyle.Render(step))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.result != nil {
		b.WriteString(renderOutcome(*m.result, m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

// renderOutcome draws a result in a bordered panel styled by its kind
func renderOutcome(o menu.Outcome, width int) string {
	var lines []string
	if o.Heading != "" {
		lines = append(lines, styles.AccentStyle.Render(o.Heading))
	}
	for _, line := range o.Lines {
		switch {
		case o.Keyword != "":
			lines = append(lines, highlightMatches(line, o.Keyword))
		case o.Kind == menu.KindError:
			lines = append(lines, styles.ErrorStyle.Render(line))
		case o.Kind == menu.KindSuccess:
			lines = append(lines, styles.SuccessStyle.Render(line))
		default:
			lines = append(lines, styles.NormalStyle.Render(line))
		}
	}

	panel := styles.ResultPanelStyle
	if width > 4 {
		panel = panel.MaxWidth(width)
	}
	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
