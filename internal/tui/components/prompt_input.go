package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/flicks/internal/tui/styles"
)

// PromptInput is a labelled single-line text input
type PromptInput struct {
	label string
	input textinput.Model
}

// NewPromptInput creates a focused prompt input
func NewPromptInput() PromptInput {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 40
	ti.Prompt = "› "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	ti.Focus()

	return PromptInput{input: ti}
}

// Ask clears the input and shows a new label
func (p *PromptInput) Ask(label string) {
	p.label = label
	p.input.Reset()
}

// Label returns the current prompt label
func (p PromptInput) Label() string {
	return p.label
}

// Value returns the current input value
func (p PromptInput) Value() string {
	return p.input.Value()
}

// Update forwards editing keys to the text input
func (p PromptInput) Update(msg tea.Msg) (PromptInput, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the label above the input line
func (p PromptInput) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		p.label+":",
		p.input.View(),
	)
}
