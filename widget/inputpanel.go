package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputPanel is the single-line message input. It only accepts keystrokes
// while focused; the root model focuses it exactly when the chat panel is
// open.
type InputPanel struct {
	input         textinput.Model
	width, height int
}

// NewInputPanel creates a blurred input panel with the given prompt.
func NewInputPanel(prompt string) *InputPanel {
	ti := textinput.New()
	ti.Prompt = prompt
	return &InputPanel{input: ti}
}

func (p *InputPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.input.Focused() {
			return p, nil
		}
		if msg.Type == tea.KeyEnter {
			text := strings.TrimSpace(p.input.Value())
			if text == "" {
				return p, nil
			}
			p.input.Reset()
			return p, func() tea.Msg { return InputSubmitMsg{Text: text} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// Focus enables the input (panel opened).
func (p *InputPanel) Focus() tea.Cmd {
	return p.input.Focus()
}

// Blur disables the input (panel closed).
func (p *InputPanel) Blur() {
	p.input.Blur()
}

// Focused reports whether the input currently accepts keystrokes.
func (p *InputPanel) Focused() bool {
	return p.input.Focused()
}

func (p *InputPanel) View() string {
	return p.input.View()
}

func (p *InputPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = width - len(p.input.Prompt) - 1
}
