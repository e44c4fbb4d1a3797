package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	gateBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)
	gateTitleStyle = lipgloss.NewStyle().Bold(true)
	gateHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// GatePanel blocks the widget until a company id has been entered.
// Submitting an empty or whitespace-only value is a no-op.
type GatePanel struct {
	input         textinput.Model
	width, height int
}

// NewGatePanel creates the gate overlay.
func NewGatePanel() *GatePanel {
	ti := textinput.New()
	ti.Prompt = "company id> "
	ti.Focus()
	return &GatePanel{input: ti}
}

func (p *GatePanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			id := strings.TrimSpace(p.input.Value())
			if id == "" {
				return p, nil
			}
			return p, func() tea.Msg { return GateSubmitMsg{CompanyID: id} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *GatePanel) View() string {
	box := gateBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		gateTitleStyle.Render("Welcome to kbchat"),
		"",
		p.input.View(),
		"",
		gateHintStyle.Render("Enter your company id to continue"),
	))
	if p.width == 0 || p.height == 0 {
		return box
	}
	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, box)
}

func (p *GatePanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
