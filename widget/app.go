package widget

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"kbchat/logger"
)

const chatRatio = 0.6

var (
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hintBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// ToggleKey opens and closes the chat panel once the gate has passed.
const ToggleKey = "ctrl+t"

// Options configure the widget.
type Options struct {
	Sender    Sender
	CompanyID string // pre-set company id; empty shows the gate
	Markdown  bool   // render bot replies as markdown
}

// App is the root bubbletea model. It owns the session state: the company
// id captured by the gate and the open/closed state of the chat panel.
type App struct {
	gate       Panel
	logPanel   Panel
	chatPanel  Panel
	inputPanel *InputPanel

	sender    Sender
	companyID string
	open      bool

	width, height int
}

// NewApp creates the root widget model.
func NewApp(opts Options) *App {
	return &App{
		gate:       NewGatePanel(),
		logPanel:   NewLogPanel(),
		chatPanel:  NewChatPanel(opts.Markdown),
		inputPanel: NewInputPanel("you> "),
		sender:     opts.Sender,
		companyID:  strings.TrimSpace(opts.CompanyID),
	}
}

// Gated reports whether a company id has been captured.
func (m *App) Gated() bool { return m.companyID != "" }

// CompanyID returns the captured company id ("" before the gate passes).
func (m *App) CompanyID() string { return m.companyID }

// Open reports the chat panel state.
func (m *App) Open() bool { return m.open }

func (m *App) Init() tea.Cmd {
	return nil
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case GateSubmitMsg:
		m.companyID = msg.CompanyID
		// Log from a command, not inline: while the logger is intercepted
		// its writer calls program.Send, which must not run on the event
		// loop goroutine.
		id := m.companyID
		return m, func() tea.Msg {
			logger.Info("session gate passed", "companyID", id)
			return nil
		}

	case InputSubmitMsg:
		if !m.open {
			return m, nil
		}
		return m, m.send(msg.Text)

	case ReplyMsg:
		p, cmd := m.chatPanel.Update(msg)
		m.chatPanel = p
		return m, cmd

	case LogLineMsg:
		p, cmd := m.logPanel.Update(msg)
		m.logPanel = p
		return m, cmd

	default:
		// Broadcast unknown messages (e.g. cursor blink) to the active input.
		if !m.Gated() {
			p, cmd := m.gate.Update(msg)
			m.gate = p
			cmds = append(cmds, cmd)
		} else {
			p, cmd := m.inputPanel.Update(msg)
			m.inputPanel = p.(*InputPanel)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case !m.Gated():
		// Overlay blocks everything else until the gate passes.
		p, cmd := m.gate.Update(msg)
		m.gate = p
		return m, cmd

	case msg.String() == ToggleKey:
		m.toggle()
		if m.open {
			return m, m.inputPanel.Focus()
		}
		return m, nil

	case m.open:
		p, cmd := m.inputPanel.Update(msg)
		m.inputPanel = p.(*InputPanel)
		return m, cmd
	}

	// Panel closed: the input is disabled, keystrokes go nowhere.
	return m, nil
}

func (m *App) toggle() {
	m.open = !m.open
	if !m.open {
		m.inputPanel.Blur()
	}
	m.recalcLayout()
}

// send runs the message send protocol: echo the user message, drop a
// loader keyed by a fresh request id, and fire one independent request.
// In-flight requests are not tracked; overlapping sends each resolve their
// own loader whenever their reply lands.
func (m *App) send(text string) tea.Cmd {
	id := uuid.NewString()

	var cmds []tea.Cmd
	p, cmd := m.chatPanel.Update(UserEntryMsg{Text: text})
	m.chatPanel = p
	cmds = append(cmds, cmd)
	p, cmd = m.chatPanel.Update(LoaderAddMsg{ID: id})
	m.chatPanel = p
	cmds = append(cmds, cmd)

	companyID := m.companyID
	sender := m.sender
	cmds = append(cmds, func() tea.Msg {
		reply, err := sender.Chat(context.Background(), companyID, text)
		return ReplyMsg{ID: id, Reply: reply, Err: err}
	})

	return tea.Batch(cmds...)
}

func (m *App) View() string {
	if m.width == 0 || m.height == 0 {
		return "initializing..."
	}

	if !m.Gated() {
		return m.gate.View()
	}

	sep := separatorStyle.Render(strings.Repeat("─", m.width))

	if !m.open {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.logPanel.View(),
			sep,
			hintBarStyle.Render("chat closed, press "+ToggleKey+" to open"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.logPanel.View(),
		sep,
		m.chatPanel.View(),
		sep,
		m.inputPanel.View(),
	)
}

func (m *App) recalcLayout() {
	m.gate.SetSize(m.width, m.height)

	const inputH = 1
	const sepLines = 2

	if !m.open {
		// Log panel gets everything above the hint bar.
		m.logPanel.SetSize(m.width, max(m.height-2, 1))
		return
	}

	usable := max(m.height-inputH-sepLines, 2)
	chatH := max(int(float64(usable)*chatRatio), 1)
	logH := max(usable-chatH, 1)

	m.logPanel.SetSize(m.width, logH)
	m.chatPanel.SetSize(m.width, chatH)
	m.inputPanel.SetSize(m.width, inputH)
}
