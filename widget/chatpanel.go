package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kbchat/mdtty"
)

// FallbackReply is the fixed bot message shown for any failed request.
const FallbackReply = "Server error"

var (
	userEntryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	loaderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

type entryKind int

const (
	entryUser entryKind = iota
	entryBot
	entryLoader
)

// entry is one line-group in the conversation log. Loaders carry the
// request id they stand in for.
type entry struct {
	kind entryKind
	id   string
	text string
}

// ChatPanel displays the conversation in a scrollable viewport: user
// messages, bot replies, and per-request loading placeholders.
type ChatPanel struct {
	viewport viewport.Model
	entries  []entry
	markdown bool
	width    int
}

// NewChatPanel creates a conversation panel. When markdown is true, bot
// replies are rendered through mdtty.
func NewChatPanel(markdown bool) *ChatPanel {
	vp := viewport.New(0, 0)
	vp.SetContent("")
	return &ChatPanel{viewport: vp, markdown: markdown}
}

func (p *ChatPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case UserEntryMsg:
		p.entries = append(p.entries, entry{kind: entryUser, text: msg.Text})
		p.refresh()
		return p, nil

	case LoaderAddMsg:
		p.entries = append(p.entries, entry{kind: entryLoader, id: msg.ID})
		p.refresh()
		return p, nil

	case ReplyMsg:
		p.removeLoader(msg.ID)
		text := msg.Reply
		if msg.Err != nil {
			text = FallbackReply
		}
		p.entries = append(p.entries, entry{kind: entryBot, text: text})
		p.refresh()
		return p, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *ChatPanel) View() string {
	return p.viewport.View()
}

func (p *ChatPanel) SetSize(width, height int) {
	p.width = width
	p.viewport.Width = width
	p.viewport.Height = height
	p.refresh()
}

// Entries returns a snapshot of the rendered conversation, latest last.
func (p *ChatPanel) Entries() []string {
	out := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, e.text)
	}
	return out
}

// PendingCount returns the number of unresolved loaders.
func (p *ChatPanel) PendingCount() int {
	n := 0
	for _, e := range p.entries {
		if e.kind == entryLoader {
			n++
		}
	}
	return n
}

// removeLoader drops the loader for the given request id. Replies for
// unknown ids (already resolved, or never tracked) leave the log alone.
func (p *ChatPanel) removeLoader(id string) {
	for i, e := range p.entries {
		if e.kind == entryLoader && e.id == id {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return
		}
	}
}

func (p *ChatPanel) refresh() {
	lines := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		switch e.kind {
		case entryUser:
			lines = append(lines, userEntryStyle.Render("> "+e.text))
		case entryLoader:
			lines = append(lines, loaderStyle.Render("…"))
		default:
			text := e.text
			if p.markdown && text != FallbackReply {
				text = mdtty.Convert(text)
			}
			lines = append(lines, text)
		}
	}
	p.viewport.SetContent(strings.Join(lines, "\n"))
	p.viewport.GotoBottom()
}
