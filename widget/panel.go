// Package widget implements the terminal chat widget: a company-id gate,
// a toggleable chat panel backed by a remote /chat endpoint, and a log
// panel fed by the logger.
package widget

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Sender issues one chat query and returns the reply text.
// *client.Client satisfies it.
type Sender interface {
	Chat(ctx context.Context, companyID, query string) (string, error)
}

// Panel is a composable TUI region with its own state, update logic, and view.
// The root App model orchestrates panels without knowing their internals.
type Panel interface {
	Update(tea.Msg) (Panel, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// LogLineMsg carries a single log line from the logger writer.
type LogLineMsg struct{ Line string }

// GateSubmitMsg is emitted when a non-empty company id is entered in the gate.
type GateSubmitMsg struct{ CompanyID string }

// InputSubmitMsg is emitted when the user presses Enter on a non-empty
// message input while the panel is open.
type InputSubmitMsg struct{ Text string }

// UserEntryMsg appends a user message to the conversation panel.
type UserEntryMsg struct{ Text string }

// LoaderAddMsg appends a pending-reply placeholder keyed by request id.
type LoaderAddMsg struct{ ID string }

// ReplyMsg resolves the request with the given id: its loader is removed
// and either the reply or the fallback error text is appended.
type ReplyMsg struct {
	ID    string
	Reply string
	Err   error
}
