package widget

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func applyPanel(p Panel, msgs ...tea.Msg) Panel {
	for _, msg := range msgs {
		p, _ = p.Update(msg)
	}
	return p
}

func TestChatPanelLoaderLifecycle(t *testing.T) {
	p := NewChatPanel(false)

	out := applyPanel(p,
		UserEntryMsg{Text: "Hello"},
		LoaderAddMsg{ID: "req-1"},
	).(*ChatPanel)

	if got := out.PendingCount(); got != 1 {
		t.Fatalf("pending = %d, want 1", got)
	}

	out = applyPanel(out, ReplyMsg{ID: "req-1", Reply: "Hi there"}).(*ChatPanel)

	if got := out.PendingCount(); got != 0 {
		t.Errorf("pending = %d, want 0", got)
	}
	entries := out.Entries()
	if len(entries) != 2 || entries[1] != "Hi there" {
		t.Errorf("entries = %v, want [Hello, Hi there]", entries)
	}
}

func TestChatPanelOutOfOrderReplies(t *testing.T) {
	p := NewChatPanel(false)

	out := applyPanel(p,
		UserEntryMsg{Text: "first"},
		LoaderAddMsg{ID: "a"},
		UserEntryMsg{Text: "second"},
		LoaderAddMsg{ID: "b"},
	).(*ChatPanel)

	if got := out.PendingCount(); got != 2 {
		t.Fatalf("pending = %d, want 2", got)
	}

	// The second request resolves first; only its loader goes away.
	out = applyPanel(out, ReplyMsg{ID: "b", Reply: "reply-b"}).(*ChatPanel)
	if got := out.PendingCount(); got != 1 {
		t.Fatalf("pending after b = %d, want 1", got)
	}

	out = applyPanel(out, ReplyMsg{ID: "a", Reply: "reply-a"}).(*ChatPanel)
	if got := out.PendingCount(); got != 0 {
		t.Fatalf("pending after a = %d, want 0", got)
	}

	entries := out.Entries()
	want := []string{"first", "second", "reply-b", "reply-a"}
	if len(entries) != len(want) {
		t.Fatalf("entries = %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i], want[i])
		}
	}
}

func TestChatPanelErrorUsesFallback(t *testing.T) {
	p := NewChatPanel(false)

	out := applyPanel(p,
		LoaderAddMsg{ID: "x"},
		ReplyMsg{ID: "x", Err: errors.New("status 500")},
	).(*ChatPanel)

	entries := out.Entries()
	if len(entries) != 1 || entries[0] != FallbackReply {
		t.Errorf("entries = %v, want [%s]", entries, FallbackReply)
	}
}

func TestChatPanelMarkdownRendering(t *testing.T) {
	p := NewChatPanel(true)
	p.SetSize(80, 10)

	out := applyPanel(p, ReplyMsg{ID: "x", Reply: "- one\n- two"}).(*ChatPanel)

	view := out.viewport.View()
	if !strings.Contains(view, "• one") {
		t.Errorf("markdown list not rendered, view:\n%s", view)
	}
}
