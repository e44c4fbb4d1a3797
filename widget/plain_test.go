package widget

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestPlainGateAndSend(t *testing.T) {
	sender := &fakeSender{reply: "Hi there"}
	in := strings.NewReader("   \nacme\n\nHello\nexit\n")
	var out bytes.Buffer

	err := RunPlain(context.Background(), PlainOptions{
		Sender: sender,
		In:     in,
		Out:    &out,
	})
	if err != nil {
		t.Fatalf("RunPlain failed: %v", err)
	}

	if len(sender.calls) != 1 {
		t.Fatalf("expected 1 request, got %d", len(sender.calls))
	}
	if sender.calls[0].companyID != "acme" || sender.calls[0].query != "Hello" {
		t.Errorf("request = %+v, want {acme Hello}", sender.calls[0])
	}

	output := out.String()
	// Whitespace company id line re-prompts before accepting "acme".
	if got := strings.Count(output, "company id> "); got != 2 {
		t.Errorf("gate prompts = %d, want 2", got)
	}
	if !strings.Contains(output, "Hi there") {
		t.Errorf("reply missing from output:\n%s", output)
	}
}

func TestPlainFailurePrintsFallback(t *testing.T) {
	sender := &fakeSender{err: context.DeadlineExceeded}
	in := strings.NewReader("Hello\nquit\n")
	var out bytes.Buffer

	err := RunPlain(context.Background(), PlainOptions{
		Sender:    sender,
		CompanyID: "acme",
		In:        in,
		Out:       &out,
	})
	if err != nil {
		t.Fatalf("RunPlain failed: %v", err)
	}

	if !strings.Contains(out.String(), FallbackReply) {
		t.Errorf("fallback missing from output:\n%s", out.String())
	}
	// Preset company id skips the gate prompt entirely.
	if strings.Contains(out.String(), "company id> ") {
		t.Error("gate prompt shown despite preset company id")
	}
}

func TestPlainEOFEndsLoop(t *testing.T) {
	sender := &fakeSender{}
	var out bytes.Buffer

	err := RunPlain(context.Background(), PlainOptions{
		Sender:    sender,
		CompanyID: "acme",
		In:        strings.NewReader(""),
		Out:       &out,
	})
	if err != nil {
		t.Fatalf("RunPlain failed: %v", err)
	}
	if len(sender.calls) != 0 {
		t.Errorf("expected no requests, got %d", len(sender.calls))
	}
}
