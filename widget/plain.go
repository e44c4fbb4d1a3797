package widget

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"kbchat/logger"
)

// PlainOptions configure the line-oriented fallback widget used when stdin
// is not a terminal.
type PlainOptions struct {
	Sender    Sender
	CompanyID string // pre-set company id; empty prompts for one
	Prompt    string
	In        io.Reader
	Out       io.Writer
}

// RunPlain runs the widget as a plain read/eval loop with the same gate
// and send semantics as the TUI: blank lines are ignored, every accepted
// line fires one request, and any failure prints the fallback reply.
func RunPlain(ctx context.Context, opts PlainOptions) error {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "kbchat> "
	}

	scanner := bufio.NewScanner(opts.In)
	out := opts.Out

	companyID := strings.TrimSpace(opts.CompanyID)
	for companyID == "" {
		fmt.Fprint(out, "company id> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		companyID = strings.TrimSpace(scanner.Text())
	}
	logger.Info("session gate passed", "companyID", companyID)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		reply, err := opts.Sender.Chat(ctx, companyID, text)
		if err != nil {
			reply = FallbackReply
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, reply)
		fmt.Fprintln(out)
	}
}
