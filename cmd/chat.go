package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"kbchat/client"
	"kbchat/logger"
	"kbchat/widget"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the interactive chat widget",
	Long: `Open the interactive chat widget.

On a terminal this is a full-screen UI: enter your company id once, then
toggle the chat panel with ctrl+t and send questions with Enter. When
stdin is not a terminal the widget degrades to a plain line-oriented loop
with the same behavior.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	c := client.New(cfg.Server.URL)
	logger.Info("chat widget starting", "server", cfg.Server.URL)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return widget.Run(widget.Options{
			Sender:    c,
			CompanyID: cfg.Server.CompanyID,
			Markdown:  cfg.MarkdownEnabled(),
		})
	}

	return widget.RunPlain(context.Background(), widget.PlainOptions{
		Sender:    c,
		CompanyID: cfg.Server.CompanyID,
		In:        os.Stdin,
		Out:       os.Stdout,
	})
}
