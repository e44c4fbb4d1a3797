package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kbchat/client"
	"kbchat/mdtty"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Send a single question and print the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	companyID := strings.TrimSpace(cfg.Server.CompanyID)
	if companyID == "" {
		return fmt.Errorf("company id is required (set --company or server.companyID in config)")
	}

	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("question must not be empty")
	}

	c := client.New(cfg.Server.URL)
	reply, err := c.Chat(cmd.Context(), companyID, query)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if cfg.MarkdownEnabled() {
		reply = mdtty.Convert(reply)
	}
	fmt.Println(reply)
	return nil
}
