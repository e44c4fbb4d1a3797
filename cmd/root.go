// Package cmd wires the kbchat command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kbchat/config"
)

var rootCmd = &cobra.Command{
	Use:   "kbchat",
	Short: "Terminal chat widget for a company knowledge-base service",
	Long: `kbchat is a terminal client for a knowledge-base chat service.

It gates the session behind a company id, then relays your questions to
the service's /chat endpoint and shows the replies.`,
	SilenceUsage: true,
}

var (
	flagServer  string
	flagCompany string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "Chat service base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagCompany, "company", "", "Company id (skips the gate prompt)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the config file and applies the persistent flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flagServer != "" {
		cfg.Server.URL = flagServer
	}
	if flagCompany != "" {
		cfg.Server.CompanyID = flagCompany
	}
	return cfg, nil
}
