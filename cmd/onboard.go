package cmd

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"kbchat/config"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize kbchat configuration",
	Long:  `Create the kbchat configuration directory and config file interactively.`,
	RunE:  runOnboard,
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(_ *cobra.Command, _ []string) error {
	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Config already exists at " + configPath).
					Description("Overwrite it?").
					Value(&overwrite),
			),
		).Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Keeping existing config. Edit it directly at:", configPath)
			return nil
		}
	}

	var (
		serverURL string
		companyID string
	)

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Chat service URL").
				Description("Base URL of the knowledge-base service; /chat is appended.").
				Placeholder("http://127.0.0.1:8000").
				Validate(validateServerURL).
				Value(&serverURL),
			huh.NewInput().
				Title("Default company id").
				Description("Optional. When set, the widget skips its company-id prompt.").
				Value(&companyID),
		),
	).Run()
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if s := strings.TrimSpace(serverURL); s != "" {
		cfg.Server.URL = strings.TrimRight(s, "/")
	}
	cfg.Server.CompanyID = strings.TrimSpace(companyID)

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("kbchat initialized successfully!")
	fmt.Println()
	fmt.Println("  Config:", configPath)
	fmt.Println("  Server:", cfg.Server.URL)
	fmt.Println()
	fmt.Println("Run 'kbchat chat' to start.")
	return nil
}

func validateServerURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil // default applies
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("enter a full URL like http://host:port")
	}
	return nil
}
