// kbchat is a terminal chat widget for a company knowledge-base service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"kbchat/cmd"
	"kbchat/config"
	"kbchat/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	configDir, _ := config.ConfigDir()
	if err := logger.Init(cfg.BuildLoggerConfig(), configDir); err != nil {
		fmt.Fprintln(os.Stderr, "logger init error:", err)
	}
	cmd.Execute()
}
