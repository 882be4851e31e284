package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const appName = "urlrisk"

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Heuristic phishing URL scanner",
		Long: `urlrisk evaluates a URL against a fixed set of phishing heuristics:
keywords in the path, suspicious TLDs, IP literals, unusual characters,
excess subdomains, length, entropy, typosquatting and missing HTTPS.

Configuration is read from URLRISK_* environment variables and an optional
.env file in the working directory.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewListsCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute loads .env and runs the root command, exiting 1 on error.
func Execute() {
	_ = godotenv.Load()
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
