// Package cmd implements the printcraft CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/printcraft-dev/printcraft/internal/cliclient"
	"github.com/spf13/cobra"
)

var (
	version   string
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "printcraft",
	Short: "PrintCraft design tool CLI",
	Long: `Command-line interface for the PrintCraft design API.

Browse the template catalog, inspect designs, request mock PDF exports and
list print orders against a running PrintCraft server.

Examples:
  printcraft serve                       # Run the API server
  printcraft templates list              # List the template catalog
  printcraft designs list                # List designs
  printcraft designs export <id>         # Request a mock PDF export`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:5000", "Base URL of the PrintCraft server")
}

// Execute runs the root command.
func Execute(v string) {
	version = v
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// apiClient returns a client for the configured server.
func apiClient() *cliclient.Client {
	return cliclient.New(serverURL)
}
