package cmd

import (
	"github.com/joho/godotenv"
	"github.com/printcraft-dev/printcraft/internal/server"
	"github.com/spf13/cobra"

	_ "github.com/printcraft-dev/printcraft/docs" // Load swagger docs
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the PrintCraft API server",
	Long: `Run the PrintCraft API server in the foreground.

The server seeds its in-memory template catalog at startup and keeps all
designs and print orders in memory for the process lifetime.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		return server.RunWithSignalHandling(server.Config{
			Port:    servePort,
			Version: version,
		})
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to run the server on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
