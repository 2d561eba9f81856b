package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/printcraft-dev/printcraft/internal/server"

	_ "github.com/printcraft-dev/printcraft/docs" // Load swagger docs
)

// Version is set via ldflags at build time
var Version = "dev"

// @title PrintCraft API
// @version 1.0
// @description Print-material design tool backend: template catalog, design lifecycle and print orders.
// @host localhost:5000
// @BasePath /api
func main() {
	port := flag.Int("port", 0, "Port to run the server on (overrides config)")
	flag.Parse()

	_ = godotenv.Load()

	if err := server.RunWithSignalHandling(server.Config{
		Port:    *port,
		Version: Version,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
