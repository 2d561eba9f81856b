package main

import "github.com/printcraft-dev/printcraft/cmd/printcraft-cli/cmd"

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	cmd.Execute(Version)
}
