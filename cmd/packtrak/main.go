package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/packlane-labs/packtrak-cli/internal/adapters/driving/cli"
)

func main() {
	// Optional .env for local overrides (PACKTRAK_API_BASE etc.).
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
