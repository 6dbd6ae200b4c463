// Command cvforge generates resume artifacts from LaTeX sections.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/cvforge-cli/internal/adapters/driving/cli"
)

func main() {
	// Best effort: a .env beside the project may carry GITHUB_TOKEN.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
