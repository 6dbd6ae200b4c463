package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var prCmd = &cobra.Command{
	Use:   "pr",
	Short: "Refresh the latest merged PR snippet",
	Long: `Looks up the configured GitHub user's most recently merged pull
request and writes the contribution \item snippet to the configured
.tex output. When the lookup fails or no PR exists, the configured
fallback text is written instead.`,
	RunE: runPR,
}

func init() {
	rootCmd.AddCommand(prCmd)
}

func runPR(cmd *cobra.Command, _ []string) error {
	if snippetWriter == nil {
		return errors.New("snippet service not configured")
	}

	path, err := snippetWriter.Generate(context.Background())
	if err != nil {
		return fmt.Errorf("generate snippet: %w", err)
	}

	cmd.Printf("PR snippet written to %s\n", path)
	return nil
}
