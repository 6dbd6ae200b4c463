package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var jsonCmd = &cobra.Command{
	Use:   "json",
	Short: "Generate the JSON Resume document",
	Long: `Parses the LaTeX sections and writes a JSON Resume document
(https://jsonresume.org/schema/) to the configured output path.
Missing or malformed section files produce warnings, not failures.`,
	RunE: runJSON,
}

func init() {
	rootCmd.AddCommand(jsonCmd)
}

func runJSON(cmd *cobra.Command, _ []string) error {
	if resumeBuilder == nil {
		return errors.New("resume service not configured")
	}

	path, err := resumeBuilder.Generate(context.Background())
	if err != nil {
		return fmt.Errorf("generate resume: %w", err)
	}

	cmd.Printf("JSON resume written to %s\n", path)
	return nil
}
