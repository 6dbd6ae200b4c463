package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate every resume artifact",
	Long:  `Refreshes the latest merged PR snippet, then generates the JSON Resume.`,
	RunE:  runAll,
}

func init() {
	rootCmd.AddCommand(allCmd)
}

func runAll(cmd *cobra.Command, _ []string) error {
	if snippetWriter == nil || resumeBuilder == nil {
		return errors.New("services not configured")
	}

	ctx := context.Background()

	prPath, err := snippetWriter.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate snippet: %w", err)
	}
	cmd.Printf("PR snippet written to %s\n", prPath)

	jsonPath, err := resumeBuilder.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate resume: %w", err)
	}
	cmd.Printf("JSON resume written to %s\n", jsonPath)

	return nil
}
