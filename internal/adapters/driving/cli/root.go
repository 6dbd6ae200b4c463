// Package cli wires the cobra command tree for cvforge.
//
// Commands talk to the core exclusively through the driving ports.
// Services are injected by main (or by tests) via the package-level
// variables; commands that find their service unset fail with a clear
// error instead of panicking.
package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/cvforge-cli/internal/adapters/driven/config/file"
	storagefile "github.com/custodia-labs/cvforge-cli/internal/adapters/driven/storage/file"
	gh "github.com/custodia-labs/cvforge-cli/internal/connectors/github"
	"github.com/custodia-labs/cvforge-cli/internal/core/ports/driven"
	"github.com/custodia-labs/cvforge-cli/internal/core/ports/driving"
	"github.com/custodia-labs/cvforge-cli/internal/core/services"
	"github.com/custodia-labs/cvforge-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. main wires the real implementations; tests swap in
// mocks.
var (
	resumeBuilder driving.ResumeBuilder
	snippetWriter driving.SnippetWriter
	configStore   driven.ConfigStore
)

var (
	flagVerbose bool
	flagDir     string
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "cvforge",
	Short: "Generate resume artifacts from LaTeX sections",
	Long: `cvforge turns hand-authored LaTeX resume sections into a JSON Resume
document and keeps the open-source contribution snippet up to date from
GitHub. Configuration lives in cvforge.toml next to the sections.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup configures logging and wires default services unless a caller
// (main or a test) injected them already.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	if configStore == nil {
		path := flagConfig
		if path == "" && flagDir != "" {
			path = filepath.Join(flagDir, configfile.DefaultFileName)
		}
		store, err := configfile.NewConfigStore(path)
		if err != nil {
			return err
		}
		configStore = store
	}

	docs := storagefile.NewDocumentStore(flagDir)
	diag := logger.Capability{}

	if resumeBuilder == nil {
		resumeBuilder = services.NewResumeService(docs, configStore, diag)
	}

	if snippetWriter == nil {
		timeout := time.Duration(configStore.GetInt(services.KeyGitHubTimeout)) * time.Second
		finder := gh.NewClient(os.Getenv("GITHUB_TOKEN"), timeout, gh.WithLogger(diag))
		snippetWriter = services.NewSnippetService(finder, docs, configStore, diag)
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&flagDir, "dir", "d", "", "project directory containing the LaTeX sections")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to cvforge.toml")
}
