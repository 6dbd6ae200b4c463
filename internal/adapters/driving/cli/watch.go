package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/cvforge-cli/internal/core/services"
	"github.com/custodia-labs/cvforge-cli/internal/logger"
)

// debounceWindow batches bursts of editor write events into one rebuild.
const debounceWindow = 300 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the JSON Resume when sections change",
	Long: `Watches the sections directory and regenerates the JSON Resume
whenever a .tex file is written. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if resumeBuilder == nil || configStore == nil {
		return errors.New("resume service not configured")
	}

	sections := configStore.GetString(services.KeySectionsDir)
	if sections == "" {
		sections = services.DefaultSectionsDir
	}
	watchDir := filepath.Join(flagDir, sections)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(watchDir); err != nil {
		return fmt.Errorf("watch %s: %w", watchDir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s for changes (Ctrl-C to stop)...\n", watchDir)

	// Generate once up front so the output reflects the current sources.
	if path, err := resumeBuilder.Generate(ctx); err != nil {
		logger.Error("generate failed: %v", err)
	} else {
		cmd.Printf("JSON resume written to %s\n", path)
	}

	var timer *time.Timer
	rebuild := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".tex") {
				continue
			}

			logger.Debug("change detected: %s", event.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})

		case <-rebuild:
			path, err := resumeBuilder.Generate(ctx)
			if err != nil {
				logger.Error("generate failed: %v", err)
				continue
			}
			cmd.Printf("JSON resume written to %s\n", path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
