package command

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ewts-lang/ewts/internal/highlight"
)

const watchDebounce = 500 * time.Millisecond

// NewWatchCmd creates the watch command.
func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-render a file whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			styleName, _ := cmd.Flags().GetString("style")
			path := args[0]

			render := func() error {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				return highlight.Render(cmd.OutOrStdout(), string(data), "ewts", styleName, highlight.FormatAuto)
			}

			if err := render(); err != nil {
				return writeCommandError(cmd, err)
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer watcher.Close()

			// Watch the directory, not the file: editors commonly replace
			// files on save, which drops a direct file watch.
			dir := filepath.Dir(path)
			if err := watcher.Add(dir); err != nil {
				return writeCommandError(cmd, fmt.Errorf("watch %s: %w", dir, err))
			}

			base := filepath.Base(path)
			fmt.Fprintf(cmd.ErrOrStderr(), "--- watching %s (Ctrl+C to stop) ---\n", path)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(stop)

			debounce := time.NewTimer(watchDebounce)
			if !debounce.Stop() {
				<-debounce.C
			}
			pending := false

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Base(event.Name) != base {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
						continue
					}
					if pending {
						if !debounce.Stop() {
							<-debounce.C
						}
					}
					debounce.Reset(watchDebounce)
					pending = true
				case <-debounce.C:
					pending = false
					if err := render(); err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
				case <-stop:
					return nil
				}
			}
		},
	}

	cmd.Flags().String("style", highlight.DefaultStyle, "chroma style name")

	return cmd
}
