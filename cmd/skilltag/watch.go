package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/labex-labs/skilltag/pkg/labs"
	"github.com/labex-labs/skilltag/pkg/logger"
	"github.com/labex-labs/skilltag/pkg/presenter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// WatchConfig holds configuration for the watch command
type WatchConfig struct {
	Tree         string
	DebounceTime int
}

// NewWatchConfig creates a new WatchConfig with default values
func NewWatchConfig() *WatchConfig {
	return &WatchConfig{
		Tree:         "",
		DebounceTime: 500,
	}
}

// Validate validates the WatchConfig and returns an error if invalid
func (c *WatchConfig) Validate() error {
	if c.Tree == "" {
		return errors.New("--tree is required")
	}
	if c.DebounceTime < 0 {
		return errors.Errorf("debounce time cannot be negative: %d", c.DebounceTime)
	}
	if _, err := labs.LookupTree(c.Tree, loadConfig().Markers); err != nil {
		return err
	}
	return nil
}

// FileEvent represents a file system event with additional metadata
type FileEvent struct {
	Path string
	Op   fsnotify.Op
	Time time.Time
}

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-tag labs whenever their records or step text change",
	Long: `Continuously monitors <dir> and runs an add pass on a lab whenever its record
or one of its markdown steps is written. Paths matching the configured exclude
patterns are not watched.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		config := getWatchConfigFromFlags(cmd)
		if err := config.Validate(); err != nil {
			presenter.Error(err, "Invalid configuration")
			os.Exit(1)
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			presenter.Warning("Cancellation requested, shutting down...")
			cancel()
		}()

		updater, err := labs.NewUpdater(labs.WithConfig(loadConfig()), labs.WithLabCallback(reportLab))
		if err != nil {
			presenter.Error(err, "Invalid configuration")
			os.Exit(1)
		}

		if err := runWatchMode(ctx, updater, args[0], config); err != nil {
			presenter.Error(err, "Watch failed")
			os.Exit(1)
		}
	},
}

func init() {
	defaults := NewWatchConfig()
	watchCmd.Flags().StringP("tree", "t", defaults.Tree, "Skill tree of the labs")
	watchCmd.Flags().IntP("debounce", "d", defaults.DebounceTime, "Debounce time in milliseconds for file change events")
}

// getWatchConfigFromFlags extracts watch configuration from command flags
func getWatchConfigFromFlags(cmd *cobra.Command) *WatchConfig {
	config := NewWatchConfig()
	if tree, err := cmd.Flags().GetString("tree"); err == nil {
		config.Tree = tree
	}
	if debounceTime, err := cmd.Flags().GetInt("debounce"); err == nil {
		config.DebounceTime = debounceTime
	}
	return config
}

func runWatchMode(ctx context.Context, updater *labs.Updater, root string, config *WatchConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer watcher.Close()

	events := make(chan FileEvent)
	debouncedEvents := make(chan FileEvent)
	go debounceFileEvents(ctx, events, debouncedEvents, time.Duration(config.DebounceTime)*time.Millisecond)

	go func() {
		for {
			select {
			case event, ok := <-debouncedEvents:
				if !ok {
					return
				}
				logger.G(ctx).WithFields(map[string]interface{}{
					"file":      event.Path,
					"operation": event.Op.String(),
					"timestamp": event.Time,
				}).Debug("Lab change detected")
				if _, err := updater.UpdateLab(ctx, event.Path, config.Tree); err != nil {
					logger.G(ctx).WithError(err).WithField("file", event.Path).Debug("Lab update failed")
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if event.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := addWatchDirs(ctx, watcher, updater, root, event.Name); err != nil {
							logger.G(ctx).WithError(err).WithField("directory", event.Name).Warn("Failed to watch new directory")
						}
						continue
					}
				}
				record, ok := updater.RecordFor(event.Name)
				if !ok {
					continue
				}
				select {
				case events <- FileEvent{Path: record, Op: event.Op, Time: time.Now()}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				presenter.Error(err, "File watcher error")
				logger.G(ctx).WithError(err).Error("Error watching files")
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := addWatchDirs(ctx, watcher, updater, root, root); err != nil {
		return err
	}

	presenter.Info(fmt.Sprintf("Watching %s for %s labs... Press Ctrl+C to stop", root, config.Tree))
	logger.G(ctx).WithField(logger.FieldTree, config.Tree).Info("File watcher initialized")

	<-ctx.Done()
	return nil
}

// addWatchDirs adds dir and every directory below it that is not excluded.
func addWatchDirs(ctx context.Context, watcher *fsnotify.Watcher, updater *labs.Updater, root, dir string) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if rel, err := filepath.Rel(root, path); err == nil && rel != "." && updater.Excluded(filepath.ToSlash(rel)) {
			logger.G(ctx).WithField("directory", path).Debug("Skipping excluded directory")
			return filepath.SkipDir
		}
		logger.G(ctx).WithField("directory", path).Debug("Adding directory to watcher")
		return watcher.Add(path)
	})
	return errors.Wrapf(err, "failed to watch %s", dir)
}

// Debounce file events to prevent processing multiple rapid changes to the same lab
func debounceFileEvents(ctx context.Context, input <-chan FileEvent, output chan<- FileEvent, delay time.Duration) {
	var pending = make(map[string]*time.Timer)

	for {
		select {
		case event, ok := <-input:
			if !ok {
				for _, timer := range pending {
					timer.Stop()
				}
				return
			}
			if timer, exists := pending[event.Path]; exists {
				timer.Stop()
			}

			eventCopy := event
			pending[event.Path] = time.AfterFunc(delay, func() {
				select {
				case output <- eventCopy:
				case <-ctx.Done():
				}
			})
		case <-ctx.Done():
			for _, timer := range pending {
				timer.Stop()
			}
			return
		}
	}
}
