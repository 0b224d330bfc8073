package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-riders/internal/config"
	"github.com/vovakirdan/pixel-riders/internal/core"
	"github.com/vovakirdan/pixel-riders/internal/games/riders"
	"github.com/vovakirdan/pixel-riders/internal/platform/tui"
	"github.com/vovakirdan/pixel-riders/internal/registry"
	"github.com/vovakirdan/pixel-riders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Ride a mode",
	Long: `Start a ride in the given mode. Without a mode the menu opens.

Controls:
  D/Right      - Throttle
  A/Left/Space - Brake
  W/Up         - Lean back
  S/Down       - Lean forward
  P/Esc        - Pause
  R            - Restart (after a wipeout)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Small ramps, wide landing windows
  normal - Starts at 30% difficulty, progresses to max
  hard   - Starts at 70% difficulty, tight landing windows
  fixed  - No progression, stays at the config's initial level

With --watch the config file is reloaded whenever it changes. Changes
apply the next time the bike is on the ground with no jump pending.

Examples:
  riders play riders
  riders play riders --difficulty hard
  riders play riders_zen
  riders play riders --config ./riders.yaml --watch --log ./ride.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		flags := cmd.Flags()
		flags.StringVar(&flagConfig, "config", "", "Path to custom riders config YAML")
		flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		flags.BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
		flags.StringVar(&flagLogFile, "log", "", "Write ride logs to this file")
	}
}

// terminalConfig builds the runtime config from the terminal size and
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// setupRiders applies the ride flags to the riders package. The returned
// func releases the log file and config watcher.
func setupRiders() (func(), error) {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return nil, err
	}
	riders.SetConfigPath(flagConfig)
	riders.SetDifficultyPreset(flagDifficulty)

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// Stderr belongs to the TUI; without --log there is nowhere to write.
	logger := log.NewWithOptions(io.Discard, log.Options{})
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		closers = append(closers, func() { f.Close() })
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "riders",
			Level:           log.DebugLevel,
		})
		riders.SetLogger(logger)
	}

	if flagWatch {
		path := config.ResolvePath(flagConfig)
		if path == "" {
			cleanup()
			return nil, fmt.Errorf("--watch needs a config file: pass --config or create ~/.pixel-riders/configs/riders.yaml")
		}
		w, err := config.Watch(path)
		if err != nil {
			cleanup()
			return nil, err
		}
		closers = append(closers, func() { w.Close() })
		riders.SetReloadSource(w.Updates)

		go func() {
			for err := range w.Errors {
				logger.Warn("config reload failed", "err", err)
			}
		}()
		logger.Info("watching config", "path", filepath.Clean(w.Path()))
	}

	return cleanup, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runMenu(cmd, args)
		return
	}
	mode := args[0]

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'riders list' to see ride modes.")
		os.Exit(1)
	}

	cleanup, err := setupRiders()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(mode)
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error creating ride: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the ride still works
		store = nil
	}

	runErr := tui.Run(game, store, terminalConfig())

	if store != nil {
		store.Close()
	}
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running ride: %v\n", runErr)
		os.Exit(1)
	}
}
