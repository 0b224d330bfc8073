package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-riders/internal/core"
	"github.com/vovakirdan/pixel-riders/internal/platform/tui"
	"github.com/vovakirdan/pixel-riders/internal/registry"
	"github.com/vovakirdan/pixel-riders/internal/storage"
)

// runMenu loops menu -> ride -> menu until the player quits.
func runMenu(_ *cobra.Command, _ []string) {
	cleanup, err := setupRiders()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.GameID == "" {
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating ride: %v\n", err)
			continue
		}
		// A preset picked in the menu beats --difficulty.
		if da, ok := game.(core.DifficultyAware); ok && menuResult.Difficulty != "" {
			if err := da.SetDifficulty(menuResult.Difficulty); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running ride: %v\n", err)
		}
	}
}
