// riders is a terminal motocross game: ride generated terrain, land flips,
// and bank points with the stunt engine.
//
// Usage:
//
//	riders                   - Pick a mode from the menu
//	riders list              - List ride modes
//	riders play [mode]       - Ride a mode directly
//	riders serve             - Start SSH server for remote play
//	riders scores [mode]     - Show high scores and jump stats
//	riders config dump       - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set terrain seed for reproducible rides
//	--db <path>     - Set database path (default: ~/.pixel-riders/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register ride modes
	_ "github.com/vovakirdan/pixel-riders/internal/games/riders"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "riders",
	Short: "Pixel Riders - motocross stunts in your terminal",
	Long: `Pixel Riders is a side-scrolling motocross game for the terminal.
Throttle over ramps, lean into flips, and land clean to bank the points.

Available commands:
  list     - Show ride modes
  play     - Ride a mode directly (menu when no mode is given)
  serve    - Start SSH server for remote play
  scores   - View high scores and jump stats
  config   - Inspect configuration

Examples:
  riders
  riders play riders --difficulty hard
  riders play --config ./riders.yaml --watch
  riders serve --ssh :2222
  riders scores riders_zen`,
	Run: func(cmd *cobra.Command, args []string) {
		runMenu(cmd, args)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Terrain seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pixel-riders/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
