package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-riders/internal/config"
	"github.com/vovakirdan/pixel-riders/internal/games/riders"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect riders configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the default config YAML",
	Long: `Print the built-in config. With --effective, print the config a ride
would start with after --config and --difficulty are applied.

Examples:
  riders config dump > ~/.pixel-riders/configs/riders.yaml
  riders config dump --effective --config ./riders.yaml --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if _, err := config.LoadRiders(args[0]); err != nil {
			return err
		}
		fmt.Printf("%s: ok\n", args[0])
		return nil
	},
}

func init() {
	configDumpCmd.Flags().BoolVar(&flagEffective, "effective", false, "Apply --config and --difficulty before printing")
	configDumpCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom riders config YAML")
	configDumpCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.GetDefaultYAML(riders.ModeRide))
		return err
	}

	cfg, err := config.LoadRiders(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyRidersPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
