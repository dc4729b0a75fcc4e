package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/emojidrop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the EmojiDrop config that a new game would use, as YAML.

Without --config, the first valid file of ~/.emojidrop/configs/emojidrop.yaml
and ./configs/emojidrop.yaml is used, then the built-in defaults.
The output can be saved and edited as a starting point.

Examples:
  emojidrop config
  emojidrop config > ~/.emojidrop/configs/emojidrop.yaml
  emojidrop config --config ./wide-well.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadEmojiDrop(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
