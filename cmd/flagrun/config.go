package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flagrun/internal/config"
)

var (
	flagDumpRules    string
	flagDumpConfig   string
	flagDumpDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the configuration a game would run with, as YAML.

The output is a complete config file: save it under
~/.flagrun/configs/capture.yaml or ./configs/capture.yaml and edit it.

Examples:
  flagrun config                      # Resolved config, extended rules
  flagrun config --rules classic      # Resolved config, classic rules
  flagrun config --config ./my.yaml   # Check a custom file
  flagrun config --defaults           # Built-in defaults file`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDumpRules, "rules", "", "Rule preset: extended or classic")
	configCmd.Flags().StringVar(&flagDumpConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().BoolVar(&flagDumpDefaults, "defaults", false, "Print the built-in defaults file")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDumpDefaults {
		fmt.Print(string(config.GetDefaultYAML("capture")))
		return
	}

	variant, err := config.ParseVariant(flagDumpRules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadCapture(flagDumpConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyVariant(&cfg, variant)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# rules: %s\n", variant)
	fmt.Print(string(out))
}
