// flagrun is a small arcade where you chase a flag around the screen.
//
// Usage:
//
//	flagrun list              - List available games
//	flagrun play [game]       - Play a game in a window or the terminal
//	flagrun serve             - Start SSH server for remote play
//	flagrun config            - Print the game configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/flagrun/internal/games/capture"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flagrun",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flagrun",
	Short: "Flagrun - Capture the flag, then capture it again",
	Long: `Flagrun is a tiny arcade game: steer your dot onto the flag, which
then jumps somewhere else. Every capture scores a point and makes you
faster.

Available commands:
  list     - Show all available games
  play     - Play in a desktop window or in the terminal
  serve    - Start SSH server for remote play
  config   - Print the game configuration

Examples:
  flagrun list
  flagrun play
  flagrun play capture_classic --terminal
  flagrun serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
