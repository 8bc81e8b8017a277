package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flagrun/internal/games/capture"
	"github.com/vovakirdan/flagrun/internal/platform/tui"
	"github.com/vovakirdan/flagrun/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeGame   string
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the flagrun SSH server",
	Long: `Start an SSH server that allows users to connect and play in their
terminal.

Each SSH connection gets its own independent game. Without --game every
connection starts on a picker listing all games. Nothing is shared
between connections and nothing is saved.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flagrun/host_key

Examples:
  flagrun serve                            # Listen on :23234 with auto-generated key
  flagrun serve --ssh :2222                # Listen on port 2222
  flagrun serve --game capture_classic     # Skip the picker, classic rules
  flagrun serve --host-key ./my_host_key   # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeGame, "game", "", "Game every session plays (empty = picker)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
}

func runServe(_ *cobra.Command, _ []string) {
	capture.SetConfigPath(flagServeConfig)
	flagConfig = flagServeConfig

	if flagServeGame != "" && !registry.Exists(flagServeGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", flagServeGame)
		fmt.Fprintln(os.Stderr, "Run 'flagrun list' to see available games.")
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.GameID = flagServeGame
	cfg.TickRate = flagFPS
	cfg.Options = func(game registry.Game) tui.Options {
		return tui.OptionsFor(loadGameConfig(game), flagFPS)
	}
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting flagrun SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
