package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flagrun/internal/config"
	"github.com/vovakirdan/flagrun/internal/core"
	"github.com/vovakirdan/flagrun/internal/games/capture"
	"github.com/vovakirdan/flagrun/internal/platform/canvas"
	"github.com/vovakirdan/flagrun/internal/platform/tui"
	"github.com/vovakirdan/flagrun/internal/registry"
)

var (
	flagConfig   string
	flagWindow   bool
	flagTerminal bool
	flagDebug    bool
	flagWidth    int
	flagHeight   int
)

// variantGame is implemented by games with rule presets.
type variantGame interface {
	Variant() config.Variant
}

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: capture).

Controls:
  Arrows/WASD  - Move
  Z            - Auto mode (the dot chases the flag by itself)
  U            - Hide the auto mode banner (capture only)
  F2           - Copy debug state to the clipboard (window, --debug)
  Ctrl+S       - Save a screenshot (terminal)
  Esc          - Quit

Examples:
  flagrun play
  flagrun play capture_classic
  flagrun play --terminal
  flagrun play --debug --width 800 --height 600
  flagrun play --config ./my-capture.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window (default)")
	playCmd.Flags().BoolVar(&flagTerminal, "terminal", false, "Play in the terminal")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay")
	playCmd.Flags().IntVar(&flagWidth, "width", 1280, "Window width in pixels")
	playCmd.Flags().IntVar(&flagHeight, "height", 720, "Window height in pixels")
	playCmd.MarkFlagsMutuallyExclusive("window", "terminal")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "capture"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'flagrun list' to see available games.")
		os.Exit(1)
	}

	// Set config path for games before creation
	capture.SetConfigPath(flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	gameCfg := loadGameConfig(game)

	if flagTerminal {
		err = playTerminal(game, gameCfg)
	} else {
		err = playWindow(game)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

func playWindow(game registry.Game) error {
	logger.Info("starting", "game", game.ID(), "platform", "window")
	return canvas.Run(game, canvas.Options{
		Width:    flagWidth,
		Height:   flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Debug:    flagDebug,
		Logger:   logger,
	})
}

func playTerminal(game registry.Game, gameCfg config.CaptureConfig) error {
	cols, rows := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols, rows = w, h
	}

	// One row below the arena holds the help footer
	w, h := tui.PixelSize(cols, max(1, rows-1))
	cfg := core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Debug:    flagDebug,
	}

	return tui.Run(game, cfg, tui.OptionsFor(gameCfg, flagFPS))
}

// loadGameConfig resolves the config the game will use, logging where it
// came from. Games read it again on Reset; this copy feeds the platform.
func loadGameConfig(game registry.Game) config.CaptureConfig {
	cfg, err := config.LoadCapture(flagConfig)
	if err != nil {
		logger.Warn("falling back to default config", "error", err)
		cfg = config.DefaultCaptureConfig()
	} else {
		logger.Debug("config loaded", "path", flagConfig)
	}

	if v, ok := game.(variantGame); ok {
		config.ApplyVariant(&cfg, v.Variant())
		logger.Debug("rules applied", "variant", v.Variant())
	}
	return cfg
}
