// Package canvas runs games in a desktop window through Ebitengine.
// The window surface always matches the window size; games draw on it in
// pixels through core.Canvas.
package canvas

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flagrun/internal/core"
	"github.com/vovakirdan/flagrun/internal/registry"
)

// Options configure the window.
type Options struct {
	Width, Height int // Initial window size
	TickRate      int
	Seed          int64 // 0 means time based
	Debug         bool
	Logger        *log.Logger
}

// DefaultOptions returns the default runtime size and tick rate.
func DefaultOptions() Options {
	def := core.DefaultConfig()
	return Options{
		Width:    def.ScreenW,
		Height:   def.ScreenH,
		TickRate: def.TickRate,
	}
}

// window adapts a registry.Game to ebiten.Game.
type window struct {
	game   registry.Game
	opts   Options
	fonts  *Fonts
	kb     keyboard
	keys   []ebiten.Key
	logger *log.Logger

	width, height int
}

func newWindow(game registry.Game, opts Options, fonts *Fonts, kb keyboard) *window {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &window{
		game:   game,
		opts:   opts,
		fonts:  fonts,
		kb:     kb,
		logger: logger,
		width:  opts.Width,
		height: opts.Height,
	}
}

// Update advances the game one frame.
func (w *window) Update() error {
	var frame core.InputFrame
	var cmds windowCommands
	frame, cmds, w.keys = readInput(w.kb, w.keys)

	if cmds.quit {
		return ebiten.Termination
	}

	w.game.Resize(w.width, w.height)
	w.game.Step(frame)

	if cmds.copyDebug && w.opts.Debug {
		w.copyDebug()
	}
	return nil
}

func (w *window) copyDebug() {
	d, ok := w.game.(registry.Debugger)
	if !ok {
		return
	}
	if err := clipboard.WriteAll(d.DebugJSON()); err != nil {
		w.logger.Warn("could not copy debug state", "error", err)
		return
	}
	w.logger.Info("debug state copied to clipboard")
}

// Draw renders the last frame.
func (w *window) Draw(screen *ebiten.Image) {
	w.game.Render(NewImageCanvas(screen, w.fonts))
}

// Layout keeps the drawing surface the size of the window.
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.width, w.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a window and plays game until it is closed or Escape is
// pressed.
func Run(game registry.Game, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	fonts, err := LoadFonts()
	if err != nil {
		return err
	}

	game.Reset(core.RuntimeConfig{
		ScreenW:  opts.Width,
		ScreenH:  opts.Height,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
		Debug:    opts.Debug,
	})

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	w := newWindow(game, opts, fonts, ebitenKeyboard{})
	w.logger.Debug("opening window", "game", game.ID(), "size", fmt.Sprintf("%dx%d", opts.Width, opts.Height), "tps", opts.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run %s: %w", game.ID(), err)
	}
	return nil
}
