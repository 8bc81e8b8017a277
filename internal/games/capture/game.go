// Package capture implements Capture the Flag.
// The player steers a dot around a padded arena to touch a flag that jumps
// to a random spot on every capture; each capture adds a point and makes
// the player faster.
package capture

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/flagrun/internal/config"
	"github.com/vovakirdan/flagrun/internal/core"
	"github.com/vovakirdan/flagrun/internal/registry"
)

// Phase is the intro state of a session.
type Phase int

const (
	PhaseIdle     Phase = iota // Reset done, no frame run yet
	PhaseEmphasis              // Red marker shrinking around the player
	PhaseSteady                // Normal play
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEmphasis:
		return "emphasis"
	case PhaseSteady:
		return "steady"
	default:
		return "unknown"
	}
}

// Player is the player-controlled dot.
type Player struct {
	X, Y           float64
	Hue            float64 // [0, 1)
	Emphasized     bool
	EmphasisRadius float64
	Moved          bool // Any key pressed since reset
	Speed          int
	Auto           bool
}

// Flag is the target dot.
type Flag struct {
	X, Y     float64
	Hue      float64 // [0, 1)
	Captures int
}

// InputFlags is the keyboard state read once per frame.
type InputFlags struct {
	Up, Down, Left, Right bool
	HideAutoHint          bool
}

// Game implements Capture the Flag.
type Game struct {
	variant config.Variant
	fixed   *config.CaptureConfig // Overrides file lookup when set
	cfg     config.CaptureConfig
	colors  config.Colors

	rng      *rand.Rand
	tick     uint64
	tickRate int
	debug    bool
	viewport core.Viewport

	phase        Phase
	emphasisLeft int // Frames until the intro ends

	player Player
	flag   Flag
	input  InputFlags

	view frameView // What Render draws
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the config file path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game with the extended rules.
func New() *Game {
	return &Game{variant: config.VariantExtended}
}

// NewClassic creates a game with the classic rules.
func NewClassic() *Game {
	return &Game{variant: config.VariantClassic}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
// The variant preset is still applied on top.
func NewWithConfig(v config.Variant, cfg config.CaptureConfig) *Game {
	return &Game{variant: v, fixed: &cfg}
}

func init() {
	registry.Register("capture", func() registry.Game {
		return New()
	})
	registry.Register("capture_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == config.VariantClassic {
		return "capture_classic"
	}
	return "capture"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == config.VariantClassic {
		return "Capture the Flag (Classic)"
	}
	return "Capture the Flag"
}

// Variant returns the rule preset in use.
func (g *Game) Variant() config.Variant {
	return g.variant
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.colors = g.cfg.Colors()

	g.rng = rand.New(rand.NewSource(cfg.Seed)) // #nosec G404 -- gameplay only
	g.tick = 0
	g.tickRate = cfg.TickRate
	g.debug = cfg.Debug
	g.viewport = cfg.Viewport()

	g.phase = PhaseIdle
	g.emphasisLeft = 0
	g.input = InputFlags{}

	px, py := g.randomPoint()
	g.player = Player{
		X:              px,
		Y:              py,
		EmphasisRadius: g.cfg.Player.EmphasisRadius,
		Speed:          g.cfg.Player.InitialSpeed,
	}

	fx, fy := g.randomPoint()
	g.flag = Flag{X: fx, Y: fy}

	g.view = g.makeView()
}

func (g *Game) loadConfig() config.CaptureConfig {
	var cfg config.CaptureConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		loaded, err := config.LoadCapture(configPath)
		if err != nil {
			loaded = config.DefaultCaptureConfig()
		}
		cfg = loaded
	}
	config.ApplyVariant(&cfg, g.variant)
	return cfg
}

// Resize updates the viewport. State is kept; the next clamp pulls both
// dots back inside a shrunken arena.
func (g *Game) Resize(w, h int) {
	g.viewport = core.Viewport{W: w, H: h}
}

// State returns the current game state. The game never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.flag.Captures}
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	g.handleInput(in)
	g.advancePhase()
	g.advanceHues()

	// The frame is drawn after the hue advance and before anything moves.
	g.view = g.makeView()

	if g.touchingFlag() {
		g.captureFlag()
	}
	g.movePlayer()
	g.clampEntities()
	if g.player.Auto {
		g.autoMove()
	}
	g.decayEmphasis()

	return core.StepResult{State: g.State()}
}

// handleInput applies the key events delivered since the last frame.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionAnyKey) {
		g.player.Moved = true
	}
	g.input.Up = in.Has(core.ActionUp)
	g.input.Down = in.Has(core.ActionDown)
	g.input.Left = in.Has(core.ActionLeft)
	g.input.Right = in.Has(core.ActionRight)

	if in.Has(core.ActionAutoMode) {
		g.player.Auto = true
	}
	if in.Has(core.ActionHideAutoHint) && g.cfg.Rules.HideAutoHintKey {
		g.input.HideAutoHint = true
	}
}

// advancePhase runs the intro timer: the first frame starts the emphasis,
// which ends once its duration has elapsed.
func (g *Game) advancePhase() {
	switch g.phase {
	case PhaseIdle:
		g.phase = PhaseEmphasis
		g.player.Emphasized = true
		g.emphasisLeft = g.cfg.EmphasisTicks(g.tickRate)
		if g.emphasisLeft <= 0 {
			g.endEmphasis()
		}
	case PhaseEmphasis:
		g.emphasisLeft--
		if g.emphasisLeft <= 0 {
			g.endEmphasis()
		}
	}
}

func (g *Game) endEmphasis() {
	g.phase = PhaseSteady
	g.player.Emphasized = false
}

func (g *Game) advanceHues() {
	g.player.Hue = stepHue(g.player.Hue, g.cfg.Player.HueStep)
	g.flag.Hue = stepHue(g.flag.Hue, g.cfg.Flag.HueStep)
}

func stepHue(h, step float64) float64 {
	h += step
	if h >= 1 {
		h = 0
	}
	return h
}

// touchingFlag is an axis-aligned box test around the flag, half-open on
// each axis. The extended rules widen the box by half the player speed.
func (g *Game) touchingFlag() bool {
	reach := g.cfg.Flag.CaptureRange
	if g.cfg.Rules.SpeedTolerance {
		reach += float64(g.player.Speed) / 2
	}
	p, f := g.player, g.flag
	return core.InRange(p.Y, f.Y-reach, f.Y+reach) &&
		core.InRange(p.X, f.X-reach, f.X+reach)
}

func (g *Game) captureFlag() {
	g.flag.Captures++
	g.flag.X, g.flag.Y = g.randomPoint()
	g.player.Speed += g.cfg.Rules.SpeedIncrement
}

// movePlayer applies held directions. The edge guard compares against the
// raw viewport, not the padded arena; the clamp that follows handles the
// arena.
func (g *Game) movePlayer() {
	step := float64(g.cfg.Player.StepFactor * g.player.Speed)
	w, h := float64(g.viewport.W), float64(g.viewport.H)

	if g.input.Up && g.player.Y != 0 {
		g.player.Y -= step
	}
	if g.input.Down && g.player.Y != h {
		g.player.Y += step
	}
	if g.input.Left && g.player.X != 0 {
		g.player.X -= step
	}
	if g.input.Right && g.player.X != w {
		g.player.X += step
	}
}

func (g *Game) clampEntities() {
	arena := g.arena()
	g.player.X, g.player.Y = arena.Clamp(g.player.X, g.player.Y)
	g.flag.X, g.flag.Y = arena.Clamp(g.flag.X, g.flag.Y)
}

// autoMove walks toward the flag on each axis independently. The second
// comparison sees the first one's result, so a player within one step of
// the flag jitters across it.
func (g *Game) autoMove() {
	step := g.cfg.Auto.Step
	p := &g.player
	if g.flag.Y > p.Y {
		p.Y += step
	}
	if g.flag.Y < p.Y {
		p.Y -= step
	}
	if g.flag.X > p.X {
		p.X += step
	}
	if g.flag.X < p.X {
		p.X -= step
	}
}

func (g *Game) decayEmphasis() {
	if g.player.Emphasized {
		g.player.EmphasisRadius -= g.cfg.Player.EmphasisDecay
	}
	if g.player.EmphasisRadius < g.cfg.Player.EmphasisMin {
		g.player.EmphasisRadius = g.cfg.Player.EmphasisMin
	}
}

// arena is the viewport inset by the padding.
func (g *Game) arena() core.Bounds {
	return g.viewport.Bounds().Inset(float64(g.cfg.Arena.Padding))
}

// randomPoint picks a whole-pixel point uniformly over the arena.
func (g *Game) randomPoint() (float64, float64) {
	a := g.arena()
	return g.randomIn(a.MinX, a.MaxX), g.randomIn(a.MinY, a.MaxY)
}

func (g *Game) randomIn(lo, hi float64) float64 {
	lo, hi = math.Ceil(lo), math.Floor(hi)
	if hi < lo {
		return hi
	}
	return lo + float64(g.rng.Intn(int(hi-lo)+1))
}
