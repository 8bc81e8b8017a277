// Package config provides YAML-based game configuration loading and
// variant presets for flagrun.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/flagrun/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// CaptureConfig contains all configuration for the Capture the Flag game.
type CaptureConfig struct {
	Arena    CaptureArena    `yaml:"arena"`
	Player   CapturePlayer   `yaml:"player"`
	Flag     CaptureFlag     `yaml:"flag"`
	Auto     CaptureAuto     `yaml:"auto"`
	Rules    CaptureRules    `yaml:"rules"`
	Text     CaptureText     `yaml:"text"`
	Terminal CaptureTerminal `yaml:"terminal"`
}

// CaptureArena defines the playfield inside the viewport.
type CaptureArena struct {
	Padding    int    `yaml:"padding"`    // Gap between viewport edge and arena
	Background string `yaml:"background"` // Arena fill
	Page       string `yaml:"page"`       // Fill outside the arena
}

// CapturePlayer defines the player dot.
type CapturePlayer struct {
	Radius           float64       `yaml:"radius"`
	InitialSpeed     int           `yaml:"initial_speed"`
	StepFactor       int           `yaml:"step_factor"` // Pixels per frame = step_factor * speed
	HueStep          float64       `yaml:"hue_step"`
	EmphasisRadius   float64       `yaml:"emphasis_radius"`
	EmphasisMin      float64       `yaml:"emphasis_min"`
	EmphasisDecay    float64       `yaml:"emphasis_decay"` // Radius lost per frame
	EmphasisDuration time.Duration `yaml:"emphasis_duration"`
	EmphasisColor    string        `yaml:"emphasis_color"`
}

// CaptureFlag defines the flag dot.
type CaptureFlag struct {
	Radius       float64 `yaml:"radius"`
	HueStep      float64 `yaml:"hue_step"`
	CaptureRange float64 `yaml:"capture_range"` // Half-size of the capture box
}

// CaptureAuto defines auto mode movement.
type CaptureAuto struct {
	Step float64 `yaml:"step"` // Pixels per axis per frame
}

// CaptureRules holds the switches that distinguish the game variants.
type CaptureRules struct {
	SpeedTolerance  bool `yaml:"speed_tolerance"`    // Widen capture box by speed/2
	HideAutoHintKey bool `yaml:"hide_auto_hint_key"` // U hides the auto mode banner
	SpeedIncrement  int  `yaml:"speed_increment"`
}

// CaptureText defines font sizes in pixels.
type CaptureText struct {
	Heading float64 `yaml:"heading"`
	Small   float64 `yaml:"small"`
	Debug   float64 `yaml:"debug"`
}

// CaptureTerminal defines terminal-only behaviour.
type CaptureTerminal struct {
	// KeyHold is how long a key press counts as held, since terminals
	// report no key releases.
	KeyHold time.Duration `yaml:"key_hold"`
}

// Validate checks the config for values the game cannot run with.
func (c CaptureConfig) Validate() error {
	if c.Arena.Padding < 0 {
		return fmt.Errorf("%w: arena.padding must be >= 0, got %d", ErrInvalidConfig, c.Arena.Padding)
	}
	for name, hex := range map[string]string{
		"arena.background":      c.Arena.Background,
		"arena.page":            c.Arena.Page,
		"player.emphasis_color": c.Player.EmphasisColor,
	} {
		if _, err := core.ParseHex(hex); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
		}
	}
	if c.Player.InitialSpeed <= 0 {
		return fmt.Errorf("%w: player.initial_speed must be > 0, got %d", ErrInvalidConfig, c.Player.InitialSpeed)
	}
	if c.Player.StepFactor <= 0 {
		return fmt.Errorf("%w: player.step_factor must be > 0, got %d", ErrInvalidConfig, c.Player.StepFactor)
	}
	if c.Player.EmphasisMin < 0 || c.Player.EmphasisRadius < c.Player.EmphasisMin {
		return fmt.Errorf("%w: player.emphasis_radius (%v) must be >= emphasis_min (%v) >= 0",
			ErrInvalidConfig, c.Player.EmphasisRadius, c.Player.EmphasisMin)
	}
	if c.Player.EmphasisDuration < 0 {
		return fmt.Errorf("%w: player.emphasis_duration must be >= 0", ErrInvalidConfig)
	}
	if c.Player.HueStep < 0 || c.Player.HueStep >= 1 || c.Flag.HueStep < 0 || c.Flag.HueStep >= 1 {
		return fmt.Errorf("%w: hue steps must be in [0, 1)", ErrInvalidConfig)
	}
	if c.Flag.CaptureRange <= 0 {
		return fmt.Errorf("%w: flag.capture_range must be > 0, got %v", ErrInvalidConfig, c.Flag.CaptureRange)
	}
	if c.Rules.SpeedIncrement < 0 {
		return fmt.Errorf("%w: rules.speed_increment must be >= 0", ErrInvalidConfig)
	}
	if c.Text.Heading <= 0 || c.Text.Small <= 0 || c.Text.Debug <= 0 {
		return fmt.Errorf("%w: text sizes must be > 0", ErrInvalidConfig)
	}
	return nil
}

// Colors holds the parsed config colors.
type Colors struct {
	Background core.Color
	Page       core.Color
	Emphasis   core.Color
}

// Colors parses the configured hex colors. Call Validate first; invalid
// entries fall back to the defaults.
func (c CaptureConfig) Colors() Colors {
	def := DefaultCaptureConfig()
	return Colors{
		Background: parseOr(c.Arena.Background, def.Arena.Background),
		Page:       parseOr(c.Arena.Page, def.Arena.Page),
		Emphasis:   parseOr(c.Player.EmphasisColor, def.Player.EmphasisColor),
	}
}

func parseOr(hex, fallback string) core.Color {
	if col, err := core.ParseHex(hex); err == nil {
		return col
	}
	return core.MustParseHex(fallback)
}

// EmphasisTicks converts the emphasis duration into whole frames at the
// given tick rate, rounding up.
func (c CaptureConfig) EmphasisTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return durationTicks(c.Player.EmphasisDuration, tickRate)
}

// KeyHoldTicks converts the terminal key hold into frames, at least one.
func (c CaptureConfig) KeyHoldTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return max(1, durationTicks(c.Terminal.KeyHold, tickRate))
}

// durationTicks rounds d up to whole frames. The epsilon keeps exact
// multiples such as 500ms at 60 fps from rounding up an extra frame.
func durationTicks(d time.Duration, tickRate int) int {
	return int(math.Ceil(d.Seconds()*float64(tickRate) - 1e-9))
}
