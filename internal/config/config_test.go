package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultCaptureConfigIsValid(t *testing.T) {
	if err := DefaultCaptureConfig().Validate(); err != nil {
		t.Fatalf("DefaultCaptureConfig().Validate() = %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg := DefaultCaptureConfig()
	if err := yaml.Unmarshal(GetDefaultYAML("capture"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultCaptureConfig() {
		t.Errorf("embedded YAML = %+v\nhardcoded = %+v", cfg, DefaultCaptureConfig())
	}
}

func TestLoadCaptureCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.yaml")
	data := []byte("arena:\n  padding: 32\nplayer:\n  emphasis_duration: 1s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCapture(path)
	if err != nil {
		t.Fatalf("LoadCapture() failed: %v", err)
	}
	if cfg.Arena.Padding != 32 {
		t.Errorf("Padding = %d, expected 32", cfg.Arena.Padding)
	}
	if cfg.Player.EmphasisDuration != time.Second {
		t.Errorf("EmphasisDuration = %v, expected 1s", cfg.Player.EmphasisDuration)
	}
	// Untouched keys keep their defaults
	if cfg.Player.InitialSpeed != 3 || cfg.Flag.CaptureRange != 30 {
		t.Errorf("defaults lost: speed %d, range %v", cfg.Player.InitialSpeed, cfg.Flag.CaptureRange)
	}
}

func TestLoadCaptureMissingFile(t *testing.T) {
	_, err := LoadCapture(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadCapture() on missing file should fail")
	}
}

func TestLoadCaptureInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.yaml")
	if err := os.WriteFile(path, []byte("arena:\n  background: nothex\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadCapture(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("LoadCapture() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CaptureConfig)
	}{
		{"negative padding", func(c *CaptureConfig) { c.Arena.Padding = -1 }},
		{"bad page color", func(c *CaptureConfig) { c.Arena.Page = "#zz" }},
		{"zero speed", func(c *CaptureConfig) { c.Player.InitialSpeed = 0 }},
		{"zero step factor", func(c *CaptureConfig) { c.Player.StepFactor = 0 }},
		{"emphasis below floor", func(c *CaptureConfig) { c.Player.EmphasisRadius = 1 }},
		{"hue step too big", func(c *CaptureConfig) { c.Flag.HueStep = 1 }},
		{"zero capture range", func(c *CaptureConfig) { c.Flag.CaptureRange = 0 }},
		{"zero text", func(c *CaptureConfig) { c.Text.Small = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCaptureConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestEmphasisTicks(t *testing.T) {
	cfg := DefaultCaptureConfig()
	tests := []struct {
		rate, want int
	}{
		{60, 30},
		{30, 15},
		{0, 30}, // falls back to 60
		{7, 4},  // 3.5 frames rounds up
	}
	for _, tc := range tests {
		if got := cfg.EmphasisTicks(tc.rate); got != tc.want {
			t.Errorf("EmphasisTicks(%d) = %d, expected %d", tc.rate, got, tc.want)
		}
	}
}

func TestKeyHoldTicksAtLeastOne(t *testing.T) {
	cfg := DefaultCaptureConfig()
	cfg.Terminal.KeyHold = 0
	if got := cfg.KeyHoldTicks(60); got != 1 {
		t.Errorf("KeyHoldTicks() = %d, expected 1", got)
	}
	cfg.Terminal.KeyHold = 150 * time.Millisecond
	if got := cfg.KeyHoldTicks(60); got != 9 {
		t.Errorf("KeyHoldTicks() = %d, expected 9", got)
	}
}

func TestColors(t *testing.T) {
	cols := DefaultCaptureConfig().Colors()
	if cols.Background.Hex() != "#23252c" {
		t.Errorf("Background = %s", cols.Background.Hex())
	}
	if cols.Emphasis.Hex() != "#ff0000" {
		t.Errorf("Emphasis = %s", cols.Emphasis.Hex())
	}
}

func TestVariants(t *testing.T) {
	v, err := ParseVariant("")
	if err != nil || v != VariantExtended {
		t.Fatalf("ParseVariant(\"\") = %q, %v", v, err)
	}
	if _, err := ParseVariant("turbo"); err == nil {
		t.Error("ParseVariant(\"turbo\") should fail")
	}

	cfg := DefaultCaptureConfig()
	ApplyVariant(&cfg, VariantClassic)
	if cfg.Rules.SpeedTolerance || cfg.Rules.HideAutoHintKey {
		t.Errorf("classic rules = %+v", cfg.Rules)
	}
	ApplyVariant(&cfg, VariantExtended)
	if !cfg.Rules.SpeedTolerance || !cfg.Rules.HideAutoHintKey {
		t.Errorf("extended rules = %+v", cfg.Rules)
	}
}
