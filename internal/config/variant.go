package config

import "fmt"

// Variant is a named rule preset for Capture the Flag.
type Variant string

const (
	// VariantExtended widens the capture box by half the player speed and
	// lets U hide the auto mode banner.
	VariantExtended Variant = "extended"
	// VariantClassic uses a fixed capture box and no hide key.
	VariantClassic Variant = "classic"
)

// ParseVariant maps a CLI string to a Variant. Empty means extended.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case "", VariantExtended:
		return VariantExtended, nil
	case VariantClassic:
		return VariantClassic, nil
	default:
		return "", fmt.Errorf("unknown variant %q (want %q or %q)", s, VariantExtended, VariantClassic)
	}
}

// ApplyVariant modifies the config rules for a variant preset.
func ApplyVariant(cfg *CaptureConfig, v Variant) {
	switch v {
	case VariantClassic:
		cfg.Rules.SpeedTolerance = false
		cfg.Rules.HideAutoHintKey = false
	case VariantExtended:
		cfg.Rules.SpeedTolerance = true
		cfg.Rules.HideAutoHintKey = true
	}
}
