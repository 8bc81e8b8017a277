package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/capture.yaml
var defaultCaptureYAML []byte

// DefaultCaptureConfig returns the default Capture the Flag configuration.
func DefaultCaptureConfig() CaptureConfig {
	return CaptureConfig{
		Arena: CaptureArena{
			Padding:    20,
			Background: "#23252c",
			Page:       "#16171c",
		},
		Player: CapturePlayer{
			Radius:           10,
			InitialSpeed:     3,
			StepFactor:       2,
			HueStep:          0.005,
			EmphasisRadius:   50,
			EmphasisMin:      5,
			EmphasisDecay:    1.7,
			EmphasisDuration: 500 * time.Millisecond,
			EmphasisColor:    "#ff0000",
		},
		Flag: CaptureFlag{
			Radius:       10,
			HueStep:      0.01,
			CaptureRange: 30,
		},
		Auto: CaptureAuto{
			Step: 30,
		},
		Rules: CaptureRules{
			SpeedTolerance:  true,
			HideAutoHintKey: true,
			SpeedIncrement:  1,
		},
		Text: CaptureText{
			Heading: 24, // 1.5rem
			Small:   16, // 1rem
			Debug:   16,
		},
		Terminal: CaptureTerminal{
			KeyHold: 150 * time.Millisecond,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "capture", "capture_classic":
		return defaultCaptureYAML
	default:
		return nil
	}
}
