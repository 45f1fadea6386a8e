package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:     30,
			JumpSpeed:   17,
			PlayerSpeed: 7,
			MaxStep:     0.05,
		},
		Hazards: PlatformerHazards{
			LavaSpeed:   1.0,
			WobbleSpeed: 8,
			WobbleDist:  0.07,
		},
		Timing: PlatformerTiming{
			LoseDelay: 3.0,
			WinDelay:  1.0,
			MaxFrame:  0.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				GravityBoost:    0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
