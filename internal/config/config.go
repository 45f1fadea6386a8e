// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer.
package config

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics    PlatformerPhysics `yaml:"physics"`
	Hazards    PlatformerHazards `yaml:"hazards"`
	Timing     PlatformerTiming  `yaml:"timing"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// PlatformerPhysics defines movement parameters, in tiles and seconds.
type PlatformerPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpSpeed   float64 `yaml:"jump_speed"`
	PlayerSpeed float64 `yaml:"player_speed"`
	MaxStep     float64 `yaml:"max_step"`
}

// PlatformerHazards defines lava and collectible animation parameters.
type PlatformerHazards struct {
	LavaSpeed   float64 `yaml:"lava_speed"` // Multiplier on moving lava speeds
	WobbleSpeed float64 `yaml:"wobble_speed"`
	WobbleDist  float64 `yaml:"wobble_dist"`
}

// PlatformerTiming defines level pacing.
type PlatformerTiming struct {
	LoseDelay float64 `yaml:"lose_delay"` // Seconds before a lost level restarts
	WinDelay  float64 `yaml:"win_delay"`  // Seconds before the next level starts
	MaxFrame  float64 `yaml:"max_frame"`  // Largest frame delta handed to the simulation
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a campaign.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Level index or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to lava speed at max difficulty
	GravityBoost    float64 `yaml:"gravity_boost"`    // Added to gravity at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
