package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// LoadPlatformer loads platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
//
// Keys missing from a file keep their default values.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("platformer.yaml"),
		filepath.Join("configs", "platformer.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are ignored.
func tryLoad(path string) (PlatformerConfig, bool) {
	cfg := DefaultPlatformerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// Validate checks that the configuration yields usable physics.
func (c PlatformerConfig) Validate() error {
	if err := c.ToPhysics().Validate(); err != nil {
		return err
	}
	if c.Timing.MaxFrame <= 0 {
		return fmt.Errorf("timing.max_frame must be positive, got %g", c.Timing.MaxFrame)
	}
	return nil
}

// ToPhysics maps the configuration onto simulation constants.
func (c PlatformerConfig) ToPhysics() world.Physics {
	return world.Physics{
		Gravity:      c.Physics.Gravity,
		JumpSpeed:    c.Physics.JumpSpeed,
		PlayerXSpeed: c.Physics.PlayerSpeed,
		MaxStep:      c.Physics.MaxStep,
		WobbleSpeed:  c.Hazards.WobbleSpeed,
		WobbleDist:   c.Hazards.WobbleDist,
		LoseDelay:    c.Timing.LoseDelay,
		WinDelay:     c.Timing.WinDelay,
		HazardSpeed:  c.Hazards.LavaSpeed,
	}
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Hazards.LavaSpeed *= 0.75
		cfg.Timing.LoseDelay = 2.0
	case DifficultyHard:
		cfg.Hazards.LavaSpeed *= 1.25
		cfg.Timing.LoseDelay = 1.5
	}
}
