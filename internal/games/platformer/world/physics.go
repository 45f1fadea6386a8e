package world

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPhysics is returned when a Physics value cannot drive a simulation.
var ErrInvalidPhysics = errors.New("world: invalid physics")

// Physics holds the tunable constants of the simulation.
// Distances are in tiles and times in seconds.
type Physics struct {
	Gravity      float64 // Downward acceleration for player and dogs
	JumpSpeed    float64 // Upward speed applied on a jump or a dog bounce
	PlayerXSpeed float64 // Horizontal player speed while left or right is held
	MaxStep      float64 // Largest sub-step used by Animate
	WobbleSpeed  float64 // Fish phase advance per second
	WobbleDist   float64 // Fish oscillation amplitude
	LoseDelay    float64 // Finish delay after the level is lost
	WinDelay     float64 // Finish delay after the level is won
	HazardSpeed  float64 // Multiplier applied to moving lava speeds
}

// DefaultPhysics returns the classic tuning.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:      30,
		JumpSpeed:    17,
		PlayerXSpeed: 7,
		MaxStep:      0.05,
		WobbleSpeed:  8,
		WobbleDist:   0.07,
		LoseDelay:    3,
		WinDelay:     1,
		HazardSpeed:  1,
	}
}

// Validate checks that every constant is finite and that MaxStep is positive,
// since Animate could never consume its delta otherwise.
func (p Physics) Validate() error {
	values := []struct {
		name string
		v    float64
	}{
		{"gravity", p.Gravity},
		{"jump speed", p.JumpSpeed},
		{"player x speed", p.PlayerXSpeed},
		{"max step", p.MaxStep},
		{"wobble speed", p.WobbleSpeed},
		{"wobble dist", p.WobbleDist},
		{"lose delay", p.LoseDelay},
		{"win delay", p.WinDelay},
		{"hazard speed", p.HazardSpeed},
	}
	for _, f := range values {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidPhysics, f.name)
		}
	}
	if p.MaxStep <= 0 {
		return fmt.Errorf("%w: max step must be positive, got %g", ErrInvalidPhysics, p.MaxStep)
	}
	if p.WobbleDist < 0 {
		return fmt.Errorf("%w: wobble dist must not be negative, got %g", ErrInvalidPhysics, p.WobbleDist)
	}
	return nil
}
