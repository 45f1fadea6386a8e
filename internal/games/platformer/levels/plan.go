// Package levels provides level plans for the platformer: the built-in
// campaign, YAML level files and directory loading with hot reload.
// This package depends on world but world does not depend on levels.
package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// Plan is a named level layout. Rows use the world glyphs:
//
//	' ' empty   'x' wall   '!' lava
//	'@' player  'o' fish   'd' dog
//	'=' '|' 'v' moving lava
type Plan struct {
	ID       string
	Name     string
	Rows     []string
	Metadata map[string]string
	FilePath string
}

// Build constructs a fresh simulation of the plan.
func (p Plan) Build(opts world.Options) (*world.Level, error) {
	lvl, err := world.New(p.Rows, opts)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", p.label(), err)
	}
	return lvl, nil
}

// Validate checks that the plan builds with default physics.
func (p Plan) Validate() error {
	_, err := p.Build(world.Options{})
	return err
}

// Title returns the display name, falling back to the ID.
func (p Plan) Title() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// Size returns the plan width and height in tiles.
func (p Plan) Size() (int, int) {
	if len(p.Rows) == 0 {
		return 0, 0
	}
	return len(p.Rows[0]), len(p.Rows)
}

// FishCount returns the number of collectibles in the plan.
func (p Plan) FishCount() int {
	n := 0
	for _, row := range p.Rows {
		for i := 0; i < len(row); i++ {
			if row[i] == 'o' {
				n++
			}
		}
	}
	return n
}

func (p Plan) label() string {
	if p.ID != "" {
		return p.ID
	}
	if p.FilePath != "" {
		return p.FilePath
	}
	return "plan"
}
