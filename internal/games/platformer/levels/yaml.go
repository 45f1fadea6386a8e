package levels

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNoPlan is returned for level files without any plan rows.
var ErrNoPlan = errors.New("levels: file has no plan")

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Plan     []string          `yaml:"plan"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file and checks that its plan builds.
func ParseYAML(data []byte) (Plan, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Plan{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yl.Plan) == 0 {
		return Plan{}, ErrNoPlan
	}

	plan := Plan{
		ID:       yl.ID,
		Name:     yl.Name,
		Rows:     yl.Plan,
		Metadata: yl.Metadata,
	}
	if err := plan.Validate(); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// MarshalYAML encodes a plan in the level file format.
func MarshalYAML(p Plan) ([]byte, error) {
	return yaml.Marshal(YAMLLevel{
		ID:       p.ID,
		Name:     p.Name,
		Plan:     p.Rows,
		Metadata: p.Metadata,
	})
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
