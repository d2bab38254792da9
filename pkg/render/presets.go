package render

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is a named column selection loaded from a YAML presets file.
type Preset struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets reads a presets YAML file and returns the presets keyed by
// lowercase name. Duplicate names and presets without columns are rejected.
func LoadPresets(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets file: %w", err)
	}

	var pf presetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse presets file: %w", err)
	}

	out := make(map[string][]string, len(pf.Presets))
	for _, p := range pf.Presets {
		name := strings.ToLower(strings.TrimSpace(p.Name))
		if name == "" {
			return nil, fmt.Errorf("preset with empty name in %s", path)
		}
		if _, exists := out[name]; exists {
			return nil, fmt.Errorf("duplicate preset %q in %s", name, path)
		}
		if len(p.Columns) == 0 {
			return nil, fmt.Errorf("preset %q has no columns", name)
		}
		out[name] = p.Columns
	}
	return out, nil
}
