// Package manifest loads the answers manifest: for each day, the path
// of a real puzzle input and the answers both parts must produce.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Entry records the expected results for one day.
type Entry struct {
	Input string `yaml:"input"`
	One   int    `yaml:"one"`
	Two   int    `yaml:"two"`
}

// Manifest maps day names like "day07" to their expected results.
type Manifest struct {
	Days map[string]Entry `yaml:"days"`
}

// Load loads a manifest from a YAML file. Relative input paths are
// resolved against the manifest's directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(m.Days) == 0 {
		return nil, fmt.Errorf("manifest %s lists no days", path)
	}

	base := filepath.Dir(path)
	for name, e := range m.Days {
		if e.Input == "" {
			return nil, fmt.Errorf("manifest entry %s has no input path", name)
		}
		if !filepath.IsAbs(e.Input) {
			e.Input = filepath.Join(base, e.Input)
			m.Days[name] = e
		}
	}
	return m, nil
}

// Names returns the listed day names in order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Days))
	for name := range m.Days {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
