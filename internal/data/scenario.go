package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ThingSpec defines one group of things a scenario spawns.
type ThingSpec struct {
	Name    string `yaml:"name"`
	Icon    string `yaml:"icon"`
	Color   string `yaml:"color"`
	Life    int    `yaml:"life"`
	MaxLife int    `yaml:"max_life"` // 0 = same as life

	// Weapon names an entry of the weapon catalog; empty means unarmed.
	Weapon string `yaml:"weapon"`

	// Strategy names a built-in actor strategy or a Lua function loaded from
	// the scripts directory; empty means a passive thing.
	Strategy string `yaml:"strategy"`

	// Placement: a fixed position, or Random for world-chosen free positions.
	// Count > 1 always places randomly.
	X      int  `yaml:"x"`
	Y      int  `yaml:"y"`
	Random bool `yaml:"random"`
	Count  int  `yaml:"count"` // 0 means 1

	// Optional decoration left behind on death.
	CorpseIcon  string `yaml:"corpse_icon"`
	CorpseColor string `yaml:"corpse_color"`
}

type scenarioFile struct {
	Things []ThingSpec `yaml:"things"`
}

// Scenario is the parsed list of thing groups to spawn into a fresh world.
type Scenario struct {
	Things []ThingSpec
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var f scenarioFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	for i := range f.Things {
		s := &f.Things[i]
		if s.Name == "" {
			return nil, fmt.Errorf("scenario entry %d: missing name", i)
		}
		if s.Count < 0 {
			return nil, fmt.Errorf("scenario entry %s: negative count", s.Name)
		}
	}
	return &Scenario{Things: f.Things}, nil
}

// Count returns the number of thing groups in the scenario.
func (s *Scenario) Count() int {
	return len(s.Things)
}
