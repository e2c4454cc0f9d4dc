package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WeaponSpec holds static data for a weapon type loaded from YAML.
type WeaponSpec struct {
	Name      string  `yaml:"name"`
	MaxRange  float64 `yaml:"max_range"`
	DamageMin int     `yaml:"damage_min"`
	DamageMax int     `yaml:"damage_max"`
}

type weaponListFile struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

// WeaponTable holds all weapon specs indexed by name.
type WeaponTable struct {
	specs map[string]*WeaponSpec
}

// LoadWeaponTable loads weapon specs from a YAML file.
func LoadWeaponTable(path string) (*WeaponTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weapons: %w", err)
	}
	var f weaponListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse weapons: %w", err)
	}
	t := &WeaponTable{specs: make(map[string]*WeaponSpec, len(f.Weapons))}
	for i := range f.Weapons {
		w := &f.Weapons[i]
		if w.DamageMin > w.DamageMax {
			return nil, fmt.Errorf("weapon %s: damage_min %d > damage_max %d",
				w.Name, w.DamageMin, w.DamageMax)
		}
		t.specs[w.Name] = w
	}
	return t, nil
}

// Get returns a weapon spec by name, or nil if not found.
func (t *WeaponTable) Get(name string) *WeaponSpec {
	return t.specs[name]
}

// Count returns the number of loaded weapon specs.
func (t *WeaponTable) Count() int {
	return len(t.specs)
}
