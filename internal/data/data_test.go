package data

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadWeaponTable(t *testing.T) {
	path := writeFile(t, "weapons.yaml", `
weapons:
  - name: knife
    max_range: 1.5
    damage_min: 5
    damage_max: 10
  - name: rifle
    max_range: 10
    damage_min: 25
    damage_max: 75
`)
	table, err := LoadWeaponTable(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if table.Count() != 2 {
		t.Fatalf("count = %d, want 2", table.Count())
	}
	knife := table.Get("knife")
	if knife == nil {
		t.Fatal("knife not found")
	}
	if knife.MaxRange != 1.5 || knife.DamageMin != 5 || knife.DamageMax != 10 {
		t.Fatalf("knife = %+v", knife)
	}
	if table.Get("bazooka") != nil {
		t.Fatal("unknown weapon resolved")
	}
}

func TestLoadWeaponTableRejectsInvertedDamage(t *testing.T) {
	path := writeFile(t, "weapons.yaml", `
weapons:
  - name: cursed
    max_range: 1
    damage_min: 10
    damage_max: 5
`)
	if _, err := LoadWeaponTable(path); err == nil {
		t.Fatal("expected error for damage_min > damage_max")
	}
}

func TestLoadScenario(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
things:
  - name: guard
    icon: "@"
    color: blue
    life: 100
    weapon: rifle
    strategy: hunter
    x: 3
    y: 4
    corpse_icon: "="
  - name: shambler
    icon: "z"
    color: green
    life: 60
    weapon: claws
    strategy: hunter
    count: 8
`)
	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sc.Count() != 2 {
		t.Fatalf("count = %d, want 2", sc.Count())
	}
	guard := sc.Things[0]
	if guard.Name != "guard" || guard.X != 3 || guard.Y != 4 || guard.CorpseIcon != "=" {
		t.Fatalf("guard = %+v", guard)
	}
	if sc.Things[1].Count != 8 {
		t.Fatalf("shambler count = %d", sc.Things[1].Count)
	}
}

func TestLoadScenarioRejectsMissingName(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
things:
  - icon: "@"
    life: 1
`)
	if _, err := LoadScenario(path); err == nil {
		t.Fatal("expected error for unnamed scenario entry")
	}
}

func TestLoadMissingFiles(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := LoadWeaponTable(missing); err == nil {
		t.Fatal("expected error for missing weapons file")
	}
	if _, err := LoadScenario(missing); err == nil {
		t.Fatal("expected error for missing scenario file")
	}
}
