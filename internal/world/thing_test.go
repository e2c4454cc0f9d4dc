package world

import "testing"

func TestNewThingValidatesIcon(t *testing.T) {
	for _, icon := range []string{"", "ab", "@@"} {
		if _, err := NewThing("a", icon, "white", 10); err == nil {
			t.Errorf("icon %q accepted, want error", icon)
		}
	}
	th, err := NewThing("a", "☠", "white", 10)
	if err != nil {
		t.Fatalf("single multi-byte character rejected: %v", err)
	}
	if th.Icon != '☠' {
		t.Fatalf("icon = %q", th.Icon)
	}
	if th.MaxLife != 10 {
		t.Fatalf("default max life = %d, want 10", th.MaxLife)
	}
	if th.RequestsActions() {
		t.Fatal("passive thing requests actions")
	}
}

func TestNewFightingThingRequiresWeaponAndActor(t *testing.T) {
	idle := ActorFunc(func(*Thing, Snapshot) (*Action, error) { return nil, nil })
	weapon := NewWeapon("knife", 1.5, 5, 10)

	if _, err := NewFightingThing("a", "@", "blue", 10, nil, idle); err == nil {
		t.Error("nil weapon accepted")
	}
	if _, err := NewFightingThing("a", "@", "blue", 10, weapon, nil); err == nil {
		t.Error("nil actor accepted")
	}

	ft, err := NewFightingThing("a", "@", "blue", 10, weapon, idle)
	if err != nil {
		t.Fatalf("valid fighting thing rejected: %v", err)
	}
	if !ft.RequestsActions() {
		t.Fatal("fighting thing does not request actions")
	}
	if ft.Weapon != weapon {
		t.Fatal("weapon not attached")
	}
}

func TestThingIDStableAcrossSlotReuse(t *testing.T) {
	w := New(Config{Width: 3, Height: 3, Seed: 1})
	a := newTestThing(t, "a", 0)
	spawnAt(t, w, a, Position{X: 0, Y: 0})
	oldID := a.ID()

	mustStep(t, w) // reaps a, freeing its slot

	b := newTestThing(t, "b", 10)
	spawnAt(t, w, b, Position{X: 0, Y: 0})

	if w.Get(oldID) != nil {
		t.Fatal("stale ID resolves after slot reuse")
	}
	if w.Get(b.ID()) != b {
		t.Fatal("fresh ID does not resolve")
	}
	if oldID == b.ID() {
		t.Fatal("slot reuse produced an identical ID")
	}
}
