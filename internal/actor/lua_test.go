package actor

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/MaicoLeberle/zombsole/internal/scripting"
	"github.com/MaicoLeberle/zombsole/internal/world"
)

const testScript = `
function troll(ctx)
    return {
        action = "heal",
        target = { x = ctx.x, y = ctx.y },
        status = "healing myself",
    }
end

function walker(ctx)
    return { action = "move", x = ctx.x + 1, y = ctx.y }
end

function sleeper(ctx)
    return nil
end

function broken(ctx)
    return 5
end

function dancer(ctx)
    return { action = "dance" }
end
`

func testEngine(t *testing.T) *scripting.Engine {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "strategies.lua"), []byte(testScript), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	eng, err := scripting.NewEngine(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	t.Cleanup(eng.Close)
	return eng
}

func TestScriptedHealTargetsByPosition(t *testing.T) {
	eng := testEngine(t)
	w := world.New(world.Config{Width: 5, Height: 5, Seed: 1})
	self := passive(t, "troll", "blue", 100)
	spawn(t, w, self, world.Position{X: 2, Y: 3})

	act, err := NewScripted(eng, "troll").NextStep(self, world.Snapshot(w.Things()))
	if err != nil {
		t.Fatalf("next step: %v", err)
	}
	if act.Kind != world.ActionHeal || act.Target != self.ID() {
		t.Fatalf("action = %+v, want heal on self", act)
	}
	if self.Status != "healing myself" {
		t.Fatalf("status = %q", self.Status)
	}
}

func TestScriptedMove(t *testing.T) {
	eng := testEngine(t)
	w := world.New(world.Config{Width: 5, Height: 5, Seed: 1})
	self := passive(t, "walker", "blue", 10)
	spawn(t, w, self, world.Position{X: 1, Y: 1})

	act, err := NewScripted(eng, "walker").NextStep(self, world.Snapshot(w.Things()))
	if err != nil {
		t.Fatalf("next step: %v", err)
	}
	if act.Kind != world.ActionMove || act.Destination != (world.Position{X: 2, Y: 1}) {
		t.Fatalf("action = %+v, want move to (2, 1)", act)
	}
}

func TestScriptedIdle(t *testing.T) {
	eng := testEngine(t)
	w := world.New(world.Config{Width: 5, Height: 5, Seed: 1})
	self := passive(t, "sleeper", "blue", 10)
	spawn(t, w, self, world.Position{X: 0, Y: 0})

	act, err := NewScripted(eng, "sleeper").NextStep(self, world.Snapshot(w.Things()))
	if err != nil {
		t.Fatalf("next step: %v", err)
	}
	if act != nil {
		t.Fatalf("nil return should mean idle, got %+v", act)
	}
}

func TestScriptedMalformedResultIsAnError(t *testing.T) {
	eng := testEngine(t)
	w := world.New(world.Config{Width: 5, Height: 5, Seed: 1})
	self := passive(t, "broken", "blue", 10)
	spawn(t, w, self, world.Position{X: 0, Y: 0})

	if _, err := NewScripted(eng, "broken").NextStep(self, world.Snapshot(w.Things())); err == nil {
		t.Fatal("non-table result accepted")
	}
}

func TestScriptedUnknownKindPassesThrough(t *testing.T) {
	eng := testEngine(t)
	w := world.New(world.Config{Width: 5, Height: 5, Seed: 1})
	self := passive(t, "dancer", "blue", 10)
	spawn(t, w, self, world.Position{X: 0, Y: 0})

	act, err := NewScripted(eng, "dancer").NextStep(self, world.Snapshot(w.Things()))
	if err != nil {
		t.Fatalf("next step: %v", err)
	}
	if act.Kind != "dance" {
		t.Fatalf("kind = %q, want the unknown kind preserved for the world to log", act.Kind)
	}
}

func TestResolvePrefersLuaWhenDefined(t *testing.T) {
	eng := testEngine(t)
	a, err := Resolve("troll", eng)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, ok := a.(*Scripted); !ok {
		t.Fatalf("resolved %T, want *Scripted", a)
	}
	if _, err := Resolve("missing", eng); err == nil {
		t.Fatal("undefined strategy resolved")
	}
}
