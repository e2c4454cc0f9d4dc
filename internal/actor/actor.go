// Package actor provides the strategy variants consulted by the world each
// turn. The world core depends only on the world.Actor interface, never on
// anything in this package.
package actor

import (
	"fmt"

	"github.com/MaicoLeberle/zombsole/internal/scripting"
	"github.com/MaicoLeberle/zombsole/internal/world"
)

// Idle never acts.
var Idle world.Actor = world.ActorFunc(
	func(*world.Thing, world.Snapshot) (*world.Action, error) {
		return nil, nil
	},
)

// SelfHealer always heals itself. Trolls have regenerative capabilities,
// hence the historical name.
type SelfHealer struct{}

func (SelfHealer) NextStep(self *world.Thing, _ world.Snapshot) (*world.Action, error) {
	self.Status = "healing myself"
	return &world.Action{Kind: world.ActionHeal, Target: self.ID()}, nil
}

// Hunter attacks the nearest living thing of another color when it is in
// weapon range, and otherwise takes one step toward it. Color doubles as the
// side tag: same color, same side.
type Hunter struct{}

func (Hunter) NextStep(self *world.Thing, things world.Snapshot) (*world.Action, error) {
	target := nearestEnemy(self, things)
	if target == nil {
		self.Status = "wandering"
		return nil, nil
	}

	if self.Weapon != nil && world.Distance(self.Position, target.Position) <= self.Weapon.MaxRange {
		self.Status = "attacking " + target.Name
		return &world.Action{Kind: world.ActionAttack, Target: target.ID()}, nil
	}

	dest, ok := stepToward(self.Position, target.Position, things)
	if !ok {
		self.Status = "stuck"
		return nil, nil
	}
	self.Status = "chasing " + target.Name
	return &world.Action{Kind: world.ActionMove, Destination: dest}, nil
}

// nearestEnemy returns the closest living thing of another color. Ties are
// broken by position so a seeded run stays reproducible despite snapshot map
// iteration order.
func nearestEnemy(self *world.Thing, things world.Snapshot) *world.Thing {
	var best *world.Thing
	bestDist := 0.0
	for _, t := range things {
		if t == self || t.Color == self.Color || t.Life <= 0 {
			continue
		}
		d := world.Distance(self.Position, t.Position)
		closer := best == nil || d < bestDist
		tied := best != nil && d == bestDist &&
			(t.Position.X < best.Position.X ||
				(t.Position.X == best.Position.X && t.Position.Y < best.Position.Y))
		if closer || tied {
			best = t
			bestDist = d
		}
	}
	return best
}

// stepToward picks the free cardinal neighbor that gets closest to the
// target. Diagonal steps are not walkable, so only four candidates exist.
func stepToward(from, to world.Position, things world.Snapshot) (world.Position, bool) {
	candidates := []world.Position{
		{X: from.X + 1, Y: from.Y},
		{X: from.X - 1, Y: from.Y},
		{X: from.X, Y: from.Y + 1},
		{X: from.X, Y: from.Y - 1},
	}
	var best world.Position
	bestDist := 0.0
	found := false
	for _, c := range candidates {
		if _, occupied := things[c]; occupied {
			continue
		}
		d := world.Distance(c, to)
		if !found || d < bestDist {
			best = c
			bestDist = d
			found = true
		}
	}
	return best, found
}

// Resolve maps a scenario strategy name to an actor: a built-in, or a Lua
// function loaded by the engine. eng may be nil when no scripts directory is
// configured.
func Resolve(strategy string, eng *scripting.Engine) (world.Actor, error) {
	switch strategy {
	case "":
		return nil, nil
	case "idle":
		return Idle, nil
	case "self_healer":
		return SelfHealer{}, nil
	case "hunter":
		return Hunter{}, nil
	}
	if eng != nil && eng.HasStrategy(strategy) {
		return NewScripted(eng, strategy), nil
	}
	return nil, fmt.Errorf("unknown strategy %q", strategy)
}
