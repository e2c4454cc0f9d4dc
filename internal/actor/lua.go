package actor

import (
	"fmt"

	"github.com/MaicoLeberle/zombsole/internal/scripting"
	"github.com/MaicoLeberle/zombsole/internal/world"
)

// Scripted delegates decisions to a Lua strategy function. Targets come back
// from Lua by position and are substituted with the live thing standing
// there.
type Scripted struct {
	eng *scripting.Engine
	fn  string
}

// NewScripted builds an actor driven by the named Lua function.
func NewScripted(eng *scripting.Engine, fn string) *Scripted {
	return &Scripted{eng: eng, fn: fn}
}

func (s *Scripted) NextStep(self *world.Thing, things world.Snapshot) (*world.Action, error) {
	ctx := scripting.StepContext{
		Name:    self.Name,
		Life:    self.Life,
		MaxLife: self.MaxLife,
		X:       self.Position.X,
		Y:       self.Position.Y,
	}
	if self.Weapon != nil {
		ctx.WeaponName = self.Weapon.Name
		ctx.WeaponRange = self.Weapon.MaxRange
	}
	ctx.Things = make([]scripting.ThingEntry, 0, len(things))
	for _, t := range things {
		ctx.Things = append(ctx.Things, scripting.ThingEntry{
			Name:  t.Name,
			Icon:  string(t.Icon),
			X:     t.Position.X,
			Y:     t.Position.Y,
			Life:  t.Life,
			Armed: t.Weapon != nil,
			Self:  t == self,
		})
	}

	res, err := s.eng.NextStep(s.fn, ctx)
	if err != nil {
		return nil, err
	}
	if res.Idle {
		return nil, nil
	}
	if res.Status != "" {
		self.Status = res.Status
	}

	kind := world.ActionKind(res.Action)
	pos := world.Position{X: res.X, Y: res.Y}
	switch kind {
	case world.ActionMove:
		return &world.Action{Kind: kind, Destination: pos}, nil
	case world.ActionAttack, world.ActionHeal:
		target, ok := things[pos]
		if !ok {
			return nil, fmt.Errorf("nothing at %s to target", pos)
		}
		return &world.Action{Kind: kind, Target: target.ID()}, nil
	default:
		// Passed through as-is so the world logs the unknown kind.
		return &world.Action{Kind: kind}, nil
	}
}
