package world

// ActionKind names one of the actions the world knows how to execute.
// Dispatch is a fixed switch over the closed set below; any other value falls
// through to the "unknown action" branch.
type ActionKind string

const (
	ActionMove   ActionKind = "move"
	ActionAttack ActionKind = "attack"
	ActionHeal   ActionKind = "heal"
)

// HealingRange is the reach of the heal action, independent of any weapon.
const HealingRange = 3.0

// Action is one thing's desired action for the current turn.
// Move uses Destination; attack and heal use Target.
type Action struct {
	Kind        ActionKind
	Destination Position
	Target      ThingID
}

// Snapshot is the main layer as it stood when action collection started.
// Actions decided in a turn never see the results of other actions decided in
// the same turn. Actors must treat it as read-only.
type Snapshot map[Position]*Thing

// Actor is the decision capability consulted every turn for each
// action-requesting thing. Returning (nil, nil) means idle. The world treats
// the call as synchronous and opaque; implementations live outside the core.
type Actor interface {
	NextStep(self *Thing, things Snapshot) (*Action, error)
}

// ActorFunc adapts a plain function to the Actor interface.
type ActorFunc func(self *Thing, things Snapshot) (*Action, error)

func (f ActorFunc) NextStep(self *Thing, things Snapshot) (*Action, error) {
	return f(self, things)
}
