package world

import "fmt"

// OccupiedPositionError is returned by SpawnThing when the main layer already
// holds a different thing at the requested position. Setup-time error, never
// swallowed.
type OccupiedPositionError struct {
	Thing    string
	Occupant string
	Position Position
}

func (e *OccupiedPositionError) Error() string {
	return fmt.Sprintf("can't place %s in %s, occupied by %s", e.Thing, e.Position, e.Occupant)
}

// InsufficientSpaceError is returned by SpawnInRandom when the candidate
// positions run out before the things do and the caller asked for failure.
type InsufficientSpaceError struct {
	Thing string
}

func (e *InsufficientSpaceError) Error() string {
	return fmt.Sprintf("not enough space to spawn %s", e.Thing)
}

// InvalidActionTargetError is produced by the attack and heal handlers when
// the action's target does not resolve to a live thing (stale or zero ID).
// It surfaces as an "error executing ..." event.
type InvalidActionTargetError struct {
	Kind ActionKind
}

func (e *InvalidActionTargetError) Error() string {
	return fmt.Sprintf("target of %s is not a live thing", e.Kind)
}
