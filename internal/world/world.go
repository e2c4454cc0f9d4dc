package world

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"
)

// Config holds the knobs for a new World.
type Config struct {
	Width  int
	Height int

	// Debug makes per-turn failures fail fast: the first actor or handler
	// error aborts the step instead of being logged and skipped.
	Debug bool

	// Seed for the world's random source (spawning, action shuffle, damage
	// and heal rolls). 0 means seed from the clock.
	Seed int64

	// Log is optional; nil means no logging.
	Log *zap.Logger
}

// World owns every thing, the decoration layer, the clock, and the event log.
// It is the only writer of all of them. Single-goroutine access only.
type World struct {
	width  int
	height int
	debug  bool

	arena *arena
	byPos map[Position]ThingID // main layer: at most one thing per position

	// decoration is a separate namespace: entries never conflict with the
	// main layer or each other (last write wins) and never act.
	decoration map[Position]*Thing

	tick   int
	events []Event
	rng    *rand.Rand
	log    *zap.Logger
}

// New builds an empty world. The tick counter starts at -1 so the first Step
// runs at tick 0.
func New(cfg Config) *World {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &World{
		width:      cfg.Width,
		height:     cfg.Height,
		debug:      cfg.Debug,
		arena:      newArena(),
		byPos:      make(map[Position]ThingID),
		decoration: make(map[Position]*Thing),
		tick:       -1,
		rng:        rand.New(rand.NewSource(seed)),
		log:        log,
	}
}

// Size returns the world dimensions.
func (w *World) Size() (width, height int) { return w.width, w.height }

// Tick returns the current turn counter (-1 before the first step).
func (w *World) Tick() int { return w.tick }

// Get resolves a thing ID, or nil if it is stale or unknown.
func (w *World) Get(id ThingID) *Thing { return w.arena.get(id) }

// ThingAt returns the main-layer occupant of a position, or nil.
func (w *World) ThingAt(pos Position) *Thing {
	id, ok := w.byPos[pos]
	if !ok {
		return nil
	}
	return w.arena.get(id)
}

// Things returns a copy of the main layer keyed by position.
func (w *World) Things() map[Position]*Thing {
	out := make(map[Position]*Thing, len(w.byPos))
	for pos, id := range w.byPos {
		out[pos] = w.arena.get(id)
	}
	return out
}

// DecorationAt returns the decoration at a position, or nil.
func (w *World) DecorationAt(pos Position) *Thing {
	return w.decoration[pos]
}

// Decorations returns a copy of the decoration layer keyed by position.
func (w *World) Decorations() map[Position]*Thing {
	out := make(map[Position]*Thing, len(w.decoration))
	for pos, t := range w.decoration {
		out[pos] = t
	}
	return out
}

// SpawnThing inserts the thing into the main layer at thing.Position.
// Fails with an OccupiedPositionError if the position is already taken.
func (w *World) SpawnThing(t *Thing) error {
	if occID, ok := w.byPos[t.Position]; ok {
		occ := w.arena.get(occID)
		return &OccupiedPositionError{Thing: t.Name, Occupant: occ.Name, Position: t.Position}
	}
	t.id = w.arena.insert(t)
	w.byPos[t.Position] = t.id
	return nil
}

// SpawnDecoration places the thing into the decoration layer at
// thing.Position. Decoration is not occupancy-checked: it may coincide with an
// occupied or vacant main-layer position, and a later decoration at the same
// position silently replaces an earlier one.
func (w *World) SpawnDecoration(t *Thing) {
	w.decoration[t.Position] = t
}

// SpawnInRandom spawns things into random free positions. The candidate set
// is the whole grid, or possible when non-nil; occupied positions are
// filtered out and the rest shuffled with the world's random source, then
// assigned one per thing in input order. When positions run out: fail with an
// InsufficientSpaceError if failIfCant, otherwise leave the remaining things
// unspawned and return nil.
func (w *World) SpawnInRandom(things []*Thing, possible []Position, failIfCant bool) error {
	var spawns []Position
	if possible == nil {
		spawns = make([]Position, 0, w.width*w.height)
		for x := 0; x < w.width; x++ {
			for y := 0; y < w.height; y++ {
				spawns = append(spawns, Position{X: x, Y: y})
			}
		}
	} else {
		spawns = append([]Position(nil), possible...)
	}

	free := spawns[:0]
	for _, pos := range spawns {
		if _, occupied := w.byPos[pos]; !occupied {
			free = append(free, pos)
		}
	}
	w.rng.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})

	for _, t := range things {
		if len(free) == 0 {
			if failIfCant {
				return &InsufficientSpaceError{Thing: t.Name}
			}
			return nil
		}
		t.Position = free[len(free)-1]
		free = free[:len(free)-1]
		// Occupied positions were filtered out, but a duplicated entry in
		// possible can still collide.
		if err := w.SpawnThing(t); err != nil {
			return err
		}
	}
	return nil
}

// pendingAction is one collected (thing, action) pair awaiting execution.
type pendingAction struct {
	thing  *Thing
	action *Action
}

// Step forwards one instant of time: advance the clock, collect actions from
// every action-requesting thing, shuffle them, execute them, and reap the
// dead. In debug mode the first actor or handler failure aborts the step with
// an error, leaving the world as it was at the abort point; otherwise
// failures become events and the step always completes.
func (w *World) Step() error {
	w.tick++

	actions, err := w.collectActions()
	if err != nil {
		return err
	}
	w.rng.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
	})
	if err := w.executeActions(actions); err != nil {
		return err
	}
	w.reapDead()
	return nil
}

// collectActions asks every action-requesting thing for its desired action,
// against a snapshot of the main layer taken before any mutation this turn.
// Actors are consulted in ascending ID order so a seeded world is
// reproducible; the caller shuffles the result anyway.
func (w *World) collectActions() ([]pendingAction, error) {
	snapshot := make(Snapshot, len(w.byPos))
	var actors []*Thing
	for pos, id := range w.byPos {
		t := w.arena.get(id)
		snapshot[pos] = t
		if t.RequestsActions() {
			actors = append(actors, t)
		}
	}
	sort.Slice(actors, func(i, j int) bool { return actors[i].id < actors[j].id })

	var actions []pendingAction
	for _, t := range actors {
		action, err := t.Actor.NextStep(t, snapshot)
		if err != nil {
			w.logEvent(t, fmt.Sprintf("error with next_step: %v", err))
			if w.debug {
				return nil, fmt.Errorf("%s next_step: %w", t.Name, err)
			}
			continue
		}
		if action == nil {
			w.logEvent(t, "idle")
			continue
		}
		actions = append(actions, pendingAction{thing: t, action: action})
	}
	return actions, nil
}

// executeActions dispatches each collected action to its handler and logs the
// resulting event text.
func (w *World) executeActions(actions []pendingAction) error {
	for _, pa := range actions {
		var (
			message string
			err     error
		)
		switch pa.action.Kind {
		case ActionMove:
			message, err = w.thingMove(pa.thing, pa.action.Destination)
		case ActionAttack:
			message, err = w.thingAttack(pa.thing, pa.action.Target)
		case ActionHeal:
			message, err = w.thingHeal(pa.thing, pa.action.Target)
		default:
			w.logEvent(pa.thing, fmt.Sprintf("unknown action %q", pa.action.Kind))
			continue
		}
		if err != nil {
			w.logEvent(pa.thing, fmt.Sprintf("error executing %s action: %v", pa.action.Kind, err))
			if w.debug {
				return fmt.Errorf("%s %s: %w", pa.thing.Name, pa.action.Kind, err)
			}
			continue
		}
		w.logEvent(pa.thing, message)
	}
	return nil
}

// reapDead removes every thing with life <= 0 from the main layer, placing
// its dead decoration (if any) at its last position.
func (w *World) reapDead() {
	var dead []*Thing
	for _, id := range w.byPos {
		if t := w.arena.get(id); t.Life <= 0 {
			dead = append(dead, t)
		}
	}
	sort.Slice(dead, func(i, j int) bool { return dead[i].id < dead[j].id })

	for _, t := range dead {
		if t.DeadDecoration != nil {
			t.DeadDecoration.Position = t.Position
			w.SpawnDecoration(t.DeadDecoration)
		}
		delete(w.byPos, t.Position)
		w.arena.remove(t.id)
		w.logEvent(t, "died")
	}
}

// thingMove relocates a thing one step. The position cache and the main-layer
// key change together or not at all.
func (w *World) thingMove(t *Thing, destination Position) (string, error) {
	if occID, ok := w.byPos[destination]; ok {
		occ := w.arena.get(occID)
		return fmt.Sprintf("hit %s with his head", occ.Name), nil
	}
	if Distance(t.Position, destination) > 1 {
		return "tried to walk too fast, but physics forbade it", nil
	}
	delete(w.byPos, t.Position)
	w.byPos[destination] = t.id
	t.Position = destination
	return "moved to " + destination.String(), nil
}

// thingAttack rolls damage within the attacker's weapon bounds against a
// target in range.
func (w *World) thingAttack(t *Thing, target ThingID) (string, error) {
	victim := w.arena.get(target)
	if victim == nil {
		return "", &InvalidActionTargetError{Kind: ActionAttack}
	}
	if t.Weapon == nil {
		return "", fmt.Errorf("%s has nothing to attack with", t.Name)
	}
	if Distance(t.Position, victim.Position) > t.Weapon.MaxRange {
		return fmt.Sprintf("tried to attack %s, but it is too far for a %s",
			victim.Name, t.Weapon.Name), nil
	}
	damage := t.Weapon.DamageMin + w.rng.Intn(t.Weapon.DamageMax-t.Weapon.DamageMin+1)
	victim.Life -= damage
	return fmt.Sprintf("injured %s with a %s", victim.Name, t.Weapon.Name), nil
}

// thingHeal raises a nearby target's life toward its maximum, never past it
// and never below its current value.
func (w *World) thingHeal(t *Thing, target ThingID) (string, error) {
	patient := w.arena.get(target)
	if patient == nil {
		return "", &InvalidActionTargetError{Kind: ActionHeal}
	}
	if Distance(t.Position, patient.Position) > HealingRange {
		return fmt.Sprintf("tried to heal %s, but it is too far away", patient.Name), nil
	}
	if span := patient.MaxLife - patient.Life; span > 0 {
		patient.Life += w.rng.Intn(span + 1)
	}
	return "healed " + patient.Name, nil
}
