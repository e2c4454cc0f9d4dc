package world

import (
	"fmt"
	"unicode/utf8"
)

// Thing is any entity placed in the world: an actor, a passive obstacle, or a
// decoration. Mutable fields (Life, Position, Status) are written only by the
// owning World during a step, and by the thing's own Actor while deciding.
// Accessed only from the turn loop goroutine, no locks.
type Thing struct {
	id ThingID // assigned when spawned into a world's main layer

	Name    string
	Icon    rune // exactly one display character
	Color   string
	Life    int
	MaxLife int
	Status  string

	// Position is a cached copy of the thing's key in the main layer. World
	// keeps both sides in sync; nothing else may write it after spawn.
	Position Position

	// Actor decides the thing's action each turn. Things with a nil Actor
	// never request actions.
	Actor Actor

	// Weapon is present on fighting things, nil otherwise.
	Weapon *Weapon

	// DeadDecoration, when set, is placed into the decoration layer at the
	// thing's last position when it dies (a corpse, a crater).
	DeadDecoration *Thing
}

// NewThing builds a passive thing. The icon must be exactly one character.
func NewThing(name, icon, color string, life int) (*Thing, error) {
	r, size := utf8.DecodeRuneInString(icon)
	if r == utf8.RuneError || size != len(icon) {
		return nil, fmt.Errorf("icon for %s must be a single character, got %q", name, icon)
	}
	return &Thing{
		Name:    name,
		Icon:    r,
		Color:   color,
		Life:    life,
		MaxLife: life,
	}, nil
}

// NewFightingThing builds a thing that carries a weapon and always requests
// actions. There is no subtype: a fighting thing is a Thing composed with a
// Weapon and a non-nil Actor.
func NewFightingThing(name, icon, color string, life int, weapon *Weapon, actor Actor) (*Thing, error) {
	if weapon == nil {
		return nil, fmt.Errorf("fighting thing %s needs a weapon", name)
	}
	if actor == nil {
		return nil, fmt.Errorf("fighting thing %s needs an actor", name)
	}
	t, err := NewThing(name, icon, color, life)
	if err != nil {
		return nil, err
	}
	t.Weapon = weapon
	t.Actor = actor
	return t, nil
}

// ID returns the thing's stable identifier in its world, or the zero ID if it
// has not been spawned into a main layer.
func (t *Thing) ID() ThingID { return t.id }

// RequestsActions reports whether the world consults this thing every turn.
func (t *Thing) RequestsActions() bool { return t.Actor != nil }
