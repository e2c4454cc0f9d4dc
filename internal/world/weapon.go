package world

// Weapon describes attack reach and damage spread. Weapons are treated as
// immutable once constructed and may be shared between things.
type Weapon struct {
	Name      string
	MaxRange  float64
	DamageMin int // inclusive
	DamageMax int // inclusive
}

// NewWeapon builds a weapon. Callers are expected to pass DamageMin <= DamageMax.
func NewWeapon(name string, maxRange float64, damageMin, damageMax int) *Weapon {
	return &Weapon{
		Name:      name,
		MaxRange:  maxRange,
		DamageMin: damageMin,
		DamageMax: damageMax,
	}
}
