// Package context holds the engine's mutable, in-memory state for a single
// encounter: the combatant roster, the turn queue, and the bookkeeping
// tables (spell slots, conditions, forced intents, announced deaths). It is
// the narrow collaborator contract described by the rest of the engine —
// the engine never reaches into a caller's character/monster types
// directly, only through the Combatant interface below.
package context

import "github.com/osrapps/osr-combat/internal/combat/encstate"

// Combatant is the minimal read/write contract the encounter engine needs
// from a party member or opposition monster. Callers implement this over
// whatever character/monster representation they already have; the engine
// never assumes a concrete struct.
type Combatant interface {
	ID() string
	Name() string
	Side() encstate.Side
	IsAlive() bool
	HP() int
	MaxHP() int
	ArmorClass() int
	THAC0() int
	StrengthModifier() int
	DexterityModifier() int
	// AttackCount is how many attacks this combatant makes per round (most
	// PCs and many monsters are 1; some monsters have more).
	AttackCount() int
	MeleeDamageDie() string
	// RangedDamageDie reports whether this combatant has a ranged option
	// and, if so, its damage notation.
	RangedDamageDie() (die string, ok bool)
	// ApplyDamage reduces HP by amount, floored at 0.
	ApplyDamage(amount int)
}

// SpellcasterCombatant is implemented by combatants that can cast spells;
// the engine type-asserts for it rather than requiring every Combatant to
// carry spellcasting fields it will never use.
type SpellcasterCombatant interface {
	Combatant
	ClassID() string
	// SpellSlotMax returns how many slots of the given level this caster
	// has at full rest; 0 means the caster has no slots of that level.
	SpellSlotMax(level int) int
}

// CombatantRef is the engine's uniform handle on a roster entry: identity,
// side, the underlying collaborator, and per-encounter flags that don't
// belong on the caller's own type (has this one already fled).
type CombatantRef struct {
	ID       string
	Side     encstate.Side
	Entity   Combatant
	HasFled  bool
}

func (r *CombatantRef) IsAlive() bool {
	return r.Entity.IsAlive() && !r.HasFled
}
