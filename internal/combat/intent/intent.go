// Package intent defines the closed set of player/provider decisions the
// encounter engine can accept at AwaitIntent.
package intent

// Intent is a tagged union of the actions a combatant may attempt on their
// turn. The Kind method is the stable discriminator used by validators,
// the formatter, and tests; it never changes once assigned.
type Intent interface {
	Kind() string
}

// MeleeAttack attempts a melee attack against a single target.
type MeleeAttack struct {
	ActorID  string
	TargetID string
}

func (MeleeAttack) Kind() string { return "melee_attack" }

// RangedAttack attempts a ranged attack against a single target.
type RangedAttack struct {
	ActorID  string
	TargetID string
}

func (RangedAttack) Kind() string { return "ranged_attack" }

// CastSpell attempts to cast a known spell at the given slot level against
// zero or more targets (an empty slice means the spell targets the caster
// or requires no target).
type CastSpell struct {
	ActorID   string
	SpellID   string
	SlotLevel int
	TargetIDs []string
}

func (CastSpell) Kind() string { return "cast_spell" }

// Flee attempts to withdraw the actor from the encounter.
type Flee struct {
	ActorID string
}

func (Flee) Kind() string { return "flee" }

// NewCastSpell builds a CastSpell intent, normalizing a nil target slice to
// an empty one so downstream code never has to distinguish nil from empty.
func NewCastSpell(actorID, spellID string, slotLevel int, targetIDs []string) CastSpell {
	if targetIDs == nil {
		targetIDs = []string{}
	}
	return CastSpell{
		ActorID:   actorID,
		SpellID:   spellID,
		SlotLevel: slotLevel,
		TargetIDs: targetIDs,
	}
}
