package event

import "github.com/osrapps/osr-combat/internal/combat/intent"

// RejectionCode enumerates every reason an intent can fail validation.
// Validators accumulate every applicable code rather than stopping at the
// first failure, so ActionRejected.Reasons can carry more than one entry.
type RejectionCode string

const (
	RejectionInvalidActor              RejectionCode = "invalid_actor"
	RejectionActorDead                 RejectionCode = "actor_dead"
	RejectionActorNotCurrent           RejectionCode = "actor_not_current"
	RejectionTargetDead                RejectionCode = "target_dead"
	RejectionTargetNotOpponent         RejectionCode = "target_not_opponent"
	RejectionNoRangedWeapon            RejectionCode = "no_ranged_weapon"
	RejectionUnknownSpell              RejectionCode = "unknown_spell"
	RejectionIneligibleCaster          RejectionCode = "ineligible_caster"
	RejectionSlotLevelMismatch         RejectionCode = "slot_level_mismatch"
	RejectionNoSpellSlot               RejectionCode = "no_spell_slot"
	RejectionMonsterActionNotSupported RejectionCode = "monster_action_not_supported"
	RejectionInvalidTarget             RejectionCode = "invalid_target"
)

// Rejection pairs a code with a human-readable reason.
type Rejection struct {
	Code   RejectionCode
	Reason string
}

// ActionChoice is one option offered to whoever decides the current
// combatant's intent (a human UI, or a tactical provider). Label is
// derived on demand rather than stored, so it can never drift from
// UIKey/UIArgs.
type ActionChoice struct {
	UIKey  string
	UIArgs map[string]string
	Intent intent.Intent
}

// Label renders a human-facing description of the choice.
func (c ActionChoice) Label() string {
	switch c.UIKey {
	case "melee_attack":
		return "Attack " + c.UIArgs["target_name"] + " (melee)"
	case "ranged_attack":
		return "Attack " + c.UIArgs["target_name"] + " (ranged)"
	case "cast_spell":
		return "Cast " + c.UIArgs["spell_name"]
	case "flee":
		return "Flee the encounter"
	default:
		return c.UIKey
	}
}
