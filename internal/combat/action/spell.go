package action

import (
	"fmt"
	"slices"

	"github.com/osrapps/osr-combat/internal/combat/context"
	"github.com/osrapps/osr-combat/internal/combat/dice"
	"github.com/osrapps/osr-combat/internal/combat/effect"
	"github.com/osrapps/osr-combat/internal/combat/event"
	"github.com/osrapps/osr-combat/internal/combat/intent"
	"github.com/osrapps/osr-combat/internal/combat/spell"
)

// CastSpell resolves intent.CastSpell: catalog lookup, caster eligibility,
// slot-level match, slot availability, and target-count validation, then
// (on success) a SpellCast event, a ConsumeSlot effect, and per-target
// Damage/ApplyCondition effects.
type CastSpell struct {
	In intent.CastSpell
}

func (a CastSpell) Validate(ctx *context.Context) []event.Rejection {
	var rejections []event.Rejection

	actorRef := ctx.Combatants[a.In.ActorID]
	if actorRef == nil {
		return []event.Rejection{{Code: event.RejectionInvalidActor, Reason: "actor " + a.In.ActorID + " is not in this encounter"}}
	}
	if !actorRef.IsAlive() {
		rejections = append(rejections, event.Rejection{Code: event.RejectionActorDead, Reason: "actor " + a.In.ActorID + " is dead or has fled"})
	}
	if ctx.CurrentCombatantID() != a.In.ActorID {
		rejections = append(rejections, event.Rejection{Code: event.RejectionActorNotCurrent, Reason: "it is not " + a.In.ActorID + "'s turn"})
	}

	def, ok := spell.Get(a.In.SpellID)
	if !ok {
		rejections = append(rejections, event.Rejection{Code: event.RejectionUnknownSpell, Reason: "unknown spell " + a.In.SpellID})
		return rejections
	}

	caster, isCaster := actorRef.Entity.(context.SpellcasterCombatant)
	if !isCaster || !slices.Contains(def.UsableBy, caster.ClassID()) {
		rejections = append(rejections, event.Rejection{Code: event.RejectionIneligibleCaster, Reason: a.In.ActorID + " cannot cast " + a.In.SpellID})
		return rejections
	}

	if a.In.SlotLevel != def.Level {
		rejections = append(rejections, event.Rejection{Code: event.RejectionSlotLevelMismatch, Reason: fmt.Sprintf("%s is a level %d spell, not level %d", a.In.SpellID, def.Level, a.In.SlotLevel)})
	} else if caster.SpellSlotMax(a.In.SlotLevel) <= 0 {
		// This checks the caster's class table, not the live remaining
		// count: an exhausted-but-structurally-valid slot level is caught
		// later, at apply time, so the cast still reaches ExecuteAction
		// and emits SpellCast before being rejected.
		rejections = append(rejections, event.Rejection{Code: event.RejectionNoSpellSlot, Reason: fmt.Sprintf("%s has no level %d spell slots", a.In.ActorID, a.In.SlotLevel)})
	}

	if def.NumTargets == -1 {
		if len(a.In.TargetIDs) == 0 {
			rejections = append(rejections, event.Rejection{Code: event.RejectionInvalidTarget, Reason: "spell requires at least one target"})
			return rejections
		}
	} else if len(a.In.TargetIDs) != def.NumTargets {
		rejections = append(rejections, event.Rejection{Code: event.RejectionInvalidTarget, Reason: "spell requires exactly the caster's declared target count"})
		return rejections
	}
	for _, targetID := range a.In.TargetIDs {
		target := ctx.Combatants[targetID]
		if target == nil {
			rejections = append(rejections, event.Rejection{Code: event.RejectionInvalidTarget, Reason: "target " + targetID + " is not in this encounter"})
			continue
		}
		if !target.IsAlive() {
			rejections = append(rejections, event.Rejection{Code: event.RejectionTargetDead, Reason: "target " + targetID + " is dead or has fled"})
		}
	}

	return rejections
}

func (a CastSpell) Execute(ctx *context.Context, d dice.Service) Result {
	def, _ := spell.Get(a.In.SpellID)

	res := Result{
		Events: []event.Event{event.SpellCast{
			ActorID:   a.In.ActorID,
			SpellID:   a.In.SpellID,
			SpellName: def.Name,
			TargetIDs: a.In.TargetIDs,
		}},
		Effects: []effect.Effect{effect.ConsumeSlot{
			CasterID: a.In.ActorID,
			Level:    a.In.SlotLevel,
		}},
	}

	for _, targetID := range a.In.TargetIDs {
		if def.DamageDie != "" {
			base := dice.Must(d, def.DamageDie)
			res.Effects = append(res.Effects, effect.Damage{
				SourceID: a.In.ActorID,
				TargetID: targetID,
				Amount:   base,
			})
		}
		if def.ConditionID != "" {
			res.Effects = append(res.Effects, effect.ApplyCondition{
				SourceID:  a.In.ActorID,
				TargetID:  targetID,
				Condition: def.ConditionID,
				Duration:  def.ConditionDuration,
			})
		}
	}

	return res
}
